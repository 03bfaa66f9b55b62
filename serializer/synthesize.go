package serializer

import (
	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/schema"
)

// Build derives the adapter for a schema field with the given depth budget.
//
// Resolution order: an explicit per-field adapter wins; non-embedded kinds
// take the standard-field path; a spent budget yields the Placeholder; list
// kinds wrap the single-element adapter; otherwise the fixed or generic
// embedded adapter is constructed (override factories first, defaults after).
// Construction failures indicate programming errors and abort immediately.
func Build(f schema.Field, depth int, reg *schema.Registry, ov Overrides) (docser.Adapter, error) {
	if ad, ok := ov.PerField[f.Name]; ok {
		return ad, nil
	}
	if !f.Kind.Embedded() {
		return buildScalar(f, ov)
	}
	if depth <= 0 {
		return Placeholder(f), nil
	}

	elemField := f
	if f.Kind.List() {
		if f.Kind == schema.KindEmbeddedList {
			elemField.Kind = schema.KindEmbedded
		} else {
			elemField.Kind = schema.KindEmbeddedGeneric
		}
		// element presence is governed per index, not by the field flag
		elemField.Required = false
	}

	var elem docser.Adapter
	var err error
	if elemField.Kind.Generic() {
		factory := ov.Generic
		if factory == nil {
			factory = NewGeneric
		}
		elem, err = factory(elemField, depth, reg, ov)
	} else {
		factory := ov.Embedded
		if factory == nil {
			factory = NewEmbedded
		}
		elem, err = factory(elemField, depth, reg, ov)
	}
	if err != nil {
		return nil, err
	}

	if f.Kind.List() {
		return NewList(f, elem), nil
	}
	return elem, nil
}
