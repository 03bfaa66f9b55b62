package serializer

import (
	"context"
	"fmt"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
)

// GenericField adapts one polymorphic single-embedded attribute. Unlike
// EmbeddedField it has no fixed shape: the concrete schema is resolved from
// the "_cls" tag per conversion call and a nested serializer is synthesized
// for it on the fly, under the same depth budget this adapter was built with.
type GenericField struct {
	field schema.Field
	depth int
	reg   *schema.Registry
	ov    Overrides
}

// NewGeneric is the default AdapterFactory for generic single-embedded
// fields.
func NewGeneric(f schema.Field, depth int, reg *schema.Registry, ov Overrides) (docser.Adapter, error) {
	if reg == nil {
		return nil, fmt.Errorf("serializer: generic field %q requires a registry", f.Name)
	}
	return &GenericField{field: f, depth: depth, reg: reg, ov: ov}, nil
}

func (a *GenericField) Required() bool { return a.field.Required }

func (a *GenericField) nested(s *schema.Schema) (Converter, error) {
	nb := a.ov.Nested
	if nb == nil {
		nb = defaultNested
	}
	return nb(s, a.depth, a.reg, a.ov)
}

// ToExternal injects the value's discriminator tag under "_cls". A stored
// value whose tag no longer resolves is a data-integrity fault and fails only
// this field.
func (a *GenericField) ToExternal(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	e, ok := v.(*schema.Embedded)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeDataIntegrity,
			Message: i18n.T(docser.CodeDataIntegrity, nil),
			Hint:    "stored value is not an embedded document",
		}}
	}
	tag, err := a.reg.TagOf(e)
	if err != nil {
		return nil, err
	}
	conv, err := a.nested(e.Schema)
	if err != nil {
		return nil, err
	}
	out, err := conv.External(ctx, e)
	if err != nil {
		return nil, err
	}
	out[schema.TagKey] = tag
	return out, nil
}

func (a *GenericField) ToInternal(ctx context.Context, data any) (any, error) {
	if data == nil {
		if a.field.Required {
			return nil, docser.Issues{docser.Issue{
				Path:    "/",
				Code:    docser.CodeRequired,
				Message: i18n.T(docser.CodeRequired, nil),
				Hint:    "required property missing",
			}}
		}
		return nil, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeInvalidType,
			Message: i18n.T(docser.CodeInvalidType, nil),
			Hint:    "expected object",
		}}
	}
	tv := m[schema.TagKey]
	tag, _ := tv.(string)
	if tag == "" {
		return nil, docser.Issues{docser.Issue{
			Path:    "/" + schema.TagKey,
			Code:    docser.CodeDiscriminatorMissing,
			Message: i18n.T(docser.CodeDiscriminatorMissing, nil),
			Hint:    "discriminator missing",
		}}
	}
	sch, err := a.reg.Resolve(tag)
	if err != nil {
		return nil, err
	}
	conv, err := a.nested(sch)
	if err != nil {
		return nil, err
	}
	// the tag key is not a declared attribute; Internal ignores it
	return conv.Internal(ctx, m)
}

func (a *GenericField) Describe(indent string) string {
	s := "Generic(by " + schema.TagKey + ")"
	if a.field.Required {
		return "required " + s
	}
	return s
}
