package docstore

import (
	"context"
	"strings"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
	"github.com/embedkit/docser/serializer"
)

// Options is the recognized configuration surface of a document serializer.
type Options struct {
	// Depth is the initial embedding budget handed to the synthesizer.
	// 0 (the default) hides embedded fields behind placeholders.
	Depth int
	// Overrides are forwarded into every serializer.Build call.
	Overrides serializer.Overrides
}

// Serializer maps documents of one schema to and from their external
// key/value form. Scalar fields take the standard path; embedded fields use
// adapters synthesized by the serializer package.
type Serializer struct {
	schema *schema.Schema
	reg    *schema.Registry
	opts   Options
	slots  []slot
}

type slot struct {
	field schema.Field
	ad    docser.Adapter
}

// New composes a serializer for s. Construction fails on malformed schemas or
// overrides; that is a programming error, not bad input.
func New(s *schema.Schema, reg *schema.Registry, opts Options) (*Serializer, error) {
	fields, err := schema.Introspect(s)
	if err != nil {
		return nil, err
	}
	z := &Serializer{schema: s, reg: reg, opts: opts, slots: make([]slot, 0, len(fields))}
	for _, f := range fields {
		ad, err := serializer.Build(f, opts.Depth, reg, opts.Overrides)
		if err != nil {
			return nil, err
		}
		z.slots = append(z.slots, slot{field: f, ad: ad})
	}
	return z, nil
}

// Adapter returns the adapter composed for the named field.
func (z *Serializer) Adapter(name string) (docser.Adapter, bool) {
	for _, sl := range z.slots {
		if sl.field.Name == name {
			return sl.ad, true
		}
	}
	return nil, false
}

// Validate checks data and returns the internal document it describes. Every
// field starts from its schema default, so a payload omitting a field always
// resets it; issues are collected across all fields in one pass, keyed by
// field name (and element index below list fields).
func (z *Serializer) Validate(ctx context.Context, data map[string]any) (map[string]any, error) {
	doc := make(map[string]any, len(z.slots))
	var iss docser.Issues
	for _, sl := range z.slots {
		doc[sl.field.Name] = sl.field.Default
		if serializer.IsPlaceholder(sl.ad) {
			// accepted but ignored; reads stay hidden
			v, _ := sl.ad.ToInternal(ctx, nil)
			doc[sl.field.Name] = v
			continue
		}
		val, ok := data[sl.field.Name]
		if !ok {
			if sl.ad.Required() {
				iss = docser.AppendIssues(iss, docser.Issue{
					Path:    "/" + sl.field.Name,
					Code:    docser.CodeRequired,
					Message: i18n.T(docser.CodeRequired, nil),
					Hint:    "required property missing",
				})
			}
			continue
		}
		v, err := sl.ad.ToInternal(ctx, val)
		if err != nil {
			iss = docser.AppendIssues(iss, docser.RebaseErr("/"+sl.field.Name, err)...)
			continue
		}
		doc[sl.field.Name] = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return doc, nil
}

// Create validates data and persists the resulting document under a new id.
func (z *Serializer) Create(ctx context.Context, st *Store, data map[string]any) (string, map[string]any, error) {
	doc, err := z.Validate(ctx, data)
	if err != nil {
		return "", nil, err
	}
	id, err := st.Insert(z.schema.Name, dehydrateDoc(doc))
	if err != nil {
		return "", nil, err
	}
	return id, doc, nil
}

// Update validates data and replaces the stored document wholesale: fields
// (and embedded attributes) absent from data come back as their schema
// defaults, never as the previously stored values.
func (z *Serializer) Update(ctx context.Context, st *Store, id string, data map[string]any) (map[string]any, error) {
	if _, err := st.Get(z.schema.Name, id); err != nil {
		return nil, err
	}
	doc, err := z.Validate(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := st.Put(z.schema.Name, id, dehydrateDoc(doc)); err != nil {
		return nil, err
	}
	return doc, nil
}

// Fetch loads and rehydrates the stored document.
func (z *Serializer) Fetch(ctx context.Context, st *Store, id string) (map[string]any, error) {
	raw, err := st.Get(z.schema.Name, id)
	if err != nil {
		return nil, err
	}
	return hydrateDoc(raw, z.schema, z.reg)
}

// External renders a document for output: the id plus every non-hidden
// field's external form.
func (z *Serializer) External(ctx context.Context, id string, doc map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(z.slots)+1)
	out["id"] = id
	for _, sl := range z.slots {
		if serializer.IsPlaceholder(sl.ad) {
			continue
		}
		ev, err := sl.ad.ToExternal(ctx, doc[sl.field.Name])
		if err != nil {
			return nil, docser.RebaseErr("/"+sl.field.Name, err)
		}
		out[sl.field.Name] = ev
	}
	return out, nil
}

// Describe renders the composed field tree.
func (z *Serializer) Describe() string {
	b := &strings.Builder{}
	b.WriteString(z.schema.Name + "():")
	b.WriteString("\n    id = id(read-only)")
	for _, sl := range z.slots {
		b.WriteString("\n    " + sl.field.Name + " = " + docser.Describe(sl.ad, "    "))
	}
	return b.String()
}
