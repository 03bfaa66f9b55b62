package serializer

import (
	"context"
	"strings"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
)

// Nested is the serializer derived for a target schema: one adapter per
// declared field, embedded sub-fields built with one less depth. Its shape is
// fixed at construction time; contrast with GenericField, which synthesizes a
// Nested per conversion call.
type Nested struct {
	target *schema.Schema
	slots  []slot
}

type slot struct {
	field schema.Field
	ad    docser.Adapter
}

var _ Converter = (*Nested)(nil)

// NewNested derives the serializer for s at the given depth budget.
func NewNested(s *schema.Schema, depth int, reg *schema.Registry, ov Overrides) (*Nested, error) {
	fields, err := schema.Introspect(s)
	if err != nil {
		return nil, err
	}
	n := &Nested{target: s, slots: make([]slot, 0, len(fields))}
	for _, f := range fields {
		var ad docser.Adapter
		if f.Kind.Embedded() {
			ad, err = Build(f, depth-1, reg, ov)
		} else {
			ad, err = buildScalar(f, ov)
		}
		if err != nil {
			return nil, err
		}
		n.slots = append(n.slots, slot{field: f, ad: ad})
	}
	return n, nil
}

func defaultNested(s *schema.Schema, depth int, reg *schema.Registry, ov Overrides) (Converter, error) {
	return NewNested(s, depth, reg, ov)
}

// Target returns the schema this serializer mirrors.
func (n *Nested) Target() *schema.Schema { return n.target }

// Adapter returns the synthesized adapter for the named field.
func (n *Nested) Adapter(name string) (docser.Adapter, bool) {
	for _, sl := range n.slots {
		if sl.field.Name == name {
			return sl.ad, true
		}
	}
	return nil, false
}

// Internal builds a fresh embedded value from data. Every attribute starts at
// its schema default, so attributes absent from data end up reset rather than
// merged from any prior value. Issues are collected across all attributes in
// one pass.
func (n *Nested) Internal(ctx context.Context, data map[string]any) (*schema.Embedded, error) {
	out := schema.NewEmbedded(n.target)
	var iss docser.Issues
	for _, sl := range n.slots {
		if IsPlaceholder(sl.ad) {
			continue // spent depth: ignored on write
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
		out.Set(sl.field.Name, v)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// External renders e as a plain mapping. Unset attributes appear with their
// defaults; depth-exhausted fields are hidden entirely.
func (n *Nested) External(ctx context.Context, e *schema.Embedded) (map[string]any, error) {
	out := make(map[string]any, len(n.slots))
	for _, sl := range n.slots {
		if IsPlaceholder(sl.ad) {
			continue
		}
		ev, err := sl.ad.ToExternal(ctx, e.Get(sl.field.Name))
		if err != nil {
			return nil, docser.RebaseErr("/"+sl.field.Name, err)
		}
		out[sl.field.Name] = ev
	}
	return out, nil
}

// Describe renders the field tree, one line per field, nested blocks
// indented.
func (n *Nested) Describe(indent string) string {
	b := &strings.Builder{}
	b.WriteString("Nested(" + n.target.Name + "):")
	inner := indent + "    "
	for _, sl := range n.slots {
		b.WriteString("\n" + inner + sl.field.Name + " = " + docser.Describe(sl.ad, inner))
	}
	return b.String()
}
