package serializer

import (
	"context"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
)

// EmbeddedField adapts one fixed-type single-embedded attribute. Its nested
// serializer is synthesized once, at construction time.
type EmbeddedField struct {
	field  schema.Field
	nested Converter
}

// NewEmbedded is the default AdapterFactory for fixed-type single-embedded
// fields. The nested serializer consumes the depth budget from this level
// down.
func NewEmbedded(f schema.Field, depth int, reg *schema.Registry, ov Overrides) (docser.Adapter, error) {
	nb := ov.Nested
	if nb == nil {
		nb = defaultNested
	}
	conv, err := nb(f.Elem, depth, reg, ov)
	if err != nil {
		return nil, err
	}
	return &EmbeddedField{field: f, nested: conv}, nil
}

// Nested exposes the synthesized nested serializer.
func (a *EmbeddedField) Nested() Converter { return a.nested }

func (a *EmbeddedField) Required() bool { return a.field.Required }

func (a *EmbeddedField) ToExternal(ctx context.Context, v any) (any, error) {
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
	return a.nested.External(ctx, e)
}

func (a *EmbeddedField) ToInternal(ctx context.Context, data any) (any, error) {
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
	return a.nested.Internal(ctx, m)
}

func (a *EmbeddedField) Describe(indent string) string {
	s := a.nested.Describe(indent)
	if a.field.Required {
		return "required " + s
	}
	return s
}
