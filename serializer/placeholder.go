package serializer

import (
	"context"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/schema"
)

// placeholderField is the terminal adapter substituted once the depth budget
// reaches zero. Reads yield the empty value of the field's kind regardless of
// what is stored; writes accept anything and yield the same empty value. The
// composing serializer hides placeholder fields from both directions.
type placeholderField struct{ field schema.Field }

// Placeholder returns the depth-exhausted adapter for f.
func Placeholder(f schema.Field) docser.Adapter { return placeholderField{field: f} }

// IsPlaceholder reports whether ad is the depth-exhausted terminal adapter.
func IsPlaceholder(ad docser.Adapter) bool {
	_, ok := ad.(placeholderField)
	return ok
}

func (p placeholderField) empty() any {
	if p.field.Kind.List() {
		return []any{}
	}
	return nil
}

func (p placeholderField) ToExternal(ctx context.Context, v any) (any, error) {
	return p.empty(), nil
}

func (p placeholderField) ToInternal(ctx context.Context, data any) (any, error) {
	return p.empty(), nil
}

func (p placeholderField) Required() bool { return false }

func (p placeholderField) Describe(indent string) string { return "placeholder" }
