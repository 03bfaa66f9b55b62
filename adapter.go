package docser

import "context"

// Adapter converts a single document field between its stored form and its
// external key/value form. Implementations are synthesized by the serializer
// package and composed into a record serializer by the host (see docstore).
type Adapter interface {
	// ToExternal renders the stored value for output. It is not expected to
	// fail on well-formed stored values; a CodeDataIntegrity issue signals a
	// fault in the data itself.
	ToExternal(ctx context.Context, v any) (any, error)

	// ToInternal validates input data and constructs a brand-new stored value
	// from it. Validation failures are returned as Issues with paths relative
	// to this field; the caller rebases them under the field name.
	ToInternal(ctx context.Context, data any) (any, error)

	// Required reports whether the field must be present in input.
	Required() bool
}

// Describer is implemented by adapters that can render their shape for
// inspection. The indent prefix applies to nested lines.
type Describer interface {
	Describe(indent string) string
}

// Describe renders ad when it implements Describer, falling back to a fixed
// marker otherwise.
func Describe(ad Adapter, indent string) string {
	if d, ok := ad.(Describer); ok {
		return d.Describe(indent)
	}
	return "adapter"
}
