package serializer

import (
	"context"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/schema"
)

// Converter is the nested-serializer contract an embedded adapter delegates
// to. Nested implements it; hosts may substitute their own via
// Overrides.Nested.
type Converter interface {
	// External renders the embedded value as a plain mapping containing every
	// non-hidden attribute (unset ones as their defaults).
	External(ctx context.Context, e *schema.Embedded) (map[string]any, error)
	// Internal builds a brand-new embedded value from the payload, collecting
	// issues keyed by attribute name.
	Internal(ctx context.Context, data map[string]any) (*schema.Embedded, error)
	// Describe renders the serializer's field tree.
	Describe(indent string) string
}

// AdapterFactory builds the adapter for a single embedded field. The depth
// is the budget at the field's own level.
type AdapterFactory func(f schema.Field, depth int, reg *schema.Registry, ov Overrides) (docser.Adapter, error)

// NestedBuilder builds the nested serializer for a target schema.
type NestedBuilder func(s *schema.Schema, depth int, reg *schema.Registry, ov Overrides) (Converter, error)

// ScalarBuilder builds an adapter for a non-embedded field. The host
// framework can substitute its own standard-field path here.
type ScalarBuilder func(f schema.Field) (docser.Adapter, error)

// Overrides lets a caller substitute pieces of the default synthesis without
// subclassing the engine. Zero value means all defaults.
type Overrides struct {
	Embedded AdapterFactory            // replaces the fixed single-embedded adapter
	Generic  AdapterFactory            // replaces the generic single-embedded adapter
	Nested   NestedBuilder             // replaces the nested serializer itself
	Scalar   ScalarBuilder             // replaces the standard-field fallback
	PerField map[string]docser.Adapter // explicit adapter instances by field name
}
