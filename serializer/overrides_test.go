package serializer_test

import (
	"context"
	"testing"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/schema"
	"github.com/embedkit/docser/serializer"
)

// markerAdapter stands in wherever a test needs to detect that its override
// reached the synthesis path.
type markerAdapter struct{}

func (markerAdapter) ToExternal(ctx context.Context, v any) (any, error)     { return "marker", nil }
func (markerAdapter) ToInternal(ctx context.Context, data any) (any, error)  { return "marker", nil }
func (markerAdapter) Required() bool                                         { return false }
func (markerAdapter) Describe(indent string) string                          { return "marker" }

func TestOverrides_EmbeddedFactory(t *testing.T) {
	called := 0
	ov := serializer.Overrides{
		Embedded: func(f schema.Field, depth int, reg *schema.Registry, ov serializer.Overrides) (docser.Adapter, error) {
			called++
			if depth != 1 {
				t.Fatalf("factory must receive the level budget, got %d", depth)
			}
			return markerAdapter{}, nil
		},
	}
	f := schema.Field{Name: "embedded", Kind: schema.KindEmbedded, Elem: dumbEmbedded()}
	ad, err := serializer.Build(f, 1, nil, ov)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := ad.(markerAdapter); !ok || called != 1 {
		t.Fatalf("custom embedded factory not used: %T (calls %d)", ad, called)
	}
}

func TestOverrides_GenericFactory(t *testing.T) {
	ov := serializer.Overrides{
		Generic: func(f schema.Field, depth int, reg *schema.Registry, ov serializer.Overrides) (docser.Adapter, error) {
			return markerAdapter{}, nil
		},
	}
	f := schema.Field{Name: "embedded", Kind: schema.KindEmbeddedGeneric}
	ad, err := serializer.Build(f, 1, nil, ov)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := ad.(markerAdapter); !ok {
		t.Fatalf("custom generic factory not used: %T", ad)
	}
}

func TestOverrides_FactoryAppliesToListElements(t *testing.T) {
	ov := serializer.Overrides{
		Embedded: func(f schema.Field, depth int, reg *schema.Registry, ov serializer.Overrides) (docser.Adapter, error) {
			if f.Kind != schema.KindEmbedded {
				t.Fatalf("factory must see the element kind, got %v", f.Kind)
			}
			if f.Required {
				t.Fatalf("element presence is per index, the field flag must not carry over")
			}
			return markerAdapter{}, nil
		},
	}
	f := schema.Field{Name: "embedded_list", Kind: schema.KindEmbeddedList, Elem: dumbEmbedded(), Required: true}
	ad, err := serializer.Build(f, 1, nil, ov)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	lf, ok := ad.(*serializer.ListField)
	if !ok {
		t.Fatalf("expected ListField, got %T", ad)
	}
	if _, ok := lf.Elem().(markerAdapter); !ok {
		t.Fatalf("element adapter not overridden: %T", lf.Elem())
	}
}

type constantConverter struct {
	target *schema.Schema
}

func (c constantConverter) External(ctx context.Context, e *schema.Embedded) (map[string]any, error) {
	return map[string]any{"fixed": true}, nil
}

func (c constantConverter) Internal(ctx context.Context, data map[string]any) (*schema.Embedded, error) {
	return schema.NewEmbedded(c.target), nil
}

func (c constantConverter) Describe(indent string) string { return "constant" }

func TestOverrides_NestedBuilder(t *testing.T) {
	ctx := context.Background()
	ov := serializer.Overrides{
		Nested: func(s *schema.Schema, depth int, reg *schema.Registry, ov serializer.Overrides) (serializer.Converter, error) {
			return constantConverter{target: s}, nil
		},
	}
	f := schema.Field{Name: "embedded", Kind: schema.KindEmbedded, Elem: dumbEmbedded()}
	ad, err := serializer.Build(f, 1, nil, ov)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ext, err := ad.ToExternal(ctx, schema.NewEmbedded(dumbEmbedded()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, ok := ext.(map[string]any)
	if !ok || m["fixed"] != true {
		t.Fatalf("substituted serializer not used: %#v", ext)
	}
}

func TestOverrides_ScalarBuilder(t *testing.T) {
	ctx := context.Background()
	ov := serializer.Overrides{
		Scalar: func(f schema.Field) (docser.Adapter, error) {
			return markerAdapter{}, nil
		},
	}
	f := schema.Field{Name: "name", Kind: schema.KindString}
	ad, err := serializer.Build(f, 1, nil, ov)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v, err := ad.ToInternal(ctx, "whatever")
	if err != nil || v != "marker" {
		t.Fatalf("custom scalar path not used: %v %v", v, err)
	}
}

func TestOverrides_ScalarBuilderReachesNestedFields(t *testing.T) {
	ctx := context.Background()
	ov := serializer.Overrides{
		Scalar: func(f schema.Field) (docser.Adapter, error) {
			return markerAdapter{}, nil
		},
	}
	f := schema.Field{Name: "embedded", Kind: schema.KindEmbedded, Elem: dumbEmbedded()}
	ad, err := serializer.Build(f, 1, nil, ov)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v, err := ad.ToInternal(ctx, map[string]any{"name": "ignored"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	e := v.(*schema.Embedded)
	if e.Get("name") != "marker" {
		t.Fatalf("scalar override must apply inside the nested serializer: %#v", e.Attrs)
	}
}
