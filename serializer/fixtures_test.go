package serializer_test

import (
	"testing"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/schema"
	"github.com/embedkit/docser/serializer"
)

// Test schemas mirror a small document model: a dumb embeddable document, a
// second embeddable variant, a validating one, a fixed nesting chain and a
// self-embedding document.

func dumbEmbedded() *schema.Schema {
	return &schema.Schema{Name: "DumbEmbedded", Fields: []schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "foo", Kind: schema.KindInt},
	}}
}

func otherEmbedded() *schema.Schema {
	return &schema.Schema{Name: "OtherEmbedded", Fields: []schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "bar", Kind: schema.KindInt},
	}}
}

func validatingEmbedded() *schema.Schema {
	return &schema.Schema{Name: "ValidatingEmbedded", Fields: []schema.Field{
		{Name: "text", Kind: schema.KindString, MinLen: 3},
	}}
}

func nestedEmbedded(dumb *schema.Schema) *schema.Schema {
	return &schema.Schema{Name: "NestedEmbeddedDoc", Fields: []schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "embedded", Kind: schema.KindEmbedded, Elem: dumb},
	}}
}

func selfEmbedding() *schema.Schema {
	s := &schema.Schema{Name: "SelfEmbeddingDoc"}
	s.Fields = []schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "embedded", Kind: schema.KindEmbedded, Elem: s},
	}
	return s
}

func embeddedField(t *testing.T, elem *schema.Schema, depth int, required bool) docser.Adapter {
	t.Helper()
	f := schema.Field{Name: "embedded", Kind: schema.KindEmbedded, Elem: elem, Required: required}
	ad, err := serializer.Build(f, depth, nil, serializer.Overrides{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return ad
}

// realLevels walks the synthesized chain and counts fully built embedding
// levels until the placeholder (or the end of the schema chain).
func realLevels(t *testing.T, ad docser.Adapter) int {
	t.Helper()
	ef, ok := ad.(*serializer.EmbeddedField)
	if !ok {
		if serializer.IsPlaceholder(ad) {
			return 0
		}
		t.Fatalf("unexpected adapter %T in chain", ad)
	}
	n, ok := ef.Nested().(*serializer.Nested)
	if !ok {
		t.Fatalf("unexpected converter %T", ef.Nested())
	}
	inner, ok := n.Adapter("embedded")
	if !ok {
		return 1
	}
	return 1 + realLevels(t, inner)
}

func issueAt(t *testing.T, err error, path, code string) docser.Issue {
	t.Helper()
	iss, ok := docser.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got: %v", err)
	}
	for _, it := range iss {
		if it.Path == path && it.Code == code {
			return it
		}
	}
	t.Fatalf("no %s at %s in: %v", code, path, iss)
	return docser.Issue{}
}
