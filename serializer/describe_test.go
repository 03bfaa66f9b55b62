package serializer_test

import (
	"strings"
	"testing"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/schema"
	"github.com/embedkit/docser/serializer"
)

func TestDescribe_FlatEmbedded(t *testing.T) {
	ad := embeddedField(t, dumbEmbedded(), 1, false)
	want := strings.Join([]string{
		"Nested(DumbEmbedded):",
		"    name = string",
		"    foo = int",
	}, "\n")
	if got := docser.Describe(ad, ""); got != want {
		t.Fatalf("unexpected description:\n%s\nwant:\n%s", got, want)
	}
}

func TestDescribe_RecursiveChainEndsInPlaceholder(t *testing.T) {
	ad := embeddedField(t, selfEmbedding(), 2, false)
	want := strings.Join([]string{
		"Nested(SelfEmbeddingDoc):",
		"    name = string",
		"    embedded = Nested(SelfEmbeddingDoc):",
		"        name = string",
		"        embedded = placeholder",
	}, "\n")
	if got := docser.Describe(ad, ""); got != want {
		t.Fatalf("unexpected description:\n%s\nwant:\n%s", got, want)
	}
}

func TestDescribe_RequiredAndConstraints(t *testing.T) {
	s := &schema.Schema{Name: "Doc", Fields: []schema.Field{
		{Name: "text", Kind: schema.KindString, Required: true, MinLen: 3},
		{Name: "flag", Kind: schema.KindBool},
	}}
	ad := embeddedField(t, s, 1, true)
	want := strings.Join([]string{
		"required Nested(Doc):",
		"    text = required string(minLength=3)",
		"    flag = bool",
	}, "\n")
	if got := docser.Describe(ad, ""); got != want {
		t.Fatalf("unexpected description:\n%s\nwant:\n%s", got, want)
	}
}

func TestDescribe_ListAndGeneric(t *testing.T) {
	reg := schema.NewRegistry()
	reg.MustRegister(dumbEmbedded())

	f := schema.Field{Name: "embedded_list", Kind: schema.KindEmbeddedList, Elem: dumbEmbedded()}
	ad, err := serializer.Build(f, 1, nil, serializer.Overrides{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got := docser.Describe(ad, ""); !strings.HasPrefix(got, "many Nested(DumbEmbedded):") {
		t.Fatalf("unexpected list description: %s", got)
	}

	g := schema.Field{Name: "embedded", Kind: schema.KindEmbeddedGeneric}
	gad, err := serializer.Build(g, 1, reg, serializer.Overrides{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got := docser.Describe(gad, ""); got != "Generic(by "+schema.TagKey+")" {
		t.Fatalf("unexpected generic description: %s", got)
	}
}

func TestDescribe_DepthZero(t *testing.T) {
	ad := embeddedField(t, dumbEmbedded(), 0, false)
	if got := docser.Describe(ad, ""); got != "placeholder" {
		t.Fatalf("unexpected description: %s", got)
	}
}
