// Package schema describes document types: their fields, how fields embed
// other documents, and the process-wide registry that resolves discriminator
// tags to concrete schemas.
package schema

// TagKey is the reserved output key carrying the discriminator tag of a
// polymorphic embedded value. Schemas must not declare an attribute with this
// name; Registry.Register rejects ones that do.
const TagKey = "_cls"

// Kind classifies a schema field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindEmbedded            // single embedded document, fixed type
	KindEmbeddedGeneric     // single embedded document, any registered type
	KindEmbeddedList        // ordered list of embedded documents, fixed type
	KindEmbeddedListGeneric // ordered list, any registered type
)

// Embedded reports whether the kind embeds another document.
func (k Kind) Embedded() bool { return k >= KindEmbedded && k <= KindEmbeddedListGeneric }

// Generic reports whether the concrete schema is resolved per value at
// conversion time rather than fixed at declaration time.
func (k Kind) Generic() bool { return k == KindEmbeddedGeneric || k == KindEmbeddedListGeneric }

// List reports whether the field holds an ordered sequence.
func (k Kind) List() bool { return k == KindEmbeddedList || k == KindEmbeddedListGeneric }

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindEmbedded:
		return "embedded"
	case KindEmbeddedGeneric:
		return "embedded_generic"
	case KindEmbeddedList:
		return "embedded_list"
	case KindEmbeddedListGeneric:
		return "embedded_list_generic"
	}
	return "unknown"
}

// Field is one declared schema field.
type Field struct {
	Name     string
	Kind     Kind
	Elem     *Schema // target schema for KindEmbedded / KindEmbeddedList; nil for generic kinds
	Required bool
	Default  any
	MinLen   int // strings only; 0 disables
}

// Schema describes a document type. Immutable after registration.
type Schema struct {
	Name   string
	Fields []Field
}

// Tag returns the discriminator identity of the schema.
func (s *Schema) Tag() string { return s.Name }

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Embedded is a runtime instance of an embedded schema. Attrs always carries
// every declared attribute; unset ones hold the field default.
type Embedded struct {
	Schema *Schema
	Attrs  map[string]any
}

// NewEmbedded constructs an instance with every attribute at its default.
// Update flows rely on this: a new value built from a partial payload starts
// here, so omitted attributes never retain a prior value.
func NewEmbedded(s *Schema) *Embedded {
	e := &Embedded{Schema: s, Attrs: make(map[string]any, len(s.Fields))}
	for _, f := range s.Fields {
		e.Attrs[f.Name] = f.Default
	}
	return e
}

// Get returns the value of the named attribute.
func (e *Embedded) Get(name string) any { return e.Attrs[name] }

// Set assigns the named attribute.
func (e *Embedded) Set(name string, v any) { e.Attrs[name] = v }
