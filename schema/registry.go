package schema

import (
	"fmt"
	"sync"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
)

// Registry resolves discriminator tags to concrete schemas. It is meant to be
// populated once at startup (schema declaration time) and read concurrently
// afterwards; the host must finish registration before conversion calls
// observe it.
type Registry struct {
	mu    sync.RWMutex
	byTag map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: map[string]*Schema{}}
}

// Register adds a schema under its tag. Duplicate tags and schemas declaring
// the reserved TagKey attribute are programming errors and abort
// registration with a plain error.
func (r *Registry) Register(s *Schema) error {
	if _, ok := s.Field(TagKey); ok {
		return fmt.Errorf("schema: %s declares reserved attribute %q", s.Name, TagKey)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTag[s.Tag()]; ok {
		return fmt.Errorf("schema: duplicate tag %q", s.Tag())
	}
	r.byTag[s.Tag()] = s
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(s *Schema) *Schema {
	if err := r.Register(s); err != nil {
		panic(err)
	}
	return s
}

// Resolve looks up the schema registered under tag. Unknown tags yield a
// discriminator_unknown issue carrying the tag.
func (r *Registry) Resolve(tag string) (*Schema, error) {
	r.mu.RLock()
	s, ok := r.byTag[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/" + TagKey,
			Code:    docser.CodeDiscriminatorUnknown,
			Message: i18n.T(docser.CodeDiscriminatorUnknown, map[string]string{"tag": tag}),
			Hint:    "document `" + tag + "` has not been defined",
		}}
	}
	return s, nil
}

// TagOf derives the discriminator tag from a concrete embedded value. A value
// whose runtime schema is not the registered one is a data-integrity fault,
// not bad input.
func (r *Registry) TagOf(e *Embedded) (string, error) {
	if e == nil || e.Schema == nil {
		return "", docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeDataIntegrity,
			Message: i18n.T(docser.CodeDataIntegrity, nil),
			Hint:    "embedded value without a schema",
		}}
	}
	tag := e.Schema.Tag()
	r.mu.RLock()
	s, ok := r.byTag[tag]
	r.mu.RUnlock()
	if !ok || s != e.Schema {
		return "", docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeDataIntegrity,
			Message: i18n.T(docser.CodeDataIntegrity, nil),
			Hint:    "document `" + tag + "` is not registered",
		}}
	}
	return tag, nil
}
