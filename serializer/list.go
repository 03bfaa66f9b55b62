package serializer

import (
	"context"
	"strconv"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
)

// ListField adapts an ordered sequence of embedded values, delegating each
// element to a single-embedded adapter. Every element is attempted even when
// earlier ones fail, so the caller sees the complete issue set keyed by
// element index in one pass.
type ListField struct {
	field schema.Field
	elem  docser.Adapter
}

// NewList wraps the element adapter into a sequence adapter.
func NewList(f schema.Field, elem docser.Adapter) *ListField {
	return &ListField{field: f, elem: elem}
}

// Elem exposes the per-element adapter.
func (a *ListField) Elem() docser.Adapter { return a.elem }

func (a *ListField) Required() bool { return a.field.Required }

func (a *ListField) ToExternal(ctx context.Context, v any) (any, error) {
	if v == nil {
		return []any{}, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeDataIntegrity,
			Message: i18n.T(docser.CodeDataIntegrity, nil),
			Hint:    "stored value is not a sequence",
		}}
	}
	out := make([]any, 0, len(arr))
	for i, el := range arr {
		ev, err := a.elem.ToExternal(ctx, el)
		if err != nil {
			return nil, docser.RebaseErr("/"+strconv.Itoa(i), err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (a *ListField) ToInternal(ctx context.Context, data any) (any, error) {
	if data == nil {
		if a.field.Required {
			return nil, docser.Issues{docser.Issue{
				Path:    "/",
				Code:    docser.CodeRequired,
				Message: i18n.T(docser.CodeRequired, nil),
				Hint:    "required property missing",
			}}
		}
		return []any{}, nil
	}
	arr, ok := data.([]any)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeInvalidType,
			Message: i18n.T(docser.CodeInvalidType, nil),
			Hint:    "expected array",
		}}
	}
	out := make([]any, 0, len(arr))
	var iss docser.Issues
	for i, el := range arr {
		v, err := a.elem.ToInternal(ctx, el)
		if err != nil {
			iss = docser.AppendIssues(iss, docser.RebaseErr("/"+strconv.Itoa(i), err)...)
			continue
		}
		out = append(out, v)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *ListField) Describe(indent string) string {
	s := "many " + docser.Describe(a.elem, indent)
	if a.field.Required {
		return "required " + s
	}
	return s
}
