package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
)

// buildScalar is the standard-field fallback for non-embedded kinds. Hosts
// with a richer field palette substitute their own via Overrides.Scalar.
func buildScalar(f schema.Field, ov Overrides) (docser.Adapter, error) {
	if ov.Scalar != nil {
		return ov.Scalar(f)
	}
	switch f.Kind {
	case schema.KindString:
		return stringAdapter{field: f}, nil
	case schema.KindInt:
		return intAdapter{field: f}, nil
	case schema.KindBool:
		return boolAdapter{field: f}, nil
	}
	return nil, docser.Issues{docser.Issue{
		Path:    "/" + f.Name,
		Code:    docser.CodeUnsupportedKind,
		Message: i18n.T(docser.CodeUnsupportedKind, nil),
		Hint:    "kind " + f.Kind.String(),
	}}
}

type stringAdapter struct{ field schema.Field }

func (a stringAdapter) Required() bool { return a.field.Required }

func (a stringAdapter) ToExternal(ctx context.Context, v any) (any, error) { return v, nil }

func (a stringAdapter) ToInternal(ctx context.Context, data any) (any, error) {
	if data == nil {
		return nil, nil
	}
	s, ok := data.(string)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeInvalidType,
			Message: i18n.T(docser.CodeInvalidType, nil),
			Hint:    "expected string",
		}}
	}
	if a.field.MinLen > 0 && len([]rune(s)) < a.field.MinLen {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeTooShort,
			Message: i18n.T(docser.CodeTooShort, nil),
			Hint:    "shorter than " + strconv.Itoa(a.field.MinLen),
		}}
	}
	return s, nil
}

func (a stringAdapter) Describe(indent string) string {
	s := "string"
	if a.field.MinLen > 0 {
		s += "(minLength=" + strconv.Itoa(a.field.MinLen) + ")"
	}
	if a.field.Required {
		return "required " + s
	}
	return s
}

type intAdapter struct{ field schema.Field }

func (a intAdapter) Required() bool { return a.field.Required }

func (a intAdapter) ToExternal(ctx context.Context, v any) (any, error) { return v, nil }

func (a intAdapter) ToInternal(ctx context.Context, data any) (any, error) {
	if data == nil {
		return nil, nil
	}
	badType := docser.Issues{docser.Issue{
		Path:    "/",
		Code:    docser.CodeInvalidType,
		Message: i18n.T(docser.CodeInvalidType, nil),
		Hint:    "expected integer",
	}}
	switch n := data.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != float64(int64(n)) {
			return nil, badType
		}
		return int64(n), nil
	case json.Number:
		i, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return nil, badType
		}
		return i, nil
	}
	return nil, badType
}

func (a intAdapter) Describe(indent string) string {
	if a.field.Required {
		return "required int"
	}
	return "int"
}

type boolAdapter struct{ field schema.Field }

func (a boolAdapter) Required() bool { return a.field.Required }

func (a boolAdapter) ToExternal(ctx context.Context, v any) (any, error) { return v, nil }

func (a boolAdapter) ToInternal(ctx context.Context, data any) (any, error) {
	if data == nil {
		return nil, nil
	}
	b, ok := data.(bool)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeInvalidType,
			Message: i18n.T(docser.CodeInvalidType, nil),
			Hint:    fmt.Sprintf("expected bool, got %T", data),
		}}
	}
	return b, nil
}

func (a boolAdapter) Describe(indent string) string {
	if a.field.Required {
		return "required bool"
	}
	return "bool"
}
