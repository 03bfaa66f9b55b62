package schema

import (
	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
)

// Introspect returns the schema's fields in declared order after checking
// that each one is well formed: fixed embedded kinds must carry a target
// schema and the kind value must be a known classification. Kinds this core
// does not cover surface as unsupported_kind so the host framework can take
// its default path.
func Introspect(s *Schema) ([]Field, error) {
	var iss docser.Issues
	for _, f := range s.Fields {
		switch f.Kind {
		case KindString, KindInt, KindBool, KindEmbeddedGeneric, KindEmbeddedListGeneric:
		case KindEmbedded, KindEmbeddedList:
			if f.Elem == nil {
				iss = docser.AppendIssues(iss, docser.Issue{
					Path:    "/" + f.Name,
					Code:    docser.CodeUnsupportedKind,
					Message: i18n.T(docser.CodeUnsupportedKind, nil),
					Hint:    "embedded field without a target schema",
				})
			}
		default:
			iss = docser.AppendIssues(iss, docser.Issue{
				Path:    "/" + f.Name,
				Code:    docser.CodeUnsupportedKind,
				Message: i18n.T(docser.CodeUnsupportedKind, nil),
				Hint:    "kind " + f.Kind.String(),
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	out := make([]Field, len(s.Fields))
	copy(out, s.Fields)
	return out, nil
}
