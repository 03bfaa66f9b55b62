package docstore

import (
	"encoding/json"
	"strconv"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
	"github.com/embedkit/docser/schema"
)

// dehydrate converts an internal value into its storable form: embedded
// values become plain maps annotated with their "_cls" tag (the way
// document databases persist polymorphic subdocuments), sequences recurse.
func dehydrate(v any) any {
	switch t := v.(type) {
	case *schema.Embedded:
		out := make(map[string]any, len(t.Attrs)+1)
		for k, av := range t.Attrs {
			out[k] = dehydrate(av)
		}
		out[schema.TagKey] = t.Schema.Tag()
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, el := range t {
			out = append(out, dehydrate(el))
		}
		return out
	}
	return v
}

// dehydrateDoc converts a validated top-level document.
func dehydrateDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = dehydrate(v)
	}
	return out
}

// hydrateDoc rebuilds a stored document against its schema: embedded maps
// become *schema.Embedded via the registry and scalars are coerced back to
// their declared kinds. A stored tag that no longer resolves is a
// data-integrity fault for that field only.
func hydrateDoc(raw map[string]any, s *schema.Schema, reg *schema.Registry) (map[string]any, error) {
	doc := make(map[string]any, len(s.Fields))
	var iss docser.Issues
	for _, f := range s.Fields {
		rv, ok := raw[f.Name]
		if !ok {
			doc[f.Name] = f.Default
			continue
		}
		v, err := hydrateField(rv, f, reg)
		if err != nil {
			iss = docser.AppendIssues(iss, docser.RebaseErr("/"+f.Name, err)...)
			continue
		}
		doc[f.Name] = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return doc, nil
}

func hydrateField(rv any, f schema.Field, reg *schema.Registry) (any, error) {
	if rv == nil {
		return nil, nil
	}
	switch f.Kind {
	case schema.KindEmbedded, schema.KindEmbeddedGeneric:
		m, ok := rv.(map[string]any)
		if !ok {
			return nil, integrityIssue("stored value is not an object")
		}
		return hydrateEmbedded(m, reg)
	case schema.KindEmbeddedList, schema.KindEmbeddedListGeneric:
		arr, ok := rv.([]any)
		if !ok {
			return nil, integrityIssue("stored value is not a sequence")
		}
		out := make([]any, 0, len(arr))
		for i, el := range arr {
			m, ok := el.(map[string]any)
			if !ok {
				return nil, docser.Rebase("/"+strconv.Itoa(i), integrityIssue("stored element is not an object"))
			}
			e, err := hydrateEmbedded(m, reg)
			if err != nil {
				return nil, docser.RebaseErr("/"+strconv.Itoa(i), err)
			}
			out = append(out, e)
		}
		return out, nil
	}
	return coerceScalar(rv, f.Kind), nil
}

func hydrateEmbedded(m map[string]any, reg *schema.Registry) (*schema.Embedded, error) {
	tag, _ := m[schema.TagKey].(string)
	if tag == "" {
		return nil, integrityIssue("stored embedded document without a tag")
	}
	sch, err := reg.Resolve(tag)
	if err != nil {
		// unresolvable stored tags are data faults, not input validation
		return nil, integrityIssue("document `" + tag + "` has not been defined")
	}
	e := schema.NewEmbedded(sch)
	for _, f := range sch.Fields {
		rv, ok := m[f.Name]
		if !ok {
			continue
		}
		v, err := hydrateField(rv, f, reg)
		if err != nil {
			return nil, docser.RebaseErr("/"+f.Name, err)
		}
		e.Set(f.Name, v)
	}
	return e, nil
}

// coerceScalar undoes serialization widening: stored numbers come back as
// json.Number under the store's read config and must return to their
// declared kind.
func coerceScalar(rv any, k schema.Kind) any {
	if k != schema.KindInt {
		return rv
	}
	switch n := rv.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i
		}
	case float64:
		return int64(n)
	}
	return rv
}

func integrityIssue(hint string) docser.Issues {
	return docser.Issues{docser.Issue{
		Path:    "/",
		Code:    docser.CodeDataIntegrity,
		Message: i18n.T(docser.CodeDataIntegrity, nil),
		Hint:    hint,
	}}
}
