// Package codec bridges raw JSON bytes and the map payload shape the
// adapters consume.
package codec

import (
	"bytes"

	j "github.com/goccy/go-json"

	docser "github.com/embedkit/docser"
	"github.com/embedkit/docser/i18n"
)

// DecodeObject parses raw JSON into a payload mapping. Numbers are preserved
// as json.Number so integer attributes survive without float drift.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeParseError,
			Message: i18n.T(docser.CodeParseError, nil),
			Cause:   err,
		}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, docser.Issues{docser.Issue{
			Path:    "/",
			Code:    docser.CodeInvalidType,
			Message: i18n.T(docser.CodeInvalidType, nil),
			Hint:    "expected object",
		}}
	}
	return m, nil
}

// EncodeObject renders an external representation back to JSON bytes.
func EncodeObject(m map[string]any) ([]byte, error) {
	return j.Marshal(m)
}
