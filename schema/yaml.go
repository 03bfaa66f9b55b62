package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDoc mirrors one document declaration in a schema file.
type yamlDoc struct {
	Name   string      `yaml:"name"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Of       string `yaml:"of"` // target document name for embedded kinds; "self" allowed
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
	MinLen   int    `yaml:"minLength"`
}

type yamlFile struct {
	Documents []yamlDoc `yaml:"documents"`
}

// LoadYAML reads document declarations from a (possibly multi-document) YAML
// stream, registers them into reg and returns them in declaration order.
// Embedded targets are resolved by name in a second pass, so self-recursive
// and mutually-recursive documents may reference each other freely, as well
// as anything already present in reg.
func LoadYAML(data []byte, reg *Registry) ([]*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []yamlDoc
	for {
		var f yamlFile
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		docs = append(docs, f.Documents...)
	}

	// first pass: allocate schemas so references resolve regardless of order
	byName := make(map[string]*Schema, len(docs))
	out := make([]*Schema, 0, len(docs))
	for _, d := range docs {
		if d.Name == "" {
			return nil, errors.New("schema: document without a name")
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate document %q", d.Name)
		}
		s := &Schema{Name: d.Name}
		byName[d.Name] = s
		out = append(out, s)
	}

	// second pass: build fields with resolved targets
	for i, d := range docs {
		s := out[i]
		for _, yf := range d.Fields {
			k, err := kindFromString(yf.Kind)
			if err != nil {
				return nil, fmt.Errorf("schema: %s.%s: %w", d.Name, yf.Name, err)
			}
			f := Field{Name: yf.Name, Kind: k, Required: yf.Required, Default: yf.Default, MinLen: yf.MinLen}
			if k == KindEmbedded || k == KindEmbeddedList {
				target := yf.Of
				if target == "self" {
					target = d.Name
				}
				elem := byName[target]
				if elem == nil {
					if elem, _ = reg.Resolve(target); elem == nil {
						return nil, fmt.Errorf("schema: %s.%s references unknown document %q", d.Name, yf.Name, yf.Of)
					}
				}
				f.Elem = elem
			}
			s.Fields = append(s.Fields, f)
		}
	}

	for _, s := range out {
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func kindFromString(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "int":
		return KindInt, nil
	case "bool":
		return KindBool, nil
	case "embedded":
		return KindEmbedded, nil
	case "embedded_generic":
		return KindEmbeddedGeneric, nil
	case "embedded_list":
		return KindEmbeddedList, nil
	case "embedded_list_generic":
		return KindEmbeddedListGeneric, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}
