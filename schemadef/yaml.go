package schemadef

import (
	"bytes"
	"errors"
	"io"

	zodresolve "github.com/maastrich/zod-resolve"
	"gopkg.in/yaml.v3"
)

// ImportYAML decodes the first document of a YAML definition and imports it.
func ImportYAML(data []byte) (zodresolve.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		return Import(m)
	}
	return nil, errors.New("schemadef: no schema definition found in YAML input")
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
