// Package schemadef imports serialized schema definitions (JSON or YAML
// documents) into zodresolve node graphs.
//
// The definition format mirrors the node kinds one to one:
//
//	{"type": "object", "fields": [{"name": "n", "schema": {...}}, ...]}
//	{"type": "array", "element": {...}}
//	{"type": "tuple", "items": [{...}, ...]}
//	{"type": "union", "branches": [{...}, ...]}
//	{"type": "optional"|"nullable", "inner": {...}}
//	{"type": "default", "inner": {...}, "value": ...}
//	{"type": "string"|"number"|"bool"}
//	{"type": "literal", "value": ...}
package schemadef

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	zodresolve "github.com/maastrich/zod-resolve"
)

// Import compiles a schema definition into a node graph. The input can be a
// decoded map[string]any or raw JSON bytes.
func Import(def any) (zodresolve.Schema, error) {
	if def == nil {
		return nil, errors.New("schemadef: nil definition")
	}
	var root map[string]any
	switch t := def.(type) {
	case []byte:
		if err := json.Unmarshal(t, &root); err != nil {
			return nil, fmt.Errorf("schemadef: invalid JSON: %w", err)
		}
	case map[string]any:
		root = t
	default:
		return nil, fmt.Errorf("schemadef: unsupported input %T", def)
	}
	return importNode(root, "")
}

// importNode builds one node from its definition map. at carries the
// definition position for error reporting (definition-side, not the
// flattened path syntax).
func importNode(doc map[string]any, at string) (zodresolve.Schema, error) {
	if doc == nil {
		return nil, defErr(at, "missing definition")
	}
	typ, _ := doc["type"].(string)
	switch typ {
	case "object":
		return importObject(doc, at)
	case "array":
		elem, ok := doc["element"].(map[string]any)
		if !ok {
			return nil, defErr(at, "array requires an element definition")
		}
		es, err := importNode(elem, at+"/element")
		if err != nil {
			return nil, err
		}
		return &zodresolve.Array{Elem: es}, nil
	case "tuple":
		items, _ := doc["items"].([]any)
		t := &zodresolve.Tuple{}
		for i, raw := range items {
			im, ok := raw.(map[string]any)
			if !ok {
				return nil, defErr(at, fmt.Sprintf("tuple item %d is not a definition", i))
			}
			is, err := importNode(im, fmt.Sprintf("%s/items/%d", at, i))
			if err != nil {
				return nil, err
			}
			t.Items = append(t.Items, is)
		}
		return t, nil
	case "union":
		branches, _ := doc["branches"].([]any)
		u := &zodresolve.Union{}
		for i, raw := range branches {
			bm, ok := raw.(map[string]any)
			if !ok {
				return nil, defErr(at, fmt.Sprintf("union branch %d is not a definition", i))
			}
			bs, err := importNode(bm, fmt.Sprintf("%s/branches/%d", at, i))
			if err != nil {
				return nil, err
			}
			u.Branches = append(u.Branches, bs)
		}
		return u, nil
	case "optional", "nullable", "default":
		inner, ok := doc["inner"].(map[string]any)
		if !ok {
			return nil, defErr(at, typ+" requires an inner definition")
		}
		is, err := importNode(inner, at+"/inner")
		if err != nil {
			return nil, err
		}
		w := &zodresolve.Wrapper{Inner: is}
		switch typ {
		case "optional":
			w.Wrap = zodresolve.WrapOptional
		case "nullable":
			w.Wrap = zodresolve.WrapNullable
		default:
			w.Wrap = zodresolve.WrapDefault
			w.Value = doc["value"]
		}
		return w, nil
	case "string", "number", "bool":
		return &zodresolve.Primitive{Name: typ}, nil
	case "literal":
		return &zodresolve.Literal{Value: doc["value"]}, nil
	case "":
		return nil, defErr(at, "missing type")
	default:
		return nil, zodresolve.Issues{zodresolve.Issue{
			Path:    at,
			Code:    zodresolve.CodeUnsupportedKind,
			Message: "unsupported schema kind",
			Hint:    "type: " + typ,
		}}
	}
}

func importObject(doc map[string]any, at string) (zodresolve.Schema, error) {
	fields, _ := doc["fields"].([]any)
	o := &zodresolve.Object{}
	seen := map[string]struct{}{}
	for i, raw := range fields {
		fm, ok := raw.(map[string]any)
		if !ok {
			return nil, defErr(at, fmt.Sprintf("field %d is not a definition", i))
		}
		name, _ := fm["name"].(string)
		if name == "" {
			return nil, defErr(at, fmt.Sprintf("field %d is missing a name", i))
		}
		if _, dup := seen[name]; dup {
			return nil, defErr(at, "duplicate field "+name)
		}
		seen[name] = struct{}{}
		sm, ok := fm["schema"].(map[string]any)
		if !ok {
			return nil, defErr(at, "field "+name+" is missing a schema")
		}
		fs, err := importNode(sm, at+"/fields/"+name)
		if err != nil {
			return nil, err
		}
		o.Fields = append(o.Fields, zodresolve.Field{Name: name, Schema: fs})
	}
	return o, nil
}

func defErr(at, msg string) error {
	if at == "" {
		at = "/"
	}
	return fmt.Errorf("schemadef: %s: %s", at, msg)
}
