package jsonschema

import (
	"fmt"

	zodresolve "github.com/maastrich/zod-resolve"
)

// FromSchema projects a zodresolve node into the minimal JSON Schema
// representation. Wrapper decorations fold into the projected inner schema:
// nullable sets Nullable, default sets Default, optional is dropped
// (optionality belongs to the enclosing object in JSON Schema).
func FromSchema(s zodresolve.Schema) (*Schema, error) {
	if s == nil {
		return nil, fmt.Errorf("jsonschema: nil schema")
	}
	switch t := s.(type) {
	case *zodresolve.Wrapper:
		inner, err := FromSchema(t.Inner)
		if err != nil {
			return nil, err
		}
		switch t.Wrap {
		case zodresolve.WrapNullable:
			inner.Nullable = true
		case zodresolve.WrapDefault:
			inner.Default = t.Value
		}
		return inner, nil
	case *zodresolve.Object:
		out := &Schema{Type: "object"}
		if len(t.Fields) > 0 {
			out.Properties = make(map[string]*Schema, len(t.Fields))
		}
		for _, f := range t.Fields {
			fs, err := FromSchema(f.Schema)
			if err != nil {
				return nil, err
			}
			out.Properties[f.Name] = fs
		}
		return out, nil
	case *zodresolve.Array:
		items, err := FromSchema(t.Elem)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case *zodresolve.Tuple:
		out := &Schema{Type: "array"}
		for _, it := range t.Items {
			is, err := FromSchema(it)
			if err != nil {
				return nil, err
			}
			out.PrefixItems = append(out.PrefixItems, is)
		}
		return out, nil
	case *zodresolve.Union:
		out := &Schema{}
		for _, b := range t.Branches {
			bs, err := FromSchema(b)
			if err != nil {
				return nil, err
			}
			out.OneOf = append(out.OneOf, bs)
		}
		return out, nil
	case *zodresolve.Primitive:
		return &Schema{Type: t.Name}, nil
	case *zodresolve.Literal:
		return &Schema{Const: t.Value}, nil
	default:
		if s.Kind() == zodresolve.KindLeaf {
			return &Schema{}, nil
		}
		return nil, fmt.Errorf("jsonschema: unsupported kind %s", s.Kind())
	}
}
