package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type     string `json:"type,omitempty"`
	Const    any    `json:"const,omitempty"`
	Default  any    `json:"default,omitempty"`
	Nullable bool   `json:"nullable,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`

	// Array / tuple
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}
