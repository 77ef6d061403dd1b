package dsl

import (
	zodresolve "github.com/maastrich/zod-resolve"
)

// Optional marks s as optional. The wrapper is transparent to traversal; the
// wrapper node itself is what gets stored at the wrapped schema's path.
func Optional(s zodresolve.Schema) zodresolve.Schema {
	return &zodresolve.Wrapper{Wrap: zodresolve.WrapOptional, Inner: s}
}

// Nullable marks s as nullable.
func Nullable(s zodresolve.Schema) zodresolve.Schema {
	return &zodresolve.Wrapper{Wrap: zodresolve.WrapNullable, Inner: s}
}

// Default attaches a default value to s.
func Default(s zodresolve.Schema, v any) zodresolve.Schema {
	return &zodresolve.Wrapper{Wrap: zodresolve.WrapDefault, Inner: s, Value: v}
}
