package dsl

import (
	zodresolve "github.com/maastrich/zod-resolve"
)

// String returns the string leaf schema.
func String() zodresolve.Schema { return &zodresolve.Primitive{Name: "string"} }

// Number returns the number leaf schema.
func Number() zodresolve.Schema { return &zodresolve.Primitive{Name: "number"} }

// Bool returns the bool leaf schema.
func Bool() zodresolve.Schema { return &zodresolve.Primitive{Name: "bool"} }

// Literal returns a leaf schema constrained to the constant v.
func Literal(v any) zodresolve.Schema { return &zodresolve.Literal{Value: v} }
