package dsl

import (
	zodresolve "github.com/maastrich/zod-resolve"
)

// Array returns an array schema with the given element schema.
func Array(elem zodresolve.Schema) zodresolve.Schema {
	return &zodresolve.Array{Elem: elem}
}

// Tuple returns a fixed-length tuple schema over the given items in order.
func Tuple(items ...zodresolve.Schema) zodresolve.Schema {
	return &zodresolve.Tuple{Items: items}
}

// Union returns a union schema over the given branches in declaration order.
func Union(branches ...zodresolve.Schema) zodresolve.Schema {
	return &zodresolve.Union{Branches: branches}
}
