package dsl

import (
	"fmt"

	zodresolve "github.com/maastrich/zod-resolve"
)

type objectBuilder struct {
	fields []zodresolve.Field
	seen   map[string]int // field name -> index into fields
	err    error
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder. Field declaration order is preserved
// in the built schema and therefore in flattened path order.
func Object() *objectBuilder {
	return &objectBuilder{seen: map[string]int{}}
}

// Field registers a field with its schema.
func (b *objectBuilder) Field(name string, s zodresolve.Schema) *fieldStep {
	if _, dup := b.seen[name]; dup {
		if b.err == nil {
			b.err = fmt.Errorf("dsl: duplicate field %q", name)
		}
		return &fieldStep{b: b, name: name}
	}
	b.seen[name] = len(b.fields)
	b.fields = append(b.fields, zodresolve.Field{Name: name, Schema: s})
	return &fieldStep{b: b, name: name}
}

// Field on a step registers the next field, keeping the chain flowing.
func (f *fieldStep) Field(name string, s zodresolve.Schema) *fieldStep {
	return f.b.Field(name, s)
}

// Optional wraps the current field's schema in an optional wrapper.
func (f *fieldStep) Optional() *objectBuilder { return f.wrap(zodresolve.WrapOptional, nil) }

// Nullable wraps the current field's schema in a nullable wrapper.
func (f *fieldStep) Nullable() *objectBuilder { return f.wrap(zodresolve.WrapNullable, nil) }

// Default wraps the current field's schema in a default wrapper carrying v.
func (f *fieldStep) Default(v any) *objectBuilder { return f.wrap(zodresolve.WrapDefault, v) }

func (f *fieldStep) wrap(k zodresolve.WrapKind, v any) *objectBuilder {
	if i, ok := f.b.seen[f.name]; ok {
		inner := f.b.fields[i].Schema
		f.b.fields[i].Schema = &zodresolve.Wrapper{Wrap: k, Inner: inner, Value: v}
	}
	return f.b
}

func (f *fieldStep) Build() (zodresolve.Schema, error) { return f.b.Build() }
func (f *fieldStep) MustBuild() zodresolve.Schema      { return f.b.MustBuild() }

// Build validates the builder and returns the object schema.
func (b *objectBuilder) Build() (zodresolve.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := make([]zodresolve.Field, len(b.fields))
	copy(fields, b.fields)
	return &zodresolve.Object{Fields: fields}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() zodresolve.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
