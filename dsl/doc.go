// Package dsl provides the schema-authoring builders for zod-resolve.
//
// Overview
//   - Builder API: declare object shapes with Object()/Field()/Build()/MustBuild().
//   - Primitives: String()/Number()/Bool()/Literal(v) produce leaf nodes.
//   - Composites: Array(elem), Tuple(items...), Union(branches...).
//   - Wrappers: Optional(s)/Nullable(s)/Default(s, v) decorate a schema; they
//     stay transparent to path traversal but are the value stored at their
//     own path.
//
// Entry points
//   - Object(): create an object builder; chain Field then Build()/MustBuild().
//   - Field(name, s): register a field; the step exposes Optional()/Nullable()/
//     Default(v) shorthands that wrap the field's schema in place.
//
// The builders construct immutable zodresolve node graphs; they perform no
// value parsing or validation.
//
// Example (quickstart)
//
//	s := dsl.Object().
//		Field("name", dsl.String()).
//		Field("posts", dsl.Array(dsl.Object().
//			Field("title", dsl.String()).
//			MustBuild())).
//		MustBuild()
//
//	fm, _ := zodresolve.Flatten(s)
//	// fm.Keys() == ["name", "posts", "posts[]", "posts[].title"]
package dsl
