package zodresolve

// Package zodresolve resolves sub-schemas from recursively nested schema
// descriptions by path:
//
// - Flatten enumerates every reachable path of a root schema as a
//   path -> schema map (FlattenedMap)
// - Resolve looks up a single path against a fresh flatten result
// - A stable error model via Issues (path, code, message)
//
// Path syntax: dot-separated field names, "[]" for array elements, "[N]" for
// tuple indices. Suffixes concatenate directly onto the preceding path.
//
// Design policy:
// - Keep only public APIs in the root package; schema authoring lives in dsl/,
//   serialized definitions in schemadef/, and the CLI under cmd/zodresolve.
// - The schema graph is immutable and caller-owned; Flatten only reads it.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := buildSchema()
//	fm, err := zodresolve.Flatten(s)
//	sub, err := zodresolve.Resolve(s, "posts[].title")
