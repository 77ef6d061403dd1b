package zodresolve

// Kind identifies a schema node variant.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindTuple
	KindUnion
	KindWrapper
	KindLeaf
)

// String returns the lowercase name of the kind ("object", "array", ...).
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindWrapper:
		return "wrapper"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Schema is a node in the recursively nested schema description tree.
// The graph is immutable and owned by the authoring side; traversals only
// read it. Implementations outside this package may provide additional leaf
// schemas by reporting KindLeaf; all other kinds are closed to the concrete
// types below.
type Schema interface {
	Kind() Kind
}

// Field maps an object field name to its schema. Field order is declaration
// order and is significant for path enumeration.
type Field struct {
	Name   string
	Schema Schema
}

// Object is a fixed set of named fields in declaration order.
type Object struct {
	Fields []Field
}

func (o *Object) Kind() Kind { return KindObject }

// Array is a homogeneous sequence with a single element schema.
type Array struct {
	Elem Schema
}

func (a *Array) Kind() Kind { return KindArray }

// Tuple is a fixed-length heterogeneous sequence.
type Tuple struct {
	Items []Schema
}

func (t *Tuple) Kind() Kind { return KindTuple }

// Union is an ordered set of alternative branches.
type Union struct {
	Branches []Schema
}

func (u *Union) Kind() Kind { return KindUnion }

// WrapKind identifies a wrapper decoration.
type WrapKind int

const (
	WrapOptional WrapKind = iota
	WrapNullable
	WrapDefault
)

// String returns the lowercase name of the wrap kind.
func (w WrapKind) String() string {
	switch w {
	case WrapOptional:
		return "optional"
	case WrapNullable:
		return "nullable"
	case WrapDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Wrapper decorates a single inner schema (optional/nullable/default).
// Wrappers are transparent for traversal decisions but not for the value
// stored at their own assigned path.
type Wrapper struct {
	Wrap  WrapKind
	Inner Schema
	// Value is the materialized default for WrapDefault wrappers and nil
	// otherwise.
	Value any
}

func (w *Wrapper) Kind() Kind { return KindWrapper }

// Primitive represents string/number/bool leaves. Validation and parsing of
// leaf values live with the authoring side, not here.
type Primitive struct {
	Name string // "string" | "number" | "bool" (JSON compatible names)
}

func (p *Primitive) Kind() Kind { return KindLeaf }

// Literal is a leaf constrained to a single constant value.
type Literal struct {
	Value any
}

func (l *Literal) Kind() Kind { return KindLeaf }
