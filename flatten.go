package zodresolve

import (
	"strconv"

	"github.com/maastrich/zod-resolve/i18n"
)

// FlattenedMap maps each reachable path to the schema stored there. Paths
// keep first-occurrence order: object fields appear in declaration order and
// union-merged keys in left-to-right branch scan order.
type FlattenedMap struct {
	keys  []string
	nodes map[string]Schema
}

func newFlattenedMap() *FlattenedMap {
	return &FlattenedMap{nodes: make(map[string]Schema)}
}

// Len returns the number of paths.
func (m *FlattenedMap) Len() int { return len(m.keys) }

// Keys returns all paths in order. The returned slice is a copy.
func (m *FlattenedMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the schema stored at path.
func (m *FlattenedMap) Get(path string) (Schema, bool) {
	s, ok := m.nodes[path]
	return s, ok
}

// set stores path -> s. An existing path keeps its position and only the
// value is replaced (union folding relies on this).
func (m *FlattenedMap) set(path string, s Schema) {
	if _, ok := m.nodes[path]; !ok {
		m.keys = append(m.keys, path)
	}
	m.nodes[path] = s
}

// Flatten computes the complete path->schema mapping for root. The root
// itself gets no entry; only its children do. Path syntax: object field
// access is ".name" (bare name at the top level), array-element suffix is
// "[]", tuple-index suffix is "[N]", and suffixes concatenate directly onto
// the preceding path.
//
// Flatten is a pure function of the schema graph: it allocates a fresh map
// per call and is safe to invoke concurrently against the same graph. It
// fails with cyclic_schema when a node is reachable from itself and with
// unsupported_kind when a node reports a kind outside the recognized set.
func Flatten(root Schema) (*FlattenedMap, error) {
	out := newFlattenedMap()
	if err := flattenInto(out, root, "", make(map[Schema]struct{})); err != nil {
		return nil, err
	}
	return out, nil
}

// flattenInto merges the entries of n (at path prefix) into dst. active
// tracks composite node identities along the current traversal path; entries
// are released on unwind so shared (DAG) subtrees traverse fine while true
// cycles fail.
func flattenInto(dst *FlattenedMap, n Schema, prefix string, active map[Schema]struct{}) error {
	if n == nil {
		return Issues{Issue{Path: prefix, Code: CodeUnsupportedKind, Message: i18n.T(CodeUnsupportedKind, nil), Hint: "nil schema"}}
	}
	u := Unwrap(n)
	if u == nil {
		return Issues{Issue{Path: prefix, Code: CodeCyclicSchema, Message: i18n.T(CodeCyclicSchema, nil), Hint: "wrapper chain loops back on itself"}}
	}
	if _, ok := active[u]; ok {
		return Issues{Issue{Path: prefix, Code: CodeCyclicSchema, Message: i18n.T(CodeCyclicSchema, nil)}}
	}

	switch s := u.(type) {
	case *Object:
		active[u] = struct{}{}
		for _, f := range s.Fields {
			child := fieldPath(prefix, f.Name)
			dst.set(child, f.Schema)
			if err := flattenInto(dst, f.Schema, child, active); err != nil {
				return err
			}
		}
		delete(active, u)
		return nil
	case *Array:
		active[u] = struct{}{}
		child := prefix + "[]"
		dst.set(child, s.Elem)
		if err := flattenInto(dst, s.Elem, child, active); err != nil {
			return err
		}
		delete(active, u)
		return nil
	case *Tuple:
		active[u] = struct{}{}
		for i, item := range s.Items {
			child := prefix + "[" + strconv.Itoa(i) + "]"
			dst.set(child, item)
			if err := flattenInto(dst, item, child, active); err != nil {
				return err
			}
		}
		delete(active, u)
		return nil
	case *Union:
		// The union adds no entry for itself; its entries come entirely from
		// its branches' merged results.
		active[u] = struct{}{}
		branches := make([]*FlattenedMap, 0, len(s.Branches))
		for _, b := range s.Branches {
			bm := newFlattenedMap()
			if err := flattenInto(bm, b, prefix, active); err != nil {
				return err
			}
			branches = append(branches, bm)
		}
		delete(active, u)
		merged := mergeFlattened(branches)
		for _, k := range merged.keys {
			dst.set(k, merged.nodes[k])
		}
		return nil
	default:
		if u.Kind() == KindLeaf {
			return nil
		}
		return Issues{Issue{Path: prefix, Code: CodeUnsupportedKind, Message: i18n.T(CodeUnsupportedKind, nil), Hint: "kind: " + u.Kind().String()}}
	}
}

// fieldPath joins an object field name onto the accumulated prefix.
func fieldPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
