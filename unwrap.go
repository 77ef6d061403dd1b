package zodresolve

// Unwrap strips chained wrapper layers (any mix of optional/nullable/default)
// until an object, array, tuple, union, or leaf node is reached. It decides
// which traversal rule applies next; it never changes which schema gets
// stored as a path's value.
//
// A wrapper chain that loops back on itself returns nil.
func Unwrap(n Schema) Schema {
	var seen map[*Wrapper]struct{}
	for {
		w, ok := n.(*Wrapper)
		if !ok {
			return n
		}
		if seen == nil {
			seen = make(map[*Wrapper]struct{})
		}
		if _, dup := seen[w]; dup {
			return nil
		}
		seen[w] = struct{}{}
		n = w.Inner
	}
}
