package zodresolve

// mergeFlattened combines per-branch flattened maps computed at the same
// prefix into one. The output key set is the union of all branch key sets in
// first-occurrence order scanning branches left to right. A key present in a
// single branch keeps that branch's schema unchanged; a key present in two
// or more branches folds into a synthetic Union whose branches follow
// original branch declaration order.
//
// mergeFlattened is associative: merge([A,B,C]) == merge([merge([A,B]), C]).
func mergeFlattened(maps []*FlattenedMap) *FlattenedMap {
	out := newFlattenedMap()
	for _, m := range maps {
		mergeInto(out, m)
	}
	return out
}

// mergeInto folds every entry of src into dst.
func mergeInto(dst, src *FlattenedMap) {
	for _, k := range src.keys {
		v := src.nodes[k]
		prev, ok := dst.nodes[k]
		if !ok {
			dst.set(k, v)
			continue
		}
		dst.set(k, foldUnion(prev, v))
	}
}

// foldUnion combines two schemas stored at the same path into a single
// synthetic union. Constituent unions are spliced flat so a merge result
// never contains a union of unions.
func foldUnion(a, b Schema) Schema {
	branches := make([]Schema, 0, 2)
	branches = spliceBranches(branches, a)
	branches = spliceBranches(branches, b)
	return &Union{Branches: branches}
}

func spliceBranches(dst []Schema, s Schema) []Schema {
	if u, ok := s.(*Union); ok {
		return append(dst, u.Branches...)
	}
	return append(dst, s)
}
