package zodresolve_test

import (
	"reflect"
	"testing"

	zodresolve "github.com/maastrich/zod-resolve"
	g "github.com/maastrich/zod-resolve/dsl"
)

func mustFlatten(t *testing.T, s zodresolve.Schema) *zodresolve.FlattenedMap {
	t.Helper()
	fm, err := zodresolve.Flatten(s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return fm
}

func TestFlatten_ObjectFieldsInDeclarationOrder(t *testing.T) {
	s := g.Object().
		Field("b", g.String()).
		Field("a", g.Number()).
		Field("c", g.Bool()).
		MustBuild()

	fm := mustFlatten(t, s)
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(fm.Keys(), want) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
}

func TestFlatten_NestedObjectPaths(t *testing.T) {
	s := g.Object().
		Field("name", g.String()).
		Field("posts", g.Array(g.Object().
			Field("title", g.String()).
			MustBuild())).
		MustBuild()

	fm := mustFlatten(t, s)
	want := []string{"name", "posts", "posts[]", "posts[].title"}
	if !reflect.DeepEqual(fm.Keys(), want) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
	title, ok := fm.Get("posts[].title")
	if !ok {
		t.Fatalf("posts[].title missing")
	}
	if p, ok := title.(*zodresolve.Primitive); !ok || p.Name != "string" {
		t.Fatalf("unexpected schema at posts[].title: %#v", title)
	}
}

func TestFlatten_NestedArraysComposeSuffixes(t *testing.T) {
	inner := g.Number()
	s := g.Array(g.Array(g.Array(inner)))

	fm := mustFlatten(t, s)
	want := []string{"[]", "[][]", "[][][]"}
	if !reflect.DeepEqual(fm.Keys(), want) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
	got, _ := fm.Get("[][][]")
	if got != inner {
		t.Fatalf("deepest element is not the authored node: %#v", got)
	}
}

func TestFlatten_TupleIndices(t *testing.T) {
	first := g.Number()
	second := g.Number()
	s := g.Tuple(first, second)

	fm := mustFlatten(t, s)
	want := []string{"[0]", "[1]"}
	if !reflect.DeepEqual(fm.Keys(), want) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
	if v, _ := fm.Get("[0]"); v != first {
		t.Fatalf("unexpected schema at [0]: %#v", v)
	}
	if v, _ := fm.Get("[1]"); v != second {
		t.Fatalf("unexpected schema at [1]: %#v", v)
	}
}

func TestFlatten_EmptyObjectAndTuple(t *testing.T) {
	if fm := mustFlatten(t, g.Object().MustBuild()); fm.Len() != 0 {
		t.Fatalf("empty object contributed entries: %v", fm.Keys())
	}
	if fm := mustFlatten(t, g.Tuple()); fm.Len() != 0 {
		t.Fatalf("empty tuple contributed entries: %v", fm.Keys())
	}

	// A reachable empty composite still gets its own entry from the parent rule.
	s := g.Object().Field("empty", g.Object().MustBuild()).MustBuild()
	fm := mustFlatten(t, s)
	if !reflect.DeepEqual(fm.Keys(), []string{"empty"}) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
}

func TestFlatten_LeafRootContributesNothing(t *testing.T) {
	if fm := mustFlatten(t, g.String()); fm.Len() != 0 {
		t.Fatalf("leaf root contributed entries: %v", fm.Keys())
	}
}

func TestFlatten_WrapperTransparency(t *testing.T) {
	plain := g.Object().Field("a", g.String()).MustBuild()
	wrapped := g.Optional(g.Nullable(plain))

	pm := mustFlatten(t, plain)
	wm := mustFlatten(t, wrapped)
	if !reflect.DeepEqual(pm.Keys(), wm.Keys()) {
		t.Fatalf("wrapper changed sub-paths: %v vs %v", pm.Keys(), wm.Keys())
	}
}

func TestFlatten_WrappedFieldStoresWrapperNode(t *testing.T) {
	inner := g.Object().Field("a", g.String()).MustBuild()
	wrapped := g.Optional(inner)
	s := g.Object().Field("o", wrapped).MustBuild()

	fm := mustFlatten(t, s)
	if !reflect.DeepEqual(fm.Keys(), []string{"o", "o.a"}) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
	// The value stored at the wrapper's own path is the wrapped node, not
	// the unwrapped inner one; traversal still went through the inner.
	if v, _ := fm.Get("o"); v != wrapped {
		t.Fatalf("expected the wrapper node at o, got %#v", v)
	}
}

func TestFlatten_UnionMergesBranchMaps(t *testing.T) {
	doors := g.Number()
	gears := g.Number()
	car := g.Object().
		Field("type", g.Literal("car")).
		Field("doors", doors).
		MustBuild()
	bike := g.Object().
		Field("type", g.Literal("bike")).
		Field("gears", gears).
		MustBuild()
	s := g.Union(car, bike)

	fm := mustFlatten(t, s)
	want := []string{"type", "doors", "gears"}
	if !reflect.DeepEqual(fm.Keys(), want) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}

	// Shared key folds into a synthetic union in branch order.
	tv, _ := fm.Get("type")
	u, ok := tv.(*zodresolve.Union)
	if !ok || len(u.Branches) != 2 {
		t.Fatalf("expected a two-branch union at type, got %#v", tv)
	}
	if l, ok := u.Branches[0].(*zodresolve.Literal); !ok || l.Value != "car" {
		t.Fatalf("unexpected first branch: %#v", u.Branches[0])
	}
	if l, ok := u.Branches[1].(*zodresolve.Literal); !ok || l.Value != "bike" {
		t.Fatalf("unexpected second branch: %#v", u.Branches[1])
	}

	// Keys unique to one branch keep the branch schema without union wrapping.
	if v, _ := fm.Get("doors"); v != doors {
		t.Fatalf("doors was wrapped: %#v", v)
	}
	if v, _ := fm.Get("gears"); v != gears {
		t.Fatalf("gears was wrapped: %#v", v)
	}
}

func TestFlatten_NestedUnionsStayFlat(t *testing.T) {
	mk := func(v string) zodresolve.Schema {
		return g.Object().Field("x", g.Literal(v)).MustBuild()
	}
	s := g.Union(g.Union(mk("a"), mk("b")), mk("c"))

	fm := mustFlatten(t, s)
	xv, ok := fm.Get("x")
	if !ok {
		t.Fatalf("x missing: %v", fm.Keys())
	}
	u, ok := xv.(*zodresolve.Union)
	if !ok || len(u.Branches) != 3 {
		t.Fatalf("expected three flat branches at x, got %#v", xv)
	}
	for i, want := range []string{"a", "b", "c"} {
		l, ok := u.Branches[i].(*zodresolve.Literal)
		if !ok || l.Value != want {
			t.Fatalf("branch %d: expected literal %q, got %#v", i, want, u.Branches[i])
		}
		if _, nested := u.Branches[i].(*zodresolve.Union); nested {
			t.Fatalf("union of unions leaked at branch %d", i)
		}
	}
}

func TestFlatten_FreshMapPerCall(t *testing.T) {
	s := g.Object().Field("a", g.String()).MustBuild()
	fm1 := mustFlatten(t, s)
	fm2 := mustFlatten(t, s)
	if fm1 == fm2 {
		t.Fatalf("expected a fresh map per call")
	}
	if !reflect.DeepEqual(fm1.Keys(), fm2.Keys()) {
		t.Fatalf("flatten is not deterministic: %v vs %v", fm1.Keys(), fm2.Keys())
	}
}

func TestFlatten_CyclicSchema(t *testing.T) {
	o := &zodresolve.Object{}
	o.Fields = []zodresolve.Field{{Name: "self", Schema: o}}

	_, err := zodresolve.Flatten(o)
	if err == nil {
		t.Fatalf("expected cyclic_schema")
	}
	iss, ok := zodresolve.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != zodresolve.CodeCyclicSchema {
		t.Fatalf("expected cyclic_schema, got: %v", err)
	}
	if iss[0].Path != "self" {
		t.Fatalf("unexpected issue path: %q", iss[0].Path)
	}
}

func TestFlatten_CyclicWrapperChain(t *testing.T) {
	w := &zodresolve.Wrapper{Wrap: zodresolve.WrapOptional}
	w.Inner = w

	_, err := zodresolve.Flatten(w)
	iss, ok := zodresolve.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != zodresolve.CodeCyclicSchema {
		t.Fatalf("expected cyclic_schema, got: %v", err)
	}
}

func TestFlatten_SharedSubtreeIsNotACycle(t *testing.T) {
	shared := g.Object().Field("x", g.String()).MustBuild()
	s := g.Object().
		Field("a", shared).
		Field("b", shared).
		MustBuild()

	fm := mustFlatten(t, s)
	want := []string{"a", "a.x", "b", "b.x"}
	if !reflect.DeepEqual(fm.Keys(), want) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
}

// fakeKind reports a kind outside the recognized set.
type fakeKind struct{}

func (fakeKind) Kind() zodresolve.Kind { return zodresolve.Kind(99) }

func TestFlatten_UnsupportedKindFailsFast(t *testing.T) {
	s := g.Object().Field("weird", fakeKind{}).MustBuild()

	_, err := zodresolve.Flatten(s)
	iss, ok := zodresolve.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != zodresolve.CodeUnsupportedKind {
		t.Fatalf("expected unsupported_kind, got: %v", err)
	}
	if iss[0].Path != "weird" {
		t.Fatalf("unexpected issue path: %q", iss[0].Path)
	}
}

func TestFlatten_NilFieldSchema(t *testing.T) {
	s := &zodresolve.Object{Fields: []zodresolve.Field{{Name: "a", Schema: nil}}}
	_, err := zodresolve.Flatten(s)
	iss, ok := zodresolve.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != zodresolve.CodeUnsupportedKind {
		t.Fatalf("expected unsupported_kind for nil schema, got: %v", err)
	}
}

func TestFlatten_UnionBranchFailureAbortsWholeCall(t *testing.T) {
	bad := g.Object().Field("weird", fakeKind{}).MustBuild()
	good := g.Object().Field("x", g.String()).MustBuild()
	s := g.Union(good, bad)

	if _, err := zodresolve.Flatten(s); err == nil {
		t.Fatalf("expected the whole flatten call to fail")
	}
}

func TestFlatten_ExternalLeafSchema(t *testing.T) {
	// Leaf extension point: anything reporting KindLeaf traverses as a leaf.
	type customLeaf struct{ zodresolve.Schema }
	leaf := customLeaf{Schema: g.String()}
	s := g.Object().Field("custom", leaf).MustBuild()

	fm := mustFlatten(t, s)
	if !reflect.DeepEqual(fm.Keys(), []string{"custom"}) {
		t.Fatalf("unexpected keys: %v", fm.Keys())
	}
	if v, _ := fm.Get("custom"); v != zodresolve.Schema(leaf) {
		t.Fatalf("unexpected schema at custom: %#v", v)
	}
}
