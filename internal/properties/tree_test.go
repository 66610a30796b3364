package properties

import "testing"

func TestInsertCreatesSubtrees(t *testing.T) {
	t.Parallel()

	tree := Tree{}
	tree.insert("a.b.c", "v")

	a, ok := tree["a"].(Tree)
	if !ok {
		t.Fatalf("expected a to be a subtree, got %#v", tree["a"])
	}
	b, ok := a["b"].(Tree)
	if !ok {
		t.Fatalf("expected a.b to be a subtree, got %#v", a["b"])
	}
	if b["c"] != Leaf("v") {
		t.Fatalf("expected a.b.c = v, got %#v", b["c"])
	}
}

func TestInsertKeepsSiblings(t *testing.T) {
	t.Parallel()

	tree := Tree{}
	tree.insert("db.host", "localhost")
	tree.insert("db.port", "5432")
	tree.insert("db.pool.max", "10")

	want := Tree{"db": Tree{
		"host": Leaf("localhost"),
		"port": Leaf("5432"),
		"pool": Tree{"max": Leaf("10")},
	}}
	if !tree.Equal(want) {
		t.Fatalf("unexpected tree: got %#v want %#v", tree, want)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tree := Tree{}
	tree.insert("config.location.linux", "/etc/app")
	tree.insert("a.", "empty-segment")
	tree.insert("flat", "1")

	tests := []struct {
		name     string
		path     string
		wantLeaf string
		wantOK   bool
	}{
		{name: "NestedLeaf", path: "config.location.linux", wantLeaf: "/etc/app", wantOK: true},
		{name: "FlatLeaf", path: "flat", wantLeaf: "1", wantOK: true},
		{name: "EmptySegment", path: "a.", wantLeaf: "empty-segment", wantOK: true},
		{name: "Subtree", path: "config.location"},
		{name: "Missing", path: "config.location.windows"},
		{name: "ThroughLeaf", path: "flat.deeper"},
		{name: "Empty", path: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tree.String(tc.path)
			if ok != tc.wantOK || got != tc.wantLeaf {
				t.Fatalf("String(%q) = (%q, %v), want (%q, %v)", tc.path, got, ok, tc.wantLeaf, tc.wantOK)
			}
		})
	}

	if v, ok := tree.Lookup("config.location"); !ok {
		t.Fatalf("expected subtree at config.location")
	} else if _, isTree := v.(Tree); !isTree {
		t.Fatalf("expected Tree at config.location, got %#v", v)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	base := Tree{"a": Tree{"b": Leaf("1")}, "c": Leaf("2")}

	tests := []struct {
		name  string
		other Tree
		want  bool
	}{
		{name: "Same", other: Tree{"c": Leaf("2"), "a": Tree{"b": Leaf("1")}}, want: true},
		{name: "DifferentLeaf", other: Tree{"a": Tree{"b": Leaf("x")}, "c": Leaf("2")}},
		{name: "LeafVersusTree", other: Tree{"a": Leaf("1"), "c": Leaf("2")}},
		{name: "MissingKey", other: Tree{"a": Tree{"b": Leaf("1")}, "d": Leaf("2")}},
		{name: "ExtraKey", other: Tree{"a": Tree{"b": Leaf("1")}, "c": Leaf("2"), "d": Leaf("3")}},
		{name: "Nil", other: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := base.Equal(tc.other); got != tc.want {
				t.Fatalf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}
