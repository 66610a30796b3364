package properties

import "strings"

// Value is a node of a Tree: either a Leaf or a nested Tree.
type Value interface {
	isValue()
}

// Leaf is a terminal value, stored exactly as it appeared after the '=' (trimmed).
type Leaf string

// Tree maps key segments to leaves or nested trees.
type Tree map[string]Value

func (Leaf) isValue() {}
func (Tree) isValue() {}

// insert expands a dotted key one segment at a time. Later inserts win: a
// plain key replaces whatever sits in its slot, and a dotted key replaces a
// leaf on its way down with a fresh subtree.
func (t Tree) insert(key, value string) {
	head, rest, dotted := strings.Cut(key, ".")
	if !dotted {
		t[key] = Leaf(value)
		return
	}

	sub, ok := t[head].(Tree)
	if !ok {
		sub = Tree{}
		t[head] = sub
	}
	sub.insert(rest, value)
}

// Lookup returns the value stored under a dotted path. Segments are split on
// every '.', the same way keys are expanded on load.
func (t Tree) Lookup(path string) (Value, bool) {
	head, rest, dotted := strings.Cut(path, ".")
	v, ok := t[head]
	if !ok {
		return nil, false
	}
	if !dotted {
		return v, true
	}

	sub, ok := v.(Tree)
	if !ok {
		return nil, false
	}
	return sub.Lookup(rest)
}

// String returns the leaf stored under path. It reports false when the path
// is missing or names a subtree.
func (t Tree) String(path string) (string, bool) {
	v, ok := t.Lookup(path)
	if !ok {
		return "", false
	}
	leaf, ok := v.(Leaf)
	if !ok {
		return "", false
	}
	return string(leaf), true
}

// Equal reports whether both trees hold the same keys, leaves and subtrees.
func (t Tree) Equal(other Tree) bool {
	if len(t) != len(other) {
		return false
	}
	for key, v := range t {
		ov, ok := other[key]
		if !ok {
			return false
		}
		switch v := v.(type) {
		case Leaf:
			if ol, ok := ov.(Leaf); !ok || ol != v {
				return false
			}
		case Tree:
			if ot, ok := ov.(Tree); !ok || !v.Equal(ot) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
