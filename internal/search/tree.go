package search

// Tree records every move considered during a search, keyed by token and
// nested by ply. Branches that were visited but not chosen are present;
// pruned branches are absent.
type Tree map[Token]Tree

// Size returns the number of moves recorded in the tree at every level.
func (t Tree) Size() int {
	n := 0
	for _, child := range t {
		n += 1 + child.Size()
	}
	return n
}

// Depth returns the length of the longest path in the tree.
func (t Tree) Depth() int {
	deepest := 0
	for _, child := range t {
		if d := 1 + child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Contains reports whether other is a subset of t: every token of other is
// present in t at the same position, recursively.
func (t Tree) Contains(other Tree) bool {
	for tok, sub := range other {
		mine, ok := t[tok]
		if !ok {
			return false
		}
		if !mine.Contains(sub) {
			return false
		}
	}
	return true
}

// merge adds every path of other to t. Subtrees of other may end up shared
// with t.
func (t Tree) merge(other Tree) {
	for tok, sub := range other {
		if mine, ok := t[tok]; ok {
			mine.merge(sub)
			continue
		}
		t[tok] = sub
	}
}
