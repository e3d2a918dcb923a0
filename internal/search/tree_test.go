package search

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// subtree follows path from the root of t, or reports false if the path
// leaves the tree.
func subtree(t Tree, path ...Token) (Tree, bool) {
	cur := t
	for _, tok := range path {
		next, ok := cur[tok]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// lineOf builds a line from a flat list of moves.
func lineOf(moves ...Move) *Line {
	var l *Line
	for i := len(moves) - 1; i >= 0; i-- {
		l = Prepend(moves[i], l)
	}
	return l
}

func TestTree(t *testing.T) {
	tree := Tree{
		"a": {"a1": {}, "a2": {"a21": {}}},
		"b": {},
	}

	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 3, tree.Depth())
	assert.Equal(t, 0, Tree{}.Size())
	assert.Equal(t, 0, Tree{}.Depth())

	sub, ok := subtree(tree, "a", "a2")
	require.True(t, ok)
	assert.Equal(t, Tree{"a21": {}}, sub)

	_, ok = subtree(tree, "a", "zz")
	assert.False(t, ok)

	root, ok := subtree(tree)
	assert.True(t, ok)
	assert.Equal(t, tree, root)
}

func TestTree_Contains(t *testing.T) {
	full := Tree{"a": {"a1": {}, "a2": {}}, "b": {}}

	assert.True(t, full.Contains(Tree{}))
	assert.True(t, full.Contains(Tree{"a": {"a2": {}}}))
	assert.True(t, full.Contains(full))
	assert.False(t, full.Contains(Tree{"c": {}}))
	assert.False(t, full.Contains(Tree{"b": {"b1": {}}}))
}

func TestTree_Merge(t *testing.T) {
	tree := Tree{"a": {"a1": {}}, "b": {}}
	tree.merge(Tree{"a": {"a2": {"a21": {}}}, "c": {}})

	assert.Equal(t, Tree{
		"a": {"a1": {}, "a2": {"a21": {}}},
		"b": {},
		"c": {},
	}, tree)

	tree.merge(Tree{})
	assert.Equal(t, 6, tree.Size())
}

func TestLine(t *testing.T) {
	var empty *Line
	assert.Equal(t, 0, empty.Len())
	assert.NotNil(t, empty.Moves())
	assert.Empty(t, empty.Moves())

	line := lineOf(mv(0, 1), mv(2, 2), mv(1, 3))
	assert.Equal(t, 3, line.Len())
	assert.Equal(t, []Move{mv(0, 1), mv(2, 2), mv(1, 3)}, line.Moves())

	longer := Prepend(mv(4, 0), line)
	assert.Equal(t, 4, longer.Len())
	assert.Equal(t, 3, line.Len(), "Prepend must not modify its argument")

	r := Result{Line: longer}
	best, ok := r.BestMove()
	require.True(t, ok)
	assert.Equal(t, mv(4, 0), best)

	_, ok = Result{}.BestMove()
	assert.False(t, ok)
}

func TestMove(t *testing.T) {
	m := Move{From: Square{Col: 1, Row: 6}, To: Square{Col: 1, Row: 7}, Promote: 'q'}
	assert.True(t, m.IsPromotion())
	assert.Equal(t, "(1,6)->(1,7)=q", m.String())

	plain := Move{From: Square{Col: 4, Row: 1}, To: Square{Col: 4, Row: 3}}
	assert.False(t, plain.IsPromotion())
	assert.Equal(t, "(4,1)->(4,3)", plain.String())
	assert.NotEqual(t, m, Move{From: m.From, To: m.To})
}

func TestCodecRoundTrip(t *testing.T) {
	g := &treeGame{}
	moves := []Move{mv(0, 1), mv(3, 9), {To: Square{Col: 2, Row: 4}, Promote: 'q'}}

	for _, m := range moves {
		decoded, err := g.Decode(g.Encode(m))
		require.NoError(t, err)
		assert.Equal(t, m, decoded)
	}

	_, err := g.Decode("nonsense")
	assert.Error(t, err)
}
