package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSide(t *testing.T) {
	assert.Equal(t, Maximizer, Minimizer.Opposite())
	assert.Equal(t, Minimizer, Maximizer.Opposite())
	assert.Equal(t, "Minimizer", Minimizer.String())
	assert.Equal(t, "Maximizer", Maximizer.String())

	assert.True(t, Maximizer.Better(2, 1))
	assert.False(t, Maximizer.Better(1, 1))
	assert.True(t, Minimizer.Better(1, 2))
	assert.False(t, Minimizer.Better(1, 1))
}

func TestGenerateMoves(t *testing.T) {
	s, _ := newTreeSearcher()
	root := n(0, l(1), promoting(l(2)), l(3))

	var first []Move
	for m := range s.GenerateMoves(Maximizer, root, 0) {
		first = append(first, m)
	}
	want := []Move{mv(0, 1), {To: Square{Col: 1, Row: 1}, Promote: 'q'}, mv(2, 1)}
	assert.Equal(t, want, first)

	// The sequence can be consumed again and stopped early.
	var again []Move
	for m := range s.GenerateMoves(Maximizer, root, 0) {
		again = append(again, m)
		if len(again) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], again)
}

func TestGenerateMoves_NoPieces(t *testing.T) {
	s, _ := newTreeSearcher()
	count := 0
	for range s.GenerateMoves(Minimizer, l(4), 0) {
		count++
	}
	assert.Zero(t, count)
}

func TestMinimax_DepthZero(t *testing.T) {
	s, g := newTreeSearcher()
	root := n(7, l(1), l(2))

	for _, side := range []Side{Minimizer, Maximizer} {
		got := s.Minimax(side, root, 0, 0)
		assert.Equal(t, 7.0, got.Value)
		assert.Empty(t, got.Moves())
		assert.Nil(t, got.Line)
		assert.Equal(t, Tree{}, got.Tree)
	}
	assert.Zero(t, g.applied, "depth 0 must not play any move")
}

func TestMinimax_NoLegalMoves(t *testing.T) {
	s, _ := newTreeSearcher()
	root := l(-4)

	got := s.Minimax(Maximizer, root, 0, 3)
	assert.Equal(t, s.Minimax(Maximizer, root, 0, 0), got)
	assert.Equal(t, -4.0, got.Value)
	assert.Empty(t, got.Moves())
}

func TestMinimax_TwoMoves(t *testing.T) {
	s, _ := newTreeSearcher()
	root := n(0, l(5), l(10))

	tests := []struct {
		name      string
		side      Side
		wantValue float64
		wantMove  Move
	}{
		{"maximizer takes 10", Maximizer, 10, mv(1, 1)},
		{"minimizer takes 5", Minimizer, 5, mv(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Minimax(tt.side, root, 0, 1)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, []Move{tt.wantMove}, got.Moves())
			assert.Equal(t, Tree{tok(0, 1): {}, tok(1, 1): {}}, got.Tree)
		})
	}
}

func TestMinimax_SingleMove(t *testing.T) {
	s, _ := newTreeSearcher()
	root := n(0, l(-900))

	got := s.Minimax(Minimizer, root, 0, 1)
	require.Equal(t, 1, got.Line.Len())
	assert.Equal(t, mv(0, 1), got.Line.Move)
	assert.Equal(t, -900.0, got.Value)
}

func TestMinimax_FirstMoveWinsTies(t *testing.T) {
	s, _ := newTreeSearcher()
	root := n(0, l(3), l(8), l(8), l(1))

	got := s.Minimax(Maximizer, root, 0, 1)
	assert.Equal(t, 8.0, got.Value)
	assert.Equal(t, []Move{mv(1, 1)}, got.Moves())

	got = s.Minimax(Minimizer, n(0, l(2), l(2)), 0, 1)
	assert.Equal(t, []Move{mv(0, 1)}, got.Moves())
}

func TestMinimax_TwoPlies(t *testing.T) {
	s, _ := newTreeSearcher()
	// Maximizer to move; each reply is chosen by the Minimizer.
	root := n(0,
		n(0, l(3), l(12), l(8)),
		n(0, l(2), l(4), l(6)),
		n(0, l(14), l(5), l(2)),
	)

	got := s.Minimax(Maximizer, root, 0, 2)
	assert.Equal(t, 3.0, got.Value)
	assert.Equal(t, []Move{mv(0, 1), mv(0, 2)}, got.Moves())

	// Every visited move is recorded, chosen or not.
	assert.Equal(t, 12, got.Tree.Size())
	assert.Equal(t, 2, got.Tree.Depth())
	for col := 0; col < 3; col++ {
		sub, ok := subtree(got.Tree, tok(col, 1))
		require.True(t, ok)
		assert.Len(t, sub, 3)
	}
}

func TestMinimax_ShortLineWhenMovesRunOut(t *testing.T) {
	s, _ := newTreeSearcher()
	// The first move ends the game immediately with a good value for the
	// maximizer; the line stops there even though depth is 3.
	root := n(0, l(50), n(0, n(0, l(1))))

	got := s.Minimax(Maximizer, root, 0, 3)
	assert.Equal(t, 50.0, got.Value)
	assert.Equal(t, []Move{mv(0, 1)}, got.Moves())
	assert.LessOrEqual(t, got.Line.Len(), 3)
}

func TestMinimax_ThreadsFlags(t *testing.T) {
	s, _ := newTreeSearcher()
	root := n(0, n(0, n(0, l(1))))

	got := s.Minimax(Maximizer, root, 0, 3)
	// Rows in the tokens are the flags value at each ply.
	assert.Equal(t, []Move{mv(0, 1), mv(0, 2), mv(0, 3)}, got.Moves())
}

func TestMinimax_EvaluatesEachChildOnce(t *testing.T) {
	s, g := newTreeSearcher()
	root := n(0,
		n(0, l(1), l(2)),
		n(0, l(3), l(4)),
	)

	s.Minimax(Maximizer, root, 0, 2)
	assert.Equal(t, 6, g.applied)
}

func TestMinimax_Idempotent(t *testing.T) {
	s, _ := newTreeSearcher()
	root := n(0, n(0, l(1), l(-1)), n(0, l(0), l(2)))

	first := s.Minimax(Minimizer, root, 0, 2)
	second := s.Minimax(Minimizer, root, 0, 2)
	assert.Equal(t, first, second)
}
