package search

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// node is a position in a synthetic game tree. Its children are reached by
// moves whose destination column is the child index.
type node struct {
	value    float64
	promote  bool
	children []*node
}

// n builds an interior node; l builds a leaf.
func n(value float64, children ...*node) *node {
	return &node{value: value, children: children}
}

func l(value float64) *node {
	return &node{value: value}
}

// promoting marks the move leading to this node as a promotion.
func promoting(nd *node) *node {
	nd.promote = true
	return nd
}

// treeGame implements Game over synthetic trees. Flags count the plies
// played so tests can check they are threaded through transitions.
type treeGame struct {
	applied int
}

func (g *treeGame) Pieces(_ Side, board *node) []Square {
	if len(board.children) == 0 {
		return nil
	}
	return []Square{{Col: 0, Row: 0}}
}

func (g *treeGame) Destinations(_ Side, board *node, _ Square, flags int) []Square {
	dests := make([]Square, len(board.children))
	for i := range board.children {
		dests[i] = Square{Col: i, Row: flags + 1}
	}
	return dests
}

func (g *treeGame) Promotion(_ Side, board *node, _, to Square) Promotion {
	if board.children[to.Col].promote {
		return 'q'
	}
	return NoPromotion
}

func (g *treeGame) Apply(side Side, board *node, _, to Square, flags int, _ Promotion) (Side, *node, int) {
	g.applied++
	return side.Opposite(), board.children[to.Col], flags + 1
}

func (g *treeGame) Evaluate(board *node) float64 {
	return board.value
}

func (g *treeGame) Encode(m Move) Token {
	tok := fmt.Sprintf("c%d.%d", m.To.Col, m.To.Row)
	if m.IsPromotion() {
		tok += "=" + string(rune(m.Promote))
	}
	return Token(tok)
}

func (g *treeGame) Decode(tok Token) (Move, error) {
	s := string(tok)
	var m Move
	if head, promo, ok := strings.Cut(s, "="); ok {
		if len(promo) != 1 {
			return Move{}, fmt.Errorf("bad promotion in %q", s)
		}
		m.Promote = Promotion(promo[0])
		s = head
	}
	col, row, ok := strings.Cut(strings.TrimPrefix(s, "c"), ".")
	if !ok {
		return Move{}, fmt.Errorf("bad token %q", tok)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return Move{}, err
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return Move{}, err
	}
	m.To = Square{Col: c, Row: r}
	return m, nil
}

// tok is the token treeGame gives the move to child col at ply row.
func tok(col, row int) Token {
	return Token(fmt.Sprintf("c%d.%d", col, row))
}

// mv is the move treeGame generates for child col at ply row.
func mv(col, row int) Move {
	return Move{From: Square{}, To: Square{Col: col, Row: row}}
}

// randomTree builds a tree of the given depth. Values are small integers so
// that ties are common, and some interior nodes have no children.
func randomTree(rng *rand.Rand, depth, maxBranch int) *node {
	nd := &node{value: float64(rng.IntN(7) - 3)}
	if depth == 0 || rng.IntN(8) == 0 {
		return nd
	}
	branches := 1 + rng.IntN(maxBranch)
	for i := 0; i < branches; i++ {
		nd.children = append(nd.children, randomTree(rng, depth-1, maxBranch))
	}
	return nd
}

// newTreeSearcher returns a searcher and the game behind it.
func newTreeSearcher() (*Searcher[*node, int], *treeGame) {
	g := &treeGame{}
	return New[*node, int](g), g
}
