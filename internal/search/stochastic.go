package search

import (
	"slices"

	"github.com/samber/lo"
)

// Stochastic evaluates every first-ply move exhaustively but estimates its
// value by sampling instead of searching below it. For each first-ply move,
// breadth independent continuations are played: one chooser-picked reply,
// then one chooser-picked move per ply for depth-2 further plies. The move's
// value is the mean of its continuations' terminal evaluations.
//
// The returned line is the winning move followed by the last continuation
// sampled for it. The tree nests first move, sampled reply and the sampled
// continuation, keyed by token at every level.
//
// depth 0 evaluates the root. depth 1 values each first-ply move by the static
// evaluation of the board it leads to. breadth below 1 is treated as 1.
func (s *Searcher[B, F]) Stochastic(side Side, board B, flags F, depth, breadth int, chooser Chooser) Result {
	if depth <= 0 {
		return leaf(s.game.Evaluate(board))
	}
	breadth = max(breadth, 1)

	tree := Tree{}
	var best Result
	found := false

	for m := range s.GenerateMoves(side, board, flags) {
		nextSide, nextBoard, nextFlags := s.apply(side, board, flags, m)
		value, line, sub := s.sampleReplies(nextSide, nextBoard, nextFlags, depth-1, breadth, chooser)
		tree[s.game.Encode(m)] = sub

		if !found || side.Better(value, best.Value) {
			best = Result{Value: value, Line: Prepend(m, line)}
			found = true
		}
	}

	if !found {
		return leaf(s.game.Evaluate(board))
	}
	best.Tree = tree
	return best
}

// sampleReplies plays breadth sampled continuations of plies moves from a
// position reached after a first-ply move. It returns the mean terminal value,
// the last continuation played and the tree of sampled replies.
func (s *Searcher[B, F]) sampleReplies(side Side, board B, flags F, plies, breadth int, chooser Chooser) (float64, *Line, Tree) {
	if plies <= 0 {
		return s.game.Evaluate(board), nil, Tree{}
	}

	replies := slices.Collect(s.GenerateMoves(side, board, flags))
	if len(replies) == 0 {
		return s.game.Evaluate(board), nil, Tree{}
	}

	tree := Tree{}
	values := make([]float64, 0, breadth)
	var line *Line
	for i := 0; i < breadth; i++ {
		reply := chooser.Choose(replies)
		nextSide, nextBoard, nextFlags := s.apply(side, board, flags, reply)
		r := s.sample(nextSide, nextBoard, nextFlags, plies-1, chooser)
		values = append(values, r.Value)
		line = Prepend(reply, r.Line)
		// A reply drawn twice keeps the continuations of both samples.
		tree.merge(Tree{s.game.Encode(reply): r.Tree})
	}
	return lo.Sum(values) / float64(len(values)), line, tree
}

// sample plays one chooser-picked move per ply until depth is used up or no
// legal move remains, then evaluates the board reached.
func (s *Searcher[B, F]) sample(side Side, board B, flags F, depth int, chooser Chooser) Result {
	if depth <= 0 {
		return leaf(s.game.Evaluate(board))
	}
	moves := slices.Collect(s.GenerateMoves(side, board, flags))
	if len(moves) == 0 {
		return leaf(s.game.Evaluate(board))
	}

	m := chooser.Choose(moves)
	nextSide, nextBoard, nextFlags := s.apply(side, board, flags, m)
	child := s.sample(nextSide, nextBoard, nextFlags, depth-1, chooser)
	return Result{
		Value: child.Value,
		Line:  Prepend(m, child.Line),
		Tree:  Tree{s.game.Encode(m): child.Tree},
	}
}

// Random plays one chooser-picked move and evaluates the board it leads to.
// It is a reference move chooser, not a search: the tree holds the single
// move played.
func (s *Searcher[B, F]) Random(side Side, board B, flags F, chooser Chooser) Result {
	moves := slices.Collect(s.GenerateMoves(side, board, flags))
	if len(moves) == 0 {
		return leaf(s.game.Evaluate(board))
	}
	m := chooser.Choose(moves)
	_, nextBoard, _ := s.apply(side, board, flags, m)
	return Result{
		Value: s.game.Evaluate(nextBoard),
		Line:  Prepend(m, nil),
		Tree:  Tree{s.game.Encode(m): Tree{}},
	}
}
