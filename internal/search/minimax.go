package search

// Minimax searches every line to the given depth and returns the best value
// for side, the line that achieves it and the tree of every move visited.
//
// A node with no legal moves is treated as a leaf and evaluated statically.
// Among moves of equal value the first one enumerated is kept.
func (s *Searcher[B, F]) Minimax(side Side, board B, flags F, depth int) Result {
	if depth <= 0 {
		return leaf(s.game.Evaluate(board))
	}

	tree := Tree{}
	var best Result
	found := false

	for m := range s.GenerateMoves(side, board, flags) {
		nextSide, nextBoard, nextFlags := s.apply(side, board, flags, m)
		child := s.Minimax(nextSide, nextBoard, nextFlags, depth-1)
		tree[s.game.Encode(m)] = child.Tree

		if !found || side.Better(child.Value, best.Value) {
			best = Result{Value: child.Value, Line: Prepend(m, child.Line)}
			found = true
		}
	}

	if !found {
		return leaf(s.game.Evaluate(board))
	}
	best.Tree = tree
	return best
}
