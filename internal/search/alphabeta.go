package search

import "math"

// AlphaBeta returns the same value and line as Minimax, pruning branches that
// cannot change the decision. The root is searched with the window
// (-Inf, +Inf), so every first-ply move is visited before any cutoff.
func (s *Searcher[B, F]) AlphaBeta(side Side, board B, flags F, depth int) Result {
	return s.AlphaBetaWindow(side, board, flags, depth, math.Inf(-1), math.Inf(1))
}

// AlphaBetaWindow runs alpha-beta with an explicit window. alpha is the value
// the maximizing ancestor can already guarantee, beta the value the
// minimizing ancestor can already guarantee.
//
// Moves that are not enumerated because of a cutoff are absent from the tree.
func (s *Searcher[B, F]) AlphaBetaWindow(side Side, board B, flags F, depth int, alpha, beta float64) Result {
	if depth <= 0 {
		return leaf(s.game.Evaluate(board))
	}

	tree := Tree{}
	var best Result
	found := false

	for m := range s.GenerateMoves(side, board, flags) {
		nextSide, nextBoard, nextFlags := s.apply(side, board, flags, m)
		child := s.AlphaBetaWindow(nextSide, nextBoard, nextFlags, depth-1, alpha, beta)
		tree[s.game.Encode(m)] = child.Tree

		if !found || side.Better(child.Value, best.Value) {
			best = Result{Value: child.Value, Line: Prepend(m, child.Line)}
			found = true
		}

		if side == Minimizer {
			beta = math.Min(beta, best.Value)
			if best.Value <= alpha {
				break
			}
		} else {
			alpha = math.Max(alpha, best.Value)
			if best.Value >= beta {
				break
			}
		}
	}

	if !found {
		return leaf(s.game.Evaluate(board))
	}
	best.Tree = tree
	return best
}
