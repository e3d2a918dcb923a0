// Package search implements adversarial game-tree search over an abstract game:
// exhaustive minimax, alpha-beta pruned minimax and stochastic sampling.
//
// The package knows nothing about the rules of any particular game. Boards and
// auxiliary flags are opaque type parameters; everything the search needs to
// know about them is asked through the Game interface.
package search

// Side determines whether a node takes the minimum or the maximum of its
// children's values.
type Side int

const (
	// Minimizer seeks the smallest value.
	Minimizer Side = iota
	// Maximizer seeks the largest value.
	Maximizer
)

// String returns the name of the side.
func (s Side) String() string {
	if s == Maximizer {
		return "Maximizer"
	}
	return "Minimizer"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Maximizer {
		return Minimizer
	}
	return Maximizer
}

// Better reports whether a is strictly preferable to b for this side.
// Equal values are never better, so the first value reaching an extreme wins.
func (s Side) Better(a, b float64) bool {
	if s == Maximizer {
		return a > b
	}
	return a < b
}
