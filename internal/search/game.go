package search

import "iter"

// Game is the set of collaborator services a search consumes. B is the board
// state and F the auxiliary flags (castling rights and the like). Both are
// opaque to the search and must be treated as immutable: Apply returns new
// values and never modifies the ones it is given.
type Game[B, F any] interface {
	Codec

	// Pieces returns the squares holding side's pieces.
	Pieces(side Side, board B) []Square

	// Destinations returns every square the piece on from can legally reach.
	Destinations(side Side, board B, from Square, flags F) []Square

	// Promotion returns the promotion assigned to the move from -> to, or
	// NoPromotion.
	Promotion(side Side, board B, from, to Square) Promotion

	// Apply plays a move and returns the next side, board and flags.
	Apply(side Side, board B, from, to Square, flags F, promote Promotion) (Side, B, F)

	// Evaluate returns the static value of a board. Larger values favour
	// the Maximizer.
	Evaluate(board B) float64
}

// Searcher runs search strategies against one game.
// A Searcher holds no state between calls and is safe for concurrent use
// as long as the Game is.
type Searcher[B, F any] struct {
	game Game[B, F]
}

// New creates a Searcher for the given game.
func New[B, F any](game Game[B, F]) *Searcher[B, F] {
	return &Searcher[B, F]{game: game}
}

// Game returns the collaborator services the searcher was built with.
func (s *Searcher[B, F]) Game() Game[B, F] {
	return s.game
}

// GenerateMoves returns a lazy, restartable sequence of side's legal moves.
// Moves follow the collaborator's piece order, then its destination order.
func (s *Searcher[B, F]) GenerateMoves(side Side, board B, flags F) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, from := range s.game.Pieces(side, board) {
			for _, to := range s.game.Destinations(side, board, from, flags) {
				m := Move{From: from, To: to, Promote: s.game.Promotion(side, board, from, to)}
				if !yield(m) {
					return
				}
			}
		}
	}
}

// apply plays m.
func (s *Searcher[B, F]) apply(side Side, board B, flags F, m Move) (Side, B, F) {
	return s.game.Apply(side, board, m.From, m.To, flags, m.Promote)
}
