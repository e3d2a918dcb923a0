package search

import "fmt"

// Square is a coordinate on the game grid.
type Square struct {
	Col int
	Row int
}

// String returns the square as "(col,row)".
func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.Col, sq.Row)
}

// Promotion is the piece a move promotes to, or NoPromotion.
type Promotion byte

// NoPromotion marks a move that does not promote.
const NoPromotion Promotion = 0

// Move is a (source, destination, promotion) triple.
// Two moves are equal iff all three fields are equal.
type Move struct {
	From    Square
	To      Square
	Promote Promotion
}

// IsPromotion returns true if the move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promote != NoPromotion
}

// String returns a debugging representation of the move.
func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v->%v=%c", m.From, m.To, m.Promote)
	}
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// Token is the canonical hashable encoding of a Move. Tokens key the
// exploration tree.
type Token string

// Codec converts between moves and tokens. Implementations must be a
// lossless bijection: Decode(Encode(m)) == m for every legal move m.
type Codec interface {
	Encode(m Move) Token
	Decode(tok Token) (Move, error)
}
