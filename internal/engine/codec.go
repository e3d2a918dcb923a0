package engine

import (
	"strings"

	"github.com/lgbarn/chess-search-go/internal/chess"
	"github.com/lgbarn/chess-search-go/internal/errors"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// ToSquare converts board coordinates to a search square: Col 0 is the a-file
// and Row 0 the first rank.
func ToSquare(col chess.Col, rank chess.Rank) search.Square {
	return search.Square{Col: int(col - chess.FirstCol), Row: int(rank - chess.FirstRank)}
}

// FromSquare converts a search square back to board coordinates.
func FromSquare(sq search.Square) (chess.Col, chess.Rank) {
	return chess.Col(sq.Col + chess.FirstCol), chess.Rank(sq.Row + chess.FirstRank)
}

// SquareName returns the algebraic name of a square, e.g. "e4".
func SquareName(sq search.Square) string {
	col, rank := FromSquare(sq)
	return string([]byte{byte(col), byte(rank)})
}

// EncodeMove returns the long algebraic token of a move: source and
// destination squares followed by the promotion letter, e.g. "e7e8q".
func EncodeMove(m search.Move) search.Token {
	var sb strings.Builder
	sb.WriteString(SquareName(m.From))
	sb.WriteString(SquareName(m.To))
	if m.IsPromotion() {
		sb.WriteByte(byte(m.Promote))
	}
	return search.Token(sb.String())
}

// DecodeMove parses a long algebraic token. It checks the syntax only; the
// move may still be illegal in a given position.
func DecodeMove(tok search.Token) (search.Move, error) {
	s := string(tok)
	if len(s) != 4 && len(s) != 5 {
		return search.Move{}, tokenError("4 or 5 characters", s)
	}

	from, ok := parseSquare(s[0:2])
	if !ok {
		return search.Move{}, tokenError("source square", s[0:2])
	}
	to, ok := parseSquare(s[2:4])
	if !ok {
		return search.Move{}, tokenError("destination square", s[2:4])
	}

	m := search.Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'r', 'b', 'n':
			m.Promote = search.Promotion(s[4])
		default:
			return search.Move{}, tokenError("promotion letter q, r, b or n", s[4:])
		}
	}
	return m, nil
}

// parseSquare reads an algebraic square name.
func parseSquare(name string) (search.Square, bool) {
	col, rank := chess.Col(name[0]), chess.Rank(name[1])
	if !onBoard(col, rank) {
		return search.Square{}, false
	}
	return ToSquare(col, rank), true
}

// tokenError reports a malformed move token.
func tokenError(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidToken,
		Expected: expected,
		Got:      got,
	}
}
