package testutil

import (
	"testing"

	"github.com/lgbarn/chess-search-go/internal/engine"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// Positions used across tests.
const (
	// ScholarsMateFEN has White to move and mate with Qxf7#.
	ScholarsMateFEN = "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"

	// BackRankMateFEN has White to move and mate with Re8#.
	BackRankMateFEN = "6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1"

	// StalemateFEN has Black to move and no legal move.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// CastlingFEN has all four castling moves available.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// EnPassantFEN has White able to capture exd6 en passant.
	EnPassantFEN = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"

	// PromotionFEN has a white pawn on b7 ready to promote.
	PromotionFEN = "8/1P4k1/8/8/8/8/6K1/8 w - - 0 1"
)

// ParseTestPosition parses a FEN string, returning false if it is invalid.
func ParseTestPosition(fen string) (engine.Position, bool) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return engine.Position{}, false
	}
	return pos, true
}

// MustPosition parses a FEN string and calls t.Fatal if it is invalid.
func MustPosition(t *testing.T, fen string) engine.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test position %q: %v", fen, err)
	}
	return pos
}

// MustPlay applies tokens to a position and calls t.Fatal if any is illegal.
func MustPlay(t *testing.T, pos engine.Position, toks ...search.Token) engine.Position {
	t.Helper()
	next, err := pos.PlayLine(toks...)
	if err != nil {
		t.Fatalf("failed to play %v from %q: %v", toks, pos.FEN(), err)
	}
	return next
}

// Tokens encodes a line of moves for readable comparisons.
func Tokens(moves []search.Move) []search.Token {
	toks := make([]search.Token, len(moves))
	for i, m := range moves {
		toks[i] = engine.EncodeMove(m)
	}
	return toks
}
