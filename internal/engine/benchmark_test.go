package engine

import (
	"testing"

	"github.com/lgbarn/chess-search-go/internal/search"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func mustParse(tb testing.TB, fen string) Position {
	tb.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		tb.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

func BenchmarkParseFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParseFEN(fen)
			}
		})
	}
}

func BenchmarkPositionFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustParse(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos.FEN()
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustParse(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos.LegalMoves()
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	pos := mustParse(b, benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(pos.Board)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	pos := mustParse(b, benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsInCheck(pos.Board, pos.ToMove)
	}
}

func BenchmarkMinimax(b *testing.B) {
	pos := mustParse(b, benchFENs["Midgame"])
	s := NewSearcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Minimax(pos.Side(), pos.Board, pos.Flags, 2)
	}
}

func BenchmarkAlphaBeta(b *testing.B) {
	pos := mustParse(b, benchFENs["Midgame"])
	s := NewSearcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.AlphaBeta(pos.Side(), pos.Board, pos.Flags, 3)
	}
}

func BenchmarkStochastic(b *testing.B) {
	pos := mustParse(b, benchFENs["Midgame"])
	s := NewSearcher()
	chooser := search.NewSeededChooser(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Stochastic(pos.Side(), pos.Board, pos.Flags, 4, 8, chooser)
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	pos := NewInitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos.Board.Copy()
	}
}
