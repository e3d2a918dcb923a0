package engine

import (
	"github.com/lgbarn/chess-search-go/internal/chess"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// Searcher is the search engine specialised to chess.
type Searcher = search.Searcher[*chess.Board, chess.Flags]

// Rules exposes the chess rules as the collaborator services a search
// consumes. It holds no state and is safe for concurrent use.
type Rules struct{}

var _ search.Game[*chess.Board, chess.Flags] = (*Rules)(nil)

// NewRules returns the chess rules.
func NewRules() *Rules {
	return &Rules{}
}

// NewSearcher returns a searcher over the chess rules.
func NewSearcher() *Searcher {
	return search.New[*chess.Board, chess.Flags](NewRules())
}

// SideOf maps a colour to its search side. White maximizes.
func SideOf(colour chess.Colour) search.Side {
	if colour == chess.White {
		return search.Maximizer
	}
	return search.Minimizer
}

// ColourOf maps a search side back to a colour.
func ColourOf(side search.Side) chess.Colour {
	if side == search.Maximizer {
		return chess.White
	}
	return chess.Black
}

// Pieces returns the squares of side's pieces, a-file first and rank 1
// first within a file.
func (r *Rules) Pieces(side search.Side, board *chess.Board) []search.Square {
	colour := ColourOf(side)
	var squares []search.Square
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if chess.IsOccupied(piece) && chess.ExtractColour(piece) == colour {
				squares = append(squares, ToSquare(col, rank))
			}
		}
	}
	return squares
}

// Destinations returns every square the piece on from can legally move to.
// It returns nil when from does not hold one of side's pieces.
func (r *Rules) Destinations(side search.Side, board *chess.Board, from search.Square, flags chess.Flags) []search.Square {
	col, rank := FromSquare(from)
	piece := board.Get(col, rank)
	if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != ColourOf(side) {
		return nil
	}

	targets := legalTargets(board, flags, col, rank)
	squares := make([]search.Square, len(targets))
	for i, t := range targets {
		squares[i] = ToSquare(t.col, t.rank)
	}
	return squares
}

// Promotion returns 'q' for a pawn move to the last rank. Other promotions
// can still be played through Apply but are never generated.
func (r *Rules) Promotion(side search.Side, board *chess.Board, from, to search.Square) search.Promotion {
	fromCol, fromRank := FromSquare(from)
	_, toRank := FromSquare(to)
	if board.Get(fromCol, fromRank) == chess.MakeColouredPiece(ColourOf(side), chess.Pawn) &&
		toRank == chess.PromotionRank(ColourOf(side)) {
		return 'q'
	}
	return search.NoPromotion
}

// Apply plays a move and returns the opponent, the new board and the new
// flags. The board passed in is left untouched.
func (r *Rules) Apply(side search.Side, board *chess.Board, from, to search.Square, flags chess.Flags, promote search.Promotion) (search.Side, *chess.Board, chess.Flags) {
	fromCol, fromRank := FromSquare(from)
	toCol, toRank := FromSquare(to)
	next, nextFlags := applyMove(board, flags, fromCol, fromRank, toCol, toRank, chess.PieceFromLetter(byte(promote)))
	return side.Opposite(), next, nextFlags
}

// Evaluate returns the static material evaluation of the board.
func (r *Rules) Evaluate(board *chess.Board) float64 {
	return Evaluate(board)
}

// Encode returns the long algebraic token of a move.
func (r *Rules) Encode(m search.Move) search.Token {
	return EncodeMove(m)
}

// Decode parses a long algebraic token.
func (r *Rules) Decode(tok search.Token) (search.Move, error) {
	return DecodeMove(tok)
}
