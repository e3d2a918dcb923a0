package engine

import "github.com/lgbarn/chess-search-go/internal/chess"

// Piece values in centipawns. The king is never captured, so it scores
// nothing.
var pieceValues = [chess.NumPieceValues]float64{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  950,
}

const (
	// advanceBonus is added per rank a pawn has moved from its start square.
	advanceBonus = 5

	// MateScore is the value of a checkmated board, from the winner's side.
	MateScore = 100000
)

// Evaluate returns the static value of a board in centipawns: material
// balance plus a small bonus for advanced pawns. Positive values favour
// White. A side whose king is checkmated scores MateScore against it.
//
// Only the board is known here, so a check that could be escaped solely by
// capturing en passant is still scored as mate.
func Evaluate(board *chess.Board) float64 {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if IsInCheck(board, colour) && !HasLegalMoves(board, chess.Flags{}, colour) {
			if colour == chess.White {
				return -MateScore
			}
			return MateScore
		}
	}

	score := 0.0
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) {
				continue
			}
			pieceType := chess.ExtractPiece(piece)
			value := pieceValues[pieceType]
			colour := chess.ExtractColour(piece)
			if pieceType == chess.Pawn {
				value += advanceBonus * float64(pawnAdvance(rank, colour))
			}
			if colour == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

// pawnAdvance counts the ranks a pawn on rank has advanced from its start.
func pawnAdvance(rank chess.Rank, colour chess.Colour) int {
	if colour == chess.White {
		return int(rank - '2')
	}
	return int('7' - rank)
}
