package engine

import "github.com/lgbarn/chess-search-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingCol, kingRank := board.KingSquare(colour)

	// If king position not tracked, search for it
	if kingCol == 0 || kingRank == 0 {
		kingCol, kingRank = findKing(board, colour)
		if kingCol == 0 {
			return false // No king found
		}
	}

	return isSquareAttacked(board, kingCol, kingRank, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawns attack from the rank behind them.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := chess.Rank(int(rank) - chess.ColourOffset(byColour))
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && board.Get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && board.Get(col+1, pawnRank) == pawn {
			return true
		}
	}

	if attackedByStep(board, col, rank, chess.MakeColouredPiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, col, rank, chess.MakeColouredPiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if attackedBySlider(board, col, rank, chess.MakeColouredPiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlider(board, col, rank, chess.MakeColouredPiece(byColour, chess.Rook), queen, straightDirs)
}

// attackedByStep checks the squares a knight or king could attack from.
func attackedByStep(board *chess.Board, col chess.Col, rank chess.Rank, attacker chess.Piece, offsets [][2]int) bool {
	for _, o := range offsets {
		c, r := offset(col, rank, o[0], o[1])
		if onBoard(c, r) && board.Get(c, r) == attacker {
			return true
		}
	}
	return false
}

// attackedBySlider walks each direction until the first occupied square.
func attackedBySlider(board *chess.Board, col chess.Col, rank chess.Rank, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		c, r := offset(col, rank, dir[0], dir[1])
		for onBoard(c, r) {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			c, r = offset(c, r, dir[0], dir[1])
		}
	}
	return false
}
