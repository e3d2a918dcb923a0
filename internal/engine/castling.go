package engine

import (
	"cmp"

	"github.com/lgbarn/chess-search-go/internal/chess"
)

// castlingTargets returns the king destinations for the castling moves that
// are currently legal. The king may not castle out of, through or into check,
// and every square the king and rook cross must be empty.
func castlingTargets(board *chess.Board, flags chess.Flags, kingCol chess.Col, kingRank chess.Rank, colour chess.Colour) []target {
	if kingRank != chess.HomeRank(colour) || !flags.CanCastle(colour) {
		return nil
	}
	opponent := colour.Opposite()
	if isSquareAttacked(board, kingCol, kingRank, opponent) {
		return nil
	}

	kingside, queenside := castleRookCols(flags, colour)
	var targets []target
	for _, side := range []struct {
		rookCol chess.Col
		kingTo  chess.Col
		rookTo  chess.Col
	}{
		{kingside, 'g', 'f'},
		{queenside, 'c', 'd'},
	} {
		if side.rookCol == 0 || board.Get(side.rookCol, kingRank) != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}
		if !castlingPathClear(board, kingRank, kingCol, side.rookCol, side.kingTo, side.rookTo) {
			continue
		}
		if kingPathAttacked(board, kingRank, kingCol, side.kingTo, opponent) {
			continue
		}
		targets = append(targets, target{side.kingTo, kingRank})
	}
	return targets
}

// castleRookCols returns the kingside and queenside rook columns of colour.
func castleRookCols(flags chess.Flags, colour chess.Colour) (chess.Col, chess.Col) {
	if colour == chess.White {
		return flags.WKingCastle, flags.WQueenCastle
	}
	return flags.BKingCastle, flags.BQueenCastle
}

// castlingPathClear checks that every square spanned by the king and rook,
// before and after castling, is empty apart from the king and rook themselves.
func castlingPathClear(board *chess.Board, rank chess.Rank, kingCol, rookCol, kingTo, rookTo chess.Col) bool {
	lo := min(kingCol, rookCol, kingTo, rookTo)
	hi := max(kingCol, rookCol, kingTo, rookTo)
	for col := lo; col <= hi; col++ {
		if col == kingCol || col == rookCol {
			continue
		}
		if board.Get(col, rank) != chess.Empty {
			return false
		}
	}
	return true
}

// kingPathAttacked reports whether any square the king passes over or lands
// on is attacked.
func kingPathAttacked(board *chess.Board, rank chess.Rank, from, to chess.Col, by chess.Colour) bool {
	step := cmp.Compare(int(to), int(from))
	for col := from; ; col = chess.Col(int(col) + step) {
		if isSquareAttacked(board, col, rank, by) {
			return true
		}
		if col == to {
			return false
		}
	}
}

// applyCastle moves the king and rook for a castling move. The king has
// already been identified as moving two files toward the rook.
func applyCastle(board *chess.Board, flags chess.Flags, colour chess.Colour, kingFrom chess.Col, kingside bool) {
	rank := chess.HomeRank(colour)
	kingsideRook, queensideRook := castleRookCols(flags, colour)

	kingTo, rookFrom, rookTo := chess.Col('c'), queensideRook, chess.Col('d')
	if kingside {
		kingTo, rookFrom, rookTo = 'g', kingsideRook, 'f'
	}

	king := board.Get(kingFrom, rank)
	rook := board.Get(rookFrom, rank)
	board.Set(kingFrom, rank, chess.Empty)
	board.Set(rookFrom, rank, chess.Empty)
	board.Set(kingTo, rank, king)
	board.Set(rookTo, rank, rook)
	board.SetKingSquare(colour, kingTo, rank)
}

// clearCastlingRights removes both castling rights of colour.
func clearCastlingRights(flags *chess.Flags, colour chess.Colour) {
	if colour == chess.White {
		flags.WKingCastle = 0
		flags.WQueenCastle = 0
	} else {
		flags.BKingCastle = 0
		flags.BQueenCastle = 0
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(flags *chess.Flags, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == flags.WKingCastle {
			flags.WKingCastle = 0
		}
		if col == flags.WQueenCastle {
			flags.WQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == flags.BKingCastle {
			flags.BKingCastle = 0
		}
		if col == flags.BQueenCastle {
			flags.BQueenCastle = 0
		}
	}
}
