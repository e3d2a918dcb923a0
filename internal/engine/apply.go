package engine

import "github.com/lgbarn/chess-search-go/internal/chess"

// distance is the number of files or ranks between a and b.
func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// classifyMove works out what kind of move from -> to is for the piece on
// the source square.
func classifyMove(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) chess.MoveClass {
	piece := board.Get(fromCol, fromRank)
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.King:
		if distance(int(toCol), int(fromCol)) == 2 && fromRank == toRank {
			if toCol > fromCol {
				return chess.KingsideCastle
			}
			return chess.QueensideCastle
		}
	case chess.Pawn:
		if toRank == chess.PromotionRank(colour) {
			return chess.PawnMoveWithPromotion
		}
		if toCol != fromCol && board.Get(toCol, toRank) == chess.Empty {
			return chess.EnPassantPawnMove
		}
		return chess.PawnMove
	}
	return chess.PieceMove
}

// applyMove plays a move and returns the resulting board and flags. The
// board passed in is never modified. promote is the piece a pawn reaching
// the last rank becomes; Empty means a queen.
func applyMove(board *chess.Board, flags chess.Flags, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, promote chess.Piece) (*chess.Board, chess.Flags) {
	next := board.Copy()
	nextFlags := flags
	nextFlags.EnPassant = false
	nextFlags.EPCol = 0
	nextFlags.EPRank = 0

	piece := board.Get(fromCol, fromRank)
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)
	captured := board.Get(toCol, toRank)

	switch class := classifyMove(board, fromCol, fromRank, toCol, toRank); class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(next, flags, colour, fromCol, class == chess.KingsideCastle)

	case chess.EnPassantPawnMove:
		// The captured pawn stands beside the mover, not on the target square.
		next.Set(toCol, fromRank, chess.Empty)
		next.Set(fromCol, fromRank, chess.Empty)
		next.Set(toCol, toRank, piece)

	case chess.PawnMoveWithPromotion:
		if promote == chess.Empty || promote == chess.Pawn || promote == chess.King {
			promote = chess.Queen
		}
		next.Set(fromCol, fromRank, chess.Empty)
		next.Set(toCol, toRank, chess.MakeColouredPiece(colour, promote))

	default:
		next.Set(fromCol, fromRank, chess.Empty)
		next.Set(toCol, toRank, piece)
		if pieceType == chess.King {
			next.SetKingSquare(colour, toCol, toRank)
		}
	}

	if pieceType == chess.King {
		clearCastlingRights(&nextFlags, colour)
	}
	if pieceType == chess.Rook {
		updateCastlingRightsForRook(&nextFlags, colour, fromCol, fromRank)
	}
	if chess.IsOccupied(captured) && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(&nextFlags, chess.ExtractColour(captured), toCol, toRank)
	}

	// Set en passant square if double pawn push
	if pieceType == chess.Pawn && distance(int(toRank), int(fromRank)) == 2 {
		nextFlags.EnPassant = true
		nextFlags.EPCol = toCol
		nextFlags.EPRank = chess.Rank((int(fromRank) + int(toRank)) / 2)
	}

	if pieceType == chess.Pawn || chess.IsOccupied(captured) {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.MoveNumber++
	}

	return next, nextFlags
}
