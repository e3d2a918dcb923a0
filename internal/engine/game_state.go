package engine

import "github.com/lgbarn/chess-search-go/internal/chess"

// Status describes how a position stands for the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
)

// String returns a human readable name for the status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	}
	return "ongoing"
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos Position) bool {
	return IsInCheck(pos.Board, pos.ToMove) && !HasLegalMoves(pos.Board, pos.Flags, pos.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos Position) bool {
	return !IsInCheck(pos.Board, pos.ToMove) && !HasLegalMoves(pos.Board, pos.Flags, pos.ToMove)
}

// StatusOf classifies the position. Checkmate and stalemate take precedence
// over the draw rules.
func StatusOf(pos Position) Status {
	if !HasLegalMoves(pos.Board, pos.Flags, pos.ToMove) {
		if IsInCheck(pos.Board, pos.ToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if HasInsufficientMaterial(pos.Board) {
		return InsufficientMaterial
	}
	if pos.Board.HalfmoveClock >= 100 {
		return FiftyMoveRule
	}
	return Ongoing
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := chess.Rank(chess.FirstRank); rank <= chess.Rank(chess.LastRank); rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.Col(chess.LastCol); col++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) {
				continue
			}

			colour := chess.ExtractColour(piece)
			pieceType := chess.ExtractPiece(piece)

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = isLightSquare(col, rank)
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = isLightSquare(col, rank)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(col chess.Col, rank chess.Rank) bool {
	colNum := int(col - chess.FirstCol)
	rankNum := int(rank - chess.FirstRank)
	return (colNum+rankNum)%2 == 1
}
