package engine

import "github.com/lgbarn/chess-search-go/internal/chess"

// target is a destination square.
type target struct {
	col  chess.Col
	rank chess.Rank
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// onBoard reports whether the coordinates name a real square.
func onBoard(col chess.Col, rank chess.Rank) bool {
	return col >= chess.FirstCol && col <= chess.LastCol && rank >= chess.FirstRank && rank <= chess.LastRank
}

// offset moves a square by (dc, dr).
func offset(col chess.Col, rank chess.Rank, dc, dr int) (chess.Col, chess.Rank) {
	return chess.Col(int(col) + dc), chess.Rank(int(rank) + dr)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, flags chess.Flags, colour chess.Colour) bool {
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			if len(legalTargets(board, flags, col, rank)) > 0 {
				return true
			}
		}
	}
	return false
}

// legalTargets returns the squares the piece on (col, rank) can move to
// without leaving its own king in check.
func legalTargets(board *chess.Board, flags chess.Flags, col chess.Col, rank chess.Rank) []target {
	piece := board.Get(col, rank)
	if !chess.IsOccupied(piece) {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var legal []target
	for _, t := range pseudoLegalTargets(board, flags, col, rank) {
		if tryMove(board, flags, col, rank, t, colour) {
			legal = append(legal, t)
		}
	}
	return legal
}

// pseudoLegalTargets returns the squares the piece on (col, rank) attacks or
// can move to, ignoring king safety.
func pseudoLegalTargets(board *chess.Board, flags chess.Flags, col chess.Col, rank chess.Rank) []target {
	piece := board.Get(col, rank)
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnTargets(board, flags, col, rank, colour)
	case chess.Knight:
		return stepTargets(board, col, rank, colour, knightOffsets)
	case chess.Bishop:
		return slidingTargets(board, col, rank, colour, diagonalDirs)
	case chess.Rook:
		return slidingTargets(board, col, rank, colour, straightDirs)
	case chess.Queen:
		return append(slidingTargets(board, col, rank, colour, diagonalDirs),
			slidingTargets(board, col, rank, colour, straightDirs)...)
	case chess.King:
		return append(stepTargets(board, col, rank, colour, kingOffsets),
			castlingTargets(board, flags, col, rank, colour)...)
	}
	return nil
}

// pawnTargets returns pushes, double pushes, captures and en passant.
func pawnTargets(board *chess.Board, flags chess.Flags, col chess.Col, rank chess.Rank, colour chess.Colour) []target {
	var targets []target
	dir := chess.ColourOffset(colour)

	toCol, toRank := offset(col, rank, 0, dir)
	if onBoard(toCol, toRank) && board.Get(toCol, toRank) == chess.Empty {
		targets = append(targets, target{toCol, toRank})

		startRank := chess.Rank('2')
		if colour == chess.Black {
			startRank = '7'
		}
		if rank == startRank {
			_, toRank2 := offset(col, rank, 0, 2*dir)
			if board.Get(col, toRank2) == chess.Empty {
				targets = append(targets, target{col, toRank2})
			}
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		toCol, toRank := offset(col, rank, dc, dir)
		if !onBoard(toCol, toRank) {
			continue
		}
		victim := board.Get(toCol, toRank)
		if chess.IsOccupied(victim) && chess.ExtractColour(victim) != colour {
			targets = append(targets, target{toCol, toRank})
			continue
		}
		if flags.EnPassant && toCol == flags.EPCol && toRank == flags.EPRank && victim == chess.Empty {
			targets = append(targets, target{toCol, toRank})
		}
	}
	return targets
}

// stepTargets returns the single-step destinations of a knight or king.
func stepTargets(board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour, offsets [][2]int) []target {
	var targets []target
	for _, o := range offsets {
		toCol, toRank := offset(col, rank, o[0], o[1])
		if !onBoard(toCol, toRank) {
			continue
		}
		occupant := board.Get(toCol, toRank)
		if occupant == chess.Empty || chess.ExtractColour(occupant) != colour {
			targets = append(targets, target{toCol, toRank})
		}
	}
	return targets
}

// slidingTargets returns the destinations of a bishop, rook or queen along
// the given directions.
func slidingTargets(board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour, dirs [][2]int) []target {
	var targets []target
	for _, dir := range dirs {
		toCol, toRank := offset(col, rank, dir[0], dir[1])
		for onBoard(toCol, toRank) {
			occupant := board.Get(toCol, toRank)
			if occupant != chess.Empty {
				if chess.ExtractColour(occupant) != colour {
					targets = append(targets, target{toCol, toRank})
				}
				break // Blocked
			}
			targets = append(targets, target{toCol, toRank})
			toCol, toRank = offset(toCol, toRank, dir[0], dir[1])
		}
	}
	return targets
}

// tryMove plays a move on a copy of the board and checks that it does not
// leave the mover's king in check.
func tryMove(board *chess.Board, flags chess.Flags, fromCol chess.Col, fromRank chess.Rank, t target, colour chess.Colour) bool {
	next, _ := applyMove(board, flags, fromCol, fromRank, t.col, t.rank, chess.Queen)
	return !IsInCheck(next, colour)
}
