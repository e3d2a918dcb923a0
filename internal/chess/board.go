package chess

// Board holds piece placement and the move clocks. Castling rights and the
// en-passant square travel separately in Flags, and the side to move is kept
// by the caller.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// board[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// The current move number.
	MoveNumber uint

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// Flags is the auxiliary state a move depends on besides piece placement.
// A zero castling column means the right is gone.
type Flags struct {
	// Rook starting columns for the 4 castling options.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Is EnPassant capture possible? If so then EPRank and EPCol have
	// the square on which this can be made.
	EnPassant bool
	EPRank    Rank
	EPCol     Col
}

// InitialFlags returns full castling rights and no en-passant square.
func InitialFlags() Flags {
	return Flags{
		WKingCastle:  'h',
		WQueenCastle: 'a',
		BKingCastle:  'h',
		BQueenCastle: 'a',
	}
}

// CanCastle reports whether any castling right remains for colour.
func (f Flags) CanCastle(colour Colour) bool {
	if colour == White {
		return f.WKingCastle != 0 || f.WQueenCastle != 0
	}
	return f.BKingCastle != 0 || f.BQueenCastle != 0
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		MoveNumber: 1,
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKingCol = 'e'
	b.WKingRank = '1'
	b.BKingCol = 'e'
	b.BKingRank = '8'

	b.MoveNumber = 1
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// GetByIndex returns the piece at the given board array indices.
func (b *Board) GetByIndex(col, rank int) Piece {
	return b.Squares[col][rank]
}

// SetByIndex places a piece at the given board array indices.
func (b *Board) SetByIndex(col, rank int, piece Piece) {
	b.Squares[col][rank] = piece
}

// KingSquare returns where the king of the given colour stands.
func (b *Board) KingSquare(colour Colour) (Col, Rank) {
	if colour == White {
		return b.WKingCol, b.WKingRank
	}
	return b.BKingCol, b.BKingRank
}

// SetKingSquare records the king position for colour.
func (b *Board) SetKingSquare(colour Colour, col Col, rank Rank) {
	if colour == White {
		b.WKingCol, b.WKingRank = col, rank
	} else {
		b.BKingCol, b.BKingRank = col, rank
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns how many of the given coloured piece stand on the board.
func (b *Board) Count(colouredPiece Piece) int {
	n := 0
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			if b.Squares[col][rank] == colouredPiece {
				n++
			}
		}
	}
	return n
}
