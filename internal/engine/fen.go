// Package engine provides the chess rules the search runs against: FEN
// parsing, legal move generation, immutable move application and static
// evaluation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-search-go/internal/chess"
	"github.com/lgbarn/chess-search-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is everything needed to search from a point in a game.
type Position struct {
	Board  *chess.Board
	Flags  chess.Flags
	ToMove chess.Colour
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return Position{Board: board, Flags: chess.InitialFlags(), ToMove: chess.White}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN reads a position from a FEN string. The piece placement and side
// to move are required; castling, en passant and the clocks default to none
// and "0 1" when absent.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return Position{}, fenError("placement and side to move", fen)
	}

	pos := Position{Board: chess.NewBoard()}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return Position{}, err
	}

	colour, err := parseSideToMove(parts[1])
	if err != nil {
		return Position{}, err
	}
	pos.ToMove = colour

	if pos.Flags, err = parseFlags(parts); err != nil {
		return Position{}, err
	}
	if err := parseClocks(pos.Board, parts); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// fenError reports a malformed FEN field.
func fenError(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Expected: expected,
		Got:      strconv.Quote(got),
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every rank must describe exactly eight squares and each side needs exactly
// one king.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("8 ranks", positions)
	}

	kings := map[chess.Colour]int{}
	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col('a')

		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty {
					return fenError("piece letter", string(c))
				}
				if col > 'h' {
					return fenError("8 squares in rank", row)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if piece == chess.Pawn && (rank == chess.FirstRank || rank == chess.LastRank) {
					return fenError("no pawn on a back rank", row)
				}

				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
				if piece == chess.King {
					board.SetKingSquare(colour, col, rank)
					kings[colour]++
				}
				col++
			}
		}
		if col != 'h'+1 {
			return fenError("8 squares in rank", row)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fenError("one king per side", positions)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fenError("w or b", field)
}

// parseFlags parses the castling availability and en passant fields.
func parseFlags(parts []string) (chess.Flags, error) {
	var flags chess.Flags

	if len(parts) >= 3 && parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				flags.WKingCastle = 'h'
			case 'Q':
				flags.WQueenCastle = 'a'
			case 'k':
				flags.BKingCastle = 'h'
			case 'q':
				flags.BQueenCastle = 'a'
			default:
				return chess.Flags{}, fenError("castling letters KQkq", string(c))
			}
		}
	}

	if len(parts) >= 4 && parts[3] != "-" {
		ep := parts[3]
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return chess.Flags{}, fenError("en passant square", ep)
		}
		flags.EnPassant = true
		flags.EPCol = chess.Col(ep[0])
		flags.EPRank = chess.Rank(ep[1])
	}
	return flags, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fenError("halfmove clock", parts[4])
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fenError("fullmove number", parts[5])
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// FEN converts the position to a FEN string.
func (p Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, p.Board)
	sb.WriteByte(' ')
	if p.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p.Flags)
	sb.WriteByte(' ')
	writeEnPassant(&sb, p.Flags)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.Board.HalfmoveClock, p.Board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, flags chess.Flags) {
	hasCastling := false
	if flags.WKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if flags.WQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if flags.BKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if flags.BQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, flags chess.Flags) {
	if flags.EnPassant {
		sb.WriteByte(byte(flags.EPCol))
		sb.WriteByte(byte(flags.EPRank))
	} else {
		sb.WriteByte('-')
	}
}
