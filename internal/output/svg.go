package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-search-go/internal/chess"
	"github.com/lgbarn/chess-search-go/internal/engine"
	"github.com/lgbarn/chess-search-go/internal/search"
)

const (
	lightColour = "#f0d9b5"
	darkColour  = "#b58863"
)

// Arrow colours alternate between the two sides' moves.
var arrowColours = [2]string{"#2b6cb0", "#c53030"}

// pieceGlyphs maps piece types to their white glyphs. Black glyphs are six
// code points further on.
var pieceGlyphs = map[chess.Piece]rune{
	chess.King:   '♔',
	chess.Queen:  '♕',
	chess.Rook:   '♖',
	chess.Bishop: '♗',
	chess.Knight: '♘',
	chess.Pawn:   '♙',
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws pos as an SVG board with White at the bottom, then draws
// line as numbered arrows. squareSize is the side of one square in pixels.
func WriteSVG(w io.Writer, pos engine.Position, line []search.Token, squareSize int) error {
	moves := make([]search.Move, len(line))
	for i, tok := range line {
		m, err := engine.DecodeMove(tok)
		if err != nil {
			return err
		}
		moves[i] = m
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	size := chess.BoardSize * squareSize
	canvas.Start(size, size)
	canvas.Title(pos.FEN())

	canvas.Def()
	for i, colour := range arrowColours {
		canvas.Marker(fmt.Sprintf("arrow%d", i), 3, 3, 6, 6, `orient="auto"`)
		canvas.Path("M0,0 L6,3 L0,6 z", "fill:"+colour)
		canvas.MarkerEnd()
	}
	canvas.DefEnd()

	drawSquares(canvas, pos.Board, squareSize)
	drawLine(canvas, moves, pos.ToMove, squareSize)

	canvas.End()
	return ew.err
}

// drawSquares draws the board and its pieces.
func drawSquares(canvas *svg.SVG, board *chess.Board, squareSize int) {
	fontSize := squareSize * 3 / 4
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := search.Square{Col: col, Row: row}
			x, y := corner(sq, squareSize)

			fill := darkColour
			if (col+row)%2 == 1 {
				fill = lightColour
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			c, r := engine.FromSquare(sq)
			piece := board.Get(c, r)
			glyph, ok := pieceGlyphs[chess.ExtractPiece(piece)]
			if !ok {
				continue
			}
			if chess.ExtractColour(piece) == chess.Black {
				glyph += 6
			}
			canvas.Text(x+squareSize/2, y+squareSize*4/5, string(glyph),
				fmt.Sprintf("font-size:%dpx;text-anchor:middle", fontSize))
		}
	}
}

// drawLine draws one arrow per move, numbered from 1.
func drawLine(canvas *svg.SVG, moves []search.Move, toMove chess.Colour, squareSize int) {
	stroke := squareSize / 10
	if stroke < 1 {
		stroke = 1
	}
	side := 0
	if toMove == chess.Black {
		side = 1
	}

	for i, m := range moves {
		colour := arrowColours[side]
		x1, y1 := centre(m.From, squareSize)
		x2, y2 := centre(m.To, squareSize)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf(
			"stroke:%s;stroke-width:%d;stroke-opacity:0.7;marker-end:url(#arrow%d)", colour, stroke, side))

		r := squareSize / 6
		canvas.Circle(x1, y1, r, "fill:"+colour)
		canvas.Text(x1, y1+r/2, fmt.Sprint(i+1),
			fmt.Sprintf("fill:white;font-size:%dpx;text-anchor:middle", r))
		side = 1 - side
	}
}

// corner returns the top left pixel of a square.
func corner(sq search.Square, squareSize int) (int, int) {
	return sq.Col * squareSize, (chess.BoardSize - 1 - sq.Row) * squareSize
}

// centre returns the middle pixel of a square.
func centre(sq search.Square, squareSize int) (int, int) {
	x, y := corner(sq, squareSize)
	return x + squareSize/2, y + squareSize/2
}
