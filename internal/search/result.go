package search

// Line is a nested move sequence: a move followed by the rest of the line.
// A nil *Line is the empty sequence.
type Line struct {
	Move Move
	Rest *Line
}

// Prepend returns a new line starting with m and continuing with l.
func Prepend(m Move, l *Line) *Line {
	return &Line{Move: m, Rest: l}
}

// Len returns the number of moves in the line.
func (l *Line) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.Rest {
		n++
	}
	return n
}

// Moves flattens the line into a slice, root move first.
func (l *Line) Moves() []Move {
	moves := make([]Move, 0, l.Len())
	for cur := l; cur != nil; cur = cur.Rest {
		moves = append(moves, cur.Move)
	}
	return moves
}

// Result is what every search strategy returns.
type Result struct {
	// Value of the best line found.
	Value float64

	// Line from the root to the terminus of the best-valued line. It is never
	// longer than the requested depth and may be shorter when a node on the
	// line has no legal moves.
	Line *Line

	// Tree of every move visited, nested by ply.
	Tree Tree
}

// Moves returns the best line as a flat slice.
func (r Result) Moves() []Move {
	return r.Line.Moves()
}

// BestMove returns the first move of the best line, or false when the root
// had no move to play.
func (r Result) BestMove() (Move, bool) {
	if r.Line == nil {
		return Move{}, false
	}
	return r.Line.Move, true
}

// leaf is the result for a node that is not expanded.
func leaf(value float64) Result {
	return Result{Value: value, Tree: Tree{}}
}
