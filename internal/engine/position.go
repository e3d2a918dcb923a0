package engine

import (
	"slices"

	"github.com/lgbarn/chess-search-go/internal/errors"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// Side returns the search side of the player to move.
func (p Position) Side() search.Side {
	return SideOf(p.ToMove)
}

// Copy returns a position that shares nothing mutable with p.
func (p Position) Copy() Position {
	p.Board = p.Board.Copy()
	return p
}

// LegalMoves returns every legal move in the position in generation order.
func (p Position) LegalMoves() []search.Move {
	return slices.Collect(NewSearcher().GenerateMoves(p.Side(), p.Board, p.Flags))
}

// Play applies a move given as a token and returns the resulting position.
// The move must be legal; a generated queen promotion also accepts an
// explicit under-promotion letter.
func (p Position) Play(tok search.Token) (Position, error) {
	m, err := DecodeMove(tok)
	if err != nil {
		return Position{}, err
	}

	legal := slices.ContainsFunc(p.LegalMoves(), func(l search.Move) bool {
		return l.From == m.From && l.To == m.To && l.IsPromotion() == m.IsPromotion()
	})
	if !legal {
		return Position{}, errors.Wrapf(errors.ErrIllegalMove, "%s in %s", tok, p.FEN())
	}

	side, board, flags := NewRules().Apply(p.Side(), p.Board, m.From, m.To, p.Flags, m.Promote)
	return Position{Board: board, Flags: flags, ToMove: ColourOf(side)}, nil
}

// PlayLine applies a sequence of tokens in order.
func (p Position) PlayLine(toks ...search.Token) (Position, error) {
	cur := p
	for i, tok := range toks {
		next, err := cur.Play(tok)
		if err != nil {
			return Position{}, errors.Wrapf(err, "move %d", i+1)
		}
		cur = next
	}
	return cur, nil
}
