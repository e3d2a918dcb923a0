// Package hashing provides Zobrist hashing and duplicate detection for
// chess positions.
package hashing

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/lgbarn/chess-search-go/internal/chess"
	"github.com/lgbarn/chess-search-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable between runs.
var zobristSeed = [32]byte{'c', 'h', 'e', 's', 's', '-', 's', 'e', 'a', 'r', 'c', 'h'}

var (
	zobristPiece  [2][6][64]uint64
	zobristSide   uint64
	zobristCastle [4]uint64 // WK, WQ, BK, BQ
	zobristEP     [8]uint64
)

func init() {
	rng := frand.NewCustom(zobristSeed[:], 1024, 12)
	next := func() uint64 {
		var buf [8]byte
		rng.Read(buf[:])
		return binary.LittleEndian.Uint64(buf[:])
	}

	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = next()
			}
		}
	}
	zobristSide = next()
	for i := range zobristCastle {
		zobristCastle[i] = next()
	}
	for i := range zobristEP {
		zobristEP[i] = next()
	}
}

// GenerateZobristHash hashes the piece placement of a board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for col := chess.Col(chess.FirstCol); col <= chess.Col(chess.LastCol); col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.Rank(chess.LastRank); rank++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) {
				continue
			}
			sq := int(col-chess.FirstCol) + 8*int(rank-chess.FirstRank)
			hash ^= zobristPiece[chess.ExtractColour(piece)][chess.ExtractPiece(piece)-chess.Pawn][sq]
		}
	}
	return hash
}

// PositionHash hashes a whole position: placement, side to move, castling
// rights and the en passant file. Clocks are not part of the hash.
func PositionHash(pos engine.Position) uint64 {
	hash := GenerateZobristHash(pos.Board)
	if pos.ToMove == chess.Black {
		hash ^= zobristSide
	}
	for i, right := range []chess.Col{pos.Flags.WKingCastle, pos.Flags.WQueenCastle, pos.Flags.BKingCastle, pos.Flags.BQueenCastle} {
		if right != 0 {
			hash ^= zobristCastle[i]
		}
	}
	if pos.Flags.EnPassant {
		hash ^= zobristEP[pos.Flags.EPCol-chess.FirstCol]
	}
	return hash
}
