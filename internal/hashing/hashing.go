// Package hashing provides Zobrist position keys and the perft
// transposition table built on them.
package hashing

import (
	"github.com/lgbarn/movegen-go/internal/chess"
)

// Zobrist hash keys, generated from a fixed seed so that keys are stable
// across runs.
var (
	zobristPiece      [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [chess.BoardSize]uint64
	zobristSideToMove uint64
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := 0; c < 2; c++ {
		for p := chess.Pawn; p <= chess.King; p++ {
			for sq := 0; sq < chess.BoardSize*chess.BoardSize; sq++ {
				zobristPiece[c][p][sq] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is a xorshift64* generator used only for key generation.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Zobrist computes the Zobrist key of a position: pieces, side to move,
// castling rights and en passant file.
func Zobrist(board *chess.Board) uint64 {
	var h uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if !chess.IsOccupied(piece) {
				continue
			}
			h ^= zobristPiece[chess.ExtractColour(piece)][chess.ExtractPiece(piece)][rank*chess.BoardSize+file]
		}
	}

	h ^= zobristCastling[board.Castling&chess.AllCastling]

	if board.EnPassant {
		h ^= zobristEnPassant[board.EPSquare.File]
	}
	if board.ToMove == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}
