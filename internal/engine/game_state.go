package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// GameStatus classifies a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status classifies the position: a side with no legal moves is
// checkmated when in check and stalemated otherwise.
func Status(board *chess.Board) GameStatus {
	if HasLegalMoves(board) {
		return Ongoing
	}
	if IsInCheck(board) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board) && !HasLegalMoves(board)
}
