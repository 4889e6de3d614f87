package engine

import (
	"github.com/lgbarn/movegen-go/internal/chess"
)

// Apply plays a move on the board in place and flips the side to move.
//
// The move must be one returned by GenerateLegal for the current position.
// Applying anything else is a caller error: the board contents afterwards
// are unspecified, though the call itself stays within the board's storage.
func Apply(board *chess.Board, move chess.Move) {
	colour := board.ToMove
	mover := board.Get(move.From)
	moverType := chess.ExtractPiece(mover)

	// Identify what is being captured.
	captured := board.Get(move.To)
	enPassant := moverType == chess.Pawn && board.IsEnPassantTarget(move.To)
	castling := isCastlingMove(board, move)

	// Move the piece
	board.Set(move.From, chess.Empty)
	board.Set(move.To, mover)

	// Set en passant square if double pawn push
	board.ClearEnPassant()
	if moverType == chess.Pawn && isDoublePush(move.From, move.To) {
		board.SetEnPassant(chess.Sq((move.From.Rank+move.To.Rank)/2, move.From.File))
	}

	if castling {
		relocateCastlingRook(board, move)
	}

	updateCastlingRights(board, mover, move.From, captured, move.To)

	// Handle en passant capture: the captured pawn sits beside the origin.
	if enPassant {
		board.Set(chess.Sq(move.From.Rank, move.To.File), chess.Empty)
	}

	// Handle promotion
	if move.IsPromotion() {
		board.Set(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	}

	// Update clocks
	if moverType == chess.Pawn || chess.IsOccupied(captured) || enPassant {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// ApplyCopy returns a copy of the board with the move applied, leaving
// the original untouched.
func ApplyCopy(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Copy()
	Apply(next, move)
	return next
}
