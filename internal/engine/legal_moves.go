package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// GenerateLegal returns the legal moves for the side to move, in the order
// the pseudo-legal generator produced them.
func GenerateLegal(board *chess.Board) chess.MoveList {
	candidates := GeneratePseudoLegal(board)
	legal := make(chess.MoveList, 0, len(candidates))
	for _, m := range candidates {
		if isLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, m := range GeneratePseudoLegal(board) {
		if isLegal(board, m) {
			return true
		}
	}
	return false
}

// isLegal tests one pseudo-legal candidate. Castling moves must also keep
// the king safe on every square it passes through.
func isLegal(board *chess.Board, m chess.Move) bool {
	if isCastlingMove(board, m) && !castlingTransitSafe(board, m) {
		return false
	}
	return tryMove(board, m)
}

// tryMove makes a move on a copied board and checks that it does not leave
// the mover's king capturable.
func tryMove(board *chess.Board, m chess.Move) bool {
	colour := board.ToMove
	testBoard := *board
	Apply(&testBoard, m)
	return !KingCapturable(&testBoard, colour)
}
