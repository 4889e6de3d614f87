package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// KingCapturable returns true if the opponent of defending, given the move,
// has a pseudo-legal move landing on defending's king. Only the side to
// move of a scratch copy is changed; the board itself is not touched.
// A side without a king is never capturable.
func KingCapturable(board *chess.Board, defending chess.Colour) bool {
	if _, ok := board.FindKing(defending); !ok {
		return false
	}

	scratch := *board
	scratch.ToMove = defending.Opposite()

	king := chess.MakeColouredPiece(defending, chess.King)
	for _, m := range GeneratePseudoLegal(&scratch) {
		if scratch.Get(m.To) == king {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the side to move's king is in check.
func IsInCheck(board *chess.Board) bool {
	return KingCapturable(board, board.ToMove)
}
