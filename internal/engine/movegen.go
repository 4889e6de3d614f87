package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// GeneratePseudoLegal returns every candidate move for the side to move,
// without checking whether the mover's own king is left capturable.
func GeneratePseudoLegal(board *chess.Board) chess.MoveList {
	moves := make(chess.MoveList, 0, 64)
	colour := board.ToMove
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			moves = appendPieceMoves(moves, board, chess.Sq(rank, file), piece)
		}
	}
	return moves
}

// GeneratePseudoLegalForSquare returns the candidate moves of the piece on
// the given square. The piece moves as its own colour regardless of whose
// turn it is; an empty or off-board square yields no moves.
func GeneratePseudoLegalForSquare(board *chess.Board, from chess.Coord) chess.MoveList {
	piece := board.Get(from)
	if !chess.IsOccupied(piece) {
		return nil
	}
	return appendPieceMoves(nil, board, from, piece)
}

// appendPieceMoves dispatches on the piece type.
func appendPieceMoves(moves chess.MoveList, board *chess.Board, from chess.Coord, piece chess.Piece) chess.MoveList {
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, colour)
	case chess.Knight:
		return appendStepMoves(moves, board, from, colour, knightOffsets)
	case chess.Bishop:
		return appendSlidingMoves(moves, board, from, colour, diagonalDirs)
	case chess.Rook:
		return appendSlidingMoves(moves, board, from, colour, straightDirs)
	case chess.Queen:
		return appendSlidingMoves(moves, board, from, colour, allDirs)
	case chess.King:
		moves = appendStepMoves(moves, board, from, colour, kingOffsets)
		return appendCastlingMoves(moves, board, from, colour)
	}
	return moves
}

// classifyTarget reports whether a piece of the given colour may land on
// sq, and if so whether doing so captures.
func classifyTarget(board *chess.Board, sq chess.Coord, colour chess.Colour) (valid, capture bool) {
	target := board.Get(sq)
	switch {
	case target == chess.Off:
		return false, false
	case target == chess.Empty:
		return true, false
	case chess.ExtractColour(target) == colour:
		return false, false
	default:
		return true, true
	}
}
