package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// appendCastlingMoves adds the castling candidates of the king on from.
// A candidate needs the matching right, the king and rook on their home
// squares, and every square strictly between them empty. Whether the king
// passes through an attacked square is decided by the legality filter.
func appendCastlingMoves(moves chess.MoveList, board *chess.Board, from chess.Coord, colour chess.Colour) chess.MoveList {
	rank := chess.HomeRank(colour)
	if from != chess.Sq(rank, chess.KingHomeFile) {
		return moves
	}

	rook := chess.MakeColouredPiece(colour, chess.Rook)
	sides := []struct {
		right    chess.CastlingRights
		rookFile int
	}{
		{chess.KingsideRight(colour), chess.KingsideRookFile},
		{chess.QueensideRight(colour), chess.QueensideRookFile},
	}

	for _, side := range sides {
		if !board.Castling.Has(side.right) {
			continue
		}
		if board.Get(chess.Sq(rank, side.rookFile)) != rook {
			continue
		}
		if !isRankPathEmpty(board, rank, chess.KingHomeFile, side.rookFile) {
			continue
		}
		to := chess.Sq(rank, chess.KingHomeFile+2*sign(side.rookFile-chess.KingHomeFile))
		moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty})
	}
	return moves
}

// isRankPathEmpty checks that every square strictly between two files on a rank is empty.
func isRankPathEmpty(board *chess.Board, rank, fromFile, toFile int) bool {
	step := sign(toFile - fromFile)
	for file := fromFile + step; file != toFile; file += step {
		if board.Get(chess.Sq(rank, file)) != chess.Empty {
			return false
		}
	}
	return true
}

// isCastlingMove reports whether m, played on board, is a castling move:
// a king move with a file delta of two.
func isCastlingMove(board *chess.Board, m chess.Move) bool {
	piece := board.Get(m.From)
	return chess.IsOccupied(piece) &&
		chess.ExtractPiece(piece) == chess.King &&
		m.From.Rank == m.To.Rank &&
		abs(m.To.File-m.From.File) == 2
}

// relocateCastlingRook moves the rook that accompanies a castling king to
// the square adjacent to the king's destination.
func relocateCastlingRook(board *chess.Board, m chess.Move) {
	rank := m.From.Rank
	var rookFrom, rookTo chess.Coord
	if m.To.File > m.From.File {
		rookFrom = chess.Sq(rank, chess.KingsideRookFile)
		rookTo = chess.Sq(rank, m.To.File-1)
	} else {
		rookFrom = chess.Sq(rank, chess.QueensideRookFile)
		rookTo = chess.Sq(rank, m.To.File+1)
	}

	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(rookTo, rook)
}

// rookHomeRight returns the castling right tied to a rook of the given
// colour standing on sq, or NoCastling if sq is not one of its home squares.
func rookHomeRight(colour chess.Colour, sq chess.Coord) chess.CastlingRights {
	if sq.Rank != chess.HomeRank(colour) {
		return chess.NoCastling
	}
	switch sq.File {
	case chess.KingsideRookFile:
		return chess.KingsideRight(colour)
	case chess.QueensideRookFile:
		return chess.QueensideRight(colour)
	}
	return chess.NoCastling
}

// updateCastlingRights revokes rights after a move: a king move clears both
// of its colour's flags, a rook leaving a home square clears that side's
// flag, and a rook captured on a home square clears its owner's flag.
func updateCastlingRights(board *chess.Board, mover chess.Piece, from chess.Coord, captured chess.Piece, to chess.Coord) {
	colour := chess.ExtractColour(mover)
	switch chess.ExtractPiece(mover) {
	case chess.King:
		board.Castling.Revoke(chess.KingsideRight(colour) | chess.QueensideRight(colour))
	case chess.Rook:
		board.Castling.Revoke(rookHomeRight(colour, from))
	}

	if chess.IsOccupied(captured) && chess.ExtractPiece(captured) == chess.Rook {
		board.Castling.Revoke(rookHomeRight(chess.ExtractColour(captured), to))
	}
}

// castlingTransitSafe checks that the king's start square, the square it
// crosses and its destination are each individually safe. Each square is
// tested by a hypothetical plain king move to it on a board copy.
func castlingTransitSafe(board *chess.Board, m chess.Move) bool {
	colour := board.ToMove
	step := sign(m.To.File - m.From.File)
	for file := m.From.File; ; file += step {
		if !kingSquareSafe(board, m.From, chess.Sq(m.From.Rank, file), colour) {
			return false
		}
		if file == m.To.File {
			break
		}
	}
	return true
}

// kingSquareSafe moves the king from one square to another on a scratch
// copy, without any castling side effects, and reports whether it survives.
func kingSquareSafe(board *chess.Board, from, to chess.Coord, colour chess.Colour) bool {
	scratch := *board
	king := scratch.Get(from)
	scratch.Set(from, chess.Empty)
	scratch.Set(to, king)
	scratch.ClearEnPassant()
	scratch.ToMove = colour.Opposite()
	return !KingCapturable(&scratch, colour)
}
