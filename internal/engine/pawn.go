package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// appendPawnMoves adds pushes, double pushes, captures and en passant
// captures for the pawn on from. Moves reaching the last rank are expanded
// into one move per promotion piece.
func appendPawnMoves(moves chess.MoveList, board *chess.Board, from chess.Coord, colour chess.Colour) chess.MoveList {
	dir := chess.PawnDirection(colour)

	// Forward move
	single := from.Offset(dir, 0)
	if board.Get(single) == chess.Empty {
		moves = appendPawnMove(moves, from, single, false, colour)

		// Double push from starting rank
		if from.Rank == chess.PawnStartRank(colour) {
			double := from.Offset(2*dir, 0)
			if board.Get(double) == chess.Empty {
				moves = appendPawnMove(moves, from, double, false, colour)
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to := from.Offset(dir, df)
		target := board.Get(to)
		switch {
		case target == chess.Off:
			continue
		case target != chess.Empty:
			if chess.ExtractColour(target) != colour {
				moves = appendPawnMove(moves, from, to, true, colour)
			}
		case board.IsEnPassantTarget(to) && from.Rank == enPassantCaptureRank(colour):
			moves = appendPawnMove(moves, from, to, true, colour)
		}
	}
	return moves
}

// appendPawnMove adds a single pawn move, expanding promotions in the order
// queen, bishop, knight, rook.
func appendPawnMove(moves chess.MoveList, from, to chess.Coord, capture bool, colour chess.Colour) chess.MoveList {
	if to.Rank != chess.PromotionRank(colour) {
		return append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty, Capture: capture})
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promo, Capture: capture})
	}
	return moves
}

// enPassantCaptureRank returns the rank a pawn must stand on to capture en passant.
func enPassantCaptureRank(colour chess.Colour) int {
	if colour == chess.White {
		return 4
	}
	return 3
}

// isDoublePush reports whether a pawn move from one square to another
// advances two ranks.
func isDoublePush(from, to chess.Coord) bool {
	return from.File == to.File && abs(to.Rank-from.Rank) == 2
}
