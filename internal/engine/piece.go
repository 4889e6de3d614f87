package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// appendStepMoves adds the moves of a knight or king from a fixed offset table.
func appendStepMoves(moves chess.MoveList, board *chess.Board, from chess.Coord, colour chess.Colour, offsets []offset) chess.MoveList {
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		valid, capture := classifyTarget(board, to, colour)
		if !valid {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty, Capture: capture})
	}
	return moves
}

// appendSlidingMoves scans outward along each direction. Empty squares are
// destinations and the scan continues; the first occupied square ends the
// ray and is a destination only when it holds an enemy piece.
func appendSlidingMoves(moves chess.MoveList, board *chess.Board, from chess.Coord, colour chess.Colour, dirs []offset) chess.MoveList {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for {
			target := board.Get(to)
			if target == chess.Off {
				break
			}
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty, Capture: true})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Promotion: chess.Empty})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
