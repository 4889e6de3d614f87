// Package search picks a move by fixed-depth negamax over material.
package search

import (
	"math"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 4

// MateScore is the score of a side that has been checkmated, negated.
// -MateScore is one above math.MinInt32, so negating either cannot overflow.
const MateScore = math.MaxInt32

// Piece values in centipawns.
var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   100,
	chess.Knight: 350,
	chess.Bishop: 350,
	chess.Rook:   525,
	chess.Queen:  1000,
	chess.King:   1000000,
}

// PieceValue returns the material value of a piece type.
func PieceValue(p chess.Piece) int {
	if p >= chess.NumPieceValues {
		return 0
	}
	return pieceValues[p]
}

// Evaluate returns the material balance from the side to move's view.
func Evaluate(board *chess.Board) int {
	total := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if !chess.IsOccupied(piece) {
				continue
			}
			value := PieceValue(chess.ExtractPiece(piece))
			if chess.ExtractColour(piece) == board.ToMove {
				total += value
			} else {
				total -= value
			}
		}
	}
	return total
}

// Result is the outcome of a search.
type Result struct {
	Move        chess.Move
	Found       bool // false when the root has no legal moves
	Score       int
	Evaluations int
}

// Searcher runs fixed-depth searches. Evaluations accumulates over every
// search the Searcher runs.
type Searcher struct {
	Depth       int
	Evaluations int
}

// NewSearcher creates a searcher; a depth below 1 uses DefaultDepth.
func NewSearcher(depth int) *Searcher {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Searcher{Depth: depth}
}

// Search returns the best move for the side to move. Among equal scores
// the first move in generation order wins.
func (s *Searcher) Search(board *chess.Board) Result {
	depth := s.Depth
	if depth < 1 {
		depth = DefaultDepth
	}

	before := s.Evaluations
	var result Result
	result.Score, result.Move, result.Found = s.negamax(board, depth)
	result.Evaluations = s.Evaluations - before
	return result
}

// negamax scores board from the side to move's view and reports the best
// move found at this node.
func (s *Searcher) negamax(board *chess.Board, depth int) (int, chess.Move, bool) {
	if depth == 0 {
		s.Evaluations++
		return Evaluate(board), chess.Move{}, false
	}

	moves := engine.GenerateLegal(board)
	if len(moves) == 0 {
		if engine.IsInCheck(board) {
			return -MateScore, chess.Move{}, false
		}
		return 0, chess.Move{}, false
	}

	bestScore := math.MinInt
	var best chess.Move
	for _, m := range moves {
		next := *board
		engine.Apply(&next, m)
		score, _, _ := s.negamax(&next, depth-1)
		score = -score
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return bestScore, best, true
}
