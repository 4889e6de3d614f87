package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// ParseMoveText parses coordinate notation ("e2e4", "e7e8q") into a move
// shape. It does not consult any position, so Capture is always false.
func ParseMoveText(text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	from, ok := chess.ParseCoord(text[0:2])
	if !ok {
		return chess.Move{}, fmt.Errorf("%q: bad source square: %w", text, errors.ErrInvalidMoveText)
	}
	to, ok := chess.ParseCoord(text[2:4])
	if !ok {
		return chess.Move{}, fmt.Errorf("%q: bad destination square: %w", text, errors.ErrInvalidMoveText)
	}

	m := chess.NewMove(from, to)
	if len(text) == 5 {
		promo := ConvertFENCharToPiece(text[4])
		if !chess.IsPromotionPiece(promo) {
			return chess.Move{}, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrInvalidMoveText)
		}
		m.Promotion = promo
	}
	return m, nil
}

// ParseMove resolves coordinate notation against the legal moves of the
// position and returns the matching legal move.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	shape, err := ParseMoveText(strings.ToLower(strings.TrimSpace(text)))
	if err != nil {
		return chess.Move{}, err
	}
	for _, m := range GenerateLegal(board) {
		if m.From == shape.From && m.To == shape.To && m.Promotion == shape.Promotion {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s: %w", shape, errors.ErrIllegalMove)
}

// ApplyMoves applies a sequence of coordinate-notation moves in order.
// On failure the board holds the position reached before the bad move and
// the error is a *errors.PositionError naming the ply.
func ApplyMoves(board *chess.Board, texts []string) error {
	start := BoardToFEN(board)
	for i, text := range texts {
		m, err := ParseMove(board, text)
		if err != nil {
			return &errors.PositionError{Err: err, FEN: start, Ply: i + 1, MoveText: text}
		}
		Apply(board, m)
	}
	return nil
}
