package chess

import "strings"

// Move is a transient value describing one move: a source and destination
// square, an optional promotion piece, and whether it captures.
type Move struct {
	From Coord
	To   Coord

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	// Capture is set when the destination holds an enemy piece or is the
	// en passant target.
	Capture bool
}

// NewMove creates a non-promoting move between two squares.
func NewMove(from, to Coord) Move {
	return Move{From: from, To: to, Promotion: Empty}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return IsPromotionPiece(m.Promotion)
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// MoveList is an ordered list of moves as produced by the generators.
type MoveList []Move

// Contains reports whether the list holds a move equal to m.
func (ml MoveList) Contains(m Move) bool {
	for _, x := range ml {
		if x == m {
			return true
		}
	}
	return false
}

// Strings returns the coordinate notation of every move, in list order.
func (ml MoveList) Strings() []string {
	out := make([]string, len(ml))
	for i, m := range ml {
		out[i] = m.String()
	}
	return out
}

// From returns the moves whose source square is sq.
func (ml MoveList) From(sq Coord) MoveList {
	var out MoveList
	for _, m := range ml {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}
