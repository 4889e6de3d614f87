package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.Castling != NoCastling {
			t.Errorf("Castling = %v; want none", b.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for rank := 0; rank < BoardSize; rank++ {
			for file := 0; file < BoardSize; file++ {
				if got := b.Get(Sq(rank, file)); got != Empty {
					t.Errorf("Get(%s) = %v; want Empty", Sq(rank, file), got)
				}
			}
		}
	})

	t.Run("off-board squares are Off", func(t *testing.T) {
		for _, sq := range []Coord{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8), Sq(-2, 9)} {
			if got := b.Get(sq); got != Off {
				t.Errorf("Get(%v) = %v; want Off", sq, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"f1", W(Bishop)},
		{"g1", W(Knight)},
		{"h1", W(Rook)},
		{"e2", W(Pawn)},
		{"e4", Empty},
		{"d7", B(Pawn)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"h8", B(Rook)},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq, ok := ParseCoord(tt.square)
			if !ok {
				t.Fatalf("ParseCoord(%q) failed", tt.square)
			}
			if got := b.Get(sq); got != tt.want {
				t.Errorf("Get(%s) = %d; want %d", tt.square, got, tt.want)
			}
		})
	}

	if b.Castling != AllCastling {
		t.Errorf("Castling = %v; want KQkq", b.Castling)
	}
	if n := b.CountPieces(W(Pawn)); n != 8 {
		t.Errorf("white pawns = %d; want 8", n)
	}
	if n := b.CountPieces(B(King)); n != 1 {
		t.Errorf("black kings = %d; want 1", n)
	}
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()
	sq := Sq(3, 4)

	b.Set(sq, B(Knight))
	if got := b.Get(sq); got != B(Knight) {
		t.Errorf("Get(e4) = %d; want black knight", got)
	}

	// Writes off the board are ignored.
	b.Set(Sq(8, 8), W(Queen))
	if n := b.CountPieces(W(Queen)); n != 0 {
		t.Errorf("off-board Set placed %d queens", n)
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	b.SetEnPassant(Sq(2, 4))

	c := b.Copy()
	c.Set(Sq(1, 4), Empty)
	c.Castling.Revoke(WhiteKingside)
	c.ClearEnPassant()
	c.ToMove = Black

	if b.Get(Sq(1, 4)) != W(Pawn) {
		t.Error("modifying copy changed original squares")
	}
	if !b.Castling.Has(WhiteKingside) {
		t.Error("modifying copy changed original castling rights")
	}
	if !b.IsEnPassantTarget(Sq(2, 4)) {
		t.Error("modifying copy changed original en passant target")
	}
	if b.ToMove != White {
		t.Error("modifying copy changed original side to move")
	}

	// Plain assignment is an equally independent copy.
	v := *b
	v.Squares[0][0] = Empty
	if b.Squares[0][0] != W(Rook) {
		t.Error("value copy shares storage with original")
	}
}

func TestEnPassantTarget(t *testing.T) {
	b := NewBoard()
	if b.IsEnPassantTarget(Sq(0, 0)) {
		t.Error("new board should have no en passant target")
	}

	b.SetEnPassant(Sq(5, 3))
	if !b.IsEnPassantTarget(Sq(5, 3)) {
		t.Error("d6 should be the en passant target")
	}
	if b.IsEnPassantTarget(Sq(5, 4)) {
		t.Error("e6 should not be the en passant target")
	}

	b.ClearEnPassant()
	if b.EnPassant || b.IsEnPassantTarget(Sq(5, 3)) {
		t.Error("ClearEnPassant left a target")
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoard()
	if _, ok := b.FindKing(White); ok {
		t.Error("empty board should have no king")
	}

	b.SetupInitialPosition()
	tests := []struct {
		colour Colour
		want   Coord
	}{
		{White, Sq(0, 4)},
		{Black, Sq(7, 4)},
	}
	for _, tt := range tests {
		got, ok := b.FindKing(tt.colour)
		if !ok || got != tt.want {
			t.Errorf("FindKing(%v) = %v, %v; want %v, true", tt.colour, got, ok, tt.want)
		}
	}
}
