package hashing

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
)

func initialBoard() *chess.Board {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	return b
}

func TestZobristConsistency(t *testing.T) {
	if Zobrist(initialBoard()) != Zobrist(initialBoard()) {
		t.Error("identical boards produced different keys")
	}

	// Clocks are not part of the key.
	b := initialBoard()
	b.HalfmoveClock = 12
	b.MoveNumber = 30
	if Zobrist(b) != Zobrist(initialBoard()) {
		t.Error("clocks changed the key")
	}
}

func TestZobristDistinguishesState(t *testing.T) {
	base := Zobrist(initialBoard())

	tests := []struct {
		name   string
		modify func(*chess.Board)
	}{
		{"pawn moved", func(b *chess.Board) {
			b.Set(chess.Sq(1, 4), chess.Empty)
			b.Set(chess.Sq(3, 4), chess.W(chess.Pawn))
		}},
		{"piece colour", func(b *chess.Board) {
			b.Set(chess.Sq(0, 1), chess.B(chess.Knight))
		}},
		{"piece type", func(b *chess.Board) {
			b.Set(chess.Sq(0, 1), chess.W(chess.Bishop))
		}},
		{"side to move", func(b *chess.Board) {
			b.ToMove = chess.Black
		}},
		{"castling rights", func(b *chess.Board) {
			b.Castling.Revoke(chess.BlackQueenside)
		}},
		{"en passant target", func(b *chess.Board) {
			b.SetEnPassant(chess.Sq(2, 4))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := initialBoard()
			tt.modify(b)
			if Zobrist(b) == base {
				t.Errorf("key unchanged after %s", tt.name)
			}
		})
	}
}

func TestZobristEnPassantFile(t *testing.T) {
	a := initialBoard()
	a.SetEnPassant(chess.Sq(2, 3))
	b := initialBoard()
	b.SetEnPassant(chess.Sq(2, 4))
	if Zobrist(a) == Zobrist(b) {
		t.Error("en passant targets on different files share a key")
	}
}

func TestZobristTransposition(t *testing.T) {
	// 1.Nf3 Nf6 2.Nc3 and 1.Nc3 Nf6 2.Nf3 reach the same position.
	a := initialBoard()
	a.Set(chess.Sq(0, 6), chess.Empty)
	a.Set(chess.Sq(2, 5), chess.W(chess.Knight))
	a.Set(chess.Sq(0, 1), chess.Empty)
	a.Set(chess.Sq(2, 2), chess.W(chess.Knight))

	b := initialBoard()
	b.Set(chess.Sq(0, 1), chess.Empty)
	b.Set(chess.Sq(2, 2), chess.W(chess.Knight))
	b.Set(chess.Sq(0, 6), chess.Empty)
	b.Set(chess.Sq(2, 5), chess.W(chess.Knight))

	if Zobrist(a) != Zobrist(b) {
		t.Error("transposed positions produced different keys")
	}
}

func TestPerftTable(t *testing.T) {
	table := NewPerftTable(0)

	if _, ok := table.Probe(1, 3); ok {
		t.Error("empty table reported a hit")
	}

	table.Store(1, 3, 8902)
	if nodes, ok := table.Probe(1, 3); !ok || nodes != 8902 {
		t.Errorf("Probe(1, 3) = %d, %v; want 8902, true", nodes, ok)
	}
	if _, ok := table.Probe(1, 2); ok {
		t.Error("depth must be part of the key")
	}

	hits, misses := table.Stats()
	if hits != 1 || misses != 2 {
		t.Errorf("Stats() = %d, %d; want 1, 2", hits, misses)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d; want 1", table.Len())
	}

	table.Reset()
	hits, misses = table.Stats()
	if table.Len() != 0 || hits != 0 || misses != 0 {
		t.Errorf("after Reset: Len = %d, Stats = %d, %d", table.Len(), hits, misses)
	}
}

func TestPerftTable_MaxCapacity(t *testing.T) {
	table := NewPerftTable(2)
	table.Store(1, 1, 10)
	table.Store(2, 1, 20)
	if !table.IsFull() {
		t.Fatal("table with 2 of 2 entries should be full")
	}

	table.Store(3, 1, 30)
	if _, ok := table.Probe(3, 1); ok {
		t.Error("store beyond capacity was kept")
	}

	// Existing entries may still be overwritten.
	table.Store(1, 1, 11)
	if nodes, _ := table.Probe(1, 1); nodes != 11 {
		t.Errorf("Probe(1, 1) = %d; want 11", nodes)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d; want 2", table.Len())
	}

	if NewPerftTable(-5).IsFull() {
		t.Error("negative capacity should mean unlimited")
	}
}
