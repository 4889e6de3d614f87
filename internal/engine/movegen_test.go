package engine

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestGeneratePseudoLegalForSquare(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "single and double push",
			fen:    InitialFEN,
			square: "e2",
			want:   []string{"e2e3", "e2e4"},
		},
		{
			name:   "double push blocked on fourth rank",
			fen:    "rnbqkbnr/pppppppp/8/8/4n3/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			square: "e2",
			want:   []string{"e2e3"},
		},
		{
			name:   "push blocked on third rank",
			fen:    "rnbqkbnr/pppppppp/8/8/8/4n3/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			square: "e2",
			want:   nil,
		},
		{
			name:   "knight in the corner",
			fen:    "7k/8/8/8/8/8/8/N6K w - - 0 1",
			square: "a1",
			want:   []string{"a1c2", "a1b3"},
		},
		{
			name:   "rook stops at own king",
			fen:    "7k/8/8/8/8/8/8/R6K w - - 0 1",
			square: "a1",
			want: []string{
				"a1a2", "a1a3", "a1a4", "a1a5", "a1a6", "a1a7", "a1a8",
				"a1b1", "a1c1", "a1d1", "a1e1", "a1f1", "a1g1",
			},
		},
		{
			name:   "bishop captures first enemy piece",
			fen:    "7k/8/8/8/5p2/8/8/K1B5 w - - 0 1",
			square: "c1",
			want:   []string{"c1b2", "c1a3", "c1d2", "c1e3", "c1f4"},
		},
		{
			name:   "queen blocked by own pieces",
			fen:    InitialFEN,
			square: "d1",
			want:   nil,
		},
		{
			name:   "piece moves as its own colour",
			fen:    InitialFEN,
			square: "g8",
			want:   []string{"g8f6", "g8h6"},
		},
		{
			name:   "empty square",
			fen:    InitialFEN,
			square: "e4",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := GeneratePseudoLegalForSquare(board, sq(t, tt.square))
			testutil.AssertSameElements(t, got.Strings(), tt.want)
		})
	}
}

func TestGeneratePseudoLegalForSquare_OffBoard(t *testing.T) {
	board := NewInitialBoard()
	if got := GeneratePseudoLegalForSquare(board, chess.Sq(-1, 3)); got != nil {
		t.Errorf("off-board square yielded %v", got.Strings())
	}
	if got := GeneratePseudoLegalForSquare(board, chess.Sq(3, 4)); got != nil {
		t.Errorf("empty square yielded %v", got.Strings())
	}
}

func TestPromotionOrder(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "white push",
			fen:    "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			square: "a7",
			want:   []string{"a7a8q", "a7a8b", "a7a8n", "a7a8r"},
		},
		{
			name:   "white push and capture",
			fen:    "1r5k/P7/8/8/8/8/8/K7 w - - 0 1",
			square: "a7",
			want: []string{
				"a7a8q", "a7a8b", "a7a8n", "a7a8r",
				"a7b8q", "a7b8b", "a7b8n", "a7b8r",
			},
		},
		{
			name:   "black push",
			fen:    "7k/8/8/8/8/8/p7/7K b - - 0 1",
			square: "a2",
			want:   []string{"a2a1q", "a2a1b", "a2a1n", "a2a1r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := GeneratePseudoLegalForSquare(board, sq(t, tt.square))
			testutil.AssertEqual(t, got.Strings(), tt.want)
		})
	}
}

func TestPawnCaptureFlags(t *testing.T) {
	board := mustBoard(t, "1r5k/P7/8/8/8/8/8/K7 w - - 0 1")
	for _, m := range GeneratePseudoLegalForSquare(board, sq(t, "a7")) {
		wantCapture := m.To == sq(t, "b8")
		if m.Capture != wantCapture {
			t.Errorf("%s: Capture = %v; want %v", m, m.Capture, wantCapture)
		}
	}
}

func TestEnPassantCandidates(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "white captures en passant",
			fen:    "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			square: "f5",
			want:   []string{"f5f6", "f5e6"},
		},
		{
			name:   "black captures en passant",
			fen:    "rnbqkbnr/ppppp1pp/8/8/4Pp2/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
			square: "f4",
			want:   []string{"f4f3", "f4e3"},
		},
		{
			name:   "no target recorded",
			fen:    "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 3",
			square: "f5",
			want:   []string{"f5f6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := GeneratePseudoLegalForSquare(board, sq(t, tt.square))
			testutil.AssertEqual(t, got.Strings(), tt.want)
			for _, m := range got {
				if board.IsEnPassantTarget(m.To) && !m.Capture {
					t.Errorf("%s: en passant move not flagged as capture", m)
				}
			}
		})
	}
}

func TestCastlingCandidates(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		square   string
		want     []string
		excluded []string
	}{
		{
			name:   "both sides available",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			square: "e1",
			want:   []string{"e1g1", "e1c1"},
		},
		{
			name:   "black both sides",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			square: "e8",
			want:   []string{"e8g8", "e8c8"},
		},
		{
			name:     "no rights",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1",
			square:   "e1",
			excluded: []string{"e1g1", "e1c1"},
		},
		{
			name:     "queenside path blocked on the b-file",
			fen:      "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			square:   "e1",
			want:     []string{"e1g1"},
			excluded: []string{"e1c1"},
		},
		{
			name:     "rook missing from home square",
			fen:      "r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1",
			square:   "e1",
			want:     []string{"e1c1"},
			excluded: []string{"e1g1"},
		},
		{
			name:   "candidate generated even through attacked squares",
			fen:    "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			square: "e1",
			want:   []string{"e1g1", "e1c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := GeneratePseudoLegalForSquare(board, sq(t, tt.square))
			for _, text := range tt.want {
				if !containsText(got, text) {
					t.Errorf("missing castling candidate %s in %v", text, got.Strings())
				}
			}
			for _, text := range tt.excluded {
				if containsText(got, text) {
					t.Errorf("unexpected castling candidate %s", text)
				}
			}
		})
	}
}

func TestGeneratePseudoLegal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"initial position", InitialFEN, 20},
		{"black to move after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 20},
		{"bare kings", "8/8/8/8/8/8/8/K6k w - - 0 1", 3},
		// The pinned bishop still has its pseudo-legal moves.
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", 4 + 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePseudoLegal(mustBoard(t, tt.fen))
			testutil.AssertEqual(t, len(got), tt.want, "moves: %v", got.Strings())
		})
	}
}

func TestGeneratePseudoLegal_OnlySideToMove(t *testing.T) {
	board := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1")
	for _, m := range GeneratePseudoLegal(board) {
		if c := chess.ExtractColour(board.Get(m.From)); c != chess.Black {
			t.Errorf("%s moves a %v piece", m, c)
		}
		target := board.Get(m.To)
		if chess.IsOccupied(target) && chess.ExtractColour(target) == chess.Black {
			t.Errorf("%s lands on its own piece", m)
		}
		if chess.IsOccupied(target) != m.Capture && !board.IsEnPassantTarget(m.To) {
			t.Errorf("%s: Capture = %v for target %v", m, m.Capture, target)
		}
	}
}

func containsText(moves chess.MoveList, text string) bool {
	for _, s := range moves.Strings() {
		if s == text {
			return true
		}
	}
	return false
}
