package chess

// Board represents a chess board with all state needed for move generation.
// It is a plain value: assigning or copying a Board yields an independent
// position with no shared storage.
type Board struct {
	// The board squares, indexed [rank][file].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare holds the
	// square a capturing pawn would land on.
	EnPassant bool
	EPSquare  Coord

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	b.Clear()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b.Squares[rank][file] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.EPSquare = Coord{}
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Get returns the piece at the given square, or Off if the square is not
// on the board.
func (b *Board) Get(sq Coord) Piece {
	if !sq.OnBoard() {
		return Off
	}
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Coord, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Rank][sq.File] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// IsEnPassantTarget reports whether sq is the current en passant target.
func (b *Board) IsEnPassantTarget(sq Coord) bool {
	return b.EnPassant && b.EPSquare == sq
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Coord{}
}

// SetEnPassant records sq as the en passant target.
func (b *Board) SetEnPassant(sq Coord) {
	b.EnPassant = true
	b.EPSquare = sq
}

// FindKing returns the square of the given colour's king.
// The second result is false if no such king is on the board.
func (b *Board) FindKing(colour Colour) (Coord, bool) {
	king := MakeColouredPiece(colour, King)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file] == king {
				return Coord{Rank: rank, File: file}, true
			}
		}
	}
	return Coord{}, false
}

// CountPieces returns how many pieces equal to the given coloured piece are
// on the board.
func (b *Board) CountPieces(colouredPiece Piece) int {
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file] == colouredPiece {
				n++
			}
		}
	}
	return n
}
