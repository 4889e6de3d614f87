package chess

// Coord is a (rank, file) pair, each in [0,7] when on the board.
// Rank 0 is White's back rank and file 0 is the a-file.
type Coord struct {
	Rank int
	File int
}

// Sq builds a coordinate from a rank and file index.
func Sq(rank, file int) Coord {
	return Coord{Rank: rank, File: file}
}

// OnBoard reports whether the coordinate lies inside the 8x8 grid.
func (c Coord) OnBoard() bool {
	return c.Rank >= 0 && c.Rank < BoardSize && c.File >= 0 && c.File < BoardSize
}

// Offset returns the coordinate shifted by the given rank and file deltas.
func (c Coord) Offset(dRank, dFile int) Coord {
	return Coord{Rank: c.Rank + dRank, File: c.File + dFile}
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coord) String() string {
	if !c.OnBoard() {
		return "??"
	}
	return string([]byte{byte(FileBase + c.File), byte(RankBase + c.Rank)})
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	c := Coord{Rank: int(s[1]) - RankBase, File: int(s[0]) - FileBase}
	if !c.OnBoard() {
		return Coord{}, false
	}
	return c, true
}

// CastlingRights is a set of four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != 0
}

// Revoke clears the given flags. Flags are never re-granted once cleared.
func (c *CastlingRights) Revoke(r CastlingRights) {
	*c &^= r
}

// KingsideRight returns the kingside flag of the given colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside flag of the given colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String returns the FEN form of the rights, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var out []byte
	if c.Has(WhiteKingside) {
		out = append(out, 'K')
	}
	if c.Has(WhiteQueenside) {
		out = append(out, 'Q')
	}
	if c.Has(BlackKingside) {
		out = append(out, 'k')
	}
	if c.Has(BlackQueenside) {
		out = append(out, 'q')
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// Home squares used by castling.
const (
	KingHomeFile      = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)
