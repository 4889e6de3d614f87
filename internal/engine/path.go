package engine

// offset is a (rank, file) delta.
type offset [2]int

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([]offset{}, diagonalDirs...), straightDirs...)
)
