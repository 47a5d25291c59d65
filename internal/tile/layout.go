package tile

// Width breakpoints, in terminal cells, for the responsive grid.
const (
	MediumWidth = 60
	WideWidth   = 120
)

// MaxColumns is the column count of the widest layout.
const MaxColumns = 4

// Columns returns 1 column for narrow widths, 2 for medium and 4 for wide.
func Columns(width int) int {
	switch {
	case width >= WideWidth:
		return 4
	case width >= MediumWidth:
		return 2
	default:
		return 1
	}
}

// Position is a tile's cell in the grid.
type Position struct {
	Row int
	Col int
}

// Place returns row-major positions for n tiles on a grid with columns columns.
func Place(n, columns int) []Position {
	if columns < 1 {
		columns = 1
	}
	pos := make([]Position, n)
	for i := range pos {
		pos[i] = Position{Row: i / columns, Col: i % columns}
	}
	return pos
}

// Rows returns the number of rows needed for n tiles.
func Rows(n, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return (n + columns - 1) / columns
}
