package maze

import (
	"fmt"
	"strings"
)

// Grid is a finished level: a row-major array of cell kinds.
// The entry is (0,0) and the exit is (Rows-1, Cols-1).
type Grid struct {
	rows  int
	cols  int
	cells [][]CellKind
}

// NewGrid allocates a rows x cols grid filled with kind.
func NewGrid(rows, cols int, kind CellKind) (*Grid, error) {
	if min(rows, cols) <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return newGrid(rows, cols, kind), nil
}

// GridFromKinds builds a grid from a rectangular kind matrix. The matrix is copied.
func GridFromKinds(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}

	g := newGrid(len(kinds), len(kinds[0]), Passage)
	for r, row := range kinds {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(row), g.cols)
		}
		for c, kind := range row {
			if !kind.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownKind, kind, r, c)
			}
			g.cells[r][c] = kind
		}
	}
	return g, nil
}

func newGrid(rows, cols int, kind CellKind) *Grid {
	cells := make([][]CellKind, rows)
	for r := range cells {
		cells[r] = make([]CellKind, cols)
		for c := range cells[r] {
			cells[r][c] = kind
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Entry returns the fixed entry position (0,0).
func (g *Grid) Entry() CellPosition { return CellPosition{Row: 0, Col: 0} }

// Exit returns the fixed exit position (Rows-1, Cols-1).
func (g *Grid) Exit() CellPosition { return CellPosition{Row: g.rows - 1, Col: g.cols - 1} }

// InBound checks whether the position lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// KindAt returns the kind of the cell at (row, col). Positions outside the
// grid read as Wall.
func (g *Grid) KindAt(row, col int) CellKind {
	if !g.InBound(row, col) {
		return Wall
	}
	return g.cells[row][col]
}

// SetKind changes the kind of the cell at (row, col). It is used by the
// movement handler when a pickup is consumed.
func (g *Grid) SetKind(row, col int, kind CellKind) error {
	if !g.InBound(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	g.cells[row][col] = kind
	return nil
}

// Kinds returns a copy of the underlying kind matrix.
func (g *Grid) Kinds() [][]CellKind {
	out := make([][]CellKind, g.rows)
	for r := range g.cells {
		out[r] = append([]CellKind(nil), g.cells[r]...)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Kinds()}
}

// Count returns how many cells are of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, row := range g.cells {
		for _, k := range row {
			if k == kind {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

var kindSymbols = map[CellKind]byte{
	Passage:     ' ',
	Wall:        '#',
	Collectible: '+',
	Hazard:      '!',
	Obstacle:    'X',
	Minidot:     '.',
}

// String provides a textual representation of the grid, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", g.cols) + "+\n")
	for _, row := range g.cells {
		b.WriteByte('|')
		for _, k := range row {
			b.WriteByte(kindSymbols[k])
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", g.cols) + "+\n")
	return b.String()
}
