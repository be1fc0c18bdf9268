package tetris

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Field is the playing field: height rows of width cells, row 0 at the
// bottom. Each row is a fixed-width occupancy bit vector.
type Field struct {
	width  int
	height int
	rows   []*bitset.BitSet
}

// NewField creates an empty field.
func NewField(width, height int) *Field {
	f := &Field{
		width:  width,
		height: height,
		rows:   make([]*bitset.BitSet, height),
	}
	for i := range f.rows {
		f.rows[i] = bitset.New(uint(width))
	}
	return f
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.height
}

// Occupied reports whether the cell at (row, col) is filled.
// It panics if the cell is outside the field.
func (f *Field) Occupied(row, col int) bool {
	f.mustContain(row, col)
	return f.rows[row].Test(uint(col))
}

// SetOccupied fills the cell at (row, col).
// It panics if the cell is outside the field.
func (f *Field) SetOccupied(row, col int) {
	f.mustContain(row, col)
	f.rows[row].Set(uint(col))
}

// IsRowFull reports whether every cell of the row is filled.
func (f *Field) IsRowFull(row int) bool {
	return f.rows[row].Count() == uint(f.width)
}

// ClearRow removes the row and appends an empty one at the top, so every
// row above the removed one drops by one index and the height is unchanged.
func (f *Field) ClearRow(row int) {
	copy(f.rows[row:], f.rows[row+1:])
	f.rows[f.height-1] = bitset.New(uint(f.width))
}

// Snapshot returns an immutable copy of the field's occupancy.
func (f *Field) Snapshot() Grid {
	g := newGrid(f.width, f.height)
	for r, bits := range f.rows {
		for c, ok := bits.NextSet(0); ok && c < uint(f.width); c, ok = bits.NextSet(c + 1) {
			g.cells[r*f.width+int(c)] = true
		}
	}
	return g
}

func (f *Field) contains(row, col int) bool {
	return row >= 0 && row < f.height && col >= 0 && col < f.width
}

func (f *Field) mustContain(row, col int) {
	if !f.contains(row, col) {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d field", row, col, f.width, f.height))
	}
}

// Grid is a read-only occupancy image of the field, row 0 at the bottom.
type Grid struct {
	width  int
	height int
	cells  []bool
}

func newGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Occupied reports whether the cell at (row, col) is filled.
// Cells outside the grid are empty.
func (g Grid) Occupied(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.cells[row*g.width+col]
}

// Count returns the number of filled cells.
func (g Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// String draws the grid top row first, '#' for filled and '.' for empty.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := g.height - 1; r >= 0; r-- {
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// set fills a cell; cells outside the grid are ignored.
func (g Grid) set(row, col int) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	g.cells[row*g.width+col] = true
}
