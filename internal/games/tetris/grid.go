package tetris

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a grid write falls outside the board.
var ErrOutOfRange = errors.New("tetris: cell out of range")

// Empty is the value of an unoccupied cell. Any other value is occupied.
const Empty = 0

// Filled is the value freeze writes into locked cells.
const Filled = 1

// Grid is the W×H board of locked cells, addressed by (column, row) with
// row 0 at the top. Cells are stored densely, row-major.
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid creates a zeroed grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col, row) addresses a cell of the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Get returns the cell value. Out-of-range reads return Empty.
func (g *Grid) Get(col, row int) int {
	if !g.InBounds(col, row) {
		return Empty
	}
	return g.cells[row*g.width+col]
}

// Set writes a cell value. An out-of-range write is dropped and reported.
func (g *Grid) Set(col, row, value int) error {
	if !g.InBounds(col, row) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, col, row, g.width, g.height)
	}
	g.cells[row*g.width+col] = value
	return nil
}

// Occupied reports whether the cell holds a locked block.
func (g *Grid) Occupied(col, row int) bool {
	return g.Get(col, row) != Empty
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v != Empty {
			n++
		}
	}
	return n
}
