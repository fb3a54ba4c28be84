package render

import "github.com/vovakirdan/tui-blocks/internal/core"

// Layout places board cells on a pixel surface.
type Layout struct {
	CellSize int // Side of a cell in pixels
	Padding  int // Gap between neighbouring cells
	OriginX  int // Left edge of column 0
	OriginY  int // Top edge of row 0
}

// DefaultLayout returns 20px cells with 1px gaps, 20px from the top-left corner.
func DefaultLayout() Layout {
	return Layout{CellSize: 20, Padding: 1, OriginX: 20, OriginY: 20}
}

// CellRect returns the pixel rectangle of the cell at (col, row).
func (l Layout) CellRect(col, row int) core.Rect {
	step := l.CellSize + l.Padding
	return core.NewRect(l.OriginX+col*step, l.OriginY+row*step, l.CellSize, l.CellSize)
}

// BoardRect returns the pixel rectangle covering a cols×rows board.
func (l Layout) BoardRect(cols, rows int) core.Rect {
	if cols <= 0 || rows <= 0 {
		return core.NewRect(l.OriginX, l.OriginY, 0, 0)
	}
	return l.CellRect(0, 0).Union(l.CellRect(cols-1, rows-1))
}
