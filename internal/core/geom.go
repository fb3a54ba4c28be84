// Package core provides the shared value types of the blocks engine: input
// events, held keys, colors, rectangles and the character screen buffer.
// It has no external dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in pixels or screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(other Rect) Rect {
	x0, y0 := min(r.X, other.X), min(r.Y, other.Y)
	x1, y1 := max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
