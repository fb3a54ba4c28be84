// Package render holds what every frontend shares to draw a Frame: the color
// palette, the board-to-pixel layout and a software rasterizer for PNG output.
package render

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

// Palette maps board content to colors. It is built once by NewPalette and
// passed by value, so renderers cannot change each other's colors.
type Palette struct {
	Background core.Color
	Empty      core.Color
	Locked     core.Color
	Text       core.Color

	pieces [tetris.KindCount]core.Color
}

// NewPalette returns the standard palette.
func NewPalette() Palette {
	return Palette{
		Background: core.ColorDark,
		Empty:      core.ColorBlack,
		Locked:     core.ColorYellow,
		Text:       core.ColorWhite,
		pieces: [tetris.KindCount]core.Color{
			tetris.KindSquare: core.ColorYellow,
			tetris.KindT:      core.ColorRed,
			tetris.KindLong:   core.ColorGreen,
			tetris.KindS:      core.ColorBlue,
			tetris.KindZ:      core.ColorYellow,
			tetris.KindJ:      core.ColorRed,
			tetris.KindL:      core.ColorGreen,
		},
	}
}

// Piece returns the color of the active piece of kind k.
func (p Palette) Piece(k tetris.Kind) core.Color {
	if k < 0 || int(k) >= len(p.pieces) {
		return p.Locked
	}
	return p.pieces[k]
}

// Cell returns the color of a locked-grid value.
func (p Palette) Cell(value int) core.Color {
	if value == tetris.Empty {
		return p.Empty
	}
	return p.Locked
}

// Paint calls fn for every board cell in row-major order, then for every
// visible cell of the active piece, with the color it should be drawn in.
func Paint(f tetris.Frame, p Palette, fn func(col, row int, c core.Color)) {
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			fn(col, row, p.Cell(f.Cell(col, row)))
		}
	}
	active := p.Piece(f.Kind)
	for _, pt := range f.VisibleActive() {
		fn(pt.X, pt.Y, active)
	}
}
