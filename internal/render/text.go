package render

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

// CellWidth is the number of characters per board cell. Terminal cells are
// about twice as tall as wide.
const CellWidth = 2

const (
	emptyRune  = '·'
	filledRune = '█'
	hudGap     = 2
	hudWidth   = 18
)

// TextSize returns the character size needed for a board and its HUD.
func TextSize(boardW, boardH int) (int, int) {
	return boardW*CellWidth + 2 + hudGap + hudWidth, boardH + 2
}

// DrawFrame draws the boxed board at the top-left of dst and the HUD to its right.
func DrawFrame(dst *core.Screen, f tetris.Frame, p Palette, title string) {
	dst.Clear()
	box := core.NewRect(0, 0, f.Width*CellWidth+2, f.Height+2)
	dst.DrawBox(box, core.ColorGray)

	Paint(f, p, func(col, row int, c core.Color) {
		x, y := 1+col*CellWidth, 1+row
		if c == p.Empty {
			dst.Set(x, y, emptyRune, core.ColorGray)
			dst.Set(x+1, y, ' ', core.ColorGray)
			return
		}
		dst.Set(x, y, filledRune, c)
		dst.Set(x+1, y, filledRune, c)
	})

	hx := box.Right() + hudGap
	dst.DrawText(hx, 1, title, core.ColorYellow)
	dst.DrawText(hx, 3, fmt.Sprintf("Score %d", f.Score), p.Text)
	dst.DrawText(hx, 4, fmt.Sprintf("Lines %d", f.Lines), p.Text)
	dst.DrawText(hx, 6, "Piece", core.ColorGray)
	dst.DrawText(hx+6, 6, f.Kind.String(), p.Piece(f.Kind))
}

// DrawOverlay writes a message box over the middle of the board.
func DrawOverlay(dst *core.Screen, boardW int, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := inner + 4
	x := max((boardW*CellWidth+2-w)/2, 0)
	y := 6
	box := core.NewRect(x, y, w, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawText(x+2, y+1+i, l, core.ColorWhite)
	}
}
