package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

func TestTextSize(t *testing.T) {
	w, h := TextSize(10, 20)
	assert.Equal(t, 42, w)
	assert.Equal(t, 22, h)
}

func TestDrawFrame(t *testing.T) {
	game := tetris.New(tetris.DefaultRules())
	require.NoError(t, game.Grid().Set(0, 19, tetris.Filled))

	w, h := TextSize(10, 20)
	dst := core.NewScreen(w, h)
	p := NewPalette()
	DrawFrame(dst, game.Frame(), p, "Tetris")

	assert.Equal(t, core.Cell{Rune: '┌', Color: core.ColorGray}, dst.GetCell(0, 0))
	assert.Equal(t, core.Cell{Rune: filledRune, Color: p.Locked}, dst.GetCell(1, 20))
	assert.Equal(t, core.Cell{Rune: filledRune, Color: p.Locked}, dst.GetCell(2, 20))
	assert.Equal(t, core.Cell{Rune: emptyRune, Color: core.ColorGray}, dst.GetCell(1, 10))

	text := dst.String()
	assert.Contains(t, text, "Tetris")
	assert.Contains(t, text, "Score 0")
	assert.Contains(t, text, "Piece "+game.Pose().Kind.String())
}

func TestDrawOverlay(t *testing.T) {
	w, h := TextSize(10, 20)
	dst := core.NewScreen(w, h)
	DrawOverlay(dst, 10, "BOARD FULL", "any key exits")

	assert.Contains(t, dst.Row(7), "BOARD FULL")
	assert.Contains(t, dst.Row(8), "any key exits")
}
