package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

// captionGap is the space between the board and the score caption.
const captionGap = 16

// Rasterize draws a frame onto a width×height image: the background, every
// board cell, the active piece and a score caption under the board.
func Rasterize(f tetris.Frame, l Layout, p Palette, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid image size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(p.Background.RGBA()))

	var fillErr error
	Paint(f, p, func(col, row int, c core.Color) {
		if fillErr != nil {
			return
		}
		r := l.CellRect(col, row)
		dc.SetColor(c.RGBA())
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		fillErr = dc.Fill()
	})
	if fillErr != nil {
		return nil, fmt.Errorf("render: fill cell: %w", fillErr)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("render: flush: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)

	board := l.BoardRect(f.Width, f.Height)
	drawCaption(img, board.X, board.Bottom()+captionGap, Caption(f), p.Text)
	return img, nil
}

// Caption returns the score line drawn under the board.
func Caption(f tetris.Frame) string {
	parts := []string{fmt.Sprintf("SCORE %d", f.Score), fmt.Sprintf("LINES %d", f.Lines)}
	if !f.Running && f.Reason == tetris.EndBoardFull {
		parts = append(parts, "BOARD FULL")
	}
	return strings.Join(parts, "  ")
}

func drawCaption(dst draw.Image, x, y int, text string, c core.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.RGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// WritePNG rasterizes a frame and encodes it as PNG.
func WritePNG(w io.Writer, f tetris.Frame, l Layout, p Palette, width, height int) error {
	img, err := Rasterize(f, l, p, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG rasterizes a frame into a PNG file, creating parent directories.
func SavePNG(path string, f tetris.Frame, l Layout, p Palette, width, height int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: create directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := WritePNG(file, f, l, p, width, height); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}
