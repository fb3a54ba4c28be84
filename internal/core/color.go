package core

import (
	"fmt"
	"image/color"
)

// Color is a palette entry for a board cell or a piece.
// Terminal surfaces map it to a lipgloss or tcell color, pixel surfaces use RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorDark          // Board background
	ColorBlack         // Empty cell
	ColorYellow
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorGray
)

var rgba = [...]color.RGBA{
	ColorDefault: {0xFF, 0xFF, 0xFF, 0xFF},
	ColorDark:    {0x29, 0x29, 0x29, 0xFF},
	ColorBlack:   {0x00, 0x00, 0x00, 0xFF},
	ColorYellow:  {246, 250, 112, 0xFF},
	ColorRed:     {255, 0, 96, 0xFF},
	ColorGreen:   {0, 223, 162, 0xFF},
	ColorBlue:    {0, 121, 255, 0xFF},
	ColorWhite:   {0xFF, 0xFF, 0xFF, 0xFF},
	ColorGray:    {0x80, 0x80, 0x80, 0xFF},
}

// RGBA returns the 8-bit color value. Unknown colors fall back to ColorDefault.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(rgba) {
		return rgba[ColorDefault]
	}
	return rgba[c]
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	v := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B)
}
