package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// mapKey translates a tcell key into either a discrete event or a movement
// key. held is true when the key moves the piece.
func mapKey(k tcell.Key, r rune) (ev core.Event, mv core.Key, held bool) {
	switch k {
	case tcell.KeyCtrlC:
		return core.EventQuit, 0, false
	case tcell.KeyEscape:
		return core.EventEscape, 0, false
	case tcell.KeyUp:
		return core.EventRotate, 0, false
	case tcell.KeyDown:
		return core.EventNone, core.KeyDown, true
	case tcell.KeyLeft:
		return core.EventNone, core.KeyLeft, true
	case tcell.KeyRight:
		return core.EventNone, core.KeyRight, true
	case tcell.KeyRune:
		switch r {
		case ' ', 'w', 'k':
			return core.EventRotate, 0, false
		case 'q':
			return core.EventEscape, 0, false
		case 's', 'j':
			return core.EventNone, core.KeyDown, true
		case 'a', 'h':
			return core.EventNone, core.KeyLeft, true
		case 'd', 'l':
			return core.EventNone, core.KeyRight, true
		}
	}
	return core.EventNone, 0, false
}
