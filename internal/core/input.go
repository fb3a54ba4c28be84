package core

// Event is a discrete input event drained from a surface once per loop iteration.
type Event int

const (
	EventNone   Event = iota
	EventQuit         // Window or session closed
	EventEscape       // Quit key pressed (Esc, Q)
	EventRotate       // Rotate key pressed (Space, Up)
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventEscape:
		return "Escape"
	case EventRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// Key is a movement key whose held state is sampled on the input tick.
type Key int

const (
	KeyDown Key = iota
	KeyLeft
	KeyRight
)

// Keys lists the held keys in the order the input tick samples them.
var Keys = [...]Key{KeyDown, KeyLeft, KeyRight}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// HeldKeys is the set of movement keys held at the moment of sampling.
type HeldKeys struct {
	bits uint8
}

// Set marks a key as held.
func (h *HeldKeys) Set(k Key) {
	h.bits |= 1 << uint(k)
}

// Has reports whether a key is held.
func (h HeldKeys) Has(k Key) bool {
	return h.bits&(1<<uint(k)) != 0
}

// Clear releases all keys.
func (h *HeldKeys) Clear() {
	h.bits = 0
}

// Empty reports whether no key is held.
func (h HeldKeys) Empty() bool {
	return h.bits == 0
}

// Clone returns a copy of the set.
func (h HeldKeys) Clone() HeldKeys {
	return HeldKeys{bits: h.bits}
}
