package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestRectUnion(t *testing.T) {
	got := NewRect(20, 20, 20, 20).Union(NewRect(209, 419, 20, 20))
	want := NewRect(20, 20, 209, 419)
	if got != want {
		t.Errorf("Union() = %+v, expected %+v", got, want)
	}
}

func TestHeldKeys(t *testing.T) {
	var h HeldKeys
	if !h.Empty() {
		t.Fatal("zero HeldKeys should be empty")
	}

	h.Set(KeyLeft)
	h.Set(KeyDown)
	if !h.Has(KeyLeft) || !h.Has(KeyDown) || h.Has(KeyRight) {
		t.Errorf("Has() mismatch after Set: %+v", h)
	}

	c := h.Clone()
	h.Clear()
	if !h.Empty() {
		t.Error("Clear() should release every key")
	}
	if !c.Has(KeyLeft) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDark, "#292929"},
		{ColorYellow, "#F6FA70"},
		{ColorRed, "#FF0060"},
		{ColorGreen, "#00DFA2"},
		{ColorBlue, "#0079FF"},
		{Color(200), "#FFFFFF"},
	}
	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("Color(%d).Hex() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}

func TestEventString(t *testing.T) {
	if EventEscape.String() != "Escape" || Event(99).String() != "Unknown" {
		t.Error("Event.String() mismatch")
	}
}
