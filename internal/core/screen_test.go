package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 22)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 22 {
		t.Errorf("Height() = %d, expected 22", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '█', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != '█' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red block", got)
	}

	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0) != blank || s.GetCell(100, 0) != blank {
		t.Error("out of bounds GetCell should return a blank cell")
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds Set should be ignored")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(2, 0, "SCORE", ColorWhite)

	if got := s.Row(0); got != "  SCORE " {
		t.Errorf("Row(0) = %q, expected %q", got, "  SCORE ")
	}

	s.DrawText(6, 0, "LONG", ColorWhite)
	if got := s.Row(0); got != "  SCORLO" {
		t.Errorf("Row(0) after clipped text = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	want := []string{"┌──┐", "│  │", "└──┘"}
	got := strings.Split(s.String(), "\n")
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawRect(NewRect(1, 1, 5, 5), '#', ColorBlue)

	if s.GetCell(0, 0) != blank {
		t.Error("DrawRect should not touch cells outside the rect")
	}
	if c := s.GetCell(2, 2); c.Rune != '#' || c.Color != ColorBlue {
		t.Errorf("GetCell(2, 2) = %+v, expected blue '#'", c)
	}
}
