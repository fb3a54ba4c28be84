package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		pose  Pose
		setup func(*Grid)
		want  bool
	}{
		{"centered on empty board", Pose{KindT, Rot0, 5, 10}, nil, true},
		{"left wall", Pose{KindSquare, Rot0, -1, 10}, nil, false},
		{"right wall", Pose{KindSquare, Rot0, 9, 10}, nil, false},
		{"floor", Pose{KindSquare, Rot0, 4, 19}, nil, false},
		{"resting on floor", Pose{KindSquare, Rot0, 4, 18}, nil, true},
		{"above the board", Pose{KindLong, Rot90, 5, -3}, nil, true},
		{
			"overlaps locked cell",
			Pose{KindSquare, Rot0, 4, 10},
			func(g *Grid) { _ = g.Set(5, 11, Filled) },
			false,
		},
		{
			"locked cell in the top row is ignored",
			Pose{KindSquare, Rot0, 4, 0},
			func(g *Grid) { _ = g.Set(4, 0, Filled) },
			true,
		},
		{
			"locked cell in row one is checked",
			Pose{KindSquare, Rot0, 4, 0},
			func(g *Grid) { _ = g.Set(4, 1, Filled) },
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(10, 20)
			if tc.setup != nil {
				tc.setup(g)
			}
			assert.Equal(t, tc.want, Valid(g, tc.pose))
		})
	}
}

func TestValidIsPure(t *testing.T) {
	g := NewGrid(10, 20)
	require.NoError(t, g.Set(3, 3, Filled))
	before := g.Clone()

	Valid(g, Pose{KindLong, Rot0, 3, 3})
	Valid(g, Pose{KindJ, Rot180, -4, 40})

	assert.Equal(t, before, g)
}
