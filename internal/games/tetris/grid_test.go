package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridStartsEmpty(t *testing.T) {
	g := NewGrid(10, 20)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Zero(t, g.Count())
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(10, 20)
	require.NoError(t, g.Set(9, 19, Filled))
	assert.Equal(t, Filled, g.Get(9, 19))
	assert.True(t, g.Occupied(9, 19))
	assert.False(t, g.Occupied(0, 0))
}

func TestGridOutOfRangeWriteIsDropped(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
	}{
		{"negative column", -1, 5},
		{"column past width", 10, 5},
		{"above the board", 3, -1},
		{"below the board", 3, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(10, 20)
			err := g.Set(tc.col, tc.row, Filled)
			require.ErrorIs(t, err, ErrOutOfRange)
			assert.Zero(t, g.Count())
			assert.Equal(t, Empty, g.Get(tc.col, tc.row))
		})
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	require.NoError(t, g.Set(1, 1, Filled))

	c := g.Clone()
	require.NoError(t, c.Set(2, 2, Filled))

	assert.Equal(t, 1, g.Count())
	assert.Equal(t, 2, c.Count())
}

func fillRow(t *testing.T, g *Grid, row int, except ...int) {
	t.Helper()
	skip := make(map[int]bool)
	for _, c := range except {
		skip[c] = true
	}
	for col := 0; col < g.Width(); col++ {
		if skip[col] {
			continue
		}
		require.NoError(t, g.Set(col, row, Filled))
	}
}

func TestClearRows(t *testing.T) {
	t.Run("single full row", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(t, g, 19)
		require.NoError(t, g.Set(4, 18, Filled))

		assert.Equal(t, 1, ClearRows(g))
		assert.True(t, g.Occupied(4, 19))
		assert.Equal(t, 1, g.Count())
	})

	t.Run("stacked full rows shift content by k", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(t, g, 17)
		fillRow(t, g, 18)
		fillRow(t, g, 19)
		require.NoError(t, g.Set(0, 16, Filled))
		require.NoError(t, g.Set(7, 15, Filled))

		assert.Equal(t, 3, ClearRows(g))
		assert.True(t, g.Occupied(0, 19))
		assert.True(t, g.Occupied(7, 18))
		assert.Equal(t, 2, g.Count())
		for row := 0; row < 3; row++ {
			for col := 0; col < 10; col++ {
				assert.False(t, g.Occupied(col, row), "(%d, %d) should be empty", col, row)
			}
		}
	})

	t.Run("interleaved full rows", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(t, g, 19)
		require.NoError(t, g.Set(2, 18, Filled))
		fillRow(t, g, 17)

		assert.Equal(t, 2, ClearRows(g))
		assert.True(t, g.Occupied(2, 19))
		assert.Equal(t, 1, g.Count())
	})

	t.Run("incomplete row is kept", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(t, g, 19, 9)

		assert.Zero(t, ClearRows(g))
		assert.Equal(t, 9, g.Count())
	})

	t.Run("top row is never scanned", func(t *testing.T) {
		g := NewGrid(10, 20)
		fillRow(t, g, 0)

		assert.Zero(t, ClearRows(g))
		assert.Equal(t, 10, g.Count())
	})
}
