package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRect(w, h int) *WalkabilityMap {
	m := NewWalkabilityMap()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetWalkable(Cell{X: x, Y: y}, true)
		}
	}
	return m
}

func TestFreshMapIsClosed(t *testing.T) {
	m := NewWalkabilityMap()
	for _, c := range []Cell{{0, 0}, {1, 0}, {-5, 7}, {1000, -1000}} {
		assert.False(t, m.IsWalkable(c), "cell %s", c)
	}
	assert.False(t, m.IsWalkableAt(Position{X: 0.2, Y: -0.3}))

	var nilMap *WalkabilityMap
	assert.False(t, nilMap.IsWalkable(Cell{}))
	assert.Empty(t, nilMap.WalkableNeighbours(Cell{}))
}

func TestSetWalkableOverwrites(t *testing.T) {
	m := NewWalkabilityMap()
	c := Cell{X: 3, Y: 2}

	m.SetWalkable(c, true)
	m.SetWalkable(c, false)
	assert.False(t, m.IsWalkable(c))

	m.SetWalkable(c, true)
	assert.True(t, m.IsWalkable(c))
	assert.Equal(t, 1, m.Len())
}

func TestIsWalkableAtRoundsToNearestCell(t *testing.T) {
	m := NewWalkabilityMap()
	m.SetWalkable(Cell{X: 1, Y: 1}, true)

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"centre", Position{X: 1, Y: 1}, true},
		{"inside_low", Position{X: 0.51, Y: 0.6}, true},
		{"inside_high", Position{X: 1.49, Y: 1.2}, true},
		{"half_rounds_up", Position{X: 1.5, Y: 1}, false},
		{"neighbour", Position{X: 0.4, Y: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.IsWalkableAt(tc.pos))
		})
	}
}

func TestWalkableNeighboursOrderAndFilter(t *testing.T) {
	m := openRect(3, 3)
	m.SetWalkable(Cell{X: 2, Y: 1}, false)

	got := m.WalkableNeighbours(Cell{X: 1, Y: 1})
	assert.Equal(t, []Cell{{1, 2}, {1, 0}, {0, 1}}, got)

	// Diagonals are never neighbours.
	corner := m.WalkableNeighbours(Cell{X: 0, Y: 0})
	assert.ElementsMatch(t, []Cell{{0, 1}, {1, 0}}, corner)
}

func TestWalkableNeighboursSymmetric(t *testing.T) {
	m := openRect(4, 4)
	m.SetWalkable(Cell{X: 1, Y: 2}, false)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := Cell{X: x, Y: y}
			if !m.IsWalkable(a) {
				continue
			}
			for _, b := range m.WalkableNeighbours(a) {
				require.Contains(t, m.WalkableNeighbours(b), a, "%s -> %s", a, b)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	m := NewWalkabilityMap()
	_, _, ok := m.Bounds()
	assert.False(t, ok)

	m.SetWalkable(Cell{X: -2, Y: 5}, true)
	m.SetWalkable(Cell{X: 4, Y: -1}, false)
	min, max, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, Cell{X: -2, Y: -1}, min)
	assert.Equal(t, Cell{X: 4, Y: 5}, max)
}
