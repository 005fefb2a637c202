package coordset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slepotek/gridpath/internal/grid"
)

// sorted asserts the set's storage is strictly increasing, which also
// rules out duplicates.
func sorted(t *testing.T, s *Set) {
	t.Helper()
	coords := s.Coords()
	for i := 1; i < len(coords); i++ {
		require.True(t, coords[i-1].Less(coords[i]),
			"coords[%d]=%s is not before coords[%d]=%s", i-1, coords[i-1], i, coords[i])
	}
}

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(-3) })
}

func TestAddKeepsSortedOrder(t *testing.T) {
	s := New(16)

	s.Add(grid.Coord{Row: 2, Col: 1})
	s.Add(grid.Coord{Row: 0, Col: 3})
	s.Add(grid.Coord{Row: 2, Col: 0})
	s.Add(grid.Coord{Row: 1, Col: 1})
	s.Add(grid.Coord{Row: 0, Col: 0})

	assert.Equal(t, 5, s.Len())
	sorted(t, s)
	assert.Equal(t, []grid.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 1},
	}, s.Coords())
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	s := New(8)
	c := grid.Coord{Row: 1, Col: 2}

	s.Add(c)
	s.Add(c)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(c))
}

func TestAddAtCapacityIsNoOp(t *testing.T) {
	s := New(2)
	s.Add(grid.Coord{Row: 0, Col: 0})
	s.Add(grid.Coord{Row: 0, Col: 1})

	s.Add(grid.Coord{Row: 0, Col: 2})

	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(grid.Coord{Row: 0, Col: 2}))
}

func TestRemove(t *testing.T) {
	s := New(8)
	for col := uint16(0); col < 5; col++ {
		s.Add(grid.Coord{Row: 1, Col: col})
	}

	s.Remove(grid.Coord{Row: 1, Col: 2})

	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Contains(grid.Coord{Row: 1, Col: 2}))
	sorted(t, s)

	// Removing an absent coordinate is a silent no-op.
	s.Remove(grid.Coord{Row: 9, Col: 9})
	assert.Equal(t, 4, s.Len())
}

func TestContains(t *testing.T) {
	s := New(8)
	in := grid.Coord{Row: 3, Col: 4}
	out := grid.Coord{Row: 4, Col: 3}

	assert.False(t, s.Contains(in), "empty set contains nothing")
	s.Add(in)
	assert.True(t, s.Contains(in))
	assert.False(t, s.Contains(out))
}

func TestClear(t *testing.T) {
	s := New(8)
	s.Add(grid.Coord{Row: 0, Col: 0})
	s.Add(grid.Coord{Row: 0, Col: 1})

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(grid.Coord{Row: 0, Col: 0}))

	// Reusable after a clear.
	s.Add(grid.Coord{Row: 1, Col: 1})
	assert.Equal(t, 1, s.Len())
}

func TestNewForGrid(t *testing.T) {
	g := grid.New(4, 4)
	s := NewForGrid(g)

	for row := uint16(0); row < 4; row++ {
		for col := uint16(0); col < 4; col++ {
			s.Add(grid.Coord{Row: row, Col: col})
		}
	}
	assert.Equal(t, g.Size(), s.Len(), "a grid-sized set holds every cell")
	sorted(t, s)
}
