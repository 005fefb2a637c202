package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slepotek/gridpath/internal/coordset"
	"github.com/slepotek/gridpath/internal/grid"
	"github.com/slepotek/gridpath/internal/route"
)

// requireValidPath asserts every property a returned path must satisfy:
// exact length, contiguity, in-bounds, no blocked cells, no repeats.
func requireValidPath(t *testing.T, g *grid.Grid, r *route.Route, length int) {
	t.Helper()
	require.NotNil(t, r)
	require.Equal(t, length, r.Len())
	require.True(t, r.IsContiguous())

	seen := make(map[grid.Coord]struct{}, r.Len())
	for _, c := range r.Coords() {
		require.True(t, g.Contains(c), "coordinate %s out of bounds", c)
		require.False(t, g.IsBlocked(c.Row, c.Col), "coordinate %s is blocked", c)
		_, dup := seen[c]
		require.False(t, dup, "coordinate %s repeated", c)
		seen[c] = struct{}{}
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	g := grid.New(5, 5)
	engine := New(WithSeed(1))

	path, ok := engine.FindPath(g, 6)

	require.True(t, ok)
	requireValidPath(t, g, path, 6)
}

func TestFindPathAvoidsBlockedCells(t *testing.T) {
	blocked := []grid.Coord{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 1}}
	g := grid.New(8, 8)
	g.Block(blocked)
	engine := New(WithSeed(7))

	path, ok := engine.FindPath(g, 12)

	require.True(t, ok)
	requireValidPath(t, g, path, 12)
	for _, c := range path.Coords() {
		for _, b := range blocked {
			assert.NotEqual(t, b, c)
		}
	}
}

func TestFindPathFullyBlockedGrid(t *testing.T) {
	g := grid.New(8, 8)
	for row := uint16(0); row < 8; row++ {
		for col := uint16(0); col < 8; col++ {
			g.Set(row, col, true)
		}
	}
	engine := New(WithSeed(3))

	path, ok := engine.FindPath(g, 5)

	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathDeterministicUnderFixedSeed(t *testing.T) {
	newGrid := func() *grid.Grid {
		g := grid.New(6, 6)
		g.Block([]grid.Coord{{Row: 0, Col: 0}, {Row: 3, Col: 3}})
		return g
	}

	first, okFirst := New(WithSeed(99)).FindPath(newGrid(), 10)
	second, okSecond := New(WithSeed(99)).FindPath(newGrid(), 10)

	require.Equal(t, okFirst, okSecond)
	if okFirst {
		assert.Equal(t, first.Coords(), second.Coords(),
			"same seed must reproduce the same path")
	}
}

func TestFindPathOversizedLengthPanics(t *testing.T) {
	g := grid.New(5, 5) // 25 cells, 75% bound = 18
	engine := New(WithSeed(1))

	assert.Panics(t, func() { engine.FindPath(g, 30) })
	assert.Panics(t, func() { engine.FindPath(g, 0) })
}

func TestExtendKeepsRejectedCellsVisited(t *testing.T) {
	// Within one attempt the visited set only grows: a neighbor tried
	// and popped on a failed branch stays excluded for the rest of the
	// attempt. With (1,1) blocked on a 2x2 grid, no length-3 path
	// exists from (0,0), and both explored neighbors must remain in
	// the visited set after the failed extension.
	g := grid.New(2, 2)
	g.Set(1, 1, true)
	engine := New(WithSeed(5))

	visited := coordset.NewForGrid(g)
	path := route.New(3, g)
	visited.Add(grid.Coord{Row: 0, Col: 0})
	path.Append(0, 0)

	ok := engine.extend(g, path, visited, nil, 3)

	require.False(t, ok)
	assert.Equal(t, 1, path.Len(), "failed branches are popped from the path")
	assert.True(t, visited.Contains(grid.Coord{Row: 0, Col: 1}), "rejected neighbor stays visited")
	assert.True(t, visited.Contains(grid.Coord{Row: 1, Col: 0}), "rejected neighbor stays visited")
}

func TestEngineDefaults(t *testing.T) {
	e := New()
	assert.Equal(t, DefaultWorkers, e.workers)

	e = New(WithWorkers(2))
	assert.Equal(t, 2, e.workers)

	e = New(WithWorkers(0))
	assert.Equal(t, DefaultWorkers, e.workers, "non-positive worker counts are ignored")
}
