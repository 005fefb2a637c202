// Package coordset provides a capacity-bounded sorted set of grid
// coordinates with binary-search membership.
//
// The search engine uses it in two distinct roles: per-attempt visited
// tracking (local to one attempt, cleared every restart) and
// cross-attempt exhausted-origin tracking (longer-lived, shared across
// workers in parallel mode, guarded externally).
//
// A sorted array gives O(log n) lookup with O(n) worst-case insert and
// remove, which is acceptable because set sizes are bounded by the grid
// size and churn is restart-scoped.
package coordset

import (
	"fmt"
	"sort"

	"github.com/slepotek/gridpath/internal/grid"
)

// Set is an ordered unique collection of coordinates sorted ascending by
// row, then column.
//
// Invariant: strictly increasing order, no duplicates, Len() <= capacity.
type Set struct {
	points   []grid.Coord
	capacity int
}

// New creates a set able to hold capacity coordinates, typically a
// grid's total cell count. It panics when capacity is not positive.
func New(capacity int) *Set {
	if capacity <= 0 {
		panic(fmt.Sprintf("coordset: capacity must be positive, got %d", capacity))
	}
	return &Set{
		points:   make([]grid.Coord, 0, capacity),
		capacity: capacity,
	}
}

// NewForGrid creates a set sized to hold every cell of g.
func NewForGrid(g *grid.Grid) *Set {
	return New(g.Size())
}

// Clear resets the set to empty without releasing its storage.
func (s *Set) Clear() {
	s.points = s.points[:0]
}

// Add inserts c at its sorted position. Adding a coordinate that is
// already present, or adding to a full set, is a silent no-op.
func (s *Set) Add(c grid.Coord) {
	idx, found := s.search(c)
	if found || len(s.points) == s.capacity {
		return
	}
	s.points = append(s.points, grid.Coord{})
	copy(s.points[idx+1:], s.points[idx:])
	s.points[idx] = c
}

// Remove deletes c, shifting later elements left over the gap. Removing
// an absent coordinate is a silent no-op.
func (s *Set) Remove(c grid.Coord) {
	idx, found := s.search(c)
	if !found {
		return
	}
	copy(s.points[idx:], s.points[idx+1:])
	s.points = s.points[:len(s.points)-1]
}

// Contains reports whether c is in the set, by binary search.
func (s *Set) Contains(c grid.Coord) bool {
	_, found := s.search(c)
	return found
}

// Len returns the current number of coordinates in the set.
func (s *Set) Len() int {
	return len(s.points)
}

// Coords returns a copy of the set's contents in sorted order.
func (s *Set) Coords() []grid.Coord {
	out := make([]grid.Coord, len(s.points))
	copy(out, s.points)
	return out
}

// search returns the insertion index for c and whether c is present.
func (s *Set) search(c grid.Coord) (int, bool) {
	idx := sort.Search(len(s.points), func(i int) bool {
		return !s.points[i].Less(c)
	})
	return idx, idx < len(s.points) && s.points[idx] == c
}
