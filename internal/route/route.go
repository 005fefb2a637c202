// Package route provides the bounded, append/pop-only container for the
// sequence of cells an in-progress or completed search path visits.
package route

import (
	"context"
	"fmt"
	"strings"

	"github.com/slepotek/gridpath/internal/grid"
	"github.com/slepotek/gridpath/internal/logging"
)

// CapacityFraction bounds a route's capacity to this share of the grid.
// Routes covering nearly the whole grid approach Hamiltonian-path
// territory, which the randomized search is not designed to solve.
const CapacityFraction = 0.75

// Route is a fixed-capacity ordered sequence of coordinates. A Route is
// exclusively owned by the search attempt using it; it is cleared and
// reused between restart attempts rather than reallocated.
type Route struct {
	coords []grid.Coord
	length int
}

// New creates a route with the given capacity, validated against the
// grid: the capacity must be positive and at most CapacityFraction of
// the grid's total cell count. Violations panic.
func New(capacity int, g *grid.Grid) *Route {
	limit := float64(g.Size()) * CapacityFraction
	if capacity <= 0 {
		panic("route: capacity must be positive")
	}
	if float64(capacity) > limit {
		panic(fmt.Sprintf("route: capacity %d exceeds %.0f%% of the %d-cell grid", capacity, CapacityFraction*100, g.Size()))
	}
	return &Route{coords: make([]grid.Coord, 0, capacity)}
}

// Append adds a coordinate to the end of the route. It panics when the
// route is already at capacity.
func (r *Route) Append(row, col uint16) {
	if r.length == cap(r.coords) {
		panic(fmt.Sprintf("route: append beyond capacity %d", cap(r.coords)))
	}
	r.coords = append(r.coords[:r.length], grid.Coord{Row: row, Col: col})
	r.length++
}

// Last returns the most recently appended coordinate without removing
// it, or the sentinel coordinate when the route is empty.
func (r *Route) Last() grid.Coord {
	if r.length == 0 {
		logging.Default().WithComponent("route").Debug(context.Background(), "last on empty route")
		return grid.Sentinel()
	}
	return r.coords[r.length-1]
}

// Pop removes and returns the most recently appended coordinate, zeroing
// the freed slot. It returns the sentinel coordinate when the route is
// empty.
func (r *Route) Pop() grid.Coord {
	if r.length == 0 {
		logging.Default().WithComponent("route").Debug(context.Background(), "pop on empty route")
		return grid.Sentinel()
	}
	last := r.coords[r.length-1]
	r.length--
	r.coords[r.length] = grid.Coord{}
	r.coords = r.coords[:r.length]
	return last
}

// IsContiguous reports whether every consecutive pair of coordinates is
// exactly one grid step apart. Routes of length 0 or 1 are contiguous.
//
// This is a check, not an enforced invariant: the search engine only
// appends verified neighbors, but the type itself does not prevent an
// arbitrary caller from appending anything.
func (r *Route) IsContiguous() bool {
	for i := 1; i < r.length; i++ {
		if !r.coords[i-1].Adjacent(r.coords[i]) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the route holds no coordinates.
func (r *Route) IsEmpty() bool { return r.length == 0 }

// Len returns the current number of coordinates.
func (r *Route) Len() int { return r.length }

// Cap returns the fixed capacity.
func (r *Route) Cap() int { return cap(r.coords) }

// Clear resets the route to length zero, zeroing the storage but keeping
// the capacity.
func (r *Route) Clear() {
	for i := range r.coords {
		r.coords[i] = grid.Coord{}
	}
	r.coords = r.coords[:0]
	r.length = 0
}

// Coords returns a copy of the route's coordinates in order.
func (r *Route) Coords() []grid.Coord {
	out := make([]grid.Coord, r.length)
	copy(out, r.coords[:r.length])
	return out
}

// CopyFrom replaces the route's contents with those of other. It panics
// when other holds more coordinates than the route's capacity.
func (r *Route) CopyFrom(other *Route) {
	if other.length > cap(r.coords) {
		panic(fmt.Sprintf("route: copy of %d coordinates into capacity %d", other.length, cap(r.coords)))
	}
	r.coords = r.coords[:other.length]
	copy(r.coords, other.coords[:other.length])
	r.length = other.length
}

// String renders the route for diagnostics.
func (r *Route) String() string {
	if r.length == 0 {
		return "route: empty"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "route (length %d):", r.length)
	for i, c := range r.coords[:r.length] {
		fmt.Fprintf(&b, "\n  [%d]: %s", i, c)
	}
	return b.String()
}
