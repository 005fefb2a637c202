// Package search implements the randomized-restart backtracking engine
// that looks for a contiguous route of an exact length in a grid, either
// sequentially or with several independent workers racing for the first
// valid answer.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/slepotek/gridpath/internal/coordset"
	"github.com/slepotek/gridpath/internal/grid"
	"github.com/slepotek/gridpath/internal/logging"
	"github.com/slepotek/gridpath/internal/route"
)

// DefaultWorkers is the worker count used by FindPathParallel when none
// is configured.
const DefaultWorkers = 5

// Engine runs path searches over a grid. The zero value is not usable;
// construct engines with New.
type Engine struct {
	seed    int64
	workers int
	log     logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the random seed, making a search deterministic. Without
// it every engine draws a fresh time-based seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithWorkers sets how many workers FindPathParallel races.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// New creates an engine with the given options applied.
func New(options ...Option) *Engine {
	e := &Engine{
		seed:    time.Now().UnixNano(),
		workers: DefaultWorkers,
		log:     logging.Default().WithComponent("search"),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// FindPath searches g for a contiguous route of exactly pathLength free
// cells. The attempt budget is one random origin draw per unblocked cell
// in the grid; origins are drawn with replacement against the exhausted
// set, so the budget bounds total work without guaranteeing that every
// unblocked cell is tried. The second return value is false when the
// budget runs out without a find.
//
// pathLength must be positive and at most 75% of the grid size; a value
// outside that range is a caller bug and panics.
func (e *Engine) FindPath(g *grid.Grid, pathLength int) (*route.Route, bool) {
	exhausted := coordset.NewForGrid(g)
	visited := coordset.NewForGrid(g)
	path := route.New(pathLength, g)
	rng := newSource(e.seed)

	attempts := g.UnblockedCells()
	e.log.Debug(context.Background(), "sequential search starting",
		"path_length", pathLength, "attempt_budget", attempts)

	for attempt := 0; attempt < attempts; attempt++ {
		visited.Clear()
		path.Clear()

		origin := rng.coord(g.Rows(), g.Cols())
		if exhausted.Contains(origin) || g.IsBlocked(origin.Row, origin.Col) {
			continue
		}
		exhausted.Add(origin)
		visited.Add(origin)
		path.Append(origin.Row, origin.Col)

		if e.extend(g, path, visited, nil, pathLength) {
			e.log.Debug(context.Background(), "path found",
				"origin", origin, "attempts", attempt+1)
			return path, true
		}
	}

	e.log.Debug(context.Background(), "attempt budget exhausted", "attempts", attempts)
	return nil, false
}

// extend grows path by one verified neighbor at a time, backtracking on
// dead ends. It reports success as soon as path reaches targetLength.
// done, when non-nil, is the shared completion flag of a parallel
// search, checked at every entry so a worker stops descending branch by
// branch once another worker has won.
//
// A candidate rejected along one branch stays in visited for the rest of
// the attempt even though it is popped from the path. This prunes the
// search at the cost of completeness and is load-bearing: removing cells
// from visited on backtrack changes which inputs succeed versus exhaust.
func (e *Engine) extend(g *grid.Grid, path *route.Route, visited *coordset.Set, done *atomic.Bool, targetLength int) bool {
	if path.Len() == targetLength {
		return true
	}
	if done != nil && done.Load() {
		return false
	}

	current := path.Last()
	for _, d := range grid.Directions {
		candidate, ok := current.Move(d)
		if !ok || !g.Contains(candidate) {
			continue
		}
		if g.IsBlocked(candidate.Row, candidate.Col) || visited.Contains(candidate) {
			continue
		}

		visited.Add(candidate)
		path.Append(candidate.Row, candidate.Col)
		if e.extend(g, path, visited, done, targetLength) {
			return true
		}
		path.Pop()
	}

	return false
}
