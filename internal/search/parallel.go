package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/slepotek/gridpath/internal/coordset"
	"github.com/slepotek/gridpath/internal/grid"
	"github.com/slepotek/gridpath/internal/route"
)

// FindPathParallel races the engine's configured number of workers, each
// running the same restart loop as FindPath against a shared
// exhausted-origins set. The first worker to complete a route publishes
// it; later finishers' results are discarded. The second return value is
// false when every worker runs out of attempts without a find.
//
// The grid is read-only for the duration of the call. The exhausted set
// and the result slot are each guarded by their own lock; no worker ever
// holds both, so the two lock scopes cannot deadlock. Each worker draws
// from its own seeded stream, derived from the engine seed and the
// worker index, keeping a fixed-seed run reproducible per worker.
func (e *Engine) FindPathParallel(g *grid.Grid, pathLength int) (*route.Route, bool) {
	result := route.New(pathLength, g)

	exhausted := coordset.NewForGrid(g)
	var exhaustedMu sync.Mutex

	var done atomic.Bool
	var publishMu sync.Mutex

	e.log.Debug(context.Background(), "parallel search starting",
		"path_length", pathLength, "workers", e.workers)

	var wg sync.WaitGroup
	for worker := 0; worker < e.workers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			rng := newSource(e.seed + int64(worker))
			visited := coordset.NewForGrid(g)
			path := route.New(pathLength, g)
			attempts := g.UnblockedCells()

			for attempt := 0; attempt < attempts; attempt++ {
				if done.Load() {
					return
				}
				visited.Clear()
				path.Clear()

				origin := rng.coord(g.Rows(), g.Cols())

				exhaustedMu.Lock()
				fresh := !exhausted.Contains(origin)
				if fresh {
					exhausted.Add(origin)
				}
				exhaustedMu.Unlock()

				if !fresh || g.IsBlocked(origin.Row, origin.Col) {
					continue
				}

				visited.Add(origin)
				path.Append(origin.Row, origin.Col)

				if e.extend(g, path, visited, &done, pathLength) {
					publishMu.Lock()
					if !done.Load() {
						result.CopyFrom(path)
						done.Store(true)
						e.log.Debug(context.Background(), "worker published path",
							"worker", worker, "origin", origin, "attempts", attempt+1)
					}
					publishMu.Unlock()
					return
				}
			}
		}(worker)
	}
	wg.Wait()

	if done.Load() {
		return result, true
	}
	e.log.Debug(context.Background(), "all workers exhausted their attempt budgets")
	return nil, false
}
