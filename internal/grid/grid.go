// Package grid models the rectangular world the pathfinder searches:
// a flat row-major field of blocked and free cells with running counts.
//
// Operations that take coordinates treat out-of-bounds access as a caller
// bug and panic; the validation layer in internal/config is responsible
// for never producing such input.
package grid

import (
	"context"
	"fmt"

	"github.com/slepotek/gridpath/internal/logging"
)

// MinCells is the smallest total cell count a grid may have. Degenerate
// grids below this size cannot hold any meaningful route.
const MinCells = 4

// Grid is a fixed-size field of blocked/unblocked cells. The zero value
// is not usable; construct grids with New.
//
// Invariant: BlockedCells() + UnblockedCells() == Size() after every
// mutation.
type Grid struct {
	rows      uint16
	cols      uint16
	size      int
	blocked   int
	unblocked int
	cells     []bool // true = blocked, indexed row*cols+col
	log       logging.Logger
}

// New creates a grid with the given dimensions, all cells unblocked.
// It panics when rows*cols is below MinCells.
func New(rows, cols uint16) *Grid {
	size := int(rows) * int(cols)
	if size < MinCells {
		panic(fmt.Sprintf("grid: size %dx%d is below the minimum of %d cells", rows, cols, MinCells))
	}
	return &Grid{
		rows:      rows,
		cols:      cols,
		size:      size,
		unblocked: size,
		cells:     make([]bool, size),
		log:       logging.Default().WithComponent("grid"),
	}
}

// Resize discards all state and reinitializes the grid with new
// dimensions. The same minimum-size rule as New applies.
func (g *Grid) Resize(rows, cols uint16) {
	*g = *New(rows, cols)
}

// Block marks every listed coordinate blocked. It panics when the list
// is larger than the grid can hold.
func (g *Grid) Block(cells []Coord) {
	if len(cells) > g.size {
		panic(fmt.Sprintf("grid: cannot block %d cells in a grid of %d", len(cells), g.size))
	}
	for _, c := range cells {
		g.Set(c.Row, c.Col, true)
	}
}

// Set sets the blocked state of one cell, keeping the blocked/unblocked
// counts in step. Setting a cell to the state it already has is a no-op
// with a diagnostic.
func (g *Grid) Set(row, col uint16, blocked bool) {
	g.boundsCheck(row, col, "Set")

	idx := int(row)*int(g.cols) + int(col)
	if g.cells[idx] == blocked {
		g.log.Warn(context.Background(), nil, "cell state unchanged",
			"row", row, "col", col, "blocked", blocked)
		return
	}
	g.cells[idx] = blocked
	if blocked {
		g.blocked++
		g.unblocked--
	} else {
		g.blocked--
		g.unblocked++
	}
}

// Clear unblocks every cell. Clearing an already-empty grid is a no-op
// with a diagnostic.
func (g *Grid) Clear() {
	if g.blocked == 0 {
		g.log.Warn(context.Background(), nil, "clear on a grid with no blocked cells")
		return
	}
	for i := range g.cells {
		g.cells[i] = false
	}
	g.blocked = 0
	g.unblocked = g.size
}

// IsBlocked reports whether the cell at (row, col) is blocked.
func (g *Grid) IsBlocked(row, col uint16) bool {
	g.boundsCheck(row, col, "IsBlocked")
	return g.cells[int(row)*int(g.cols)+int(col)]
}

// IsEmpty reports whether the grid has no blocked cells.
func (g *Grid) IsEmpty() bool {
	return g.blocked == 0
}

// Contains reports whether c falls within the grid bounds.
func (g *Grid) Contains(c Coord) bool {
	return c.Row < g.rows && c.Col < g.cols
}

// UnblockedNeighbors counts the unblocked cells among the up to four
// cardinal neighbors of (row, col). Border cells simply have fewer
// candidate neighbors.
func (g *Grid) UnblockedNeighbors(row, col uint16) int {
	g.boundsCheck(row, col, "UnblockedNeighbors")

	count := 0
	at := Coord{Row: row, Col: col}
	for _, d := range Directions {
		n, ok := at.Move(d)
		if !ok || !g.Contains(n) {
			continue
		}
		if !g.IsBlocked(n.Row, n.Col) {
			count++
		}
	}
	return count
}

// Rows returns the number of rows.
func (g *Grid) Rows() uint16 { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() uint16 { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.size }

// BlockedCells returns the number of blocked cells.
func (g *Grid) BlockedCells() int { return g.blocked }

// UnblockedCells returns the number of unblocked cells.
func (g *Grid) UnblockedCells() int { return g.unblocked }

// BlockedRatio returns blocked/unblocked. When either count is zero the
// ratio is undefined; a sentinel of 1.0 is returned with a diagnostic.
func (g *Grid) BlockedRatio() float64 {
	if g.blocked == 0 || g.unblocked == 0 {
		g.log.Warn(context.Background(), nil, "blocked ratio undefined",
			"blocked", g.blocked, "unblocked", g.unblocked)
		return 1.0
	}
	return float64(g.blocked) / float64(g.unblocked)
}

func (g *Grid) boundsCheck(row, col uint16, op string) {
	if row >= g.rows || col >= g.cols {
		panic(fmt.Sprintf("grid: %s(%d,%d) out of bounds for %dx%d grid", op, row, col, g.rows, g.cols))
	}
}
