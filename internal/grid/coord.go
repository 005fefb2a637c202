package grid

import (
	"fmt"
	"math"
)

// Coord is a single cell position. Coordinates are ordered
// lexicographically: by row first, then by column.
type Coord struct {
	Row uint16
	Col uint16
}

// Sentinel returns the coordinate used to signal "no coordinate",
// for example when peeking at an empty route.
func Sentinel() Coord {
	return Coord{Row: math.MaxUint16, Col: math.MaxUint16}
}

// Compare returns -1, 0 or 1 ordering c against other by row, then column.
func (c Coord) Compare(other Coord) int {
	if c.Row < other.Row {
		return -1
	}
	if c.Row > other.Row {
		return 1
	}
	if c.Col < other.Col {
		return -1
	}
	if c.Col > other.Col {
		return 1
	}
	return 0
}

// Less reports whether c orders before other.
func (c Coord) Less(other Coord) bool {
	return c.Compare(other) < 0
}

// Adjacent reports whether the Manhattan distance between c and other
// is exactly 1, i.e. the two cells share an edge.
func (c Coord) Adjacent(other Coord) bool {
	rowDist := int(c.Row) - int(other.Row)
	if rowDist < 0 {
		rowDist = -rowDist
	}
	colDist := int(c.Col) - int(other.Col)
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist+colDist == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Delta is a single-step offset in one of the four cardinal directions.
type Delta struct {
	DRow int
	DCol int
}

// Directions lists the four cardinal moves in the fixed order the search
// explores them: right, left, down, up.
var Directions = [4]Delta{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}

// Move returns the neighbor of c in direction d. The second return value
// is false when the move underflows below zero or overflows uint16 range.
func (c Coord) Move(d Delta) (Coord, bool) {
	row := int(c.Row) + d.DRow
	col := int(c.Col) + d.DCol
	if row < 0 || col < 0 || row > math.MaxUint16 || col > math.MaxUint16 {
		return Sentinel(), false
	}
	return Coord{Row: uint16(row), Col: uint16(col)}, true
}
