//go:build property
// +build property

package coordset

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/slepotek/gridpath/internal/grid"
)

type setOp struct {
	remove bool
	coord  grid.Coord
}

func genOps() gopter.Gen {
	genCoord := gopter.CombineGens(
		gen.UInt16Range(0, 7),
		gen.UInt16Range(0, 7),
	).Map(func(values []interface{}) grid.Coord {
		return grid.Coord{Row: values[0].(uint16), Col: values[1].(uint16)}
	})
	genOp := gopter.CombineGens(gen.Bool(), genCoord).Map(func(values []interface{}) setOp {
		return setOp{remove: values[0].(bool), coord: values[1].(grid.Coord)}
	})
	return gen.SliceOf(genOp)
}

// TestSetProperties checks that any operation sequence keeps the storage
// strictly sorted and that membership matches a map-based model.
func TestSetProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("stays sorted and duplicate-free", prop.ForAll(
		func(ops []setOp) bool {
			s := New(64)
			for _, op := range ops {
				if op.remove {
					s.Remove(op.coord)
				} else {
					s.Add(op.coord)
				}
				coords := s.Coords()
				for i := 1; i < len(coords); i++ {
					if !coords[i-1].Less(coords[i]) {
						return false
					}
				}
			}
			return true
		},
		genOps(),
	))

	properties.Property("membership matches net add/remove history", prop.ForAll(
		func(ops []setOp) bool {
			s := New(64)
			model := make(map[grid.Coord]bool)
			for _, op := range ops {
				if op.remove {
					s.Remove(op.coord)
					delete(model, op.coord)
				} else {
					s.Add(op.coord)
					model[op.coord] = true
				}
			}
			if s.Len() != len(model) {
				return false
			}
			for c := range model {
				if !s.Contains(c) {
					return false
				}
			}
			return true
		},
		genOps(),
	))

	properties.TestingRun(t)
}
