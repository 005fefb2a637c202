package search

import (
	"math"
	"math/rand"

	"github.com/slepotek/gridpath/internal/grid"
)

// source is a seeded pseudo-random stream with modulo-bias-corrected
// bounded draws. Each worker owns its own source; streams are never
// shared across goroutines.
type source struct {
	rng *rand.Rand
}

func newSource(seed int64) *source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

// uintn returns a uniform value in [0, n) by rejection sampling: draws
// landing in the truncated tail of the generator's range are discarded
// so every residue is equally likely.
func (s *source) uintn(n uint32) uint32 {
	threshold := uint32((uint64(math.MaxUint32) + 1) % uint64(n))
	for {
		v := s.rng.Uint32()
		if v >= threshold {
			return v % n
		}
	}
}

// coord draws a uniformly random coordinate within the given dimensions.
func (s *source) coord(rows, cols uint16) grid.Coord {
	return grid.Coord{
		Row: uint16(s.uintn(uint32(rows))),
		Col: uint16(s.uintn(uint32(cols))),
	}
}
