// Package config provides configuration management for the pathfinder
// CLI using Viper for flexible loading from files, environment variables
// and command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with the PATHFINDER_ prefix and full validation of the
// search parameters. Validation lives here so that the core packages
// never see out-of-range input: the grid, route and search packages
// treat bad coordinates as caller bugs and panic.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/slepotek/gridpath/internal/grid"
	"github.com/slepotek/gridpath/internal/route"
)

// Parameters holds the validated inputs of one search run.
type Parameters struct {
	Rows             uint16       `yaml:"rows"`
	Cols             uint16       `yaml:"cols"`
	PathLength       int          `yaml:"path-length"`
	BlockedCells     []grid.Coord `yaml:"blocked-cells"`
	BlockedCellsFile string       `yaml:"blocked-cells-file"`
	Parallel         bool         `yaml:"parallel"`
	Workers          int          `yaml:"workers"`
	Seed             int64        `yaml:"seed"`
	SeedSet          bool         `yaml:"-"`
}

// Load merges viper state (flags over environment over config file) into
// a Parameters value. It does not validate; call Validate afterwards.
func Load() (*Parameters, error) {
	var params Parameters

	rows := viper.GetInt("rows")
	cols := viper.GetInt("cols")
	if rows < 0 || rows > 65535 || cols < 0 || cols > 65535 {
		return nil, fmt.Errorf("rows and cols must be within 0..65535, got %d and %d", rows, cols)
	}
	params.Rows = uint16(rows)
	params.Cols = uint16(cols)
	params.PathLength = viper.GetInt("path-length")
	params.BlockedCellsFile = viper.GetString("blocked-cells-file")
	params.Parallel = viper.GetBool("parallel")
	params.Workers = viper.GetInt("workers")
	params.Seed = viper.GetInt64("seed")
	params.SeedSet = viper.IsSet("seed")

	for _, spec := range viper.GetStringSlice("blocked-cells") {
		cell, err := ParseCell(spec)
		if err != nil {
			return nil, err
		}
		params.BlockedCells = append(params.BlockedCells, cell)
	}

	if params.BlockedCellsFile != "" {
		cells, err := LoadCellsFile(params.BlockedCellsFile)
		if err != nil {
			return nil, err
		}
		params.BlockedCells = append(params.BlockedCells, cells...)
	}

	return &params, nil
}

// Validate checks the parameters against the constraints the core
// packages rely on: a grid of at least four cells, a positive path
// length within 75% of the grid size, in-bounds and duplicate-free
// blocked cells, and a positive worker count.
func (p *Parameters) Validate() error {
	size := int(p.Rows) * int(p.Cols)
	if size < grid.MinCells {
		return fmt.Errorf("grid of %dx%d has %d cells, need at least %d", p.Rows, p.Cols, size, grid.MinCells)
	}
	if p.PathLength <= 0 {
		return fmt.Errorf("path length must be positive, got %d", p.PathLength)
	}
	if float64(p.PathLength) > float64(size)*route.CapacityFraction {
		return fmt.Errorf("path length %d exceeds 75%% of the %d-cell grid", p.PathLength, size)
	}
	seen := make(map[grid.Coord]struct{}, len(p.BlockedCells))
	for _, cell := range p.BlockedCells {
		if cell.Row >= p.Rows || cell.Col >= p.Cols {
			return fmt.Errorf("blocked cell %s is out of bounds for a %dx%d grid", cell, p.Rows, p.Cols)
		}
		if _, dup := seen[cell]; dup {
			return fmt.Errorf("blocked cell %s listed more than once", cell)
		}
		seen[cell] = struct{}{}
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", p.Workers)
	}
	return nil
}
