package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/slepotek/gridpath/internal/grid"
)

// ParseCell parses a single "row,col" cell specification. Surrounding
// braces are accepted, so "{1,0}" and "1,0" are equivalent.
func ParseCell(spec string) (grid.Coord, error) {
	trimmed := strings.TrimSpace(spec)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("cell %q: want row,col", spec)
	}
	row, err := parseCoordValue(parts[0])
	if err != nil {
		return grid.Coord{}, fmt.Errorf("cell %q: %w", spec, err)
	}
	col, err := parseCoordValue(parts[1])
	if err != nil {
		return grid.Coord{}, fmt.Errorf("cell %q: %w", spec, err)
	}
	return grid.Coord{Row: row, Col: col}, nil
}

func parseCoordValue(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", strings.TrimSpace(s))
	}
	return uint16(v), nil
}

// LoadCellsFile reads blocked-cell coordinates from a file. Files ending
// in .yaml or .yml hold a YAML list of {row, col} mappings; anything
// else is treated as the plain format: one "row,col" per line, blank
// lines ignored, lines starting with # treated as comments.
func LoadCellsFile(path string) ([]grid.Coord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadCellsYAML(path)
	default:
		return loadCellsPlain(path)
	}
}

func loadCellsPlain(path string) ([]grid.Coord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening blocked-cells file: %w", err)
	}
	defer file.Close()

	var cells []grid.Coord
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cell, err := ParseCell(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		cells = append(cells, cell)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading blocked-cells file: %w", err)
	}
	return cells, nil
}

func loadCellsYAML(path string) ([]grid.Coord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blocked-cells file: %w", err)
	}

	var entries []struct {
		Row uint16 `yaml:"row"`
		Col uint16 `yaml:"col"`
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: parsing YAML cell list: %w", path, err)
	}

	cells := make([]grid.Coord, 0, len(entries))
	for _, entry := range entries {
		cells = append(cells, grid.Coord{Row: entry.Row, Col: entry.Col})
	}
	return cells, nil
}
