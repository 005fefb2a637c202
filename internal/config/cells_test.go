package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slepotek/gridpath/internal/grid"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    grid.Coord
		wantErr bool
	}{
		{"plain", "1,2", grid.Coord{Row: 1, Col: 2}, false},
		{"braced", "{3,4}", grid.Coord{Row: 3, Col: 4}, false},
		{"spaces", " 5 , 6 ", grid.Coord{Row: 5, Col: 6}, false},
		{"missing column", "7", grid.Coord{}, true},
		{"too many parts", "1,2,3", grid.Coord{}, true},
		{"negative", "-1,2", grid.Coord{}, true},
		{"non-numeric", "a,b", grid.Coord{}, true},
		{"overflow", "70000,0", grid.Coord{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCell(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCellsFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked.txt")
	content := `# Blocked cells for test matrix
0,1
1,0

2,2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cells, err := LoadCellsFile(path)

	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 2}}, cells)
}

func TestLoadCellsFilePlainReportsLineNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,1\nbogus\n"), 0o644))

	_, err := LoadCellsFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}

func TestLoadCellsFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked.yaml")
	content := `- row: 1
  col: 0
- row: 2
  col: 0
- row: 1
  col: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cells, err := LoadCellsFile(path)

	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 1}}, cells)
}

func TestLoadCellsFileMissing(t *testing.T) {
	_, err := LoadCellsFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
