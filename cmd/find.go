package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slepotek/gridpath/internal/config"
	"github.com/slepotek/gridpath/internal/grid"
	"github.com/slepotek/gridpath/internal/route"
	"github.com/slepotek/gridpath/internal/search"
)

var findCmd = &cobra.Command{
	Use:     "find",
	Aliases: []string{"f"},
	Short:   "Search the grid once for a path of the requested length",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		params, err := config.Load()
		if err != nil {
			return err
		}
		if err := params.Validate(); err != nil {
			return err
		}
		return runSearch(params)
	},
}

func init() {
	addSearchFlags(findCmd)
	rootCmd.AddCommand(findCmd)
}

// addSearchFlags registers the search parameter flags shared by the
// find and watch commands.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Uint16("rows", 0, "number of matrix rows (required)")
	cmd.Flags().Uint16("cols", 0, "number of matrix columns (required)")
	cmd.Flags().Int("path-length", 0, "target path length (required)")
	cmd.Flags().StringSlice("blocked-cells", nil, "blocked cell as row,col (repeatable)")
	cmd.Flags().String("blocked-cells-file", "", "file with blocked cell coordinates")
	cmd.Flags().Bool("parallel", false, "race several workers instead of searching sequentially")
	cmd.Flags().Int("workers", search.DefaultWorkers, "worker count for --parallel")
	cmd.Flags().Int64("seed", 0, "random seed for reproducible searches")
}

// runSearch builds the grid from validated parameters, runs the engine
// and prints the outcome.
func runSearch(params *config.Parameters) error {
	fmt.Println("--- Path Finder Initializing ---")
	fmt.Printf("Matrix Dimensions: %d rows, %d cols\n", params.Rows, params.Cols)
	fmt.Printf("Target Path Length: %d\n", params.PathLength)
	if len(params.BlockedCells) > 0 {
		fmt.Printf("Blocked Cells Provided: %d\n", len(params.BlockedCells))
	}
	fmt.Println("--------------------------------")

	g := grid.New(params.Rows, params.Cols)
	if len(params.BlockedCells) > 0 {
		g.Block(params.BlockedCells)
	}

	options := []search.Option{search.WithWorkers(params.Workers)}
	if params.SeedSet {
		options = append(options, search.WithSeed(params.Seed))
	}
	engine := search.New(options...)

	fmt.Println("Searching for a path...")
	var found *route.Route
	var ok bool
	if params.Parallel {
		found, ok = engine.FindPathParallel(g, params.PathLength)
	} else {
		found, ok = engine.FindPath(g, params.PathLength)
	}

	if !ok {
		fmt.Println("\n--- No Valid Path Found ---")
		return nil
	}
	fmt.Println("\n--- Path Found! ---")
	fmt.Println(found)
	fmt.Println("-------------------")
	return nil
}
