package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slepotek/gridpath/internal/config"
	"github.com/slepotek/gridpath/internal/logging"
	"github.com/slepotek/gridpath/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Re-run the search whenever the blocked-cells file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		params, err := config.Load()
		if err != nil {
			return err
		}
		if params.BlockedCellsFile == "" {
			return fmt.Errorf("watch requires --blocked-cells-file")
		}
		if err := params.Validate(); err != nil {
			return err
		}

		debounce := viper.GetDuration("debounce")
		return runWatch(params, debounce)
	},
}

func init() {
	addSearchFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", watcher.DefaultDebounce, "delay before reacting to a burst of file changes")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(params *config.Parameters, debounce time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.Default().WithComponent("watch")

	if err := runSearch(params); err != nil {
		return err
	}

	fileWatcher, err := watcher.New(params.BlockedCellsFile, debounce)
	if err != nil {
		return err
	}
	defer fileWatcher.Close()

	fmt.Printf("\nWatching %s for changes (ctrl-c to stop)...\n", params.BlockedCellsFile)

	err = fileWatcher.Watch(ctx, func() {
		// Re-read the cell list; a half-written or invalid file only
		// logs and keeps the previous run's output on screen.
		cells, err := config.LoadCellsFile(params.BlockedCellsFile)
		if err != nil {
			log.Warn(ctx, err, "reloading blocked cells failed")
			return
		}
		next := *params
		next.BlockedCells = cells
		if err := next.Validate(); err != nil {
			log.Warn(ctx, err, "changed blocked cells are invalid")
			return
		}
		fmt.Println()
		if err := runSearch(&next); err != nil {
			log.Error(ctx, err, "search failed")
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
