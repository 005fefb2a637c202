// Package cmd provides the command-line interface for pathfinder with
// configuration management supporting multiple configuration sources.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--rows, --path-length, ...)
//  2. Environment variables with the PATHFINDER_ prefix
//     (PATHFINDER_ROWS, PATHFINDER_PATH_LENGTH, ...)
//  3. Configuration file (.pathfinder.yml in the current directory, or
//     the file named by --config / PATHFINDER_CONFIG_FILE)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slepotek/gridpath/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Adaptive path finding in an NxM matrix",
	Long: `Pathfinder searches a rectangular grid of blocked and free cells for a
contiguous route of an exact required length using randomized
backtracking, either sequentially or with racing parallel workers.

Quick Start:
  pathfinder find --rows 5 --cols 5 --path-length 6
  pathfinder find --rows 8 --cols 8 --path-length 12 --blocked-cells 1,0 --blocked-cells 2,0 --blocked-cells 1,1
  pathfinder find --rows 100 --cols 100 --path-length 50 --blocked-cells-file blocked_cells.txt --parallel
  pathfinder watch --rows 20 --cols 20 --path-length 15 --blocked-cells-file blocked_cells.txt

Blocked cells file format (plain):
  one "row,col" per line, # starts a comment. A .yaml/.yml file holds a
  YAML list of {row, col} mappings instead.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetDefault(logging.NewLogger(&logging.Config{
			Level:  logging.ParseLevel(viper.GetString("log-level")),
			Format: "text",
			Output: os.Stderr,
		}))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pathfinder.yml, can also use PATHFINDER_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PATHFINDER_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pathfinder")
	}

	viper.SetEnvPrefix("PATHFINDER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Missing or malformed config files degrade to defaults without failing.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
