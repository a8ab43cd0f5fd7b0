// planetwars is a territory-conquest strategy game for the terminal.
//
// Usage:
//
//	planetwars play          - Play against the computer
//	planetwars simulate      - Run headless matches and print the outcomes
//	planetwars history       - Show recorded matches
//	planetwars config        - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.planetwars/history.db)
//	--config <path>      - Use a custom rules file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetwars/internal/config"
	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planetwars",
	Short: "Planet Wars - conquer the map one fleet at a time",
	Long: `Planet Wars is a real-time territory-conquest game for the terminal.
You start with one planet. Send fleets to take neutral planets and the
enemy's, and win once the enemy holds no planet and no fleet.

Available commands:
  play      - Play against the computer
  simulate  - Run headless matches with an idle player
  history   - Show recorded matches
  config    - Print the effective rules

Examples:
  planetwars play
  planetwars play --seed 42
  planetwars simulate -n 20 --seed 1
  planetwars config > ~/.planetwars/configs/planetwars.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.planetwars/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the log flags. Logs go to --log-file
// when set and to fallback otherwise. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "planetwars",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadRules resolves the rules file and converts it for the engine.
func loadRules(logger *log.Logger) (core.Rules, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return core.Rules{}, err
	}
	logger.Debug("rules loaded", "source", source)
	return cfg.Rules()
}
