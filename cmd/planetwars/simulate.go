package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/planetwars/internal/core"
	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
	"github.com/vovakirdan/planetwars/internal/platform/tui"
	"github.com/vovakirdan/planetwars/internal/storage"
)

var (
	flagMatches  int
	flagLimit    time.Duration
	flagFrameMs  float64
	flagSaveRuns bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless matches with an idle player",
	Long: `Run seeded matches without a terminal UI. The player never moves, so
every match shows how fast the computer opponent takes the map.

Match i uses seed --seed + i. A zero --seed starts from the current time.

Examples:
  planetwars simulate
  planetwars simulate -n 50 --seed 1 --limit 5m
  planetwars simulate --seed 7 --log-level debug
  planetwars simulate --map crossroads -n 20`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&flagMatches, "matches", "n", 10, "Number of matches to run")
	simulateCmd.Flags().DurationVar(&flagLimit, "limit", 10*time.Minute, "Virtual time limit per match")
	simulateCmd.Flags().Float64Var(&flagFrameMs, "step", 16, "Virtual milliseconds per simulation step")
	simulateCmd.Flags().BoolVar(&flagSaveRuns, "save", false, "Record finished matches in the history database")
}

// simOutcome is one headless match.
type simOutcome struct {
	Seed   int64
	Result core.Result
	Stats  core.Stats
	Held   int
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagMatches <= 0 {
		return fmt.Errorf("--matches must be positive, got %d", flagMatches)
	}
	if flagFrameMs <= 0 {
		return fmt.Errorf("--step must be positive, got %g", flagFrameMs)
	}

	rules, err := loadRules(logger)
	if err != nil {
		return err
	}

	board, err := resolveMap()
	if err != nil {
		return err
	}
	var layout []core.PlanetSpec
	if board != nil {
		layout = board.Layout(rules.Width, rules.Height)
	}

	var store *storage.Store
	if flagSaveRuns {
		if store, err = storage.Open(flagDBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	var defeats, timeouts int
	for i := range flagMatches {
		o, err := simulateMatch(rules, layout, base+int64(i), flagLimit, flagFrameMs, logger)
		if err != nil {
			return err
		}
		printOutcome(out, o)

		switch o.Result {
		case core.ResultDefeat:
			defeats++
		case core.ResultNone:
			timeouts++
		}

		if store != nil && o.Result != core.ResultNone {
			m := tui.MatchFromSummary(summaryOf(o))
			if _, err := store.SaveMatch(m); err != nil {
				logger.Error("cannot save match", "seed", o.Seed, "err", err)
			}
		}
	}

	fmt.Fprintf(out, "\n%d matches: %d defeats, %d unfinished\n", flagMatches, defeats, timeouts)
	return nil
}

// simulateMatch runs one match with an idle player until it ends or the
// virtual clock passes limit. A nil layout generates a random map.
func simulateMatch(rules core.Rules, layout []core.PlanetSpec, seed int64, limit time.Duration, frameMs float64, logger *log.Logger) (simOutcome, error) {
	opts := []core.Option{core.WithLogger(logger.With("seed", seed))}
	if layout != nil {
		opts = append(opts, core.WithLayout(layout))
	}
	sim, err := core.New(rules, core.NewRandom(seed), opts...)
	if err != nil {
		return simOutcome{}, err
	}

	limitMs := float64(limit.Milliseconds())
	for !sim.Status().Over() && sim.Now() < limitMs {
		sim.Advance(frameMs)
	}

	return simOutcome{
		Seed:   seed,
		Result: sim.Status().Result,
		Stats:  sim.Stats(),
		Held:   len(sim.PlanetsOwnedBy(core.Player)),
	}, nil
}

func summaryOf(o simOutcome) platformcore.MatchSummary {
	return platformcore.MatchSummary{
		Game:           "planetwars",
		Result:         o.Result.String(),
		Seed:           o.Seed,
		Round:          1,
		DurationMs:     o.Stats.ElapsedMs,
		FleetsLaunched: o.Stats.FleetsLaunched[core.Player],
		ShipsLaunched:  o.Stats.ShipsLaunched[core.Player],
		Captures:       o.Stats.Captures[core.Player],
		PlanetsHeld:    o.Held,
	}
}

func printOutcome(w io.Writer, o simOutcome) {
	result := o.Result.String()
	if o.Result == core.ResultNone {
		result = "UNFINISHED"
	}
	elapsed := tui.FormatDuration(time.Duration(o.Stats.ElapsedMs) * time.Millisecond)
	fmt.Fprintf(w, "seed %-20d %-10s %6s  enemy fleets %3d  ships %5d  captures %2d\n",
		o.Seed, result, elapsed,
		o.Stats.FleetsLaunched[core.Opponent], o.Stats.ShipsLaunched[core.Opponent],
		o.Stats.Captures[core.Opponent])
}
