package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/planetwars/internal/platform/tui"
	"github.com/vovakirdan/planetwars/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Show finished matches, newest first, with overall win statistics.

On a terminal this opens an interactive table. When output is piped it
prints plain text instead.

Examples:
  planetwars history
  planetwars history --limit 5 | cat
  planetwars history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to print in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Match history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	return printHistory(cmd.OutOrStdout(), matches, *stats)
}

// printHistory writes the plain-text history.
func printHistory(w io.Writer, matches []storage.Match, stats storage.Stats) error {
	fmt.Fprintln(w, "Match History - Planet Wars")
	fmt.Fprintln(w, tui.StatsLine(stats))
	if len(matches) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tRESULT\tTIME\tFLEETS\tSHIPS\tCAPTURES\tHELD\tSEED")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Result,
			tui.FormatDuration(time.Duration(m.DurationMs)*time.Millisecond),
			m.FleetsLaunched, m.ShipsLaunched, m.Captures, m.PlanetsHeld, m.Seed)
	}
	return tw.Flush()
}
