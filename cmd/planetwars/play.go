package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	platformcore "github.com/vovakirdan/planetwars/internal/core"
	"github.com/vovakirdan/planetwars/internal/games/planetwars"
	"github.com/vovakirdan/planetwars/internal/platform/tui"
	"github.com/vovakirdan/planetwars/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer",
	Long: `Start a game against the computer opponent.

Controls:
  Click a planet you own, then click a target to send all its ships.
  Each planet shows a label; typing labels works the same as clicking.
  Esc        - Drop the selection
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.planetwars/screenshots
  Q/Ctrl+C   - Quit

Examples:
  planetwars play
  planetwars play --seed 42
  planetwars play --map duel
  planetwars play --config ./fast-fleets.yaml --log-file /tmp/pw.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rules, err := loadRules(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := platformcore.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var recorder tui.MatchRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without history.
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "err", err)
	} else {
		defer store.Close()
		recorder = store
	}

	opts := []planetwars.Option{planetwars.WithRules(rules), planetwars.WithLogger(logger)}
	board, err := resolveMap()
	if err != nil {
		return err
	}
	if board != nil {
		logger.Info("playing map", "id", board.ID, "file", board.FilePath)
		opts = append(opts, planetwars.WithMap(board))
	}

	game := planetwars.New(opts...)
	if err := tui.Run(game, recorder, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
