package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a session in this terminal.

Move the mouse over the playfield to steer the paddle, then press the
start button (or Enter) to launch the ball. Break every block to see your
clear time; miss the ball and it's game over. Either way a fresh game is
set up once you dismiss the message.

Controls:
  Mouse          - Move the paddle
  Enter/Space    - Start
  Left/Right     - Nudge the paddle (for terminals without mouse support)
  Q/Ctrl+C       - Quit

Examples:
  blockbreaker play
  blockbreaker play --difficulty easy
  blockbreaker play --config ./my-blockbreaker.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
		Seed:     flagSeed,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// The program owns the terminal; logs go to a file or nowhere.
	var sink io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}
	gameLogger, err := newLogger(sink)
	if err != nil {
		return err
	}

	if err := tui.Run(cfg, rt, tui.WithStore(store), tui.WithLogger(gameLogger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
