package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var (
	flagSimRuns      int
	flagSimFrames    int
	flagSimMaxOffset float64
	flagSimRecord    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless sessions with the autopilot",
	Long: `Play sessions without a terminal. The autopilot keeps the paddle under
the ball, shifting its aim by up to --max-offset pixels so the ball spreads
across the grid. Time is simulated at the configured frame rate, so clear
times are reproducible for a given --seed.

Examples:
  blockbreaker simulate
  blockbreaker simulate --runs 20 --seed 7
  blockbreaker simulate --max-offset 40     # wider than half the paddle: can lose
  blockbreaker simulate --record            # store results like real sessions`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of sessions to run")
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 200000, "Frame budget per session")
	simulateCmd.Flags().Float64Var(&flagSimMaxOffset, "max-offset", 30, "Largest aim offset from the paddle center, in pixels")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save each finished session to the database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSimRecord {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	step := time.Second / time.Duration(tickRate(cfg))

	for run := range flagSimRuns {
		runSeed := seed + int64(run)
		clock := blockbreaker.NewSimClock(time.Unix(0, 0), step)
		sess := blockbreaker.NewSession(cfg, runSeed, blockbreaker.WithClock(clock.Now))
		pilot := blockbreaker.NewAutopilot(runSeed, flagSimMaxOffset)

		res, err := blockbreaker.RunSimulated(ctx, sess, nil, clock, flagSimFrames, pilot)
		switch {
		case errors.Is(err, blockbreaker.ErrFrameLimit):
			logger.Warn("frame budget exhausted", "run", run+1, "seed", runSeed, "frames", flagSimFrames)
		case err != nil:
			return err
		}

		fmt.Printf("run %d  seed %d  %-7s  frames %d  simulated %ds  destroyed %d/%d\n",
			run+1, runSeed, res.Phase, sess.Game().Ticks(), sess.ElapsedSeconds(),
			sess.Game().Destroyed(), cfg.BlockCount())

		if store != nil && res.Phase.Ended() {
			rec := storage.Record{
				Outcome:         storage.OutcomeLose,
				Seconds:         sess.ElapsedSeconds(),
				BlocksDestroyed: sess.Game().Destroyed(),
			}
			if res.Phase == blockbreaker.PhaseWon {
				rec.Outcome = storage.OutcomeWin
				rec.Seconds = res.Seconds
			}
			if _, err := store.SaveSession(rec); err != nil {
				logger.Warn("could not save session", "error", err)
			}
		}
	}
	return nil
}
