// blockbreaker is a block breaker game for the terminal.
//
// Usage:
//
//	blockbreaker play        - Play in the local terminal
//	blockbreaker serve       - Start SSH server for remote play
//	blockbreaker records     - Show best clear times and recent sessions
//	blockbreaker simulate    - Run headless sessions with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible ball placement
//	--db <path>           - Set database path (default: ~/.blockbreaker/sessions.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Ball speed preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block breaker - break every block in your terminal",
	Long: `Block breaker is a terminal take on the classic: bounce the ball off the
paddle and break all 48 blocks as fast as you can. Miss the ball and it's
game over.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  records   - View best clear times
  simulate  - Headless autopilot runs

Examples:
  blockbreaker play
  blockbreaker play --difficulty hard
  blockbreaker serve --ssh :2222
  blockbreaker records
  blockbreaker simulate --runs 10`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockbreaker/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the command logger at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockbreaker",
		Level:           level,
	}), nil
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.BlockBreakerConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BlockBreakerConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BlockBreakerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BlockBreakerConfig{}, err
	}
	return cfg, nil
}

// tickRate returns --fps, falling back to the config.
func tickRate(cfg config.BlockBreakerConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Session.TickRate
}

// openStore opens the sessions database. The game still works without it,
// so failures are logged and a nil store is returned.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database, records are disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
