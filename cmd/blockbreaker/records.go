package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var (
	flagRecordsLimit int
	flagRecordsPlain bool
	flagRecordsReset bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show best clear times and recent sessions",
	Long: `Display stored sessions. In a terminal an interactive table is shown;
when stdout is redirected (or with --plain) the lists are printed as text.

Examples:
  blockbreaker records
  blockbreaker records --plain --limit 5
  blockbreaker records --reset`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Rows per list in plain output")
	recordsCmd.Flags().BoolVar(&flagRecordsPlain, "plain", false, "Print plain text instead of the interactive table")
	recordsCmd.Flags().BoolVar(&flagRecordsReset, "reset", false, "Delete all stored sessions")
}

func runRecords(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening sessions database: %w", err)
	}
	defer store.Close()

	if flagRecordsReset {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("All sessions deleted.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if flagRecordsPlain || !term.IsTerminal(fd) {
		return printRecords(os.Stdout, store, flagRecordsLimit)
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = 80, 24
	}
	return tui.RunRecords(store, width, height)
}

// printRecords writes best clears, recent sessions and totals as text.
func printRecords(w io.Writer, store *storage.Store, limit int) error {
	clears, err := store.BestClears(limit)
	if err != nil {
		return err
	}
	recent, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	var errs []error
	write := func(format string, args ...any) {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			errs = append(errs, err)
		}
	}

	write("Best clear times\n\n")
	if len(clears) == 0 {
		write("  No clears recorded yet.\n")
	} else {
		write("  %-4s  %-6s  %s\n", "Rank", "Time", "Date")
		write("  %-4s  %-6s  %s\n", "----", "----", "----")
		for i, r := range clears {
			write("  %-4d  %-6s  %s\n", i+1, fmt.Sprintf("%ds", r.Seconds), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	write("\nRecent sessions\n\n")
	if len(recent) == 0 {
		write("  No sessions recorded yet.\n")
	} else {
		write("  %-6s  %-6s  %-6s  %s\n", "Result", "Time", "Blocks", "Date")
		write("  %-6s  %-6s  %-6s  %s\n", "------", "----", "------", "----")
		for _, r := range recent {
			write("  %-6s  %-6s  %-6d  %s\n", r.Outcome, fmt.Sprintf("%ds", r.Seconds), r.BlocksDestroyed, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	write("\n%s\n", tui.FormatStats(stats))
	return errors.Join(errs...)
}
