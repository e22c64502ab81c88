package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-run/internal/platform/tui"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best logged rounds",
	Long: `Display the best rounds from the round log written by 'arcade play --db'.

In a terminal the leaderboard is interactive; with --plain, or when output
is piped, the table is printed once.

Examples:
  arcade scores --db ~/.arcade/rounds.db
  arcade scores --db ~/.arcade/rounds.db --limit 5 --plain
  arcade scores --db ~/.arcade/rounds.db --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the interactive view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every logged round")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no round log: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Round log cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		return printScores(os.Stdout, store, flagLimit)
	}

	rounds, err := store.TopRounds(flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(rounds, stats, width, height)
}

// printScores writes the leaderboard once, followed by the best score.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	rounds, err := store.TopRounds(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	best, err := store.BestScore()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, tui.NewScoreboardModel(rounds, stats, 80, len(rounds)+12).View())
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
