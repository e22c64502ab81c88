// arcade runs Dino Run, a terminal endless runner: jump over scrolling
// obstacles, score a point for each one you pass.
//
// Usage:
//
//	arcade play              - Play in this terminal
//	arcade serve             - Start SSH server for remote play
//	arcade scores            - Show the best logged rounds
//	arcade config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom dino.yaml
//	--db <path>         - Log finished rounds to this SQLite database
//	--log-file <path>   - Write logs to this file (default: discarded)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Dino Run - jump over obstacles in your terminal",
	Long: `Dino Run is a terminal endless runner on a fixed 80x20 grid.
Jump over the obstacles scrolling in from the right; every obstacle
you pass is a point. Jump again mid-air for a double-jump that hovers
at the top of the arc.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show the best logged rounds
  config   - Print the effective configuration

Examples:
  arcade play
  arcade play --renderer tcell --seed 42
  arcade play --db ~/.arcade/rounds.db
  arcade serve --ssh :2222
  arcade scores --db ~/.arcade/rounds.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dino.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to round log database (empty = no recording)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (empty = discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to --log-file, or to fallback
// when no file is given. The returned func closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the game configuration from --config and the search path.
func loadConfig() (config.DinoConfig, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return config.DinoConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// openRoundLog opens --db if set. A database that cannot be opened only
// disables recording; the game still runs.
func openRoundLog(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round log, rounds will not be recorded", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open round log: %v\n", err)
		return nil
	}
	return store
}

// roundRecord converts a finished round to its log entry.
func roundRecord(res dino.RoundResult) storage.RoundRecord {
	return storage.RoundRecord{
		Round:     res.Round,
		Pattern:   res.Pattern,
		Score:     res.Score,
		HighScore: res.HighScore,
		Ticks:     res.Ticks,
		Duration:  res.Duration,
	}
}

// recordRounds returns a round-over hook that appends to store.
// Write failures are logged and otherwise ignored.
func recordRounds(store *storage.Store, logger *log.Logger) func(dino.RoundResult) {
	return func(res dino.RoundResult) {
		if _, err := store.SaveRound(roundRecord(res)); err != nil {
			logger.Warn("could not record round", "round", res.Round, "error", err)
		}
	}
}
