package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/platform/console"
	"github.com/vovakirdan/dino-run/internal/platform/tui"
)

// Renderer names accepted by --renderer.
const (
	rendererTea   = "tea"
	rendererTcell = "tcell"
)

var (
	flagRenderer string
	flagPattern  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dino Run",
	Long: `Start playing Dino Run in this terminal.

Controls:
  Space/Up   - Jump, or double-jump while airborne
  R          - Restart (after game over)
  Q          - Quit (after game over)
  Ctrl+C     - Exit at any time
  Ctrl+S     - Save a screenshot (tea renderer)

Renderers:
  tea    - Bubble Tea frontend (default)
  tcell  - direct tcell frontend with a fixed-delay loop

Examples:
  arcade play
  arcade play --renderer tcell
  arcade play --seed 42 --pattern 3
  arcade play --config ./my-dino.yaml --db ~/.arcade/rounds.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTea, "Frontend: tea or tcell")
	playCmd.Flags().IntVar(&flagPattern, "pattern", -1, "Always start from this obstacle layout (-1 = random)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagRenderer != rendererTea && flagRenderer != rendererTcell {
		return fmt.Errorf("unknown renderer %q (want %s or %s)", flagRenderer, rendererTea, rendererTcell)
	}
	if flagPattern < -1 || flagPattern >= dino.PatternCount() {
		return fmt.Errorf("--pattern must be between 0 and %d", dino.PatternCount()-1)
	}

	// The game owns the terminal, so logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard, "arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	warnSmallTerminal(cfg)

	opts := []dino.Option{dino.WithLogger(logger)}
	if flagPattern >= 0 {
		opts = append(opts, dino.WithPattern(flagPattern))
	}
	if store := openRoundLog(logger); store != nil {
		defer store.Close()
		opts = append(opts, dino.WithRoundOver(recordRounds(store, logger)))
	}

	seed := resolveSeed(flagSeed)
	logger.Info("starting", "renderer", flagRenderer, "seed", seed)
	session := dino.NewSession(cfg, seed, opts...)

	if flagRenderer == rendererTcell {
		return playConsole(session, logger)
	}
	if err := tui.Run(session, tui.WithModelLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playConsole runs the blocking loop on a tcell screen until quit or ctrl+c.
func playConsole(session *dino.Session, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := console.Open(console.WithInterrupt(cancel))
	if err != nil {
		return err
	}
	defer c.Close()

	err = session.Run(ctx, c)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

// warnSmallTerminal prints a notice when the terminal cannot hold the frame.
// The game still starts; rows and columns past the edge are cut off.
func warnSmallTerminal(cfg config.DinoConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW, needH := cfg.Grid.Width, cfg.Grid.Height+dino.HUDRows
	if w < needW || h < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, Dino Run needs %dx%d\n", w, h, needW, needH)
	}
}
