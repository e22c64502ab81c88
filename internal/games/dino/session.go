// Package dino implements Dino Run: a dino on a fixed 80x20 grid jumps over
// obstacles that scroll in from the right, one point per obstacle passed.
package dino

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseRoundOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseRoundOver {
		return "round-over"
	}
	return "playing"
}

// Terminal is the display and keyboard the blocking loop drives.
type Terminal interface {
	// Present shows a fully drawn frame.
	Present(frame *core.Screen) error
	// PollAction returns the pending action, or ActionNone. It never blocks.
	PollAction() core.Action
	// WaitAction blocks until an action arrives or ctx is done.
	WaitAction(ctx context.Context) (core.Action, error)
}

// RoundResult summarizes a finished round.
type RoundResult struct {
	Round     int
	Pattern   int
	Score     int
	HighScore int
	Ticks     int
	Duration  time.Duration
}

// Session owns the game state and runs the Playing/RoundOver state machine.
type Session struct {
	cfg      config.DinoConfig
	clock    clock.Clock
	rng      *rand.Rand
	logger   *log.Logger
	engine   *Engine
	patterns *PatternGenerator
	renderer *Renderer
	screen   *core.Screen
	delay    func(ctx context.Context, d time.Duration) error
	onOver   func(RoundResult)
	fixed    int // Catalog index every round uses, or -1 for random

	state      GameState
	phase      Phase
	round      int
	pattern    int
	ticks      int
	roundStart time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source used for double-jump timing and the loop delay.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithDelay replaces the end-of-tick wait used by Run.
func WithDelay(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Session) { s.delay = fn }
}

// WithRoundOver registers a callback invoked once per finished round.
func WithRoundOver(fn func(RoundResult)) Option {
	return func(s *Session) { s.onOver = fn }
}

// WithPattern makes every round start from catalog layout i instead of a
// random one. Out-of-range indexes are ignored.
func WithPattern(i int) Option {
	return func(s *Session) {
		if i >= 0 && i < PatternCount() {
			s.fixed = i
		}
	}
}

// NewSession creates a session and starts its first round.
func NewSession(cfg config.DinoConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		clock:  clock.New(),
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
		fixed:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.delay == nil {
		s.delay = s.sleep
	}

	s.engine = NewEngine(cfg, s.clock, s.rng)
	s.patterns = NewPatternGenerator(s.rng)
	s.renderer = NewRenderer(cfg)
	s.screen = core.NewScreen(s.renderer.ScreenSize())

	s.startRound()
	return s
}

// startRound resets the player and score and draws a fresh obstacle set.
func (s *Session) startRound() {
	s.round++
	if s.fixed >= 0 {
		s.pattern, s.state.Obstacles = s.fixed, Pattern(s.fixed)
	} else {
		s.pattern, s.state.Obstacles = s.patterns.Next()
	}
	s.state.Player = NewPlayer(s.cfg)
	s.state.Score = 0
	s.state.Over = false
	s.phase = PhasePlaying
	s.ticks = 0
	s.roundStart = s.clock.Now()

	s.logger.Debug("round started", "round", s.round, "pattern", s.pattern, "obstacles", len(s.state.Obstacles))
	s.renderer.Render(s.screen, &s.state)
}

// endRound switches to RoundOver and draws the menu.
func (s *Session) endRound(hit int) {
	s.phase = PhaseRoundOver
	s.state.Over = true

	res := RoundResult{
		Round:     s.round,
		Pattern:   s.pattern,
		Score:     s.state.Score,
		HighScore: s.state.HighScore,
		Ticks:     s.ticks,
		Duration:  s.clock.Since(s.roundStart),
	}
	s.logger.Info("round over", "round", res.Round, "score", res.Score, "high", res.HighScore, "obstacle", hit)
	if s.onOver != nil {
		s.onOver(res)
	}

	s.renderer.RenderRoundOver(s.screen, &s.state)
}

// advance runs the update and render halves of a tick.
func (s *Session) advance() TickResult {
	s.ticks++
	res := s.engine.Update(&s.state)
	if res.Collided {
		s.endRound(res.Hit)
		return res
	}
	s.renderer.Render(s.screen, &s.state)
	return res
}

// sample applies the input half of a tick.
func (s *Session) sample(a core.Action) {
	kind := ApplyInput(&s.state, a, s.clock.Now())
	if kind == JumpDouble {
		s.logger.Debug("double jump", "height", s.state.Player.Height)
	}
}

// Tick runs update, render and input for one tick with an already sampled
// action. It does nothing outside PhasePlaying.
func (s *Session) Tick(a core.Action) TickResult {
	if s.phase != PhasePlaying {
		return TickResult{Hit: -1}
	}
	res := s.advance()
	if s.phase == PhasePlaying {
		s.sample(a)
	}
	return res
}

// Choose handles a round-over menu action. Restart begins a new round;
// the return value is true when the player asked to quit.
func (s *Session) Choose(a core.Action) (quit bool) {
	if s.phase != PhaseRoundOver {
		return false
	}
	switch a {
	case core.ActionRestart:
		s.startRound()
	case core.ActionQuit:
		return true
	}
	return false
}

// Run drives the session against a blocking terminal until the player quits
// (nil) or ctx ends (ctx.Err()). Each tick is update, render, input, delay.
func (s *Session) Run(ctx context.Context, term Terminal) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch s.phase {
		case PhasePlaying:
			s.advance()
			if s.phase != PhasePlaying {
				continue
			}
			if err := term.Present(s.screen); err != nil {
				return err
			}
			s.sample(term.PollAction())
			if err := s.delay(ctx, s.cfg.Timing.TickInterval.Std()); err != nil {
				return err
			}

		case PhaseRoundOver:
			if err := term.Present(s.screen); err != nil {
				return err
			}
			for s.phase == PhaseRoundOver {
				a, err := term.WaitAction(ctx)
				if err != nil {
					return err
				}
				if s.Choose(a) {
					return nil
				}
			}
		}
	}
}

// sleep waits d on the session clock, returning early when ctx is done.
func (s *Session) sleep(ctx context.Context, d time.Duration) error {
	t := s.clock.Timer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Screen returns the most recently drawn frame.
func (s *Session) Screen() *core.Screen {
	return s.screen
}

// State returns a copy of the game state.
func (s *Session) State() GameState {
	st := s.state
	st.Obstacles = append([]Obstacle(nil), s.state.Obstacles...)
	return st
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Pattern returns the catalog index of the current round's layout.
func (s *Session) Pattern() int {
	return s.pattern
}

// Round returns the 1-based number of the current round.
func (s *Session) Round() int {
	return s.round
}

// TickInterval returns the configured loop cadence.
func (s *Session) TickInterval() time.Duration {
	return s.cfg.Timing.TickInterval.Std()
}
