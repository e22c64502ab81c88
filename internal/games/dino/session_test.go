package dino

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// fakeTerminal scripts input and records presented frames.
type fakeTerminal struct {
	polls   []core.Action // Returned by PollAction in order, then ActionNone
	waits   []core.Action // Returned by WaitAction in order
	frames  []string
	present error
}

func (f *fakeTerminal) Present(frame *core.Screen) error {
	f.frames = append(f.frames, frame.String())
	return f.present
}

func (f *fakeTerminal) PollAction() core.Action {
	if len(f.polls) == 0 {
		return core.ActionNone
	}
	a := f.polls[0]
	f.polls = f.polls[1:]
	return a
}

func (f *fakeTerminal) WaitAction(ctx context.Context) (core.Action, error) {
	if len(f.waits) == 0 {
		return core.ActionNone, errors.New("no more scripted input")
	}
	a := f.waits[0]
	f.waits = f.waits[1:]
	return a, nil
}

// farAway is a single obstacle that will not reach the dino for a long time.
func farAway() []Obstacle {
	return []Obstacle{{X: 79, Y: 12, Shape: ShapeBlock, Dir: 1}}
}

func TestNewSessionStartsPlaying(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()))

	if s.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", s.Phase())
	}
	if s.Round() != 1 {
		t.Errorf("Round() = %d, expected 1", s.Round())
	}
	st := s.State()
	if n := len(st.Obstacles); n < 3 || n > 5 {
		t.Errorf("round started with %d obstacles, expected 3-5", n)
	}
	if st.Player.Pos() != core.Pt(5, 10) {
		t.Errorf("player at %v, expected (5, 10)", st.Player.Pos())
	}
	if s.Screen().Get(5, 10+HUDRows) != DinoChar {
		t.Error("first frame should be drawn before the first tick")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()))

	st := s.State()
	st.Obstacles[0].X = -50
	if s.State().Obstacles[0].X == -50 {
		t.Error("State() should not expose the session's obstacle slice")
	}
}

func TestTickCollisionEndsRound(t *testing.T) {
	var results []RoundResult
	s := NewSession(config.DefaultDinoConfig(), 1,
		WithClock(clock.NewMock()),
		WithRoundOver(func(r RoundResult) { results = append(results, r) }),
	)
	s.state.Obstacles = []Obstacle{{X: 6, Y: 10, Shape: ShapeBlock, Dir: 1}}

	res := s.Tick(core.ActionJump)

	if !res.Collided {
		t.Fatal("expected a collision on the first tick")
	}
	if s.Phase() != PhaseRoundOver || !s.State().Over {
		t.Error("collision should move the session to round-over")
	}
	if s.State().Player.Jumping {
		t.Error("input sampled on the colliding tick must not be applied")
	}
	if len(results) != 1 || results[0].Score != 0 || results[0].Round != 1 {
		t.Errorf("round results = %+v, expected one zero-score round", results)
	}
	if got := s.Screen().String(); !containsAll(got, "Game Over!", "Press 'R' to restart") {
		t.Error("round-over menu should be drawn")
	}

	// Ticks are ignored while the menu is up
	before := s.State()
	s.Tick(core.ActionNone)
	if s.State().Obstacles[0] != before.Obstacles[0] {
		t.Error("Tick should not advance the world during round-over")
	}
}

func TestTickAppliesInputAfterRender(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()))
	s.state.Obstacles = farAway()

	s.Tick(core.ActionJump)

	// The jump is registered but the dino has not moved yet
	if !s.State().Player.Jumping {
		t.Error("jump should be applied during the tick")
	}
	if s.Screen().Get(5, 10+HUDRows) != DinoChar {
		t.Error("frame was rendered before input, dino should still be on the ground row")
	}

	s.Tick(core.ActionNone)
	if s.State().Player.Y != 9 {
		t.Errorf("dino y = %d, expected 9 one tick after the jump", s.State().Player.Y)
	}
}

// scoreThenCrash earns points by letting obstacles on row 3 pass the dino,
// then ends the round with an obstacle on the dino's row.
func scoreThenCrash(t *testing.T, s *Session, points int) {
	t.Helper()

	s.state.Obstacles = nil
	for i := 0; i < points; i++ {
		s.state.Obstacles = append(s.state.Obstacles, Obstacle{X: 6 + i, Y: 3, Shape: ShapeBlock, Dir: 1})
	}
	for i := 0; i <= points; i++ {
		s.Tick(core.ActionNone)
	}
	if s.Phase() != PhasePlaying {
		t.Fatal("passing obstacles should not end the round")
	}
	if s.State().Score != points {
		t.Fatalf("score = %d after passing %d obstacles", s.State().Score, points)
	}

	s.state.Obstacles = append(s.state.Obstacles, Obstacle{X: 6, Y: 10, Shape: ShapeBlock, Dir: 1})
	s.Tick(core.ActionNone)
	if s.Phase() != PhaseRoundOver {
		t.Fatal("obstacle on the dino row should end the round")
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 3, WithClock(clock.NewMock()))

	scores := []int{4, 2, 7, 0}
	want := []int{4, 4, 7, 7}
	for round, points := range scores {
		scoreThenCrash(t, s, points)
		if got := s.State().HighScore; got != want[round] {
			t.Errorf("round %d: high score = %d, expected %d", round+1, got, want[round])
		}

		if quit := s.Choose(core.ActionRestart); quit {
			t.Fatal("restart should not quit")
		}
		if s.Phase() != PhasePlaying || s.State().Score != 0 {
			t.Fatalf("restart should begin a zero-score round")
		}
		if got := s.State().HighScore; got != want[round] {
			t.Errorf("restart after round %d: high score = %d, expected %d", round+1, got, want[round])
		}
	}

	if s.Round() != 5 {
		t.Errorf("Round() = %d, expected 5", s.Round())
	}
}

func TestRestartResetsPlayer(t *testing.T) {
	mock := clock.NewMock()
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(mock))
	s.state.Obstacles = farAway()

	s.Tick(core.ActionJump)
	s.Tick(core.ActionJump) // double-jump
	if !s.State().Player.DoubleJumping {
		t.Fatal("setup: expected a double-jump")
	}

	s.state.Obstacles = []Obstacle{{X: 6, Y: s.state.Player.Y - 1, Shape: ShapeBlock, Dir: 1}}
	s.Tick(core.ActionNone)
	if s.Phase() != PhaseRoundOver {
		t.Fatal("setup: expected the round to end")
	}

	s.Choose(core.ActionRestart)
	p := s.State().Player
	if p != NewPlayer(config.DefaultDinoConfig()) {
		t.Errorf("player after restart = %+v, expected a fresh player", p)
	}
}

func TestChooseIgnoresOtherKeys(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()))
	s.state.Obstacles = []Obstacle{{X: 6, Y: 10, Shape: ShapeBlock, Dir: 1}}
	s.Tick(core.ActionNone)

	if s.Choose(core.ActionJump) {
		t.Error("jump should not quit from the menu")
	}
	if s.Phase() != PhaseRoundOver {
		t.Error("jump should not restart from the menu")
	}
	if !s.Choose(core.ActionQuit) {
		t.Error("quit should be reported")
	}
}

func TestRunQuitFromMenu(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1,
		WithClock(clock.NewMock()),
		WithDelay(func(context.Context, time.Duration) error {
			t.Fatal("no delay expected before the first collision")
			return nil
		}),
	)
	s.state.Obstacles = []Obstacle{{X: 6, Y: 10, Shape: ShapeBlock, Dir: 1}}
	term := &fakeTerminal{waits: []core.Action{core.ActionJump, core.ActionQuit}}

	if err := s.Run(context.Background(), term); err != nil {
		t.Fatalf("Run() = %v, expected nil after quit", err)
	}
	if len(term.frames) != 1 || !containsAll(term.frames[0], "Game Over!") {
		t.Errorf("expected exactly the round-over frame, got %d frames", len(term.frames))
	}
}

func TestRunTicksAtInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var delays []time.Duration
	s := NewSession(config.DefaultDinoConfig(), 1,
		WithClock(clock.NewMock()),
		WithDelay(func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			if len(delays) == 3 {
				cancel()
			}
			return nil
		}),
	)
	s.state.Obstacles = farAway()
	term := &fakeTerminal{polls: []core.Action{core.ActionJump}}

	err := s.Run(ctx, term)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if len(term.frames) != 3 {
		t.Errorf("presented %d frames, expected 3", len(term.frames))
	}
	for _, d := range delays {
		if d != 100*time.Millisecond {
			t.Errorf("delay = %v, expected 100ms", d)
		}
	}
	// Jump sampled on tick 1, dino rises on ticks 2 and 3
	if y := s.State().Player.Y; y != 8 {
		t.Errorf("dino y = %d, expected 8", y)
	}
}

func TestRunRestartThenCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := 0
	s := NewSession(config.DefaultDinoConfig(), 1,
		WithClock(clock.NewMock()),
		WithDelay(func(context.Context, time.Duration) error {
			ticks++
			cancel()
			return nil
		}),
	)
	s.state.Obstacles = []Obstacle{{X: 6, Y: 10, Shape: ShapeBlock, Dir: 1}}
	term := &fakeTerminal{waits: []core.Action{core.ActionRestart}}

	if err := s.Run(ctx, term); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if s.Round() != 2 {
		t.Errorf("Round() = %d, expected 2 after restart", s.Round())
	}
	if ticks != 1 {
		t.Errorf("ticks after restart = %d, expected 1", ticks)
	}
}

func TestRunPresentError(t *testing.T) {
	boom := errors.New("terminal gone")
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()))
	s.state.Obstacles = farAway()

	err := s.Run(context.Background(), &fakeTerminal{present: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected %v", err, boom)
	}
}

func TestSleepHonorsContext(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleep() = %v, expected context.Canceled", err)
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func TestWithPatternFixesLayout(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()), WithPattern(4))

	for round := 1; round <= 3; round++ {
		if s.Pattern() != 4 {
			t.Fatalf("round %d uses pattern %d, expected 4", round, s.Pattern())
		}
		s.state.Obstacles = []Obstacle{{X: 6, Y: 10, Shape: ShapeBlock, Dir: 1}}
		s.Tick(core.ActionNone)
		s.Choose(core.ActionRestart)
	}
	if got := s.State().Obstacles; len(got) != 4 || got[0].X != 50 {
		t.Errorf("obstacles = %+v, expected layout 4", got)
	}
}

func TestWithPatternOutOfRange(t *testing.T) {
	for _, i := range []int{-1, PatternCount()} {
		s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()), WithPattern(i))
		if s.fixed != -1 {
			t.Errorf("WithPattern(%d) should be ignored", i)
		}
	}
}

func TestPatternZeroCollidesWithoutInput(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 1, WithClock(clock.NewMock()), WithPattern(0))

	ticks := 0
	for s.Phase() == PhasePlaying && ticks < 100 {
		s.Tick(core.ActionNone)
		ticks++
	}
	// The block at (50, 10) reaches the dino's column after 45 ticks
	if ticks != 45 {
		t.Errorf("round ended after %d ticks, expected 45", ticks)
	}
	if s.State().Score != 0 {
		t.Errorf("score = %d, expected 0", s.State().Score)
	}
}
