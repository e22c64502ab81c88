package dino

import (
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// Player is the dino's mutable state.
type Player struct {
	X, Y          int  // X is fixed for the whole round
	Jumping       bool // Ascending, or hovering at the apex during a double-jump
	DoubleJumping bool
	Height        int // Cells above the ground row, 0..MaxJumpHeight

	DoubleJumpStart time.Time // When the current double-jump began
	LastDoubleJump  time.Time // Last activation; zero means never
	CanDoubleJump   bool      // Recomputed every tick from the cooldown
}

// NewPlayer returns a grounded dino at its starting cell.
func NewPlayer(cfg config.DinoConfig) Player {
	return Player{
		X:             cfg.Player.X,
		Y:             cfg.Player.Y,
		CanDoubleJump: true,
	}
}

// Pos returns the dino's cell.
func (p Player) Pos() core.Point {
	return core.Pt(p.X, p.Y)
}

// GameState is everything a round needs. The session owns it; the engine,
// renderer and input sampler receive it explicitly.
type GameState struct {
	Player    Player
	Obstacles []Obstacle
	Score     int
	HighScore int // Survives rounds, never decreases
	Over      bool
}

// addPoint scores one obstacle and keeps the high score in step.
func (st *GameState) addPoint() {
	st.Score++
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
}

// TickResult describes what happened during one engine update.
type TickResult struct {
	Scored   int  // Obstacles scored this tick
	Collided bool // Round ended this tick
	Hit      int  // Index of the obstacle hit, -1 if none
}

// Engine advances jump physics and obstacles by one tick.
type Engine struct {
	cfg   config.DinoConfig
	clock clock.Clock
	rng   *rand.Rand
}

// NewEngine creates an engine. rng re-randomizes recycled mobile obstacles.
func NewEngine(cfg config.DinoConfig, clk clock.Clock, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, clock: clk, rng: rng}
}

// Update runs one tick: double-jump timeout, vertical motion, eligibility,
// then every obstacle in list order. A collision stops the tick at once.
func (e *Engine) Update(st *GameState) TickResult {
	now := e.clock.Now()
	e.updatePlayer(&st.Player, now)
	return e.updateObstacles(st)
}

// updatePlayer moves the dino along its triangular jump arc.
func (e *Engine) updatePlayer(p *Player, now time.Time) {
	phys := e.cfg.Physics

	if p.DoubleJumping && now.Sub(p.DoubleJumpStart) >= phys.MaxDoubleJumpDuration.Std() {
		p.DoubleJumping = false
		p.Jumping = false
	}

	switch {
	case p.Jumping || p.DoubleJumping:
		if p.Height < phys.MaxJumpHeight {
			p.Height++
			p.Y--
		} else if !p.DoubleJumping {
			// Apex: the descent starts next tick
			p.Jumping = false
		}
	case p.Height > 0:
		p.Height--
		p.Y++
	}

	p.CanDoubleJump = p.LastDoubleJump.IsZero() ||
		now.Sub(p.LastDoubleJump) >= phys.DoubleJumpCooldown.Std()
}

// updateObstacles scrolls, bounces, scores, recycles and collision-checks
// each obstacle in order.
func (e *Engine) updateObstacles(st *GameState) TickResult {
	res := TickResult{Hit: -1}
	band := e.cfg.Obstacles
	p := st.Player

	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		o.move(band.BandMin, band.BandMax)

		// One-cell lookahead: scored while directly behind the dino's lead edge
		if o.X == p.X-1 && !o.Passed {
			o.Passed = true
			st.addPoint()
			res.Scored++
		}

		if o.X < 0 {
			o.recycle(e.cfg.Grid.Width-1, band.BandMin, band.BandMax, e.rng)
		}

		if o.Pos() == p.Pos() {
			res.Collided = true
			res.Hit = i
			return res
		}
	}
	return res
}
