package dino

import (
	"time"

	"github.com/vovakirdan/dino-run/internal/core"
)

// JumpKind reports how a jump request was handled.
type JumpKind int

const (
	JumpIgnored JumpKind = iota // Airborne and double-jump unavailable
	JumpNormal
	JumpDouble
)

// String returns a human-readable name for the jump kind.
func (k JumpKind) String() string {
	switch k {
	case JumpNormal:
		return "jump"
	case JumpDouble:
		return "double-jump"
	default:
		return "ignored"
	}
}

// Jump applies a jump request at time now.
func (p *Player) Jump(now time.Time) JumpKind {
	switch {
	case !p.Jumping:
		p.Jumping = true
		return JumpNormal
	case p.CanDoubleJump && !p.DoubleJumping:
		p.DoubleJumping = true
		p.DoubleJumpStart = now
		p.LastDoubleJump = now
		return JumpDouble
	default:
		return JumpIgnored
	}
}

// ApplyInput consumes the action sampled for this tick.
// Only ActionJump means anything while playing; everything else is ignored.
func ApplyInput(st *GameState, a core.Action, now time.Time) JumpKind {
	if a != core.ActionJump {
		return JumpIgnored
	}
	return st.Player.Jump(now)
}
