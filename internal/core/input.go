package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - jump, or double-jump while airborne
	ActionRestart        // R - start a new round from the round-over menu
	ActionQuit           // Q - leave from the round-over menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Latch holds at most one pending action between two ticks.
// The first action offered wins; later ones are discarded until Take.
type Latch struct {
	pending Action
}

// Offer records a if nothing is pending yet.
// Returns false when the action was discarded.
func (l *Latch) Offer(a Action) bool {
	if a == ActionNone || l.pending != ActionNone {
		return false
	}
	l.pending = a
	return true
}

// Take returns the pending action and empties the latch.
func (l *Latch) Take() Action {
	a := l.pending
	l.pending = ActionNone
	return a
}
