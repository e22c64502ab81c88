package core

import "testing"

func TestLatchFirstActionWins(t *testing.T) {
	var l Latch

	if !l.Offer(ActionJump) {
		t.Fatal("first offer should be accepted")
	}
	if l.Offer(ActionRestart) {
		t.Error("second offer should be discarded")
	}
	if got := l.Take(); got != ActionJump {
		t.Errorf("Take() = %v, expected Jump", got)
	}
	if got := l.Take(); got != ActionNone {
		t.Errorf("Take() after drain = %v, expected None", got)
	}
}

func TestLatchIgnoresNone(t *testing.T) {
	var l Latch

	if l.Offer(ActionNone) {
		t.Error("ActionNone should never be latched")
	}
	if !l.Offer(ActionQuit) {
		t.Error("offer after ActionNone should be accepted")
	}
	if got := l.Take(); got != ActionQuit {
		t.Errorf("Take() = %v, expected Quit", got)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
