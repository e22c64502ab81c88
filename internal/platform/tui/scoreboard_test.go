package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/storage"
)

func testRounds() ([]storage.RoundRecord, *storage.Stats) {
	played := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	rounds := []storage.RoundRecord{
		{ID: 2, Round: 3, Pattern: 7, Score: 42, HighScore: 42, Ticks: 300, Duration: 30 * time.Second, CreatedAt: played},
		{ID: 1, Round: 1, Pattern: 2, Score: 17, HighScore: 17, Ticks: 120, Duration: 12 * time.Second, CreatedAt: played.Add(-time.Hour)},
	}
	stats := &storage.Stats{Rounds: 2, BestScore: 42, AvgScore: 29.5, TotalTicks: 420, LastPlayed: played}
	return rounds, stats
}

func TestScoreboardView(t *testing.T) {
	rounds, stats := testRounds()
	view := NewScoreboardModel(rounds, stats, 80, 24).View()

	for _, want := range []string{
		"DINO RUN - BEST ROUNDS",
		"Rank", "Score", "Pattern",
		"#1", "42", "30s",
		"#2", "17", "12s",
		"Mar 14 09:30",
		"2 rounds  best 42  avg 29.5  last played Mar 14 09:30",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// Best round is listed first
	if strings.Index(view, "42") > strings.Index(view, "17") {
		t.Error("rounds should render in the order given")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	tests := []struct {
		name  string
		stats *storage.Stats
	}{
		{"nil stats", nil},
		{"zero stats", &storage.Stats{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewScoreboardModel(nil, tt.stats, 80, 24).View()
			if !strings.Contains(view, "No rounds recorded yet.") {
				t.Errorf("empty scoreboard should say so:\n%s", view)
			}
			if strings.Contains(view, "rounds  best") {
				t.Error("no stats line without logged rounds")
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	rounds, stats := testRounds()
	m := NewScoreboardModel(rounds, stats, 80, 24)

	next, cmd := m.Update(keyQ)
	sb := next.(ScoreboardModel)
	if !sb.IsQuitting() {
		t.Error("q should close the scoreboard")
	}
	if cmd == nil {
		t.Fatal("quitting should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if sb.View() != "" {
		t.Error("a closed scoreboard renders nothing")
	}
}

func TestScoreboardResize(t *testing.T) {
	rounds, stats := testRounds()
	m := NewScoreboardModel(rounds, stats, 80, 24)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	view := next.(ScoreboardModel).View()
	if !strings.Contains(view, "#1") || !strings.Contains(view, "#2") {
		t.Errorf("resized scoreboard lost rows:\n%s", view)
	}
}
