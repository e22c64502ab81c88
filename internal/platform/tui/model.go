package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dino"
)

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// Model is the Bubble Tea model driving a Dino Run session.
// Ticks run only while a round is being played; the round-over menu waits for a key.
type Model struct {
	session  *dino.Session
	keys     KeyMap
	help     help.Model
	latch    core.Latch // First action since the previous tick
	logger   *log.Logger
	shotDir  string
	width    int
	height   int
	status   string // One-line notice under the help, e.g. a screenshot path
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger used for frontend events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir sets where ctrl+s writes frame dumps.
// Defaults to ~/.arcade/screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *dino.Session, opts ...ModelOption) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.shotDir == "" {
		m.shotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}
	m.keys.SetRoundOver(session.Phase() == dino.PhaseRoundOver)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.session.Phase() != dino.PhasePlaying {
		return nil
	}
	return tickCmd(m.session.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if m.session.Phase() == dino.PhasePlaying {
		m.latch.Offer(action)
		return m, nil
	}

	if m.session.Choose(action) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.session.Phase() == dino.PhasePlaying {
		// Restarted: keys pressed on the menu never reach the new round
		m.latch.Take()
		m.keys.SetRoundOver(false)
		m.status = ""
		return m, tickCmd(m.session.TickInterval())
	}
	return m, nil
}

// handleTick runs one simulation tick with the latched action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Phase() != dino.PhasePlaying {
		return m, nil
	}

	m.session.Tick(m.latch.Take())

	if m.session.Phase() == dino.PhaseRoundOver {
		m.keys.SetRoundOver(true)
		return m, nil
	}
	return m, tickCmd(m.session.TickInterval())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	path, err := SaveScreenshot(m.shotDir, m.session.Screen(), time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// SaveScreenshot writes frame to dir as dino_<timestamp>.txt and returns the path.
func SaveScreenshot(dir string, frame *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("dino_%s.txt", at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(frame.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	frame := m.session.Screen()
	if m.width > 0 && (m.width < frame.Width() || m.height < frame.Height()) {
		b.WriteString(warningStyle.Render(fmt.Sprintf(
			"terminal is %dx%d, Dino Run needs %dx%d", m.width, m.height, frame.Width(), frame.Height())))
		b.WriteString("\n")
	}

	b.WriteString(RenderScreen(frame))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(m.status))
	}
	return b.String()
}

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given session.
func Run(session *dino.Session, opts ...ModelOption) error {
	model := NewModel(session, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
