// Package console is the synchronous tcell frontend for Dino Run. A Console
// is the terminal collaborator dino.Session.Run drives: it presents whole
// frames, polls for at most one action per tick and blocks for the
// round-over menu.
package console

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-run/internal/core"
)

// eventBuffer bounds how many unread terminal events are kept between ticks.
const eventBuffer = 64

// input is the part of a terminal event the game cares about.
type input struct {
	key    tcell.Key
	r      rune
	resize bool
}

// Console adapts a tcell.Screen to dino.Terminal.
type Console struct {
	screen      tcell.Screen
	events      chan input
	done        chan struct{}
	styles      map[core.Color]tcell.Style
	onInterrupt func()
}

// Option configures a Console.
type Option func(*Console)

// WithInterrupt sets the callback for ctrl+c. The terminal is in raw mode,
// so ctrl+c arrives as a key instead of SIGINT.
func WithInterrupt(fn func()) Option {
	return func(c *Console) { c.onInterrupt = fn }
}

// Open creates and initializes the real terminal screen.
func Open(opts ...Option) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("console: cannot create screen: %w", err)
	}
	return New(screen, opts...)
}

// New initializes screen and starts reading its events.
func New(screen tcell.Screen, opts ...Option) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: cannot init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	c := &Console{
		screen: screen,
		events: make(chan input, eventBuffer),
		done:   make(chan struct{}),
		styles: buildStyles(),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.pollEvents()
	return c, nil
}

// pollEvents feeds keys and resizes into the buffered channel until Close.
// It never touches game state.
func (c *Console) pollEvents() {
	for {
		var in input
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			in = input{key: ev.Key(), r: ev.Rune()}
		case *tcell.EventResize:
			in = input{resize: true}
		default:
			continue
		}
		select {
		case c.events <- in:
		case <-c.done:
			return
		default:
			// Buffer full: the game only wants the first key per tick anyway
		}
	}
}

// Close restores the terminal.
func (c *Console) Close() {
	close(c.done)
	c.screen.Fini()
}

// Size returns the terminal size in cells.
func (c *Console) Size() (int, int) {
	return c.screen.Size()
}

// Present clears the terminal and writes every cell of frame.
func (c *Console) Present(frame *core.Screen) error {
	c.screen.Clear()
	for y := range frame.Height() {
		for x := range frame.Width() {
			cell := frame.GetCell(x, y)
			c.screen.SetContent(x, y, cell.Rune, nil, c.style(cell.Color))
		}
	}
	c.screen.Show()
	return nil
}

// PollAction drains every pending event and returns the first action among
// them. Later keys are discarded; nothing is queued for the next tick.
func (c *Console) PollAction() core.Action {
	first := core.ActionNone
	for {
		select {
		case in := <-c.events:
			if a := c.handle(in); first == core.ActionNone {
				first = a
			}
		default:
			return first
		}
	}
}

// WaitAction blocks until a key maps to an action or ctx is done.
func (c *Console) WaitAction(ctx context.Context) (core.Action, error) {
	for {
		select {
		case <-ctx.Done():
			return core.ActionNone, ctx.Err()
		case in := <-c.events:
			if a := c.handle(in); a != core.ActionNone {
				return a, nil
			}
		}
	}
}

// handle repaints after a resize and maps keys to actions.
func (c *Console) handle(in input) core.Action {
	switch {
	case in.resize:
		c.screen.Sync()
		return core.ActionNone
	case in.key == tcell.KeyCtrlC:
		if c.onInterrupt != nil {
			c.onInterrupt()
		}
		return core.ActionNone
	}
	return MapKey(in.key, in.r)
}

// MapKey translates a tcell key (and its rune for tcell.KeyRune) to a game action.
func MapKey(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyRune:
		switch r {
		case ' ', 'w', 'W':
			return core.ActionJump
		case 'r', 'R':
			return core.ActionRestart
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

func (c *Console) style(color core.Color) tcell.Style {
	if st, ok := c.styles[color]; ok {
		return st
	}
	return tcell.StyleDefault
}

// buildStyles maps every core.Color to a tcell palette style.
func buildStyles() map[core.Color]tcell.Style {
	styles := make(map[core.Color]tcell.Style, len(core.Colors()))
	for _, color := range core.Colors() {
		st := tcell.StyleDefault
		if n := color.ANSI256(); n >= 0 {
			st = st.Foreground(tcell.PaletteColor(n))
		}
		styles[color] = st
	}
	return styles
}
