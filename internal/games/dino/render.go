package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// Visual characters for rendering
const (
	DinoChar       = '^'
	BackgroundChar = ' '
)

// HUDRows is the number of status rows above the playfield.
const HUDRows = 1

// Renderer draws game state into a core.Screen.
type Renderer struct {
	width, height int
}

// NewRenderer creates a renderer for the configured grid.
func NewRenderer(cfg config.DinoConfig) *Renderer {
	return &Renderer{width: cfg.Grid.Width, height: cfg.Grid.Height}
}

// ScreenSize returns the frame size the renderer needs: the grid plus the status row.
func (r *Renderer) ScreenSize() (int, int) {
	return r.width, r.height + HUDRows
}

// Render redraws the whole frame: status line on row 0, grid row y on screen row y+HUDRows.
func (r *Renderer) Render(dst *core.Screen, st *GameState) {
	dst.Clear()

	status := fmt.Sprintf("Score: %d | High Score: %d", st.Score, st.HighScore)
	dst.DrawTextColored(core.Max(0, r.width-len(status)), 0, status, core.ColorBrightWhite)

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			glyph, color := CellAt(st, x, y)
			dst.SetColored(x, y+HUDRows, glyph, color)
		}
	}
}

// CellAt resolves what occupies grid cell (x, y): the dino first, then the
// first obstacle in list order, else background.
func CellAt(st *GameState, x, y int) (rune, core.Color) {
	p := st.Player
	if p.X == x && p.Y == y {
		if p.DoubleJumping {
			return DinoChar, core.ColorBrightWhite
		}
		return DinoChar, core.ColorBrightGreen
	}

	for _, o := range st.Obstacles {
		if o.X == x && o.Y == y {
			return o.Shape, o.Color()
		}
	}

	return BackgroundChar, core.ColorDefault
}

// RenderRoundOver draws the end-of-round menu.
func (r *Renderer) RenderRoundOver(dst *core.Screen, st *GameState) {
	dst.Clear()

	left := r.width/2 - 15
	dst.DrawBox(left-3, 6, 36, 10)

	dst.DrawTextColored(r.width/2-10, 8, "Game Over!", core.ColorRed)
	dst.DrawText(left, 9, fmt.Sprintf("Final Score: %d", st.Score))
	dst.DrawText(left, 10, fmt.Sprintf("High Score: %d", st.HighScore))
	dst.DrawText(left, 12, "Press 'R' to restart")
	dst.DrawText(left, 13, "Press 'Q' to quit")
}
