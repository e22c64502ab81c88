package dino

import (
	"math/rand"

	"github.com/vovakirdan/dino-run/internal/core"
)

// Obstacle shapes used by the pattern catalog.
const (
	ShapeBlock = '#'
	ShapePole  = '|'
	ShapeStar  = '*'
	ShapeBar   = '='
	ShapeWave  = '~'
)

// Obstacle is a single hazard scrolling towards the dino.
// Obstacles are recycled at the right edge instead of being destroyed.
type Obstacle struct {
	X, Y     int  // Cell position
	Shape    rune // Glyph drawn for this obstacle
	Vertical bool // Whether it bounces up and down inside the band
	Dir      int  // Vertical direction, +1 (down) or -1 (up)
	Passed   bool // Whether it has already been scored this pass
}

// Pos returns the obstacle's cell.
func (o Obstacle) Pos() core.Point {
	return core.Pt(o.X, o.Y)
}

// Color returns the display color for the obstacle's shape.
func (o Obstacle) Color() core.Color {
	switch o.Shape {
	case ShapeBlock:
		return core.ColorYellow
	case ShapePole:
		return core.ColorRed
	case ShapeStar:
		return core.ColorMagenta
	case ShapeBar:
		return core.ColorCyan
	case ShapeWave:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

// move scrolls the obstacle one cell left and, if it is mobile, one cell
// vertically. Reaching either band edge inverts the direction.
func (o *Obstacle) move(bandMin, bandMax int) {
	o.X--

	if !o.Vertical {
		return
	}
	o.Y += o.Dir
	if o.Y <= bandMin || o.Y >= bandMax {
		o.Dir = -o.Dir
	}
}

// recycle puts an obstacle that left the screen back at the right edge.
func (o *Obstacle) recycle(rightEdge, bandMin, bandMax int, rng *rand.Rand) {
	o.X = rightEdge
	o.Passed = false
	if o.Vertical {
		o.Y = bandMin + rng.Intn(bandMax-bandMin)
	}
}
