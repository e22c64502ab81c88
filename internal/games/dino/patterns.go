package dino

import "math/rand"

// catalog holds the fixed obstacle layouts a round can start with.
// x = 80 is one column past the right edge; those obstacles scroll in on the first tick.
var catalog = [][]Obstacle{
	{
		{X: 50, Y: 10, Shape: ShapeBlock},
		{X: 65, Y: 10, Shape: ShapeBlock},
		{X: 80, Y: 8, Shape: ShapePole, Vertical: true},
	},
	{
		{X: 40, Y: 10, Shape: ShapeBlock},
		{X: 60, Y: 8, Shape: ShapePole, Vertical: true},
		{X: 80, Y: 8, Shape: ShapePole, Vertical: true},
	},
	{
		{X: 50, Y: 5, Shape: ShapeStar},
		{X: 65, Y: 10, Shape: ShapeBlock},
		{X: 80, Y: 5, Shape: ShapeStar},
	},
	{
		{X: 40, Y: 7, Shape: ShapePole, Vertical: true},
		{X: 60, Y: 9, Shape: ShapePole, Vertical: true},
		{X: 80, Y: 11, Shape: ShapePole, Vertical: true},
	},
	{
		{X: 50, Y: 5, Shape: ShapeStar},
		{X: 60, Y: 10, Shape: ShapeBlock},
		{X: 70, Y: 5, Shape: ShapeStar},
		{X: 80, Y: 10, Shape: ShapeBlock},
	},
	{
		{X: 40, Y: 5, Shape: ShapeBar, Vertical: true},
		{X: 60, Y: 5, Shape: ShapeBar, Vertical: true},
		{X: 80, Y: 5, Shape: ShapeBar, Vertical: true},
	},
	{
		{X: 45, Y: 5, Shape: ShapeStar},
		{X: 55, Y: 7, Shape: ShapePole, Vertical: true},
		{X: 75, Y: 8, Shape: ShapePole, Vertical: true},
	},
	waves(5),
}

// waves builds n wave obstacles 20 columns apart, alternating direction.
func waves(n int) []Obstacle {
	out := make([]Obstacle, n)
	for i := range out {
		dir := 1
		if i%2 == 1 {
			dir = -1
		}
		out[i] = Obstacle{X: 40 + i*20, Y: 7, Shape: ShapeWave, Vertical: true, Dir: dir}
	}
	return out
}

// PatternCount returns the number of layouts in the catalog.
func PatternCount() int {
	return len(catalog)
}

// Pattern materializes layout i. Every obstacle starts unscored and,
// unless the layout says otherwise, moving down.
func Pattern(i int) []Obstacle {
	src := catalog[i]
	out := make([]Obstacle, len(src))
	for j, o := range src {
		if o.Dir == 0 {
			o.Dir = 1
		}
		o.Passed = false
		out[j] = o
	}
	return out
}

// PatternGenerator picks a layout uniformly at random at round start.
type PatternGenerator struct {
	rng *rand.Rand
}

// NewPatternGenerator creates a generator drawing from rng.
func NewPatternGenerator(rng *rand.Rand) *PatternGenerator {
	return &PatternGenerator{rng: rng}
}

// Next selects a layout and returns its catalog index and a fresh obstacle set.
func (g *PatternGenerator) Next() (int, []Obstacle) {
	i := g.rng.Intn(len(catalog))
	return i, Pattern(i)
}
