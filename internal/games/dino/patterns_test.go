package dino

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dino-run/internal/core"
)

func TestCatalogShape(t *testing.T) {
	if PatternCount() != 8 {
		t.Fatalf("PatternCount() = %d, expected 8", PatternCount())
	}

	for i := 0; i < PatternCount(); i++ {
		obs := Pattern(i)
		if len(obs) < 3 || len(obs) > 5 {
			t.Errorf("pattern %d has %d obstacles, expected 3-5", i, len(obs))
		}
		for j, o := range obs {
			if o.Dir != 1 && o.Dir != -1 {
				t.Errorf("pattern %d obstacle %d dir = %d, expected +1 or -1", i, j, o.Dir)
			}
			if o.Passed {
				t.Errorf("pattern %d obstacle %d starts scored", i, j)
			}
			if o.Color() == core.ColorDefault {
				t.Errorf("pattern %d obstacle %d shape %q has no color", i, j, o.Shape)
			}
		}
	}
}

func TestWavePattern(t *testing.T) {
	obs := Pattern(7)
	if len(obs) != 5 {
		t.Fatalf("wave pattern has %d obstacles, expected 5", len(obs))
	}
	for i, o := range obs {
		if o.X != 40+i*20 || o.Y != 7 || o.Shape != ShapeWave || !o.Vertical {
			t.Errorf("wave %d = %+v", i, o)
		}
		wantDir := 1
		if i%2 == 1 {
			wantDir = -1
		}
		if o.Dir != wantDir {
			t.Errorf("wave %d dir = %d, expected %d", i, o.Dir, wantDir)
		}
	}
}

func TestPatternReturnsCopy(t *testing.T) {
	a := Pattern(0)
	a[0].X = -100
	a[0].Passed = true

	b := Pattern(0)
	if b[0].X != 50 || b[0].Passed {
		t.Errorf("mutating a materialized pattern leaked into the catalog: %+v", b[0])
	}
}

func TestPatternSelectionUniform(t *testing.T) {
	gen := NewPatternGenerator(rand.New(rand.NewSource(7)))

	const trials = 8000
	counts := make([]int, PatternCount())
	for i := 0; i < trials; i++ {
		idx, obs := gen.Next()
		if len(obs) == 0 {
			t.Fatalf("trial %d returned no obstacles", i)
		}
		counts[idx]++
	}

	expected := trials / PatternCount()
	for idx, c := range counts {
		if c == 0 {
			t.Errorf("pattern %d never selected", idx)
		}
		// Generous band: a fair 1/8 draw over 8000 trials stays well inside 20%
		if c < expected*8/10 || c > expected*12/10 {
			t.Errorf("pattern %d selected %d times, expected about %d", idx, c, expected)
		}
	}
}

func TestPatternGeneratorDeterminism(t *testing.T) {
	g1 := NewPatternGenerator(rand.New(rand.NewSource(42)))
	g2 := NewPatternGenerator(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		a, _ := g1.Next()
		b, _ := g2.Next()
		if a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}
