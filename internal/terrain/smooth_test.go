package terrain

import (
	"testing"

	"heightmapper/internal/core"
)

// naiveWindow averages the clamped window around (x, y) minus the excluded offsets.
func naiveWindow(g *core.Grid16, x, y, d int, excluded map[[2]int]bool) uint16 {
	var sum, n int64
	for dy := -d; dy <= d; dy++ {
		for dx := -d; dx <= d; dx++ {
			if excluded[[2]int{dx, dy}] {
				continue
			}
			sx, sy := g.Clamp(x+dx, y+dy)
			sum += int64(g.At(sx, sy))
			n++
		}
	}
	return uint16(sum / n)
}

func TestAverageUniformIsFixedPoint(t *testing.T) {
	for _, d := range []int{1, 7, 64} {
		f := newField(t, 20, 16, 1)
		fill(f, 4321)
		g := NewAverage()
		g.SetDistance(d)
		g.Generate(f)
		for i, v := range f.Grid().Cells() {
			if v != 4321 {
				t.Fatalf("distance %d: cell %d = %d", d, i, v)
			}
		}
	}
}

func TestAverageMatchesNaiveWindow(t *testing.T) {
	f := newField(t, 23, 17, 3)
	noise := NewReplaceNoise()
	_ = noise.SetOptionValue(0, 100)
	noise.Generate(f)
	before := f.Snapshot()

	g := NewAverage()
	g.SetDistance(3)
	g.Generate(f)
	for y := 0; y < before.H; y++ {
		for x := 0; x < before.W; x++ {
			if want := naiveWindow(before, x, y, 3, nil); f.At(x, y) != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, f.At(x, y), want)
			}
		}
	}
}

func TestBlurCornerCounts(t *testing.T) {
	cases := map[int]int{1: 0, 4: 0, 5: 4, 8: 4, 9: 12, 16: 12, 17: 24, 32: 24, 33: 44, 64: 44}
	for d, want := range cases {
		if got := len(blurCorners(d)); got != want {
			t.Fatalf("blurCorners(%d) has %d entries, want %d", d, got, want)
		}
	}
	for _, c := range blurCorners(40) {
		if c.X < -40 || c.X > 40 || c.Y < -40 || c.Y > 40 {
			t.Fatalf("corner %v outside the window", c)
		}
	}
}

func TestBlurUniformIsFixedPoint(t *testing.T) {
	for _, d := range []int{3, 5, 9, 17, 33} {
		f := newField(t, 16, 16, 1)
		fill(f, 777)
		g := NewBlur()
		_ = g.SetOptionValue(0, d)
		g.Generate(f)
		for i, v := range f.Grid().Cells() {
			if v != 777 {
				t.Fatalf("distance %d: cell %d = %d", d, i, v)
			}
		}
	}
}

func TestBlurMatchesNaiveWindow(t *testing.T) {
	f := newField(t, 20, 20, 4)
	noise := NewReplaceNoise()
	_ = noise.SetOptionValue(0, 100)
	noise.Generate(f)
	before := f.Snapshot()

	excluded := map[[2]int]bool{}
	for _, c := range blurCorners(9) {
		excluded[[2]int{c.X, c.Y}] = true
	}

	g := NewBlur()
	_ = g.SetOptionValue(0, 9)
	g.Generate(f)
	for y := 0; y < before.H; y++ {
		for x := 0; x < before.W; x++ {
			if want := naiveWindow(before, x, y, 9, excluded); f.At(x, y) != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, f.At(x, y), want)
			}
		}
	}
}
