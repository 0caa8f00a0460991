package terrain

import (
	"slices"
	"testing"

	"heightmapper/internal/heightfield"
)

// deepest returns the column with the lowest height in row y.
func deepest(f *heightfield.Field, y int) int {
	best := 0
	for x := 1; x < f.Width(); x++ {
		if f.At(x, y) < f.At(best, y) {
			best = x
		}
	}
	return best
}

func TestRiverNarrowConfinementIsNoOp(t *testing.T) {
	f := newField(t, 32, 32, 1)
	fill(f, 9000)
	before := slices.Clone(f.Grid().Cells())

	g := NewRiver()
	_ = g.SetOption("confine", 1)
	_ = g.SetOption("width", 10)
	if err := g.Generate(f); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, f.Grid().Cells()) {
		t.Fatal("river narrower than its confinement must not touch the map")
	}

	mr := NewMiddleRiver()
	_ = mr.SetOption("confine", 1)
	mr.Generate(f)
	if !slices.Equal(before, f.Grid().Cells()) || mr.Start() != -1 {
		t.Fatal("middle river narrower than its confinement must not touch the map")
	}
}

func TestRiverStaysInBand(t *testing.T) {
	f := newField(t, 64, 64, 4)
	fill(f, 20000)
	g := NewRiver()
	_ = g.SetOption("width", 8)
	_ = g.SetOption("slope", 3)
	g.Generate(f)

	// confine 50% of 64: band [16,48].
	for y := 0; y < f.Height(); y++ {
		lowered := 0
		for x := 0; x < f.Width(); x++ {
			v := f.At(x, y)
			if v == 20000 {
				continue
			}
			lowered++
			if x < 16 || x > 48 {
				t.Fatalf("row %d: column %d outside the confinement band was carved", y, x)
			}
		}
		if lowered == 0 {
			t.Fatalf("row %d was not carved", y)
		}
	}
	if f.At(deepest(f, 0), 0) <= f.At(deepest(f, 63), 63) {
		t.Fatal("river should deepen downstream")
	}
}

func TestRiverSaturatesAtZero(t *testing.T) {
	f := newField(t, 32, 32, 4)
	fill(f, 100)
	g := NewRiver()
	_ = g.SetOption("depth", 3840)
	g.Generate(f)
	for y := 0; y < f.Height(); y++ {
		if f.At(deepest(f, y), y) != 0 {
			t.Fatalf("row %d: carving below zero must saturate", y)
		}
	}
}

func TestMiddleRiverExplicitStart(t *testing.T) {
	f := newField(t, 100, 40, 6)
	fill(f, 10000)
	g := NewMiddleRiver()
	g.SetStart(45)
	g.Generate(f)
	if got := deepest(f, 0); got != 45 {
		t.Fatalf("row 0 centred on %d, want explicit start 45", got)
	}
	if g.Start() != 45 {
		t.Fatalf("explicit start changed to %d", g.Start())
	}
	if f.At(45, 0) != 10000-1280 {
		t.Fatalf("centre depth %d, want full depth", f.At(45, 0))
	}
}

func TestMiddleRiverRecordsRandomStart(t *testing.T) {
	f := newField(t, 100, 40, 6)
	fill(f, 10000)
	g := NewMiddleRiver()
	g.Generate(f)

	start := g.Start()
	// confine 50% of 100 = [25,75], width 10: centre within [30,70].
	if start < 30 || start > 70 {
		t.Fatalf("recorded start %d outside the channel", start)
	}
	if got := deepest(f, 0); got != start {
		t.Fatalf("row 0 centred on %d, recorded start %d", got, start)
	}

	// Reusing the instance follows the same start on a fresh field.
	again := newField(t, 100, 40, 77)
	fill(again, 10000)
	g.Generate(again)
	if deepest(again, 0) != start {
		t.Fatal("recorded start was not reused")
	}
}

func TestMiddleRiverLean(t *testing.T) {
	finalColumn := func(lean int) int {
		f := newField(t, 256, 200, 3)
		fill(f, 10000)
		g := NewMiddleRiver()
		_ = g.SetOption("confine", 100)
		_ = g.SetOption("width", 2)
		_ = g.SetOption("lean", lean)
		g.SetStart(128)
		g.Generate(f)
		return deepest(f, f.Height()-1)
	}
	if left, right := finalColumn(-1), finalColumn(1); left >= 128 || right <= 128 {
		t.Fatalf("lean should bias the course: left ended at %d, right at %d", left, right)
	}
}
