package terrain

import (
	"errors"
	"testing"
)

func TestCanyonLayout(t *testing.T) {
	cases := []struct {
		width, ratio        int
		left, bottom, right int
		fails               bool
	}{
		{width: 12, ratio: 10, left: 4, bottom: 4, right: 4},
		{width: 11, ratio: 10, fails: true},
		{width: 20, ratio: 10, left: 8, bottom: 4, right: 8},
		{width: 16, ratio: 80, left: 4, bottom: 8, right: 4},
		{width: 64, ratio: 60, left: 13, bottom: 38, right: 13},
		{width: 101, ratio: 50, left: 25, bottom: 50, right: 26},
	}
	for _, tc := range cases {
		l, b, r, err := canyonLayout(tc.width, tc.ratio)
		if tc.fails {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("width %d: expected ErrInvalidConfig, got %v", tc.width, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("width %d: %v", tc.width, err)
		}
		if l != tc.left || b != tc.bottom || r != tc.right {
			t.Fatalf("width %d ratio %d: got %d/%d/%d, want %d/%d/%d",
				tc.width, tc.ratio, l, b, r, tc.left, tc.bottom, tc.right)
		}
	}
}

func TestCanyonProfile(t *testing.T) {
	f := newField(t, 64, 32, 2)
	g := NewCanyon()
	_ = g.SetOption("top", 40000)
	_ = g.SetOption("bottom", 5000)
	if err := g.Generate(f); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < f.Height(); y++ {
		if f.At(0, y) != 40000 || f.At(63, y) != 40000 {
			t.Fatalf("row %d: walls should sit at the top height", y)
		}
		if f.At(32, y) != 5000 {
			t.Fatalf("row %d: centre = %d, want bottom height", y, f.At(32, y))
		}
	}
}

func TestCanyonSwapsInvertedHeights(t *testing.T) {
	f := newField(t, 64, 32, 2)
	g := NewCanyon()
	_ = g.SetOption("top", 100)
	_ = g.SetOption("bottom", 30000)
	g.Generate(f)
	if f.At(0, 0) != 30000 || f.At(32, 0) != 100 {
		t.Fatalf("expected swapped heights, got wall %d centre %d", f.At(0, 0), f.At(32, 0))
	}
}

func TestCanyonBottomSlope(t *testing.T) {
	f := newField(t, 64, 50, 2)
	g := NewCanyon()
	_ = g.SetOption("top", 60000)
	_ = g.SetOption("bottom", 20000)
	_ = g.SetOption("slope", 4)
	g.Generate(f)

	first, last := f.At(32, 0), f.At(32, 49)
	if first <= 20000 || last >= 20000 {
		t.Fatalf("bottom should fall across 20000, got %d -> %d", first, last)
	}
	for y := 1; y < f.Height(); y++ {
		if f.At(32, y) > f.At(32, y-1) {
			t.Fatalf("bottom rises at row %d", y)
		}
	}
}
