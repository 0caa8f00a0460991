package terrain

import (
	"errors"
	"slices"
	"testing"

	"heightmapper/internal/heightfield"
)

func newField(t *testing.T, w, h int, seed int64) *heightfield.Field {
	t.Helper()
	f, err := heightfield.New(heightfield.Config{Width: w, Height: h, Seed: seed})
	if err != nil {
		t.Fatalf("heightfield.New: %v", err)
	}
	return f
}

func fill(f *heightfield.Field, v uint16) {
	f.Grid().Fill(v)
}

func TestRegistryHasAllGenerators(t *testing.T) {
	want := []string{
		"average", "blur", "canyon", "cliff", "flat", "middle-river", "noise",
		"noise-replace", "perlin", "plain", "river", "rotate", "simplex",
	}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for _, name := range want {
		g, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if g.Name() != name {
			t.Fatalf("generator registered as %q reports name %q", name, g.Name())
		}
		if g.OptionCount() == 0 || g.Description() == "" {
			t.Fatalf("%s: expected options and a description", name)
		}
	}
	if _, err := New("volcano"); !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestDefaultsRestoresOptions(t *testing.T) {
	for _, name := range Names() {
		g, _ := New(name)
		before := make([]any, g.OptionCount())
		for i := range before {
			before[i] = g.OptionValue(i)
			if err := g.SetOptionValue(i, 1<<30); err != nil {
				t.Fatalf("%s option %d: %v", name, i, err)
			}
		}
		g.Defaults()
		for i := range before {
			if g.OptionValue(i) != before[i] {
				t.Fatalf("%s option %d: Defaults gave %v, want %v", name, i, g.OptionValue(i), before[i])
			}
		}
	}
}

func TestGeneratorsStayInViewUnderRotation(t *testing.T) {
	for _, degrees := range []int{0, 30, 90, 135, 200} {
		for _, name := range Names() {
			f := newField(t, 48, 40, 11)
			fill(f, 20000)
			f.SetRotation(degrees)
			g, _ := New(name)
			if name == "average" || name == "blur" {
				_ = g.SetOptionValue(0, 3)
			}
			if err := g.Generate(f); err != nil {
				t.Fatalf("%s at %d degrees: %v", name, degrees, err)
			}
		}
	}
}

func TestStepTables(t *testing.T) {
	cases := []struct {
		b        byte
		momentum int
		want     int
	}{
		{0, 0, -3}, {15, 5, -3}, {16, 0, -2}, {47, 0, -1}, {48, 0, 1}, {79, 0, 2}, {95, 0, 3},
		{96, 0, 0}, {96, -2, -3}, {96, 1, 3}, {112, -1, -2}, {127, 3, 2}, {128, -3, -1}, {143, 2, 1},
		{144, 3, 0}, {255, -1, 0},
	}
	for _, tc := range cases {
		if got := momentumStep(tc.b, tc.momentum); got != tc.want {
			t.Fatalf("momentumStep(%d,%d) = %d, want %d", tc.b, tc.momentum, got, tc.want)
		}
	}

	walls := map[byte]int{0: -2, 31: -2, 32: -1, 64: 1, 100: 2, 127: 2, 128: 0, 255: 0}
	for b, want := range walls {
		if got := wallStep(b); got != want {
			t.Fatalf("wallStep(%d) = %d, want %d", b, got, want)
		}
	}

	river := map[byte]int{0: -2, 32: -3, 64: -1, 96: 1, 128: 3, 160: 2, 191: 2, 192: 0}
	for b, want := range river {
		if got := riverStep(b); got != want {
			t.Fatalf("riverStep(%d) = %d, want %d", b, got, want)
		}
	}
}
