package terrain

import (
	"encoding/binary"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Noise nudges a random subset of cells up or down by at most maxChange.
type Noise struct {
	core.Options
	coverage  *core.BoundedOption
	maxChange *core.BoundedOption
}

// NewNoise returns a bounded-walk Noise generator with default options.
func NewNoise() *Noise {
	g := &Noise{}
	g.Defaults()
	return g
}

func (g *Noise) Defaults() {
	g.coverage = core.NewIntOption("coverage", "Coverage Percent", 50, 1, 100)
	g.maxChange = core.NewIntOption("change", "Maximum Change", 50*64, 1, 32766)
	g.SetOptions(g.coverage, g.maxChange)
}

func (g *Noise) Name() string        { return "noise" }
func (g *Noise) Description() string { return "Randomly raises or lowers cells by a bounded amount." }
func (g *Noise) ResetsField() bool   { return false }

func (g *Noise) Generate(f *heightfield.Field) error {
	coverage := g.coverage.Value()
	maxChange := g.maxChange.Value()
	gate := float64(coverage) * 2.55
	span := 2*maxChange + 1
	rng := f.Random()

	buf := make([]byte, 5)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			rng.NextBytes(buf)
			if coverage != 100 && float64(buf[4]) >= gate {
				continue
			}
			d := int(binary.LittleEndian.Uint16(buf))%span - maxChange
			if d == 0 {
				continue
			}
			f.Put(x, y, clamp16(int(f.At(x, y))+d))
		}
	}
	return nil
}

// ReplaceNoise overwrites a random subset of cells with uniformly random heights.
type ReplaceNoise struct {
	core.Options
	coverage *core.BoundedOption
}

// NewReplaceNoise returns a full-replace noise generator with default options.
func NewReplaceNoise() *ReplaceNoise {
	g := &ReplaceNoise{}
	g.Defaults()
	return g
}

func (g *ReplaceNoise) Defaults() {
	g.coverage = core.NewIntOption("coverage", "Coverage Percent", 50, 1, 100)
	g.SetOptions(g.coverage)
}

func (g *ReplaceNoise) Name() string { return "noise-replace" }
func (g *ReplaceNoise) Description() string {
	return "Replaces a random subset of cells with random heights."
}
func (g *ReplaceNoise) ResetsField() bool { return g.coverage.Value() == 100 }

func (g *ReplaceNoise) Generate(f *heightfield.Field) error {
	coverage := g.coverage.Value()
	rng := f.Random()

	buf := make([]byte, 3)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			rng.NextBytes(buf)
			if coverage == 100 || int(buf[2])%100 < coverage {
				f.Put(x, y, binary.LittleEndian.Uint16(buf))
			}
		}
	}
	return nil
}

func init() {
	Register("noise", func() Generator { return NewNoise() })
	Register("noise-replace", func() Generator { return NewReplaceNoise() })
}
