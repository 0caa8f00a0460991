package terrain

import (
	"math"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Flat sets every cell to a single height.
type Flat struct {
	core.Options
	height *core.BoundedOption
}

// NewFlat returns a Flat generator with default options.
func NewFlat() *Flat {
	g := &Flat{}
	g.Defaults()
	return g
}

func (g *Flat) Defaults() {
	g.height = core.NewIntOption("height", "Height", 2560, 0, math.MaxUint16)
	g.SetOptions(g.height)
}

func (g *Flat) Name() string        { return "flat" }
func (g *Flat) Description() string { return "Resets the entire map to a single height." }
func (g *Flat) ResetsField() bool   { return true }

func (g *Flat) Generate(f *heightfield.Field) error {
	h := uint16(g.height.Value())
	for y := 0; y < f.Height(); y++ {
		fillRow(f, y, h)
	}
	return nil
}

func init() {
	Register("flat", func() Generator { return NewFlat() })
}
