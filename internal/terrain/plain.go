package terrain

import (
	"math"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Plain resets the map to flat terrain, optionally tilted along y.
type Plain struct {
	core.Options
	avgHeight *core.BoundedOption
	slope     *core.BoundedOption
}

// NewPlain returns a Plain generator with default options.
func NewPlain() *Plain {
	g := &Plain{}
	g.Defaults()
	return g
}

func (g *Plain) Defaults() {
	g.avgHeight = core.NewIntOption("height", "Average Height", 120*64, 0, math.MaxUint16)
	g.slope = core.NewIntOption("slope", "Slope", 0, 0, 10)
	g.SetOptions(g.avgHeight, g.slope)
}

// AverageHeight returns the mean height of the plain.
func (g *Plain) AverageHeight() uint16 { return uint16(g.avgHeight.Value()) }

// SetAverageHeight sets the mean height of the plain.
func (g *Plain) SetAverageHeight(h uint16) { g.avgHeight.Set(int(h)) }

// Slope returns the tilt as a percentage per map row.
func (g *Plain) Slope() int { return g.slope.Value() }

// SetSlope sets the tilt, clamped to [0,10].
func (g *Plain) SetSlope(s int) { g.slope.Set(s) }

func (g *Plain) Name() string { return "plain" }
func (g *Plain) Description() string {
	return "Resets the entire map to flat terrain with an optional slope."
}
func (g *Plain) ResetsField() bool { return true }

func (g *Plain) Generate(f *heightfield.Field) error {
	avg := g.avgHeight.Value()
	slope := g.slope.Value()
	h := f.Height()
	if slope == 0 {
		for y := 0; y < h; y++ {
			fillRow(f, y, uint16(avg))
		}
		return nil
	}

	// 65536 / 1024 game height units * 1% = 0.64 per percent of slope per row.
	change := int(0.64 * float64(slope) * float64(h))
	top := avg + change/2
	for y := 0; y < h; y++ {
		v := float64(top) - float64(y)/float64(h)*float64(change)
		fillRow(f, y, clamp16f(v))
	}
	return nil
}

func init() {
	Register("plain", func() Generator { return NewPlain() })
}
