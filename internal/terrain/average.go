package terrain

import (
	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Average replaces each cell with the mean of the square window around it.
type Average struct {
	core.Options
	distance *core.BoundedOption
}

// NewAverage returns an Average generator with default options.
func NewAverage() *Average {
	g := &Average{}
	g.Defaults()
	return g
}

func (g *Average) Defaults() {
	g.distance = core.NewIntOption("distance", "Averaging Distance", 16, 1, 64)
	g.SetOptions(g.distance)
}

// Distance returns the window half-width.
func (g *Average) Distance() int { return g.distance.Value() }

// SetDistance sets the window half-width, clamped to [1,64].
func (g *Average) SetDistance(d int) { g.distance.Set(d) }

func (g *Average) Name() string { return "average" }
func (g *Average) Description() string {
	return "Computes the average height for a cell based on surrounding cells (map rotation should be 0)."
}
func (g *Average) ResetsField() bool { return false }

func (g *Average) Generate(f *heightfield.Field) error {
	d := g.distance.Value()
	diam := int64(2*d + 1)
	count := diam * diam

	snap := f.Snapshot()
	sums := boxSums(snap, d)
	for y := 0; y < snap.H; y++ {
		for x := 0; x < snap.W; x++ {
			f.Put(x, y, uint16(sums[snap.Index(x, y)]/count))
		}
	}
	return nil
}

func init() {
	Register("average", func() Generator { return NewAverage() })
}
