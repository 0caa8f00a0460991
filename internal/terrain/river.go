package terrain

import (
	"math"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// River carves a meandering channel from the top of the view to the bottom,
// deepening linearly along its course.
type River struct {
	core.Options
	depth      *core.BoundedOption
	width      *core.BoundedOption
	confinePct *core.BoundedOption
	slope      *core.BoundedOption
}

// NewRiver returns a River generator with default options.
func NewRiver() *River {
	g := &River{}
	g.Defaults()
	return g
}

func (g *River) Defaults() {
	g.depth = core.NewIntOption("depth", "Average Depth", 1280, 64, 3840)
	g.width = core.NewIntOption("width", "Average Width", 10, 1, 60)
	g.confinePct = core.NewIntOption("confine", "Confine to Middle Pct", 50, 1, 100)
	g.slope = core.NewIntOption("slope", "Slope", 1, 1, 15)
	g.SetOptions(g.depth, g.width, g.confinePct, g.slope)
}

func (g *River) Name() string        { return "river" }
func (g *River) Description() string { return "Carves a meandering river that deepens downstream." }
func (g *River) ResetsField() bool   { return false }

func (g *River) Generate(f *heightfield.Field) error {
	ch, ok := confineChannel(f.Width(), g.width.Value(), g.confinePct.Value())
	if !ok {
		return nil
	}
	rng := f.Random()
	mid := rng.Next()%ch.span() + ch.minMid

	h := f.Height()
	change := int(math.MaxUint16 * 0.01 * float64(g.slope.Value()))
	shallowest := g.depth.Value() - change/2
	for y := 0; y < h; y++ {
		depth := clamp16f(float64(shallowest) + float64(y)/float64(h)*float64(change))
		carveRow(f, y, mid, riverProfile(depth, ch.halfWidth))
		mid = ch.clamp(mid + riverStep(rng.Byte()))
	}
	return nil
}

func init() {
	Register("river", func() Generator { return NewRiver() })
}
