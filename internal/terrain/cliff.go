package terrain

import (
	"math"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Cliff raises a meandering escarpment along the top edge of the view.
type Cliff struct {
	core.Options
	height     *core.BoundedOption
	mapPercent *core.BoundedOption
}

// NewCliff returns a Cliff generator with default options.
func NewCliff() *Cliff {
	g := &Cliff{}
	g.Defaults()
	return g
}

func (g *Cliff) Defaults() {
	g.height = core.NewIntOption("height", "Cliff Height", math.MaxInt16, 0, math.MaxUint16)
	g.mapPercent = core.NewIntOption("percent", "Map Percentage", 10, 5, 50)
	g.SetOptions(g.height, g.mapPercent)
}

// Height returns the height of the raised plateau.
func (g *Cliff) Height() uint16 { return uint16(g.height.Value()) }

// SetHeight sets the height of the raised plateau.
func (g *Cliff) SetHeight(h uint16) { g.height.Set(int(h)) }

// PercentFromEdge returns how far the cliff edge sits from the top, in percent of the map height.
func (g *Cliff) PercentFromEdge() int { return g.mapPercent.Value() }

// SetPercentFromEdge sets the edge distance, clamped to [5,50].
func (g *Cliff) SetPercentFromEdge(p int) { g.mapPercent.Set(p) }

func (g *Cliff) Name() string        { return "cliff" }
func (g *Cliff) Description() string { return "Adds a cliff to the map." }
func (g *Cliff) ResetsField() bool   { return false }

func (g *Cliff) Generate(f *heightfield.Field) error {
	height := g.height.Value()
	pct := g.mapPercent.Value()
	mapHeight := f.Height()
	rng := f.Random()

	thickness := int(float64(mapHeight) * 0.01 * float64(pct))
	jitter := int(float64(min(pct, 20))*0.01*float64(mapHeight)) / 3
	minEdge := max(thickness-jitter, 0)
	maxEdge := min(thickness+jitter, mapHeight-1)

	edge := rng.Next()%(jitter*2+1) - jitter + thickness
	edge = min(max(edge, minEdge), maxEdge)
	slope := 1
	if jitter >= 4 {
		slope = (jitter + 2) / 4
	}

	momentum := 0
	for x := 0; x < f.Width(); x++ {
		top := edge - slope
		base := float64(f.At(x, edge))
		diff := float64(height) - base
		for y := 0; y < edge; y++ {
			if y < top {
				f.Put(x, y, uint16(height))
				continue
			}
			n := float64(y - top)
			f.Put(x, y, clamp16f(base+diff*(1-n/float64(slope+1))))
		}

		drift := momentumStep(rng.Byte(), momentum)
		momentum = drift
		edge = min(max(edge+drift, minEdge), maxEdge)
	}
	return nil
}

func init() {
	Register("cliff", func() Generator { return NewCliff() })
}
