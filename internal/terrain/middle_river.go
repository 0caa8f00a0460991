package terrain

import (
	"math"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// MiddleRiver carves a constant-depth river whose start column can be pinned
// and whose course can lean to one side.
type MiddleRiver struct {
	core.Options
	depth         *core.BoundedOption
	width         *core.BoundedOption
	confinePct    *core.BoundedOption
	explicitStart *core.BoundedOption
	courseLean    *core.BoundedOption
}

// NewMiddleRiver returns a MiddleRiver generator with default options.
func NewMiddleRiver() *MiddleRiver {
	g := &MiddleRiver{}
	g.Defaults()
	return g
}

func (g *MiddleRiver) Defaults() {
	g.depth = core.NewIntOption("depth", "Average Depth", 1280, 64, 3840)
	g.width = core.NewIntOption("width", "Average Width", 10, 1, 60)
	g.confinePct = core.NewIntOption("confine", "Confine to Middle Pct", 50, 1, 100)
	g.explicitStart = core.NewIntOption("start", "Explicit Start (-1 = disable)", -1, -1, math.MaxInt32)
	g.courseLean = core.NewIntOption("lean",
		"Course Change Lean (-1 = to the left, 0 = mid, 1 = to the right)", 0, -1, 1)
	g.SetOptions(g.depth, g.width, g.confinePct, g.explicitStart, g.courseLean)
}

// Start returns the start column used by the last run, or -1 before the first.
func (g *MiddleRiver) Start() int { return g.explicitStart.Value() }

// SetStart pins the start column; -1 picks a random one.
func (g *MiddleRiver) SetStart(x int) { g.explicitStart.Set(x) }

func (g *MiddleRiver) Name() string { return "middle-river" }
func (g *MiddleRiver) Description() string {
	return "Generates a river running down the middle of the map."
}
func (g *MiddleRiver) ResetsField() bool { return false }

// Generate carves the river. A start column outside the channel is replaced by
// a random one, which is written back to the start option so that a later run
// can follow the same course.
func (g *MiddleRiver) Generate(f *heightfield.Field) error {
	ch, ok := confineChannel(f.Width(), g.width.Value(), g.confinePct.Value())
	if !ok {
		return nil
	}
	rng := f.Random()
	mid := rng.Next()%ch.span() + ch.minMid
	if start := g.explicitStart.Value(); start >= ch.minMid && start <= ch.maxMid {
		mid = start
	} else {
		g.explicitStart.Set(mid)
	}

	depths := riverProfile(uint16(g.depth.Value()), ch.halfWidth)
	lean := g.courseLean.Value()
	momentum := lean
	for y := 0; y < f.Height(); y++ {
		carveRow(f, y, mid, depths)

		d := momentumStep(rng.Byte(), momentum)
		if lean == 0 {
			momentum = d
		}
		mid = ch.clamp(mid + d)
	}
	return nil
}

func init() {
	Register("middle-river", func() Generator { return NewMiddleRiver() })
}
