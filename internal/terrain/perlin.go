package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// Perlin adds classic Perlin noise to the existing heights.
type Perlin struct {
	core.Options
	amplitude *core.BoundedOption
	scale     *core.BoundedOption
	octaves   *core.BoundedOption
}

// NewPerlin returns a Perlin generator with default options.
func NewPerlin() *Perlin {
	g := &Perlin{}
	g.Defaults()
	return g
}

func (g *Perlin) Defaults() {
	g.amplitude = core.NewIntOption("amplitude", "Amplitude", 2048, 1, math.MaxInt16)
	g.scale = core.NewIntOption("scale", "Feature Size", 256, 1, 4096)
	g.octaves = core.NewIntOption("octaves", "Octaves", 3, 1, 8)
	g.SetOptions(g.amplitude, g.scale, g.octaves)
}

func (g *Perlin) Name() string        { return "perlin" }
func (g *Perlin) Description() string { return "Adds Perlin noise to the map." }
func (g *Perlin) ResetsField() bool   { return false }

func (g *Perlin) Generate(f *heightfield.Field) error {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, int32(g.octaves.Value()), f.Random().Int64())
	amp := float64(g.amplitude.Value())
	scale := float64(g.scale.Value())
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			n := math.Max(-1, math.Min(1, p.Noise2D(float64(x)/scale, float64(y)/scale)))
			f.Put(x, y, clamp16(int(f.At(x, y))+int(math.Round(amp*n))))
		}
	}
	return nil
}

func init() {
	Register("perlin", func() Generator { return NewPerlin() })
}
