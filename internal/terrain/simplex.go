package terrain

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Simplex adds smooth fractal OpenSimplex noise to the existing heights.
type Simplex struct {
	core.Options
	amplitude   *core.BoundedOption
	scale       *core.BoundedOption
	octaves     *core.BoundedOption
	persistence *core.BoundedOption
}

// NewSimplex returns a Simplex generator with default options.
func NewSimplex() *Simplex {
	g := &Simplex{}
	g.Defaults()
	return g
}

func (g *Simplex) Defaults() {
	g.amplitude = core.NewIntOption("amplitude", "Amplitude", 2048, 1, math.MaxInt16)
	g.scale = core.NewIntOption("scale", "Feature Size", 256, 1, 4096)
	g.octaves = core.NewIntOption("octaves", "Octaves", 4, 1, 8)
	g.persistence = core.NewIntOption("persistence", "Persistence Percent", 50, 1, 100)
	g.SetOptions(g.amplitude, g.scale, g.octaves, g.persistence)
}

func (g *Simplex) Name() string        { return "simplex" }
func (g *Simplex) Description() string { return "Adds fractal simplex noise to the map." }
func (g *Simplex) ResetsField() bool   { return false }

func (g *Simplex) Generate(f *heightfield.Field) error {
	noise := opensimplex.NewNormalized(f.Random().Int64())
	octaves := g.octaves.Value()
	persistence := float64(g.persistence.Value()) / 100

	amplitudes := make([]float64, octaves)
	var total float64
	for i := range amplitudes {
		amplitudes[i] = math.Pow(persistence, float64(i))
		total += amplitudes[i]
	}

	amp := float64(g.amplitude.Value())
	scale := float64(g.scale.Value())
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			nx, ny := float64(x)/scale, float64(y)/scale
			var sum float64
			for i, a := range amplitudes {
				freq := float64(int(1) << i)
				sum += a * noise.Eval2(nx*freq, ny*freq)
			}
			n := sum/total*2 - 1
			f.Put(x, y, clamp16(int(f.At(x, y))+int(math.Round(amp*n))))
		}
	}
	return nil
}

func init() {
	Register("simplex", func() Generator { return NewSimplex() })
}
