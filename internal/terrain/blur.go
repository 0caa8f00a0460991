package terrain

import (
	"image"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// Blur is Average with the window's corners trimmed for a rounder kernel.
type Blur struct {
	core.Options
	distance *core.BoundedOption
}

// NewBlur returns a Blur generator with default options.
func NewBlur() *Blur {
	g := &Blur{}
	g.Defaults()
	return g
}

func (g *Blur) Defaults() {
	g.distance = core.NewIntOption("distance", "Blur Distance", 16, 1, 64)
	g.SetOptions(g.distance)
}

func (g *Blur) Name() string        { return "blur" }
func (g *Blur) Description() string { return "Averages cells over a roughly circular window." }
func (g *Blur) ResetsField() bool   { return false }

func (g *Blur) Generate(f *heightfield.Field) error {
	d := g.distance.Value()
	excluded := blurCorners(d)
	diam := int64(2*d + 1)
	count := diam*diam - int64(len(excluded))

	snap := f.Snapshot()
	sums := boxSums(snap, d)
	for y := 0; y < snap.H; y++ {
		for x := 0; x < snap.W; x++ {
			sum := sums[snap.Index(x, y)]
			for _, c := range excluded {
				sx, sy := snap.Clamp(x+c.X, y+c.Y)
				sum -= int64(snap.At(sx, sy))
			}
			f.Put(x, y, uint16(sum/count))
		}
	}
	return nil
}

// blurCorners lists the window offsets dropped for distance d. Each ring entry
// (ox, oy) is mirrored into all four corners of the window.
func blurCorners(d int) []image.Point {
	var ring []image.Point
	if d > 4 {
		ring = append(ring, image.Pt(0, 0))
	}
	if d > 8 {
		ring = append(ring, image.Pt(0, 1), image.Pt(1, 0))
	}
	if d > 16 {
		ring = append(ring, image.Pt(1, 1), image.Pt(0, 2), image.Pt(2, 0))
	}
	if d > 32 {
		ring = append(ring, image.Pt(2, 2), image.Pt(1, 2), image.Pt(2, 1), image.Pt(0, 3), image.Pt(3, 0))
	}

	corners := make([]image.Point, 0, 4*len(ring))
	for _, r := range ring {
		cx, cy := d-r.X, d-r.Y
		corners = append(corners,
			image.Pt(cx, cy),
			image.Pt(cx, -cy),
			image.Pt(-cx, -cy),
			image.Pt(-cx, cy),
		)
	}
	return corners
}

func init() {
	Register("blur", func() Generator { return NewBlur() })
}
