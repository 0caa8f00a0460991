package heightfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a 2D rotation by a whole number of degrees, normalised to [0,360).
type Transform struct {
	degrees int
	m       mgl64.Mat2
}

// NewTransform builds the rotation matrix for the given angle.
func NewTransform(degrees int) Transform {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return Transform{degrees: degrees, m: mgl64.Rotate2D(float64(degrees) * math.Pi / 180)}
}

// Degrees returns the normalised angle.
func (t Transform) Degrees() int { return t.degrees }

// Identity reports whether the transform is the zero rotation.
func (t Transform) Identity() bool { return t.degrees == 0 }

// Apply rotates (x, y) without rounding.
func (t Transform) Apply(x, y float64) (float64, float64) {
	v := t.m.Mul2x1(mgl64.Vec2{x, y})
	return snap(v[0]), snap(v[1])
}

// ApplyRounded rotates (x, y) and rounds each component to the nearest integer.
func (t Transform) ApplyRounded(x, y int) (int, int) {
	v := t.m.Mul2x1(mgl64.Vec2{float64(x), float64(y)})
	return int(math.Round(v[0])), int(math.Round(v[1]))
}

// Inverse returns the rotation that undoes t.
func (t Transform) Inverse() Transform { return NewTransform(-t.degrees) }

// Bounds returns the frame of a view that covers a w*h raw rectangle centred
// on (cx, cy): its size and the view coordinate the raw centre maps to. View
// offsets are rotated by t into raw offsets, so the raw corners are measured
// with the inverse.
func (t Transform) Bounds(w, h, cx, cy int) (vw, vh, vcx, vcy int) {
	if t.Identity() {
		return w, h, cx, cy
	}
	inv := t.Inverse()
	corners := [4][2]int{
		{-cx, -cy},
		{w - 1 - cx, -cy},
		{-cx, h - 1 - cy},
		{w - 1 - cx, h - 1 - cy},
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, c := range corners {
		x, y := inv.ApplyRounded(c[0], c[1])
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return maxX - minX + 1, maxY - minY + 1, -minX, -minY
}

// snap removes floating point residue so that exact lattice points floor correctly.
func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}
