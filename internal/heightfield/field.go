// Package heightfield holds a 16-bit elevation grid viewed through an optional
// rotation, together with the seeded random stream generators draw from.
package heightfield

import (
	"fmt"
	"math"

	"heightmapper/internal/core"
	prng "heightmapper/pkg/core"
)

// threshold above which a fractional remainder pulls in the neighbouring raw cell.
const neighbourThreshold = 0.1

// Field is a rotation-aware heightfield. All coordinates accepted by its
// accessors are view coordinates: raw coordinates at rotation 0, otherwise the
// bounding frame of the rotated raw rectangle.
//
// A view cell maps to up to four raw cells. Reads return the first available of
// (x1,y1), (x1,y2), (x2,y1), (x2,y2); writes store into every available one. This
// is a fast approximation, not a bilinear resample.
type Field struct {
	grid   *core.Grid16
	cx, cy int

	xf       Transform
	view     core.Size
	vcx, vcy int

	rng *prng.RNG
}

// New allocates a zeroed field. Either dimension below MinSize is rejected.
func New(cfg Config) (*Field, error) {
	if cfg.Width < MinSize || cfg.Height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d is smaller than %dx%d",
			ErrInvalidConfig, cfg.Width, cfg.Height, MinSize, MinSize)
	}
	f := &Field{
		grid: core.NewGrid16(cfg.Width, cfg.Height),
		cx:   cfg.Width / 2,
		cy:   cfg.Height / 2,
		rng:  prng.NewRNG(cfg.effectiveSeed()),
	}
	f.SetRotation(0)
	return f, nil
}

// Seed returns the seed the random stream was created with.
func (f *Field) Seed() int64 { return f.rng.Seed() }

// Random exposes the field's random stream. Generators must draw all of their
// randomness from it so that equal seeds reproduce equal grids.
func (f *Field) Random() *prng.RNG { return f.rng }

// Width returns the current view width.
func (f *Field) Width() int { return f.view.W }

// Height returns the current view height.
func (f *Field) Height() int { return f.view.H }

// Size returns the current view dimensions.
func (f *Field) Size() core.Size { return f.view }

// RawSize returns the fixed storage dimensions.
func (f *Field) RawSize() core.Size { return core.Size{W: f.grid.W, H: f.grid.H} }

// Grid exposes the raw storage for encoders. Callers must not retain it across
// generator runs.
func (f *Field) Grid() *core.Grid16 { return f.grid }

// Rotation returns the active rotation in degrees, in [0,360).
func (f *Field) Rotation() int { return f.xf.Degrees() }

// SetRotation changes the view rotation and recomputes the view bounds.
func (f *Field) SetRotation(degrees int) {
	f.xf = NewTransform(degrees)
	w, h, vcx, vcy := f.xf.Bounds(f.grid.W, f.grid.H, f.cx, f.cy)
	f.view = core.Size{W: w, H: h}
	f.vcx, f.vcy = vcx, vcy
}

// Clone returns a deep copy including rotation and random stream position.
func (f *Field) Clone() *Field {
	c := *f
	c.grid = f.grid.Clone()
	c.rng = f.rng.Clone()
	return &c
}

// Get returns the height at view coordinate (x, y). A coordinate inside the view
// that maps outside the raw grid reads as 0.
func (f *Field) Get(x, y int) (uint16, error) {
	if err := f.check(x, y); err != nil {
		return 0, err
	}
	return f.read(x, y), nil
}

// Set stores v at view coordinate (x, y). A coordinate inside the view that
// maps outside the raw grid is silently dropped.
func (f *Field) Set(x, y int, v uint16) error {
	if err := f.check(x, y); err != nil {
		return err
	}
	f.write(x, y, v)
	return nil
}

// At is Get for loops that already iterate within the view. It panics with a
// *BoundsError on out-of-view coordinates.
func (f *Field) At(x, y int) uint16 {
	if err := f.check(x, y); err != nil {
		panic(err)
	}
	return f.read(x, y)
}

// Put is Set for loops that already iterate within the view. It panics with a
// *BoundsError on out-of-view coordinates.
func (f *Field) Put(x, y int, v uint16) {
	if err := f.check(x, y); err != nil {
		panic(err)
	}
	f.write(x, y, v)
}

// Snapshot copies the current view into a new grid.
func (f *Field) Snapshot() *core.Grid16 {
	g := core.NewGrid16(f.view.W, f.view.H)
	for y := 0; y < f.view.H; y++ {
		for x := 0; x < f.view.W; x++ {
			g.Set(x, y, f.read(x, y))
		}
	}
	return g
}

func (f *Field) check(x, y int) error {
	if x < 0 || x >= f.view.W || y < 0 || y >= f.view.H {
		return &BoundsError{X: x, Y: y, Width: f.view.W, Height: f.view.H}
	}
	return nil
}

func (f *Field) read(x, y int) uint16 {
	if f.xf.Identity() {
		return f.grid.At(x, y)
	}
	idx, n := f.targets(x, y)
	if n == 0 {
		return 0
	}
	return f.grid.Cells()[idx[0]]
}

func (f *Field) write(x, y int, v uint16) {
	if f.xf.Identity() {
		f.grid.Set(x, y, v)
		return
	}
	idx, n := f.targets(x, y)
	cells := f.grid.Cells()
	for _, i := range idx[:n] {
		cells[i] = v
	}
}

// targets returns the raw indices a rotated view coordinate touches, in read
// precedence order (x1,y1), (x1,y2), (x2,y1), (x2,y2).
func (f *Field) targets(x, y int) ([4]int, int) {
	fx, fy := f.xf.Apply(float64(x-f.vcx), float64(y-f.vcy))
	fx += float64(f.cx)
	fy += float64(f.cy)

	x1, y1 := int(math.Floor(fx)), int(math.Floor(fy))
	x2, y2 := x1+1, y1+1
	useX2 := fx-float64(x1) > neighbourThreshold
	useY2 := fy-float64(y1) > neighbourThreshold

	var idx [4]int
	n := 0
	add := func(rx, ry int) {
		if f.grid.In(rx, ry) {
			idx[n] = f.grid.Index(rx, ry)
			n++
		}
	}
	add(x1, y1)
	if useY2 {
		add(x1, y2)
	}
	if useX2 {
		add(x2, y1)
	}
	if useX2 && useY2 {
		add(x2, y2)
	}
	return idx, n
}
