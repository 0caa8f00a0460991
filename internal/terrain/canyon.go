package terrain

import (
	"fmt"
	"math"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// minCanyonSpan is the narrowest bottom or wall margin a canyon accepts.
const minCanyonSpan = 4

// Canyon cuts a north-south canyon with jittering walls through the view.
type Canyon struct {
	core.Options
	top    *core.BoundedOption
	bottom *core.BoundedOption
	ratio  *core.BoundedOption
	slope  *core.BoundedOption
}

// NewCanyon returns a Canyon generator with default options.
func NewCanyon() *Canyon {
	g := &Canyon{}
	g.Defaults()
	return g
}

func (g *Canyon) Defaults() {
	g.top = core.NewIntOption("top", "Top Height", math.MaxInt16, 0, math.MaxUint16)
	g.bottom = core.NewIntOption("bottom", "Bottom Height", 120, 0, math.MaxUint16)
	g.ratio = core.NewIntOption("ratio", "Bottom Ratio", 60, 10, 80)
	g.slope = core.NewIntOption("slope", "Bottom Slope", 0, 0, 10)
	g.SetOptions(g.top, g.bottom, g.ratio, g.slope)
}

func (g *Canyon) Name() string        { return "canyon" }
func (g *Canyon) Description() string { return "Resets the map to a canyon running top to bottom." }
func (g *Canyon) ResetsField() bool   { return true }

func (g *Canyon) Generate(f *heightfield.Field) error {
	top, bottom := g.top.Value(), g.bottom.Value()
	if top < bottom {
		top, bottom = bottom, top
	}

	w, h := f.Width(), f.Height()
	leftWidth, bottomWidth, rightWidth, err := canyonLayout(w, g.ratio.Value())
	if err != nil {
		return err
	}

	narrow := min(bottomWidth, rightWidth)
	jitter := narrow / 3
	slopeLen := max(narrow/10, 1)

	change := int(math.MaxUint16 * 0.01 * float64(g.slope.Value()))
	bottomTop := bottom + change/2

	slopeHeights := make([]uint16, slopeLen)
	rng := f.Random()
	buf := make([]byte, 2)

	lx, rx := leftWidth, w-rightWidth
	for y := 0; y < h; y++ {
		rowBottom := clamp16f(float64(bottomTop) - float64(y)/float64(h)*float64(change))
		diff := float64(top) - float64(rowBottom)
		for n := range slopeHeights {
			slopeHeights[n] = clamp16f(float64(rowBottom) + diff*(1-float64(n)/float64(slopeLen+1)))
		}

		rng.NextBytes(buf)
		lx = min(max(lx+wallStep(buf[0]), leftWidth-jitter), leftWidth+jitter)
		rx = min(max(rx+wallStep(buf[1]), w-rightWidth-jitter), w-rightWidth+jitter)
		ls, rs := lx-slopeLen, rx+slopeLen

		for x := 0; x < w; x++ {
			switch {
			case x < ls:
				f.Put(x, y, uint16(top))
			case x < lx:
				f.Put(x, y, slopeHeights[x-ls])
			case x <= rx:
				f.Put(x, y, rowBottom)
			case x <= rs:
				f.Put(x, y, slopeHeights[rs-x])
			default:
				f.Put(x, y, uint16(top))
			}
		}
	}
	return nil
}

// canyonLayout splits width into left margin, bottom and right margin. Both
// margins and the bottom must be at least minCanyonSpan wide.
func canyonLayout(width, ratio int) (left, bottom, right int, err error) {
	bottom = max(int(float64(width)*float64(ratio)*0.01), minCanyonSpan)
	left = max((width-bottom)/2, minCanyonSpan)
	right = max(width-bottom-(width-bottom)/2, minCanyonSpan)
	bottom = width - left - right
	if bottom < minCanyonSpan {
		return 0, 0, 0, fmt.Errorf("%w: canyon bottom of %d cells on a %d wide map (minimum %d)",
			ErrInvalidConfig, bottom, width, minCanyonSpan)
	}
	return left, bottom, right, nil
}

func init() {
	Register("canyon", func() Generator { return NewCanyon() })
}
