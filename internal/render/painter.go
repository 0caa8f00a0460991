//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads height cells into a single ebiten image.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Upload recolours the painter image from cells.
func (p *Painter) Upload(cells []uint16, palette Palette) {
	if len(cells) != p.w*p.h {
		return
	}
	FillRGBA(p.buf, cells, palette)
	p.img.WritePixels(p.buf)
}

// Draw paints the current image scaled onto dst.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
