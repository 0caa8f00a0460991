package render

import (
	"image"
	"image/color"
)

// FillRGBA converts height cells into RGBA pixels in buf using the palette.
// When the palette is empty the buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint16, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c >> 8)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillContour darkens pixels whose height band differs from the cell to the
// right or below. Bands are interval units of height.
func FillContour(buf []byte, cells []uint16, w int, interval uint16, line color.RGBA) {
	if w <= 0 || interval == 0 {
		return
	}
	h := len(cells) / w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			band := cells[i] / interval
			edge := (x+1 < w && cells[i+1]/interval != band) ||
				(y+1 < h && cells[i+w]/interval != band)
			if !edge {
				continue
			}
			base := i * 4
			buf[base+0] = line.R
			buf[base+1] = line.G
			buf[base+2] = line.B
			buf[base+3] = line.A
		}
	}
}

// Image renders a w×h grid of cells into a new RGBA image.
func Image(cells []uint16, w, h int, palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillRGBA(img.Pix, cells[:w*h], palette)
	return img
}
