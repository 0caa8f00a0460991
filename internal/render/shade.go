package render

import "math"

// FillHillshade writes a translucent black mask into buf that darkens cells
// facing away from a light in the north-west. zScale exaggerates relief.
func FillHillshade(buf []byte, cells []uint16, w int, zScale float64) {
	if w <= 0 {
		return
	}
	h := len(cells) / w
	lx, ly, lz := -1/math.Sqrt(3), -1/math.Sqrt(3), 1/math.Sqrt(3)
	at := func(x, y int) float64 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return float64(cells[y*w+x]) / math.MaxUint16
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (at(x+1, y) - at(x-1, y)) * zScale
			dy := (at(x, y+1) - at(x, y-1)) * zScale
			// Surface normal is (-dx, -dy, 2) before normalisation.
			n := math.Sqrt(dx*dx + dy*dy + 4)
			light := (-dx*lx - dy*ly + 2*lz) / n
			shade := 1 - min(max(light, 0), 1)
			base := (y*w + x) * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = uint8(shade * 200)
		}
	}
}
