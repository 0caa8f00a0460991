package terrain

import "heightmapper/internal/core"

// boxSums returns, for every cell of g, the sum of the (2d+1)^2 window centred
// on it. Window cells outside the grid sample the nearest edge cell.
func boxSums(g *core.Grid16, d int) []int64 {
	w, h := g.W, g.H
	rows := make([]int64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int64
			for dx := -d; dx <= d; dx++ {
				sx, _ := g.Clamp(x+dx, y)
				sum += int64(g.At(sx, y))
			}
			rows[y*w+x] = sum
		}
	}

	sums := make([]int64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int64
			for dy := -d; dy <= d; dy++ {
				_, sy := g.Clamp(x, y+dy)
				sum += rows[sy*w+x]
			}
			sums[y*w+x] = sum
		}
	}
	return sums
}
