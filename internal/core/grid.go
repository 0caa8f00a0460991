package core

// Grid16 stores a 2D grid of 16-bit cell values in row-major order.
type Grid16 struct {
	W, H int
	data []uint16
}

// NewGrid16 allocates a grid with the given dimensions.
func NewGrid16(w, h int) *Grid16 {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid16{W: w, H: h, data: make([]uint16, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid16) Cells() []uint16 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid16) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid16) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clamp pins the provided coordinates to the nearest edge cell.
func (g *Grid16) Clamp(x, y int) (int, int) {
	return min(max(x, 0), g.W-1), min(max(y, 0), g.H-1)
}

// At returns the value at (x, y). Coordinates must be in range.
func (g *Grid16) At(x, y int) uint16 { return g.data[y*g.W+x] }

// Set stores v at (x, y). Coordinates must be in range.
func (g *Grid16) Set(x, y int, v uint16) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *Grid16) Fill(v uint16) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *Grid16) Clear() { g.Fill(0) }

// Clone returns a deep copy of the grid.
func (g *Grid16) Clone() *Grid16 {
	return &Grid16{W: g.W, H: g.H, data: append([]uint16(nil), g.data...)}
}
