package render

import "testing"

func TestHillshadeFlatIsUniform(t *testing.T) {
	cells := make([]uint16, 16)
	for i := range cells {
		cells[i] = 30000
	}
	buf := make([]byte, len(cells)*4)
	FillHillshade(buf, cells, 4, 50)
	for i := 0; i < len(cells); i++ {
		if buf[i*4+3] != buf[3] {
			t.Fatalf("alpha at %d = %d, want %d", i, buf[i*4+3], buf[3])
		}
	}
}

func TestHillshadeDarkensSlopesFacingAway(t *testing.T) {
	// Heights rising toward the north-west face away from a north-west light.
	w := 8
	away := make([]uint16, w*w)
	toward := make([]uint16, w*w)
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			away[y*w+x] = uint16((2*w - 2 - x - y) * 2000)
			toward[y*w+x] = uint16((x + y) * 2000)
		}
	}
	a := make([]byte, len(away)*4)
	b := make([]byte, len(toward)*4)
	FillHillshade(a, away, w, 50)
	FillHillshade(b, toward, w, 50)
	mid := (3*w + 3) * 4
	if a[mid+3] <= b[mid+3] {
		t.Fatalf("away-facing alpha %d should exceed toward-facing %d", a[mid+3], b[mid+3])
	}
}
