package terrain

import "testing"

func TestFlatFillsEveryCell(t *testing.T) {
	for _, h := range []int{0, 1, 2560, 65535} {
		f := newField(t, 17, 19, 1)
		fill(f, 999)
		g := NewFlat()
		if err := g.SetOptionValue(0, h); err != nil {
			t.Fatal(err)
		}
		if err := g.Generate(f); err != nil {
			t.Fatal(err)
		}
		for i, v := range f.Grid().Cells() {
			if int(v) != h {
				t.Fatalf("height %d: cell %d = %d", h, i, v)
			}
		}
	}
}

func TestFlatUnderRotationCoversRawGrid(t *testing.T) {
	f := newField(t, 16, 16, 1)
	rot := NewSetRotation()
	_ = rot.SetOptionValue(0, 90)
	if err := rot.Generate(f); err != nil {
		t.Fatal(err)
	}
	if f.Rotation() != 90 {
		t.Fatalf("rotation = %d", f.Rotation())
	}
	flat := NewFlat()
	_ = flat.SetOptionValue(0, 500)
	flat.Generate(f)
	for i, v := range f.Grid().Cells() {
		if v != 500 {
			t.Fatalf("raw cell %d = %d after rotated fill", i, v)
		}
	}
}

func TestPlainUniformWithoutSlope(t *testing.T) {
	f := newField(t, 16, 16, 1)
	g := NewPlain()
	g.SetAverageHeight(4000)
	g.Generate(f)
	for i, v := range f.Grid().Cells() {
		if v != 4000 {
			t.Fatalf("cell %d = %d", i, v)
		}
	}
}

func TestPlainSlope(t *testing.T) {
	f := newField(t, 16, 64, 1)
	g := NewPlain()
	g.SetSlope(5)
	g.Generate(f)

	// change = int(0.64*5*64) = 204, so the first row sits at 7680+102.
	if got := f.At(0, 0); got != 7782 {
		t.Fatalf("row 0 = %d, want 7782", got)
	}
	for y := 1; y < f.Height(); y++ {
		if f.At(0, y) > f.At(0, y-1) {
			t.Fatalf("row %d higher than row %d", y, y-1)
		}
		if f.At(0, y) != f.At(15, y) {
			t.Fatalf("row %d is not uniform", y)
		}
	}

	low := newField(t, 16, 64, 1)
	g.SetAverageHeight(10)
	g.SetSlope(10)
	g.Generate(low)
	if low.At(0, 63) != 0 {
		t.Fatalf("negative heights must clamp to 0, got %d", low.At(0, 63))
	}
}
