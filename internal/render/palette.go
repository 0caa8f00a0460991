// Package render converts heightfield grids into RGBA pixels.
package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/mazznoer/colorgrad"
)

// PaletteSize is the number of entries in every palette; heights are indexed
// by their high byte.
const PaletteSize = 256

// Palette maps the high byte of a height to a colour.
type Palette []color.RGBA

type paletteSource struct {
	build func() (colorgrad.Gradient, error)
	// span is the part of the gradient's domain the palette samples.
	span float64
}

func gradient(build func() (colorgrad.Gradient, error)) paletteSource {
	return paletteSource{build: build, span: 1}
}

var palettes = map[string]paletteSource{
	"terrain": gradient(func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().
			HtmlColors("#0b1d51", "#2a6fbb", "#e8d9a0", "#4f8a3a", "#2f5b27", "#7a6248", "#ffffff").
			Domain(0, 0.2, 0.24, 0.35, 0.6, 0.8, 1).
			Build()
	}),
	"gray": gradient(func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().
			Colors(color.Black, color.White).
			Build()
	}),
	"heat": gradient(func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().
			Colors(
				color.RGBA{0, 0, 255, 255},
				color.RGBA{0, 255, 255, 255},
				color.RGBA{0, 255, 0, 255},
				color.RGBA{255, 255, 0, 255},
				color.RGBA{255, 0, 0, 255},
			).
			Build()
	}),
	"turbo": gradient(func() (colorgrad.Gradient, error) { return colorgrad.Turbo(), nil }),
	// Rainbow is cyclic; stop short of the end so the lowest and highest
	// heights get different colours.
	"rainbow": {build: func() (colorgrad.Gradient, error) { return colorgrad.Rainbow(), nil }, span: 0.85},
}

// PaletteNames returns the known palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPalette samples the named gradient into PaletteSize colours.
func NewPalette(name string) (Palette, error) {
	src, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	grad, err := src.build()
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", name, err)
	}
	p := make(Palette, PaletteSize)
	for i := range p {
		r, g, b := grad.At(src.span * float64(i) / (PaletteSize - 1)).Clamped().RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}

// MustPalette is NewPalette for names known to exist.
func MustPalette(name string) Palette {
	p, err := NewPalette(name)
	if err != nil {
		panic(err)
	}
	return p
}
