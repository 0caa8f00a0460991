//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"heightmapper/internal/core"
	"heightmapper/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional analysis layers on top of the field view.
// Key 1 toggles contour lines, 2 toggles hillshading and 3 the cursor probe.
type Overlay struct {
	scale       int
	showContour bool
	showShade   bool
	showProbe   bool

	grid       *core.Grid16
	contourImg *ebiten.Image
	contourBuf []byte
	shadeImg   *ebiten.Image
	shadeBuf   []byte
}

const contourInterval = 2048

var contourLine = color.RGBA{R: 20, G: 20, B: 24, A: 200}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: max(scale, 1), showShade: true, showProbe: true}
}

// SetGrid replaces the grid the layers are computed from.
func (o *Overlay) SetGrid(g *core.Grid16) {
	o.grid = g
	total := 4 * g.W * g.H
	if o.contourImg == nil || o.contourImg.Bounds().Dx() != g.W || o.contourImg.Bounds().Dy() != g.H {
		o.contourImg = ebiten.NewImage(g.W, g.H)
		o.shadeImg = ebiten.NewImage(g.W, g.H)
		o.contourBuf = make([]byte, total)
		o.shadeBuf = make([]byte, total)
	}
	clear(o.contourBuf)
	render.FillContour(o.contourBuf, g.Cells(), g.W, contourInterval, contourLine)
	o.contourImg.WritePixels(o.contourBuf)
	render.FillHillshade(o.shadeBuf, g.Cells(), g.W, 40)
	o.shadeImg.WritePixels(o.shadeBuf)
}

// Update toggles layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showContour = !o.showContour
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showShade = !o.showShade
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showProbe = !o.showProbe
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.grid == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	if o.showShade {
		screen.DrawImage(o.shadeImg, op)
	}
	if o.showContour {
		screen.DrawImage(o.contourImg, op)
	}
	if o.showProbe {
		mx, my := ebiten.CursorPosition()
		x, y := mx/o.scale, my/o.scale
		if o.grid.In(x, y) {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("(%d,%d) %d", x, y, o.grid.At(x, y)), 4, 4)
		}
	}
}
