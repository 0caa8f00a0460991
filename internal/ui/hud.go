//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"heightmapper/internal/core"
	"heightmapper/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the step list and the selected step's options to the right of
// the field view. Clicking a step selects it; the +/- buttons edit its options.
type HUD struct {
	gens       []terrain.Generator
	width      int
	panel      *ebiten.Image
	lastHeight int

	selected     int
	controls     []hudControlState
	panelOffsetX int
	changed      bool
	status       string

	pixel *ebiten.Image
}

type hudControlState struct {
	opt *core.BoundedOption

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided steps and panel width.
func NewHUD(gens []terrain.Generator, width int) *HUD {
	h := &HUD{gens: gens, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.selectStep(0)
	return h
}

// Changed reports whether an option was edited since the last call.
func (h *HUD) Changed() bool {
	if h == nil {
		return false
	}
	c := h.changed
	h.changed = false
	return c
}

// SetStatus replaces the status line drawn at the bottom of the panel.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(h.gens) > 0 {
		h.selectStep((h.selected + 1) % len(h.gens))
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	if i := (my - stepsTop) / stepLineHeight; my >= stepsTop && i < len(h.gens) {
		h.selectStep(i)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawSteps()
	h.drawControls()
	if h.status != "" {
		text.Draw(h.panel, h.status, basicfont.Face7x13, panelPadding, height-panelPadding, dimText)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) selectStep(i int) {
	h.selected = i
	h.controls = nil
	if i < 0 || i >= len(h.gens) {
		return
	}
	for _, opt := range boundedOptions(h.gens[i]) {
		h.controls = append(h.controls, hudControlState{opt: opt})
	}
	h.layoutControls()
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target := adjusted(state.opt, direction)
	if target == state.opt.Value() {
		return
	}
	state.opt.Set(target)
	h.changed = true
}

func (h *HUD) drawSteps() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Steps", face, panelPadding, panelPadding+headerBaseline, headerText)
	for i, g := range h.gens {
		y := stepsTop + i*stepLineHeight + stepBaseline
		col := dimText
		label := fmt.Sprintf("%d. %s", i+1, g.Name())
		if i == h.selected {
			col = brightText
			label = "> " + label
		}
		text.Draw(h.panel, label, face, panelPadding, y, col)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	top := h.controlsTop()
	if h.selected < 0 || h.selected >= len(h.gens) {
		return
	}
	g := h.gens[h.selected]
	text.Draw(h.panel, g.Description(), face, panelPadding, top-infoSpacing/2, dimText)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable options", face, panelPadding, top+labelBaseline, dimText)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.opt.Label, face, panelPadding, labelY, brightText)

		value := strconv.Itoa(state.opt.Value())
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, brightText)

		h.drawButton(state.minusRect, "-", state.opt.Value() > state.opt.Min)
		h.drawButton(state.plusRect, "+", state.opt.Value() < state.opt.Max)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) controlsTop() int {
	return stepsTop + len(h.gens)*stepLineHeight + infoSpacing
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	base := h.controlsTop()
	for i := range h.controls {
		top := base + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	headerText = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	brightText = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimText    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	stepLineHeight = 18
	stepBaseline   = 13
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	stepsTop       = panelPadding + headerBaseline + 8
)
