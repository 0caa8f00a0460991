//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
	"heightmapper/internal/render"
	"heightmapper/internal/terrain"
	"heightmapper/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the HUD to the right of the field.
const PanelWidth = 280

// Game adapts a generator pipeline to the ebiten.Game interface.
type Game struct {
	fieldCfg heightfield.Config
	gens     []terrain.Generator
	field    *heightfield.Field
	logger   *log.Logger

	palette render.Palette
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	cycle *core.Interval
	auto  bool
	scale int
}

// New builds the configured steps and generates the first field.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	gens, err := cfg.Generators()
	if err != nil {
		return nil, err
	}
	palette, err := render.NewPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	g := &Game{
		fieldCfg: cfg.FieldConfig(),
		gens:     gens,
		logger:   logger,
		palette:  palette,
		hud:      ui.NewHUD(gens, PanelWidth),
		overlay:  ui.NewOverlay(cfg.Scale),
		cycle:    core.NewInterval(cfg.Cycle),
		auto:     cfg.Cycle > 0,
		scale:    max(cfg.Scale, 1),
	}
	seed := g.fieldCfg.Seed
	if g.fieldCfg.RandomSeed {
		seed = time.Now().UnixNano()
	}
	if err := g.Regenerate(seed); err != nil {
		return nil, err
	}
	g.painter = render.NewPainter(g.field.Grid().W, g.field.Grid().H)
	g.painter.Upload(g.field.Grid().Cells(), g.palette)
	return g, nil
}

// Size returns the raw field size.
func (g *Game) Size() core.Size { return g.field.RawSize() }

// Regenerate runs every step on a fresh field with the provided seed. On
// failure the previous field stays on screen.
func (g *Game) Regenerate(seed int64) error {
	cfg := g.fieldCfg
	cfg.Seed, cfg.RandomSeed = seed, false
	start := time.Now()
	p, err := Generate(cfg, g.gens, g.logger)
	if err != nil {
		g.hud.SetStatus(err.Error())
		return err
	}
	g.field = p.Field()
	g.fieldCfg.Seed, g.fieldCfg.RandomSeed = g.field.Seed(), false
	g.overlay.SetGrid(g.field.Grid())
	if g.painter != nil {
		g.painter.Upload(g.field.Grid().Cells(), g.palette)
	}
	g.hud.SetStatus(fmt.Sprintf("seed %d  %s", g.field.Seed(), time.Since(start).Round(time.Millisecond)))
	return nil
}

// Update handles per-frame input and regenerates when something changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.auto = !g.auto
	}

	g.overlay.Update()
	g.hud.Update(g.Size().W * g.scale)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS), g.auto && g.cycle.Due():
		g.regenerate(time.Now().UnixNano())
	case inpututil.IsKeyJustPressed(ebiten.KeyR), g.hud.Changed():
		g.regenerate(g.fieldCfg.Seed)
	}
	return nil
}

func (g *Game) regenerate(seed int64) {
	if err := g.Regenerate(seed); err != nil && g.logger != nil {
		g.logger.Printf("regenerate: %v", err)
	}
}

// Draw renders the field, overlays and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	size := g.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.Size()
	return s.W*g.scale + PanelWidth, s.H * g.scale
}
