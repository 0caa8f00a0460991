//go:build !ebiten

package ui

import "heightmapper/internal/terrain"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD([]terrain.Generator, int) *HUD { return nil }

// Changed always reports false in the headless build.
func (h *HUD) Changed() bool { return false }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
