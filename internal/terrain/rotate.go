package terrain

import (
	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

// SetRotation rotates the field's view for the generators that follow.
type SetRotation struct {
	core.Options
	degrees *core.BoundedOption
}

// NewSetRotation returns a SetRotation generator with default options.
func NewSetRotation() *SetRotation {
	g := &SetRotation{}
	g.Defaults()
	return g
}

func (g *SetRotation) Defaults() {
	g.degrees = core.NewIntOption("degrees", "Degrees to rotate (clockwise)", 0, -360, 360)
	g.SetOptions(g.degrees)
}

func (g *SetRotation) Name() string { return "rotate" }
func (g *SetRotation) Description() string {
	return "Sets the rotation of the map for the next generator to use."
}
func (g *SetRotation) ResetsField() bool { return false }

func (g *SetRotation) Generate(f *heightfield.Field) error {
	f.SetRotation(g.degrees.Value())
	return nil
}

func init() {
	Register("rotate", func() Generator { return NewSetRotation() })
}
