// Package terrain implements the heightfield generators. Each generator owns an
// ordered list of bounded options and mutates a field in place through its
// view coordinates, drawing any randomness from the field's stream.
package terrain

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
)

var (
	// ErrInvalidConfig reports generator options that cannot be satisfied on the
	// current field.
	ErrInvalidConfig = errors.New("invalid generator configuration")
	// ErrUnknownGenerator reports a name with no registered factory.
	ErrUnknownGenerator = errors.New("unknown generator")
)

// Generator mutates a heightfield. Option indices are part of each generator's
// contract: callers configuring by position must follow declaration order.
type Generator interface {
	core.OptionSet
	// SetOption sets the option registered under key.
	SetOption(key string, v any) error

	// Name returns the registry name.
	Name() string
	// Description is a one-line summary for menus and help output.
	Description() string
	// ResetsField reports whether Generate overwrites every cell regardless of
	// prior content.
	ResetsField() bool
	// Defaults restores every option to its default value.
	Defaults()
	// Generate applies the generator to f.
	Generate(f *heightfield.Field) error
}

// Factory constructs a generator with default options.
type Factory func() Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the generator registered under name.
func New(name string) (Generator, error) {
	factory, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return factory(), nil
}

func clamp16(v int) uint16 {
	return uint16(min(max(v, 0), math.MaxUint16))
}

// clamp16f truncates toward zero after clamping, matching integer casts of
// non-negative values.
func clamp16f(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

func fillRow(f *heightfield.Field, y int, v uint16) {
	for x := 0; x < f.Width(); x++ {
		f.Put(x, y, v)
	}
}
