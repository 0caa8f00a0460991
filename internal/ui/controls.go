// Package ui draws the viewer's side panel and overlays.
package ui

import (
	"heightmapper/internal/core"
	"heightmapper/internal/terrain"
)

// optionLister is implemented by generators embedding core.Options.
type optionLister interface {
	Option(i int) (*core.BoundedOption, error)
}

// stepSize returns the +/- increment for opt: about one sixty-fourth of its
// range, at least one.
func stepSize(opt *core.BoundedOption) int {
	return max((opt.Max-opt.Min)/64, 1)
}

// adjusted returns opt's value moved dir steps and clamped to its bounds.
func adjusted(opt *core.BoundedOption, dir int) int {
	return min(max(opt.Value()+dir*stepSize(opt), opt.Min), opt.Max)
}

// boundedOptions returns g's options in index order, or nil when g does not
// expose bounds.
func boundedOptions(g terrain.Generator) []*core.BoundedOption {
	lister, ok := g.(optionLister)
	if !ok {
		return nil
	}
	opts := make([]*core.BoundedOption, 0, g.OptionCount())
	for i := 0; i < g.OptionCount(); i++ {
		opt, err := lister.Option(i)
		if err != nil {
			break
		}
		opts = append(opts, opt)
	}
	return opts
}
