// Package pipeline applies generators to a heightfield in sequence.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"heightmapper/internal/heightfield"
	"heightmapper/internal/terrain"
)

// StepStat records one applied generator.
type StepStat struct {
	Name     string
	Duration time.Duration
}

// Pipeline applies generators to one field in order. The first error is kept
// and every later Apply becomes a no-op, so calls can be chained and checked
// once with Err.
type Pipeline struct {
	field  *heightfield.Field
	logger *log.Logger
	err    error
	stats  []StepStat
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger logs one line per applied step.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New returns a pipeline over f.
func New(f *heightfield.Field, opts ...Option) *Pipeline {
	p := &Pipeline{field: f}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Field returns the field being shaped.
func (p *Pipeline) Field() *heightfield.Field { return p.field }

// Err returns the first error encountered, if any.
func (p *Pipeline) Err() error { return p.err }

// Stats returns the applied steps in order.
func (p *Pipeline) Stats() []StepStat { return p.stats }

// Apply runs g against the field and returns the pipeline for chaining.
func (p *Pipeline) Apply(g terrain.Generator) *Pipeline {
	if p.err != nil {
		return p
	}
	if g.ResetsField() && len(p.stats) > 0 {
		p.logf("step %d (%s) overwrites the whole field", len(p.stats)+1, g.Name())
	}

	start := time.Now()
	if err := g.Generate(p.field); err != nil {
		p.err = fmt.Errorf("step %d (%s): %w", len(p.stats)+1, g.Name(), err)
		return p
	}
	stat := StepStat{Name: g.Name(), Duration: time.Since(start)}
	p.stats = append(p.stats, stat)
	p.logf("applied %s in %s", stat.Name, stat.Duration.Round(time.Microsecond))
	return p
}

// Run builds and applies each step in order.
func (p *Pipeline) Run(steps []Step) *Pipeline {
	for _, s := range steps {
		if p.err != nil {
			break
		}
		g, err := s.Build()
		if err != nil {
			p.err = err
			break
		}
		p.Apply(g)
	}
	return p
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

// generatorPtr is satisfied by pointers to the concrete generator types.
type generatorPtr[T any] interface {
	*T
	terrain.Generator
}

// ApplyValues constructs a default T, sets its options by index from values in
// declaration order and applies it.
//
//	pipeline.ApplyValues[terrain.River](p, 2000, 20, 40, 2)
func ApplyValues[T any, G generatorPtr[T]](p *Pipeline, values ...int) *Pipeline {
	if p.err != nil {
		return p
	}
	g := G(new(T))
	g.Defaults()
	for i, v := range values {
		if err := g.SetOptionValue(i, v); err != nil {
			p.err = fmt.Errorf("%s: %w", g.Name(), err)
			return p
		}
	}
	return p.Apply(g)
}

// ApplyFunc constructs a default T, passes it to configure and applies it.
func ApplyFunc[T any, G generatorPtr[T]](p *Pipeline, configure func(G)) *Pipeline {
	if p.err != nil {
		return p
	}
	g := G(new(T))
	g.Defaults()
	if configure != nil {
		configure(g)
	}
	return p.Apply(g)
}
