package app

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"heightmapper/internal/heightfield"
	"heightmapper/internal/pipeline"
	"heightmapper/internal/terrain"
)

// DefaultSteps shapes a field when no -step flag is given.
var DefaultSteps = []string{
	"plain:height=12000,slope=2",
	"noise:coverage=60,change=1600",
	"cliff:height=30000,percent=15",
	"middle-river:depth=2400,width=14",
	"average:distance=2",
}

// StepList collects repeatable step flags.
type StepList []string

func (l *StepList) String() string {
	return strings.Join(*l, " ")
}

func (l *StepList) Set(value string) error {
	if _, err := pipeline.ParseStep(value); err != nil {
		return err
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Steps   StepList
	Palette string
	Scale   int
	// Cycle regenerates with a fresh seed at this interval in the viewer;
	// zero disables it.
	Cycle   time.Duration
	Verbose bool

	field map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Palette: "terrain", Scale: 1, field: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(&c.Steps, "step", "generator step name[:value,...|:key=value,...] (repeatable, applied in order)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "preview palette")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Cycle, "cycle", c.Cycle, "regenerate with a new seed at this interval (viewer only)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every applied step")
	for _, key := range []string{"w", "h", "seed"} {
		fs.Func(key, fieldUsage[key], func(v string) error {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				return fmt.Errorf("-%s: %w", key, err)
			}
			c.field[key] = v
			return nil
		})
	}
}

var fieldUsage = map[string]string{
	"w":    "raw field width",
	"h":    "raw field height",
	"seed": "random seed (omit to derive one from the clock)",
}

// SetField stores a field setting as if it had been passed on the command line.
func (c *Config) SetField(key, value string) { c.field[key] = value }

// FieldConfig resolves the field dimensions and seed.
func (c *Config) FieldConfig() heightfield.Config {
	return heightfield.FromMap(c.field)
}

// StepDescriptions returns the configured steps, or DefaultSteps.
func (c *Config) StepDescriptions() []string {
	if len(c.Steps) == 0 {
		return DefaultSteps
	}
	return c.Steps
}

// Generators builds one configured generator per step.
func (c *Config) Generators() ([]terrain.Generator, error) {
	steps, err := pipeline.ParseSteps(c.StepDescriptions())
	if err != nil {
		return nil, err
	}
	gens := make([]terrain.Generator, 0, len(steps))
	for _, s := range steps {
		g, err := s.Build()
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return gens, nil
}

// Generate creates a field from cfg and applies gens to it in order.
func Generate(cfg heightfield.Config, gens []terrain.Generator, logger *log.Logger) (*pipeline.Pipeline, error) {
	f, err := heightfield.New(cfg)
	if err != nil {
		return nil, err
	}
	var opts []pipeline.Option
	if logger != nil {
		opts = append(opts, pipeline.WithLogger(logger))
	}
	p := pipeline.New(f, opts...)
	for _, g := range gens {
		p.Apply(g)
	}
	return p, p.Err()
}
