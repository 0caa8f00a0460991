package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"heightmapper/internal/terrain"
)

// ErrBadStep reports a step description that cannot be parsed.
var ErrBadStep = errors.New("malformed step")

// Arg is one option assignment. An empty Key means positional.
type Arg struct {
	Key   string
	Value string
}

// Step names a registered generator and the option values to apply to it.
type Step struct {
	Name string
	Args []Arg
}

// ParseStep parses "name", "name:v1,v2" (positional, declaration order) or
// "name:key=value,key=value". Positional and keyed values may be mixed;
// positional values fill indices 0, 1, ... in the order they appear.
func ParseStep(s string) (Step, error) {
	name, rest, hasArgs := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Step{}, fmt.Errorf("%w: %q has no generator name", ErrBadStep, s)
	}
	step := Step{Name: name}
	if !hasArgs {
		return step, nil
	}
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Step{}, fmt.Errorf("%w: %q has an empty value", ErrBadStep, s)
		}
		key, value, keyed := strings.Cut(part, "=")
		if !keyed {
			step.Args = append(step.Args, Arg{Value: part})
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			return Step{}, fmt.Errorf("%w: %q in %q", ErrBadStep, part, s)
		}
		step.Args = append(step.Args, Arg{Key: key, Value: value})
	}
	return step, nil
}

// ParseSteps parses each description with ParseStep.
func ParseSteps(specs []string) ([]Step, error) {
	steps := make([]Step, 0, len(specs))
	for _, s := range specs {
		step, err := ParseStep(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Build constructs the named generator and applies the step's values.
func (s Step) Build() (terrain.Generator, error) {
	g, err := terrain.New(s.Name)
	if err != nil {
		return nil, err
	}
	pos := 0
	for _, a := range s.Args {
		if a.Key == "" {
			err = g.SetOptionValue(pos, a.Value)
			pos++
		} else {
			err = g.SetOption(a.Key, a.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return g, nil
}

// String formats the step in the form ParseStep accepts.
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		if a.Key == "" {
			parts[i] = a.Value
		} else {
			parts[i] = a.Key + "=" + a.Value
		}
	}
	return s.Name + ":" + strings.Join(parts, ",")
}
