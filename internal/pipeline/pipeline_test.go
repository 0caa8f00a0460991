package pipeline

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"heightmapper/internal/core"
	"heightmapper/internal/heightfield"
	"heightmapper/internal/terrain"
)

func newField(t *testing.T, seed int64) *heightfield.Field {
	t.Helper()
	f, err := heightfield.New(heightfield.Config{Width: 96, Height: 96, Seed: seed})
	if err != nil {
		t.Fatalf("heightfield.New: %v", err)
	}
	return f
}

func shape(p *Pipeline) *Pipeline {
	ApplyValues[terrain.Plain](p, 20000, 3)
	ApplyValues[terrain.Noise](p, 80, 800)
	ApplyFunc(p, func(r *terrain.River) { r.SetOption("depth", 3000) })
	ApplyValues[terrain.Average](p, 2)
	return p
}

func TestSameSeedIsBitIdentical(t *testing.T) {
	a := shape(New(newField(t, 42)))
	b := shape(New(newField(t, 42)))
	if a.Err() != nil || b.Err() != nil {
		t.Fatalf("pipeline errors: %v, %v", a.Err(), b.Err())
	}
	if Summarize(a.Field()).Checksum != Summarize(b.Field()).Checksum {
		t.Fatalf("equal seeds produced different fields")
	}
	c := shape(New(newField(t, 43)))
	if Summarize(a.Field()).Checksum == Summarize(c.Field()).Checksum {
		t.Fatalf("different seeds produced identical fields")
	}
}

func TestApplyValuesSetsByIndex(t *testing.T) {
	p := ApplyValues[terrain.Flat](New(newField(t, 1)), 1234)
	if p.Err() != nil {
		t.Fatalf("unexpected error: %v", p.Err())
	}
	s := Summarize(p.Field())
	if s.Min != 1234 || s.Max != 1234 {
		t.Fatalf("flat range = [%d,%d], want 1234", s.Min, s.Max)
	}
	if got := p.Stats(); len(got) != 1 || got[0].Name != "flat" {
		t.Fatalf("stats = %+v", got)
	}
}

func TestApplyValuesClampsAndRejectsExtraValues(t *testing.T) {
	p := ApplyValues[terrain.Flat](New(newField(t, 1)), 1<<20)
	if s := Summarize(p.Field()); s.Max != 65535 {
		t.Fatalf("height not clamped: %d", s.Max)
	}
	p = ApplyValues[terrain.Flat](p, 10, 20)
	if !errors.Is(p.Err(), core.ErrOptionIndex) {
		t.Fatalf("expected ErrOptionIndex, got %v", p.Err())
	}
}

func TestApplyFuncConfigures(t *testing.T) {
	p := ApplyFunc(New(newField(t, 1)), func(g *terrain.Plain) {
		g.SetAverageHeight(5000)
	})
	s := Summarize(p.Field())
	if s.Min != 5000 || s.Max != 5000 {
		t.Fatalf("plain range = [%d,%d], want 5000", s.Min, s.Max)
	}
}

func TestErrorIsSticky(t *testing.T) {
	p := New(newField(t, 1))
	ApplyValues[terrain.Flat](p, 100)
	ApplyValues[terrain.Cliff](p, 0, 5, 7)
	if p.Err() == nil {
		t.Fatalf("expected error for surplus values")
	}
	first := p.Err()
	ApplyValues[terrain.Flat](p, 9000)
	p.Apply(terrain.NewFlat())
	if p.Err() != first {
		t.Fatalf("error changed after later steps: %v", p.Err())
	}
	if len(p.Stats()) != 1 {
		t.Fatalf("steps after the failure ran: %+v", p.Stats())
	}
	if v := p.Field().At(0, 0); v != 100 {
		t.Fatalf("field modified after failure: %d", v)
	}
}

func TestApplyLogsStepsAndResets(t *testing.T) {
	var buf bytes.Buffer
	p := New(newField(t, 1), WithLogger(log.New(&buf, "", 0)))
	p.Apply(terrain.NewNoise()).Apply(terrain.NewFlat())
	out := buf.String()
	if !strings.Contains(out, "applied noise") || !strings.Contains(out, "applied flat") {
		t.Fatalf("missing step lines:\n%s", out)
	}
	if !strings.Contains(out, "step 2 (flat) overwrites the whole field") {
		t.Fatalf("missing reset warning:\n%s", out)
	}
}

func TestRunParsedSteps(t *testing.T) {
	steps, err := ParseSteps([]string{"flat:3000", "cliff:height=9000,percent=20"})
	if err != nil {
		t.Fatalf("ParseSteps: %v", err)
	}
	p := New(newField(t, 5)).Run(steps)
	if p.Err() != nil {
		t.Fatalf("Run: %v", p.Err())
	}
	if len(p.Stats()) != 2 {
		t.Fatalf("stats = %+v", p.Stats())
	}
	if s := Summarize(p.Field()); s.Min != 3000 || s.Max <= 3000 {
		t.Fatalf("unexpected range [%d,%d]", s.Min, s.Max)
	}

	p = New(newField(t, 5)).Run([]Step{{Name: "volcano"}})
	if !errors.Is(p.Err(), terrain.ErrUnknownGenerator) {
		t.Fatalf("expected ErrUnknownGenerator, got %v", p.Err())
	}
}
