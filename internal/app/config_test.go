package app

import (
	"flag"
	"io"
	"testing"

	"heightmapper/internal/pipeline"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return cfg
}

func TestBindCollectsStepsAndField(t *testing.T) {
	cfg := parse(t, "-w", "64", "-h", "48", "-seed", "9", "-step", "flat:100", "-step", "noise")
	fc := cfg.FieldConfig()
	if fc.Width != 64 || fc.Height != 48 || fc.Seed != 9 {
		t.Fatalf("field config = %+v", fc)
	}
	if got := cfg.StepDescriptions(); len(got) != 2 || got[0] != "flat:100" {
		t.Fatalf("steps = %v", got)
	}
}

func TestSeedFlag(t *testing.T) {
	if fc := parse(t).FieldConfig(); !fc.RandomSeed {
		t.Fatalf("no -seed should derive the seed from the clock: %+v", fc)
	}
	if fc := parse(t, "-seed", "0").FieldConfig(); fc.RandomSeed || fc.Seed != 0 {
		t.Fatalf("-seed 0 should be an explicit seed: %+v", fc)
	}
}

func TestBindRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{{"-w", "wide"}, {"-step", "river:depth="}} {
		cfg := NewConfig()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cfg.Bind(fs)
		if err := fs.Parse(args); err == nil {
			t.Fatalf("Parse(%v) succeeded", args)
		}
	}
}

func TestDefaultStepsGenerate(t *testing.T) {
	cfg := parse(t, "-w", "96", "-h", "96", "-seed", "3")
	gens, err := cfg.Generators()
	if err != nil {
		t.Fatalf("Generators: %v", err)
	}
	if len(gens) != len(DefaultSteps) {
		t.Fatalf("got %d generators, want %d", len(gens), len(DefaultSteps))
	}
	a, err := Generate(cfg.FieldConfig(), gens, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := Generate(cfg.FieldConfig(), gens, nil)
	if pipeline.Summarize(a.Field()) != pipeline.Summarize(b.Field()) {
		t.Fatalf("regenerating with the same seed changed the field")
	}
	if s := pipeline.Summarize(a.Field()); s.Min == s.Max {
		t.Fatalf("default steps produced a flat field")
	}
}

func TestGenerateRejectsSmallField(t *testing.T) {
	cfg := NewConfig()
	cfg.SetField("w", "4")
	if _, err := Generate(cfg.FieldConfig(), nil, nil); err == nil {
		t.Fatalf("expected error for a 4-wide field")
	}
}
