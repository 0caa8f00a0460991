package heightfield

import (
	"strconv"
	"time"
)

// MinSize is the smallest accepted raw width or height.
const MinSize = 16

// Config controls the raw dimensions and random seed of a Field.
type Config struct {
	Width  int
	Height int

	// Seed for the field's random stream. Every value, zero included, is used
	// as given unless RandomSeed is set.
	Seed int64
	// RandomSeed ignores Seed and derives one from the clock; the effective
	// seed is available from Field.Seed.
	RandomSeed bool
}

// DefaultConfig returns the standard configuration, seeded from the clock.
func DefaultConfig() Config {
	return Config{Width: 1081, Height: 1081, RandomSeed: true}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
			c.RandomSeed = false
		}
	}
	return c
}

func (c Config) effectiveSeed() int64 {
	if !c.RandomSeed {
		return c.Seed
	}
	return time.Now().UnixNano()
}
