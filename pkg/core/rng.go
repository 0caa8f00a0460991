package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// A heightfield owns exactly one RNG; it is not safe for concurrent use.
type RNG struct {
	seed int64
	src  *rand.PCG
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), 0)
	return &RNG{seed: seed, src: src, r: rand.New(src)}
}

// Clone returns an independent stream positioned at the same state.
func (r *RNG) Clone() *RNG {
	src := *r.src
	return &RNG{seed: r.seed, src: &src, r: rand.New(&src)}
}

// Seed reports the seed the stream was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Next returns a non-negative pseudo-random int in [0, 2^31).
func (r *RNG) Next() int {
	return int(r.r.Uint32() >> 1)
}

// NextBytes fills buf with pseudo-random bytes. Bytes are taken from successive
// 64-bit draws in little-endian order; leftover bytes of the last draw are discarded.
func (r *RNG) NextBytes(buf []byte) {
	var word [8]byte
	for i := 0; i < len(buf); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.r.Uint64())
		copy(buf[i:], word[:])
	}
}

// Byte returns a single random byte.
func (r *RNG) Byte() byte {
	return byte(r.r.Uint32())
}

// Int64 returns a pseudo-random int64, used to derive seeds for noise sources.
func (r *RNG) Int64() int64 {
	return int64(r.r.Uint64())
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
