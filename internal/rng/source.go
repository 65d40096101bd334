// Package rng provides a seeded random source that counts its draws, so a
// consumer can be forked into an identical copy by reseeding and replaying.
package rng

import "math/rand"

// Source is a deterministic random source. Not safe for concurrent use.
type Source struct {
	seed  int64
	draws int64
	r     *rand.Rand
}

// New returns a source seeded with seed.
func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Draws returns how many values have been drawn so far.
func (s *Source) Draws() int64 {
	return s.draws
}

// Intn returns a value in [0, n). Every call consumes exactly one value of the
// underlying generator, which is what makes Replay exact.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	s.draws++
	return int((uint64(s.r.Uint32()) * uint64(n)) >> 32)
}

// IntRange returns a value in [lo, hi).
func (s *Source) IntRange(lo, hi int) int {
	return lo + s.Intn(hi-lo)
}

// Fork returns an independent source in exactly the same position.
func (s *Source) Fork() *Source {
	return Replay(s.seed, s.draws)
}

// Replay rebuilds the source that results from seeding with seed and drawing
// draws values.
func Replay(seed, draws int64) *Source {
	f := New(seed)
	for f.draws < draws {
		f.r.Uint32()
		f.draws++
	}
	return f
}
