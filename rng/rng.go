// Package rng provides deterministic, splittable random streams for
// Markov chain samplers. A stream is identified by a 64-bit key;
// splitting derives child keys without consuming any draws, so
// independent chains can never share a stream by accident.
package rng

import (
	"math/rand"
)

// Source is a deterministic random stream which can be split into
// independent substreams.
type Source interface {
	// Split derives two independent substreams. The parent stream
	// stays valid; repeated splits yield distinct children.
	Split() (Source, Source)
	// Uniform returns a draw from the open interval (0, 1).
	Uniform() float64
	// Norm returns a standard normal draw.
	Norm() float64
}

// Stream is the default Source implementation backed by math/rand.
type Stream struct {
	key    uint64
	splits uint64
	src    *rand.Rand
}

// New creates a stream from a seed.
func New(seed int64) *Stream {
	return &Stream{key: splitmix(uint64(seed))}
}

// splitmix is the splitmix64 output function, used to derive
// well-distributed child keys from sequential inputs.
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Split derives two independent substreams from the stream key. The
// draw state of the parent is not consumed.
func (s *Stream) Split() (Source, Source) {
	s.splits++
	h := s.key + s.splits
	return &Stream{key: splitmix(h)}, &Stream{key: splitmix(^h)}
}

func (s *Stream) rand() *rand.Rand {
	if s.src == nil {
		s.src = rand.New(rand.NewSource(int64(s.key)))
	}
	return s.src
}

// Uniform returns a draw in (0, 1). Zero draws from the underlying
// generator are discarded so that log(u) is always finite.
func (s *Stream) Uniform() float64 {
	r := s.rand()
	for {
		u := r.Float64()
		if u > 0 {
			return u
		}
	}
}

// Norm returns a standard normal draw.
func (s *Stream) Norm() float64 {
	return s.rand().NormFloat64()
}
