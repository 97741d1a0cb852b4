// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand implements a small, fast, deterministic pseudo-random
// number generator for procedural generation.
//
// A Generator runs xoroshiro128** over 128 bits of state:
//
//	Blackman, D., Vigna, S. Scrambled Linear Pseudorandom Number Generators
//	https://prng.di.unimi.it/
//
// Generators are started from a [seed.Seed]. Two generators started from
// equal seeds and driven by the same sequence of calls produce the same
// values and end in the same state, on every platform. To get independent
// streams, derive distinct seeds (see [seed.Seed.ForCoordinate] and
// friends) rather than sharing one Generator.
//
// A Generator is not safe for concurrent use, and its output is not
// suitable for security-sensitive work.
package rand

import (
	"fmt"
	"math/bits"

	"github.com/citadel-station/smallrand/seed"
)

// highBits is OR'ed into the first word of state drawn from another
// source so that the state is never all zero.
const highBits = 0x70000000

// A Generator is a source of pseudo-random values.
// Its zero value is a degenerate generator that only returns zero.
type Generator struct {
	s0, s1, s2, s3 uint32
}

// New returns a Generator starting at s. The Generator copies the words of
// s; neither affects the other afterwards.
func New(s seed.Seed) *Generator {
	w := s.Words()
	return &Generator{w[0], w[1], w[2], w[3]}
}

// NewWords returns a Generator starting at the given 128-bit state.
func NewWords(s0, s1, s2, s3 uint32) *Generator {
	return &Generator{s0, s1, s2, s3}
}

// NewFromSource returns a Generator whose state is drawn from src,
// such as a long-lived ambient source or another Generator.
//
// Exactly four values are taken from src. The result is not a clone: if
// src is a Generator, the two produce unrelated sequences afterwards.
func NewFromSource(src seed.Source) *Generator {
	s0 := uint32(src.Int31())
	s1 := uint32(src.Int31())
	s2 := uint32(src.Int31())
	s3 := uint32(src.Int31())
	return &Generator{s0 | highBits, s1, s2, s3}
}

// Uint32 returns a pseudo-random 32-bit value and advances the state.
// Every other method is built on it.
func (g *Generator) Uint32() uint32 {
	s0, s1, s2, s3 := g.s0, g.s1, g.s2, g.s3

	result := bits.RotateLeft32(s1*5, 7) * 9
	t := s1 << 9

	s2 ^= s0
	s3 ^= s1
	s1 ^= s2
	s0 ^= s3

	s2 ^= t
	s3 = bits.RotateLeft32(s3, 11)

	g.s0, g.s1, g.s2, g.s3 = s0, s1, s2, s3
	return result
}

// Uint64 returns a pseudo-random 64-bit value built from two calls to
// Uint32, the first supplying the high half.
//
// With Uint64, a *Generator satisfies math/rand/v2.Source.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

// Seed returns the current state as a Seed. Starting a new Generator from
// it continues this Generator's sequence independently.
func (g *Generator) Seed() seed.Seed {
	return seed.New(g.s0, g.s1, g.s2, g.s3)
}

// String returns the current state in the text form of seed.Seed.
func (g *Generator) String() string {
	return fmt.Sprintf("%08X%08X%08X%08X", g.s0, g.s1, g.s2, g.s3)
}

// DebugEqual reports whether g and other are in the same state.
// It is meant for tests of random streams only.
func (g *Generator) DebugEqual(other *Generator) bool {
	return g.s0 == other.s0 && g.s1 == other.s1 && g.s2 == other.s2 && g.s3 == other.s3
}
