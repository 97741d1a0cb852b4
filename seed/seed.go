// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seed implements the 128-bit seed from which reproducible
// xoroshiro128** streams are started.
//
// A Seed is an immutable value of four 32-bit words. Seeds can be built
// directly from words or bytes, drawn from another source of randomness,
// derived deterministically from an existing seed plus world coordinates,
// a step counter or a unique identifier, and converted to and from a
// compact text form:
//
//	s, err := seed.Parse("awawa")
//	...
//	fmt.Println(s) // 32 uppercase hex digits
//
// Seeds carry no mutable state. To draw numbers, hand a Seed to
// [github.com/citadel-station/smallrand/rand.New]; the seed and every
// generator made from it are fully independent afterwards.
//
// None of this is suitable for cryptographic use.
package seed

import (
	"encoding/binary"
)

// highBits is OR'ed into the first word of seeds drawn from another source
// so that the state is never all zero.
const highBits = 0x70000000

// A Seed is a 128-bit value from which a random stream can be started.
// The zero Seed is valid but produces a degenerate stream.
//
// Seeds are comparable; == reports word-for-word equality.
type Seed struct {
	s0, s1, s2, s3 uint32
}

// A Source is a stream of non-negative pseudo-random 31-bit integers.
// Both *rand.Generator and *rand.PCGSource in this module implement it.
type Source interface {
	// Int31 returns a value in [0, 1<<31 - 1).
	Int31() int32
}

// New returns the seed made of the given words, most significant first.
func New(s0, s1, s2, s3 uint32) Seed {
	return Seed{s0, s1, s2, s3}
}

// FromWords returns the seed made of the four words in w.
// It returns ErrInvalidLength unless len(w) == 4.
func FromWords(w []uint32) (Seed, error) {
	if len(w) != 4 {
		return Seed{}, ErrInvalidLength
	}
	return Seed{w[0], w[1], w[2], w[3]}, nil
}

// FromBytes returns the seed encoded in b, which must be 16 bytes long.
// Each group of four bytes holds one word in little-endian order,
// starting with the first word. It is the inverse of Seed.Bytes.
func FromBytes(b []byte) (Seed, error) {
	if len(b) != 16 {
		return Seed{}, ErrInvalidLength
	}
	return Seed{
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12]),
		binary.LittleEndian.Uint32(b[12:16]),
	}, nil
}

// FromSource draws a new seed from src.
//
// Exactly four values are taken from src and nothing else about it is
// touched; if src is itself a generator, the new seed does not clone it.
// The first word always has bits 28-30 set, so the result is never zero.
func FromSource(src Source) Seed {
	s0 := uint32(src.Int31())
	s1 := uint32(src.Int31())
	s2 := uint32(src.Int31())
	s3 := uint32(src.Int31())
	return Seed{s0 | highBits, s1, s2, s3}
}

// Words returns the seed's words, most significant first.
func (s Seed) Words() [4]uint32 {
	return [4]uint32{s.s0, s.s1, s.s2, s.s3}
}

// Bytes returns the little-endian byte form accepted by FromBytes.
func (s Seed) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:4], s.s0)
	binary.LittleEndian.PutUint32(b[4:8], s.s1)
	binary.LittleEndian.PutUint32(b[8:12], s.s2)
	binary.LittleEndian.PutUint32(b[12:16], s.s3)
	return b
}

// IsZero reports whether all four words are zero.
func (s Seed) IsZero() bool {
	return s == Seed{}
}

// DebugEqual reports whether s and other hold the same words.
// It exists for tests of random streams and is equivalent to s == other.
func (s Seed) DebugEqual(other Seed) bool {
	return s.s0 == other.s0 && s.s1 == other.s1 && s.s2 == other.s2 && s.s3 == other.s3
}
