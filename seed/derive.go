// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

import (
	"math/bits"

	"github.com/google/uuid"

	"github.com/citadel-station/smallrand/internal/assert"
)

const (
	// scramble is an odd 64-bit multiplier used to spread derivation inputs.
	scramble = 3141592653589793238

	// offset keeps small coordinates and steps away from zero.
	offset = 314159
)

// The derivations below are not statistically sound; they are only meant to
// give procedural generation distinct, reproducible streams. All arithmetic
// wraps. Changing any of it changes every derived stream.

// ForCoordinate returns a new seed derived from s for the world
// coordinates (x, y) and two arbitrary level numbers, such as a planet
// number and a star system number.
//
// Coordinates are taken exactly as given; round them before calling.
func (s Seed) ForCoordinate(x, y, level1, level2 int32) Seed {
	xy := joinCoordinates(x, y)
	level := (uint64(int64(level1))-offset)<<32 | uint64(uint32(level2+offset))

	xy *= scramble
	level *= scramble
	xy ^= bits.RotateLeft64(level, 17)
	level ^= bits.RotateLeft64(xy, 17)

	return Seed{
		s.s0 + uint32(xy),
		s.s1 + uint32(xy>>32),
		s.s2 + uint32(level),
		s.s3 + uint32(level>>32),
	}
}

// ForCoordinateAndUnique returns a seed for the world coordinates (x, y)
// and the unique identifier id, typically an object's UUID.
//
// The result depends only on the coordinates and id; the words of s do not
// contribute. id must not be uuid.Nil.
func (s Seed) ForCoordinateAndUnique(x, y int32, id uuid.UUID) Seed {
	assert.That(id != uuid.Nil, "nil UUID has poor statistical properties and must not be used to derive seeds")

	xy := joinCoordinates(x, y) * scramble

	s0, s1, s2, s3 := uniqueWords(id)
	s0 |= highBits

	// One state transition of xoroshiro128**, without output.
	t := s1 << 9
	s2 ^= s0
	s3 ^= s1
	s1 ^= s2
	s0 ^= s3
	s2 ^= t
	s3 = bits.RotateLeft32(s3, 11)

	lo, hi := uint32(xy), uint32(xy>>32)
	return Seed{s0 + lo, s1 + hi, s2 + lo, s3 + hi}
}

// ForStep returns a new seed derived from s for the given step, an
// arbitrary integer such as a generation or iteration count.
//
// Unlike ForCoordinate, the same mixed 64-bit value is added to both
// halves of the seed.
func (s Seed) ForStep(step int32) Seed {
	step += offset
	j := uint64(uint32(step))<<32 | uint64(uint32(step))

	j *= scramble
	j ^= bits.RotateLeft64(j, 17)

	lo, hi := uint32(j), uint32(j>>32)
	return Seed{s.s0 + lo, s.s1 + hi, s.s2 + lo, s.s3 + hi}
}

func joinCoordinates(x, y int32) uint64 {
	return (uint64(int64(x))+offset)<<32 | uint64(uint32(y-offset))
}

// uniqueWords reads id as four little-endian words of its GUID byte form,
// in which the first three fields are stored little-endian.
func uniqueWords(id uuid.UUID) (s0, s1, s2, s3 uint32) {
	s0 = uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3])
	s1 = uint32(id[5]) | uint32(id[4])<<8 | uint32(id[7])<<16 | uint32(id[6])<<24
	s2 = uint32(id[8]) | uint32(id[9])<<8 | uint32(id[10])<<16 | uint32(id[11])<<24
	s3 = uint32(id[12]) | uint32(id[13])<<8 | uint32(id[14])<<16 | uint32(id[15])<<24
	return s0, s1, s2, s3
}
