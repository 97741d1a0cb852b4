// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"encoding/binary"
	"math"
	"math/bits"
	"time"

	"github.com/citadel-station/smallrand/internal/assert"
)

// Bounded draws use Lemire's multiply-and-reject method:
//
//	Lemire, D. Fast Random Integer Generation in an Interval.
//	https://arxiv.org/abs/1805.10941

// Uint32n returns a uniform value in [0, n). It returns 0 when n is 0.
func (g *Generator) Uint32n(n uint32) uint32 {
	product := uint64(n) * uint64(g.Uint32())
	low := uint32(product)
	if low < n {
		threshold := -n % n
		for low < threshold {
			product = uint64(n) * uint64(g.Uint32())
			low = uint32(product)
		}
	}
	return uint32(product >> 32)
}

// Uint64n returns a uniform value in [0, n). It returns 0 when n is 0.
func (g *Generator) Uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(n, g.Uint64())
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(n, g.Uint64())
		}
	}
	return hi
}

// Int63 returns a non-negative value in [0, 1<<63 - 1).
func (g *Generator) Int63() int64 {
	for {
		// Top 63 bits give [0, MaxInt64]; the maximum itself is redrawn
		// to keep the range half-open.
		v := g.Uint64() >> 1
		if v != math.MaxInt64 {
			return int64(v)
		}
	}
}

// Int63n returns a value in [0, n). n must not be negative.
func (g *Generator) Int63n(n int64) int64 {
	return g.Int63Range(0, n)
}

// Int63Range returns a value in [min, max). min must not exceed max;
// when they are equal the result is min.
func (g *Generator) Int63Range(min, max int64) int64 {
	assert.Thatf(min <= max, "Int63Range(%d, %d): reversed range", min, max)

	r := uint64(max - min)
	if r <= math.MaxInt32 {
		return int64(g.Int31n(int32(r))) + min
	}

	// Draw from the smallest power-of-two range covering r and retry
	// until the value falls inside.
	n := bits.Len64(r - 1)
	for {
		v := g.Uint64() >> (64 - n)
		if v < r {
			return int64(v) + min
		}
	}
}

// Int31 returns a non-negative value in [0, 1<<31 - 1).
// It makes a *Generator a seed.Source.
func (g *Generator) Int31() int32 {
	for {
		v := g.Uint32() >> 1
		if v != math.MaxInt32 {
			return int32(v)
		}
	}
}

// Int31n returns a value in [0, n). n must not be negative;
// Int31n(0) returns 0.
func (g *Generator) Int31n(n int32) int32 {
	assert.Thatf(n >= 0, "Int31n(%d): negative bound", n)
	return int32(g.Uint32n(uint32(n)))
}

// Int31Range returns a value in [min, max). min must not exceed max.
func (g *Generator) Int31Range(min, max int32) int32 {
	assert.Thatf(min <= max, "Int31Range(%d, %d): reversed range", min, max)
	return int32(g.Uint32n(uint32(max-min))) + min
}

// Float32 returns a value in [0, 1) with 24 bits of precision.
func (g *Generator) Float32() float32 {
	return float32(g.Uint32()>>8) * (1.0 / (1 << 24))
}

// Float64 returns a value in [0, 1) with 53 bits of precision.
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * (1.0 / (1 << 53))
}

// Duration returns a duration linearly interpolated between min and max
// by Float64.
func (g *Generator) Duration(min, max time.Duration) time.Duration {
	return min + time.Duration(float64(max-min)*g.Float64())
}

// DurationN returns a duration in [0, max).
func (g *Generator) DurationN(max time.Duration) time.Duration {
	return g.Duration(0, max)
}

// Read fills p with pseudo-random bytes and always returns len(p), nil.
//
// Each full 8-byte chunk takes one Uint64, stored little-endian. One more
// Uint64 is always drawn, even when len(p) is a multiple of 8, and its
// low bytes fill whatever remains.
func (g *Generator) Read(p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, g.Uint64())
		p = p[8:]
	}
	last := g.Uint64()
	for i := range p {
		p[i] = byte(last)
		last >>= 8
	}
	return n, nil
}

// Shuffle pseudo-randomizes the order of n elements using Fisher-Yates.
// swap exchanges the elements with indexes i and j.
// Shuffle panics if n < 0.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := int(g.Int31n(int32(i + 1)))
		swap(i, j)
	}
}

// Shuffle pseudo-randomizes the order of the elements of s in place.
// It draws the same values as g.Shuffle(len(s), ...).
func Shuffle[S ~[]E, E any](g *Generator, s S) {
	g.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
