// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"

	"golang.org/x/xerrors"
)

// PCGSource is an implementation of a 64-bit permuted congruential
// generator as defined in
//
//	PCG: A Family of Simple Fast Space-Efficient Statistically Good
//	Algorithms for Random Number Generation
//	Melissa E. O'Neill, Harvey Mudd College
//	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
//
// The generator here is the congruential generator PCG RXS M XS 64
// as found in the software available at http://www.pcg-random.org/.
//
// PCGSource is the ambient entropy source: it is meant to be created once
// per process (see NewEntropySource) and passed explicitly to whatever
// needs fresh seeds, such as seed.FromSource or NewFromSource.
type PCGSource struct {
	state uint64
}

// NewPCGSource returns a PCGSource seeded with seed.
func NewPCGSource(seed uint64) *PCGSource {
	return &PCGSource{state: seed}
}

// NewEntropySource returns a PCGSource seeded from the operating system's
// random number generator.
func NewEntropySource() (*PCGSource, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, xerrors.Errorf("read entropy seed: %w", err)
	}
	return NewPCGSource(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed uses the provided seed value to initialize the generator to a deterministic state.
func (pcg *PCGSource) Seed(seed uint64) {
	pcg.state = seed
}

const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
	permuter   = 12605985483714917081
)

// Uint64 returns a pseudo-random 64-bit unsigned integer as a uint64.
func (pcg *PCGSource) Uint64() uint64 {
	oldstate := pcg.state
	pcg.state = pcg.state*multiplier + increment
	word := ((oldstate >> ((oldstate >> 59) + 5)) ^ oldstate) * permuter
	return (word >> 43) ^ word
}

// Int31 returns a value in [0, 1<<31 - 1) from the top bits of Uint64,
// so a *PCGSource is a seed.Source.
func (pcg *PCGSource) Int31() int32 {
	for {
		v := uint32(pcg.Uint64() >> 33)
		if v != math.MaxInt32 {
			return int32(v)
		}
	}
}
