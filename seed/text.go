// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// TextLen is the length of the canonical text form of a Seed.
const TextLen = 32

// maxStringLen is the number of bytes of a freeform seed string that
// contribute to the seed. Longer strings are truncated.
const maxStringLen = 64

var (
	// ErrEmpty is returned when parsing an empty string.
	ErrEmpty = errors.New("empty seed")

	// ErrInvalidLength is returned for hex text, byte or word input
	// of the wrong length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrSyntax is returned for hex text containing non-hex characters.
	ErrSyntax = errors.New("invalid syntax")
)

// A ParseError records a failed conversion of text to a Seed.
type ParseError struct {
	Func string // the failing function (ParseHex, ParseString)
	Text string // the input
	Err  error  // the reason the conversion failed (ErrEmpty, ErrInvalidLength, ErrSyntax)
}

func (e *ParseError) Error() string {
	return "seed." + e.Func + ": parsing " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// String returns the canonical text form of s: each word as eight
// uppercase hex digits, most significant word first.
func (s Seed) String() string {
	return fmt.Sprintf("%08X%08X%08X%08X", s.s0, s.s1, s.s2, s.s3)
}

// Parse converts the canonical text form back into a Seed.
//
// Text of exactly 32 hex digits is parsed by ParseHex; anything else is
// treated as a freeform string and hashed by ParseString. Parse is the
// inverse of Seed.String: Parse(s.String()) == s for every Seed.
func Parse(text string) (Seed, error) {
	if len(text) == TextLen && isHex(text) {
		return ParseHex(text)
	}
	return ParseString(text)
}

// ParseHex parses exactly 32 hex digits, in either case, into the four
// words of a seed. It does not accept a prefix or separators.
func ParseHex(text string) (Seed, error) {
	if len(text) != TextLen {
		return Seed{}, &ParseError{"ParseHex", text, ErrInvalidLength}
	}
	var w [4]uint32
	for i := range w {
		chunk := text[i*8 : i*8+8]
		if !isHex(chunk) {
			return Seed{}, &ParseError{"ParseHex", text, ErrSyntax}
		}
		v, err := strconv.ParseUint(chunk, 16, 32)
		if err != nil {
			return Seed{}, &ParseError{"ParseHex", text, ErrSyntax}
		}
		w[i] = uint32(v)
	}
	return Seed{w[0], w[1], w[2], w[3]}, nil
}

// ParseString derives a seed from an arbitrary non-empty string.
//
// The UTF-8 bytes of text are placed in a zeroed 64-byte buffer, which is
// hashed with unkeyed BLAKE2b to 16 bytes. Bytes beyond the 64th are
// silently dropped, so long strings sharing a 64-byte prefix produce the
// same seed; see Truncated. Seeds typed by users are not particularly
// random.
func ParseString(text string) (Seed, error) {
	if len(text) == 0 {
		return Seed{}, &ParseError{"ParseString", text, ErrEmpty}
	}

	var buf [maxStringLen]byte
	copy(buf[:], text)

	h, err := blake2b.New(16, nil)
	if err != nil {
		panic(err) // size and key are constant and valid
	}
	h.Write(buf[:])
	return FromBytes(h.Sum(nil))
}

// Truncated reports whether ParseString ignores part of text.
func Truncated(text string) bool {
	return len(text) > maxStringLen
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
