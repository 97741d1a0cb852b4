// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seedarg parses seeds from command arguments.
//
// A seed argument is one of, tried in order:
//
//	random                              a fresh seed drawn from the given source
//	0123456789ABCDEF0123456789ABCDEF    32 hex digits, the canonical text form
//	awawa  or  "a quoted string"        any other word or quoted string, hashed
//
// Quoted strings are always hashed, even when their contents look like the
// keyword or like hex digits.
package seedarg

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/citadel-station/smallrand/seed"
)

// Hint describes the accepted forms, for usage and completion messages.
const Hint = "`random`, a string seed, or 32-char hex seed."

// Random is the keyword that requests a fresh seed.
const Random = "random"

var (
	// ErrNoInput is returned when there is no argument to parse.
	ErrNoInput = errors.New("missing seed argument")

	// ErrUnterminated is returned for a quoted string without a closing quote.
	ErrUnterminated = errors.New("unterminated quoted string")

	// ErrNoSource is returned for the random keyword when no source was given.
	ErrNoSource = errors.New("no entropy source for " + Random)
)

// An Error records a seed argument that could not be parsed.
type Error struct {
	Token string // the argument as written, quotes included
	Err   error
}

func (e *Error) Error() string {
	return "seedarg: cannot parse " + strconv.Quote(e.Token) + " as " + Hint[:len(Hint)-1] + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Parse parses one seed argument from the front of input, skipping leading
// white space, and returns the seed and the unconsumed rest of input.
// src supplies entropy for the random keyword and may be nil otherwise.
func Parse(input string, src seed.Source) (seed.Seed, string, error) {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)
	if input == "" {
		return seed.Seed{}, "", &Error{Token: input, Err: ErrNoInput}
	}

	if input[0] == '"' {
		text, n, err := unquote(input)
		if err != nil {
			return seed.Seed{}, input, &Error{Token: input, Err: err}
		}
		s, err := seed.ParseString(text)
		if err != nil {
			return seed.Seed{}, input, &Error{Token: input[:n], Err: err}
		}
		return s, input[n:], nil
	}

	n := strings.IndexFunc(input, unicode.IsSpace)
	if n < 0 {
		n = len(input)
	}
	s, err := ParseWord(input[:n], src)
	if err != nil {
		return seed.Seed{}, input, err
	}
	return s, input[n:], nil
}

// ParseWord parses a complete, unquoted argument, such as one element of
// os.Args. Unlike Parse it does not stop at white space, so a shell-quoted
// phrase is hashed whole.
func ParseWord(word string, src seed.Source) (seed.Seed, error) {
	if word == Random {
		if src == nil {
			return seed.Seed{}, &Error{Token: word, Err: ErrNoSource}
		}
		return seed.FromSource(src), nil
	}
	if len(word) == seed.TextLen && isHex(word) {
		s, err := seed.ParseHex(word)
		if err != nil {
			return seed.Seed{}, &Error{Token: word, Err: err}
		}
		return s, nil
	}
	s, err := seed.ParseString(word)
	if err != nil {
		if word == "" {
			err = ErrNoInput
		}
		return seed.Seed{}, &Error{Token: word, Err: err}
	}
	return s, nil
}

// Suggest reports whether word looks like a mistyped random keyword.
// Such words are still valid string seeds, so callers may want to warn.
func Suggest(word string) (string, bool) {
	if word == Random {
		return "", false
	}
	if Nearest(strings.ToLower(word), []string{Random}) != "" {
		return Random, true
	}
	return "", false
}

// Nearest returns the candidate closest to word by edit distance, or ""
// when none is close enough to be a plausible typo.
func Nearest(word string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(word, c)
		if d > distanceLimit(utf8.RuneCountInString(c)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// unquote reads a double-quoted string at the start of s and returns its
// contents and the number of bytes consumed. Only \" and \\ are escapes;
// any other backslash is kept as is.
func unquote(s string) (string, int, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
				i++
				b.WriteByte(s[i])
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return "", len(s), ErrUnterminated
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
