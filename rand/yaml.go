// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/citadel-station/smallrand/seed"
)

var (
	_ yaml.Marshaler   = (*Generator)(nil)
	_ yaml.Unmarshaler = (*Generator)(nil)
)

// A Generator is stored in the same text form as a seed.Seed: writing
// captures its current state, and reading starts a fresh Generator at that
// state, so a round trip resumes the same sequence.

// MarshalYAML implements yaml.Marshaler.
func (g *Generator) MarshalYAML() (any, error) {
	return g.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Any scalar accepted by
// seed.Parse is allowed.
func (g *Generator) UnmarshalYAML(node *yaml.Node) error {
	if err := seed.Validate(node); err != nil {
		return xerrors.Errorf("generator: %w", err)
	}
	var s seed.Seed
	if err := node.Decode(&s); err != nil {
		return err
	}
	*g = *New(s)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (g *Generator) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using seed.Parse.
func (g *Generator) UnmarshalText(text []byte) error {
	s, err := seed.Parse(string(text))
	if err != nil {
		return err
	}
	*g = *New(s)
	return nil
}
