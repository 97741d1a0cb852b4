// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

import (
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Seed{}
	_ yaml.Unmarshaler = (*Seed)(nil)
)

// Validate reports whether node holds a serialized seed, that is, a scalar
// accepted by Parse. The error names the offending text and its line.
func Validate(node *yaml.Node) error {
	_, err := read(node)
	return err
}

func read(node *yaml.Node) (Seed, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return Seed{}, xerrors.Errorf("line %d: invalid serialized seed: expected a scalar, got %s", node.Line, kindString(node.Kind))
	}
	s, err := Parse(node.Value)
	if err != nil {
		return Seed{}, xerrors.Errorf("line %d: invalid serialized seed: failed to parse %q: %w", node.Line, node.Value, err)
	}
	return s, nil
}

// MarshalYAML implements yaml.Marshaler. It emits the canonical text form.
func (s Seed) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts any scalar Parse
// accepts, so hand-written YAML may use a freeform string seed.
func (s *Seed) UnmarshalYAML(node *yaml.Node) error {
	v, err := read(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (s *Seed) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func kindString(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		return "scalar"
	}
	return "node"
}
