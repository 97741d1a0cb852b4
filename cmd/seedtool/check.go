// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/citadel-station/smallrand/seed"
)

func (t *tool) check(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	bad := 0
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return xerrors.Errorf("%s: %w", file, err)
		}
		n := 0
		walkSeeds(&doc, func(key string, value *yaml.Node) {
			n++
			if err := seed.Validate(value); err != nil {
				bad++
				fmt.Fprintf(t.stdout, "%s: %s: %v\n", file, key, err)
			}
		})
		t.log.Info("checked", "file", file, "seeds", n)
	}
	if bad > 0 {
		return xerrors.Errorf("%d invalid seed(s)", bad)
	}
	return nil
}

// isSeedKey reports whether a mapping key conventionally holds a seed.
func isSeedKey(key string) bool {
	key = strings.ToLower(key)
	return key == "seed" || key == "rng" || strings.HasSuffix(key, "_seed") || strings.HasSuffix(key, "_rng")
}

// walkSeeds calls f for every value under a seed key in the tree at n.
func walkSeeds(n *yaml.Node, f func(key string, value *yaml.Node)) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			walkSeeds(c, f)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if isSeedKey(k.Value) {
				f(k.Value, v)
				continue
			}
			walkSeeds(v, f)
		}
	}
}
