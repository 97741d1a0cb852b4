// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/citadel-station/smallrand/rand"
	"github.com/citadel-station/smallrand/seed"
	"github.com/citadel-station/smallrand/seedarg"
)

func (t *tool) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(t.stderr)
	return fs
}

// parseFlags wraps flag errors so run prints the usage line.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return xerrors.Errorf("%v: %w", err, errUsage)
	}
	return nil
}

// seedArg parses a seed argument and logs anything suspicious about it.
func (t *tool) seedArg(arg string) (seed.Seed, error) {
	s, err := seedarg.ParseWord(arg, t.src)
	if err != nil {
		return seed.Seed{}, err
	}
	if kw, ok := seedarg.Suggest(arg); ok {
		t.log.Warn("using string seed; did you mean the keyword?", "arg", arg, "keyword", kw)
	}
	if seed.Truncated(arg) {
		t.log.Warn("string seed longer than 64 bytes is truncated", "arg", arg)
	}
	return s, nil
}

func (t *tool) parse(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, arg := range args {
		s, err := t.seedArg(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(t.stdout, s)
	}
	return nil
}

func (t *tool) derive(args []string) error {
	fs := t.flags("derive")
	var (
		seedFlag = fs.String("seed", "", "base seed: random, a string or 32 hex digits")
		x        = fs.Int64("x", 0, "world `x` coordinate")
		y        = fs.Int64("y", 0, "world `y` coordinate")
		level1   = fs.Int64("l1", 0, "first level number, such as a planet")
		level2   = fs.Int64("l2", 0, "second level number, such as a star system")
		step     = fs.Int64("step", 0, "derive for a step instead of coordinates")
		id       = fs.String("uuid", "", "derive for coordinates and a unique identifier")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *seedFlag == "" || fs.NArg() != 0 {
		return errUsage
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["step"] && (set["uuid"] || set["x"] || set["y"] || set["l1"] || set["l2"]) {
		return xerrors.New("-step cannot be combined with coordinates or -uuid")
	}
	if set["uuid"] && (set["l1"] || set["l2"]) {
		return xerrors.New("-uuid cannot be combined with -l1 or -l2")
	}

	base, err := t.seedArg(*seedFlag)
	if err != nil {
		return err
	}
	var v [5]int32
	for i, f := range []struct {
		name string
		val  int64
	}{{"x", *x}, {"y", *y}, {"l1", *level1}, {"l2", *level2}, {"step", *step}} {
		if f.val < math.MinInt32 || f.val > math.MaxInt32 {
			return xerrors.Errorf("-%s %d does not fit in 32 bits", f.name, f.val)
		}
		v[i] = int32(f.val)
	}

	var out seed.Seed
	switch {
	case set["step"]:
		out = base.ForStep(v[4])
	case set["uuid"]:
		u, err := uuid.Parse(*id)
		if err != nil {
			return xerrors.Errorf("-uuid: %w", err)
		}
		if u == uuid.Nil {
			return xerrors.New("-uuid: the nil UUID cannot be used to derive seeds")
		}
		out = base.ForCoordinateAndUnique(v[0], v[1], u)
	default:
		out = base.ForCoordinate(v[0], v[1], v[2], v[3])
	}
	t.log.Debug("derived", "base", base.String(), "seed", out.String())
	fmt.Fprintln(t.stdout, out)
	return nil
}

// drawKinds maps -kind values of draw to the value they print.
var drawKinds = map[string]func(g *rand.Generator) string{
	"u32": func(g *rand.Generator) string { return fmt.Sprint(g.Uint32()) },
	"u64": func(g *rand.Generator) string { return fmt.Sprint(g.Uint64()) },
	"i31": func(g *rand.Generator) string { return fmt.Sprint(g.Int31()) },
	"i63": func(g *rand.Generator) string { return fmt.Sprint(g.Int63()) },
	"f32": func(g *rand.Generator) string { return fmt.Sprint(g.Float32()) },
	"f64": func(g *rand.Generator) string { return fmt.Sprint(g.Float64()) },
}

func (t *tool) draw(args []string) error {
	fs := t.flags("draw")
	var (
		seedFlag = fs.String("seed", "", "seed to start from: random, a string or 32 hex digits")
		n        = fs.Int("n", 10, "number of values, or of bytes with -kind bytes")
		kind     = fs.String("kind", "i31", "value kind: u32, u64, i31, i63, f32, f64 or bytes")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *seedFlag == "" || fs.NArg() != 0 {
		return errUsage
	}
	if *n < 0 {
		return xerrors.Errorf("-n %d is negative", *n)
	}
	next, ok := drawKinds[*kind]
	if !ok && *kind != "bytes" {
		return xerrors.Errorf("unknown -kind %q", *kind)
	}

	s, err := t.seedArg(*seedFlag)
	if err != nil {
		return err
	}
	g := rand.New(s)
	if *kind == "bytes" {
		buf := make([]byte, *n)
		g.Read(buf)
		fmt.Fprintln(t.stdout, hex.EncodeToString(buf))
	} else {
		for i := 0; i < *n; i++ {
			fmt.Fprintln(t.stdout, next(g))
		}
	}
	t.log.Debug("final state", "seed", s.String(), "state", g.String())
	return nil
}
