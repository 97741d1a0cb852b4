// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Seedtool inspects and exercises 128-bit random seeds from the command line.
//
// Usage:
//
//	seedtool parse ARG...
//	seedtool derive -seed S [-x X -y Y] [-l1 N -l2 N | -step N | -uuid U]
//	seedtool draw -seed S [-n N] [-kind KIND]
//	seedtool check FILE...
//
// Seed arguments accept `random`, a string seed, or a 32-char hex seed.
// Parse prints the canonical form of each argument. Derive prints a seed
// derived for world coordinates, a step or a unique identifier. Draw prints
// values from a generator started at the seed. Check validates the seeds
// stored in YAML files under keys named seed, rng, *_seed or *_rng.
//
// The environment variables SEEDTOOL_LOG_LEVEL (debug, info, warn, error)
// and SEEDTOOL_LOG_FORMAT (text, json) control diagnostics on stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"

	"github.com/citadel-station/smallrand/rand"
	"github.com/citadel-station/smallrand/seed"
	"github.com/citadel-station/smallrand/seedarg"
)

type config struct {
	LogLevel  slog.Level `env:"SEEDTOOL_LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"SEEDTOOL_LOG_FORMAT" envDefault:"text"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, xerrors.Errorf("parse env: %w", err)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return config{}, xerrors.Errorf("SEEDTOOL_LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// A tool holds what every subcommand needs. Entropy for the random keyword
// comes only from src.
type tool struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
	src    seed.Source
}

type command struct {
	run   func(t *tool, args []string) error
	usage string
}

var commands = map[string]command{
	"parse":  {(*tool).parse, "parse ARG..."},
	"derive": {(*tool).derive, "derive -seed S [-x X -y Y] [-l1 N -l2 N | -step N | -uuid U]"},
	"draw":   {(*tool).draw, "draw -seed S [-n N] [-kind u32|u64|i31|i63|f32|f64|bytes]"},
	"check":  {(*tool).check, "check FILE..."},
}

// errUsage asks run to print the usage and exit 2.
var errUsage = xerrors.New("usage")

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seedtool: %v\n", err)
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg)

	src, err := rand.NewEntropySource()
	if err != nil {
		logger.Error("cannot seed entropy source", "err", err)
		os.Exit(1)
	}

	t := &tool{stdout: os.Stdout, stderr: os.Stderr, log: logger, src: src}
	os.Exit(t.run(os.Args[1:]))
}

// run executes one subcommand and returns the process exit code.
func (t *tool) run(args []string) int {
	if len(args) == 0 {
		t.usage()
		return 2
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		msg := fmt.Sprintf("seedtool: unknown command %q", name)
		if near := seedarg.Nearest(name, commandNames()); near != "" {
			msg += fmt.Sprintf("; did you mean %q?", near)
		}
		fmt.Fprintln(t.stderr, msg)
		return 2
	}

	t.log.Debug("running", "command", name, "args", len(args)-1)
	if err := cmd.run(t, args[1:]); err != nil {
		if xerrors.Is(err, errUsage) {
			fmt.Fprintf(t.stderr, "usage: seedtool %s\n", cmd.usage)
			return 2
		}
		fmt.Fprintf(t.stderr, "seedtool %s: %v\n", name, err)
		return 1
	}
	return 0
}

func (t *tool) usage() {
	var b strings.Builder
	b.WriteString("usage:\n")
	for _, name := range commandNames() {
		fmt.Fprintf(&b, "\tseedtool %s\n", commands[name].usage)
	}
	fmt.Fprintf(&b, "seed arguments: %s\n", seedarg.Hint)
	io.WriteString(t.stderr, b.String())
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
