// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/aclements/go-uncertainty/uncertainty"
)

// config holds one uncsample invocation. Every field defaults from an
// UNCSAMPLE_* environment variable and can be overridden on the
// command line.
type config struct {
	Kind     string
	Loc      float64
	Scale    float64 // NaN if absent
	Shape    float64 // NaN if absent
	Min, Max float64 // NaN if absent
	Negative bool

	N                 int
	Seed              uint64
	MaximumIterations int
	Method            string // "mc" or "latin"
	Verbose           bool
}

func defaultConfig() config {
	return config{
		Kind:     getEnvOrDefault("UNCSAMPLE_KIND", "normal"),
		Loc:      getEnvFloatOrDefault("UNCSAMPLE_LOC", 0),
		Scale:    getEnvFloatOrDefault("UNCSAMPLE_SCALE", 1),
		Shape:    getEnvFloatOrDefault("UNCSAMPLE_SHAPE", math.NaN()),
		Min:      getEnvFloatOrDefault("UNCSAMPLE_MIN", math.NaN()),
		Max:      getEnvFloatOrDefault("UNCSAMPLE_MAX", math.NaN()),
		Negative: getEnvBoolOrDefault("UNCSAMPLE_NEGATIVE", false),

		N:                 getEnvIntOrDefault("UNCSAMPLE_N", 10000),
		Seed:              uint64(getEnvIntOrDefault("UNCSAMPLE_SEED", 1)),
		MaximumIterations: getEnvIntOrDefault("UNCSAMPLE_ITERATIONS", uncertainty.DefaultMaximumIterations),
		Method:            getEnvOrDefault("UNCSAMPLE_METHOD", "mc"),
		Verbose:           getEnvBoolOrDefault("UNCSAMPLE_VERBOSE", false),
	}
}

// parseFlags applies command-line flags on top of defaultConfig.
func parseFlags(args []string) (config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("uncsample", flag.ContinueOnError)
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "distribution `family`")
	fs.Float64Var(&cfg.Loc, "loc", cfg.Loc, "location parameter")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "scale parameter (NaN for none)")
	fs.Float64Var(&cfg.Shape, "shape", cfg.Shape, "shape parameter (NaN for none)")
	fs.Float64Var(&cfg.Min, "min", cfg.Min, "lower bound (NaN for none)")
	fs.Float64Var(&cfg.Max, "max", cfg.Max, "upper bound (NaN for none)")
	fs.BoolVar(&cfg.Negative, "negative", cfg.Negative, "mirror lognormal samples to be negative")
	fs.IntVar(&cfg.N, "n", cfg.N, "number of samples")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.MaximumIterations, "iterations", cfg.MaximumIterations, "redraw budget for bounded sampling")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "sampling `method`: mc or latin")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log debugging output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	return cfg, nil
}

// params builds the single parameter row described by c.
func (c config) params() (uncertainty.Params, error) {
	k, err := uncertainty.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	params := uncertainty.NewParams(1)
	p := &params[0]
	p.Kind = k
	p.Loc = c.Loc
	p.Negative = c.Negative
	p.Scale = uncertainty.Some(c.Scale)
	p.Shape = uncertainty.Some(c.Shape)
	p.Minimum = uncertainty.Some(c.Min)
	p.Maximum = uncertainty.Some(c.Max)
	return params, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
