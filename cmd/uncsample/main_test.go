// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-uncertainty/uncertainty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("UNCSAMPLE_KIND", "uniform")
	t.Setenv("UNCSAMPLE_N", "77")
	t.Setenv("UNCSAMPLE_SEED", "not a number")

	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "uniform", cfg.Kind)
	assert.Equal(t, 77, cfg.N)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.True(t, math.IsNaN(cfg.Min))
	assert.Equal(t, uncertainty.DefaultMaximumIterations, cfg.MaximumIterations)

	cfg, err = parseFlags([]string{"-kind", "normal", "-n", "5", "-min", "-1", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "normal", cfg.Kind)
	assert.Equal(t, 5, cfg.N)
	assert.Equal(t, -1.0, cfg.Min)
	assert.True(t, cfg.Verbose)

	_, err = parseFlags([]string{"extra"})
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	cfg := defaultConfig()
	cfg.Kind, cfg.Min, cfg.Max = "uniform", 2, 4
	params, err := cfg.params()
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, uncertainty.KindUniform, params[0].Kind)
	assert.Equal(t, uncertainty.Some(2), params[0].Minimum)
	assert.False(t, params[0].Shape.Present())

	cfg.Kind = "cauchy"
	_, err = cfg.params()
	assert.ErrorIs(t, err, uncertainty.ErrUndefinedDistribution)
}

func TestRun(t *testing.T) {
	for _, method := range []string{"mc", "latin"} {
		cfg := defaultConfig()
		cfg.Kind, cfg.Loc, cfg.Scale = "normal", 10, 2
		cfg.Min, cfg.Max = 8, 12
		cfg.N = 2000
		cfg.Method = method

		var buf bytes.Buffer
		require.NoError(t, run(cfg, &buf), method)
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "N 2000  mean "), out)
		for _, label := range []string{"min", "5%ile", "median", "99%ile", "max"} {
			assert.Contains(t, out, label)
		}
	}

	cfg := defaultConfig()
	cfg.Method = "bogus"
	assert.Error(t, run(cfg, &bytes.Buffer{}))

	cfg = defaultConfig()
	cfg.Scale = -1
	assert.ErrorIs(t, run(cfg, &bytes.Buffer{}), uncertainty.ErrInvalidParams)
}

func TestIterationBudget(t *testing.T) {
	assert.Equal(t, uncertainty.DefaultMaximumIterations, iterationBudget(0))
	assert.Equal(t, uncertainty.DefaultMaximumIterations, iterationBudget(-3))
	assert.Equal(t, 7, iterationBudget(7))
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describe(&buf, []float64{1, 2, 3, 4, 5}))
	assert.Contains(t, buf.String(), "     min 1\n")
	assert.Contains(t, buf.String(), "  median 3\n")
	assert.Contains(t, buf.String(), "     max 5\n")

	assert.Error(t, describe(&buf, nil))
}
