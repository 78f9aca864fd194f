// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package montecarlo drives the distributions of package uncertainty
// for Monte Carlo simulation: repeated seeded sampling of one family
// or of mixed-family parameter arrays, Latin hypercube sampling,
// parallel runs, and sample summaries.
package montecarlo // import "github.com/aclements/go-uncertainty/montecarlo"

import (
	"fmt"

	"github.com/aclements/go-uncertainty/random"
	"github.com/aclements/go-uncertainty/uncertainty"
	"gonum.org/v1/gonum/mat"
)

// A Sampler produces one value per parameter row on each call to
// Next.
type Sampler interface {
	Next() ([]float64, error)
}

// RandomNumberGenerator repeatedly samples one distribution family.
// Bounded families are truncated to each row's bounds.
type RandomNumberGenerator struct {
	// MaximumIterations is the rejection budget passed to
	// BoundedRandomVariables. Zero means
	// uncertainty.DefaultMaximumIterations.
	MaximumIterations int

	dist   uncertainty.Distribution
	params uncertainty.Params
	size   int
	gen    *random.Generator
}

// NewRandomNumberGenerator validates params against d and returns a
// generator producing len(params)×size matrices from a stream seeded
// with seed.
func NewRandomNumberGenerator(d uncertainty.Distribution, params uncertainty.Params, seed uint64, size int) (*RandomNumberGenerator, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("montecarlo: sample size must be at least 1, got %d: %w", size, uncertainty.ErrInvalidParams)
	}
	return &RandomNumberGenerator{dist: d, params: params, size: size, gen: random.New(seed)}, nil
}

// Next returns a fresh sample matrix.
func (r *RandomNumberGenerator) Next() (*mat.Dense, error) {
	return sample(r.dist, r.params, r.size, r.MaximumIterations, r.gen)
}

// sample draws from d, truncating by rejection when d supports it and
// any row is bounded.
func sample(d uncertainty.Distribution, params uncertainty.Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	if b, ok := d.(uncertainty.Bounded); ok && params.HasBounds() {
		return b.BoundedRandomVariables(params, size, maximumIterations, gen)
	}
	return d.RandomVariables(params, size, gen)
}

// group is the rows of a mixed array that share one family.
type group struct {
	dist   uncertainty.Distribution
	rows   []int
	params uncertainty.Params
}

func groupParams(choices *uncertainty.Choices, params uncertainty.Params) ([]group, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("montecarlo: no parameter rows: %w", uncertainty.ErrInvalidParams)
	}
	kinds, rows, err := choices.Group(params)
	if err != nil {
		return nil, err
	}
	groups := make([]group, 0, len(kinds))
	for _, k := range kinds {
		d, err := choices.Lookup(k)
		if err != nil {
			return nil, err
		}
		sub := params.Subset(rows[k])
		if err := d.Validate(sub); err != nil {
			return nil, fmt.Errorf("montecarlo: %v rows: %w", k, err)
		}
		groups = append(groups, group{dist: d, rows: rows[k], params: sub})
	}
	return groups, nil
}

// MCRandomNumberGenerator samples a parameter array whose rows may
// be of different kinds, dispatching each row through a Choices by
// its Kind.
type MCRandomNumberGenerator struct {
	// MaximumIterations is the rejection budget for bounded rows.
	MaximumIterations int

	n      int
	groups []group
	gen    *random.Generator
}

// NewMCRandomNumberGenerator validates every row against the family
// its Kind selects in choices.
func NewMCRandomNumberGenerator(choices *uncertainty.Choices, params uncertainty.Params, seed uint64) (*MCRandomNumberGenerator, error) {
	groups, err := groupParams(choices, params)
	if err != nil {
		return nil, err
	}
	return &MCRandomNumberGenerator{n: len(params), groups: groups, gen: random.New(seed)}, nil
}

// Len returns the number of parameter rows.
func (m *MCRandomNumberGenerator) Len() int {
	return m.n
}

// Next returns one draw per parameter row, in row order.
func (m *MCRandomNumberGenerator) Next() ([]float64, error) {
	out := make([]float64, m.n)
	for _, g := range m.groups {
		s, err := sample(g.dist, g.params, 1, m.MaximumIterations, m.gen)
		if err != nil {
			return nil, err
		}
		for k, i := range g.rows {
			out[i] = s.At(k, 0)
		}
	}
	return out, nil
}
