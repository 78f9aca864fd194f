// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package montecarlo

import (
	"fmt"

	"github.com/aclements/go-uncertainty/random"
	"github.com/aclements/go-uncertainty/uncertainty"
	"gonum.org/v1/gonum/mat"
)

// LatinHypercube is a stratified sampler. Each row's distribution is
// divided into samples strata of equal probability, and the inverse
// CDF is evaluated once at the midpoint of each stratum. Every
// samples consecutive calls to Next visit each stratum of each row
// exactly once, in an independent random order per row.
//
// For bounded families, the strata divide only the mass inside the
// row's bounds.
type LatinHypercube struct {
	hypercube *mat.Dense
	samples   int
	perms     [][]int
	pos       int
	gen       *random.Generator
}

// NewLatinHypercube precomputes the strata of every row of params,
// dispatching through choices by Kind.
func NewLatinHypercube(choices *uncertainty.Choices, params uncertainty.Params, seed uint64, samples int) (*LatinHypercube, error) {
	if samples < 1 {
		return nil, fmt.Errorf("montecarlo: need at least 1 stratum, got %d: %w", samples, uncertainty.ErrInvalidParams)
	}
	groups, err := groupParams(choices, params)
	if err != nil {
		return nil, err
	}
	hc := mat.NewDense(len(params), samples, nil)
	for _, g := range groups {
		lo, hi := make([]float64, len(g.rows)), make([]float64, len(g.rows))
		for k := range hi {
			hi[k] = 1
		}
		if _, ok := g.dist.(uncertainty.Bounded); ok && g.params.HasBounds() {
			lo, hi, err = uncertainty.BoundedCumulative(g.dist, g.params)
			if err != nil {
				return nil, err
			}
		}
		pct := mat.NewDense(len(g.rows), samples, nil)
		for k := range g.rows {
			row := pct.RawRowView(k)
			for j := range row {
				row[j] = lo[k] + (hi[k]-lo[k])*(float64(j)+0.5)/float64(samples)
			}
		}
		vals, err := g.dist.PPF(g.params, pct)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: %v rows: %w", g.dist.Kind(), err)
		}
		for k, i := range g.rows {
			hc.SetRow(i, vals.RawRowView(k))
		}
	}
	return &LatinHypercube{
		hypercube: hc,
		samples:   samples,
		perms:     make([][]int, len(params)),
		gen:       random.New(seed),
	}, nil
}

// Hypercube returns the precomputed stratum values, one row per
// parameter row and one column per stratum in increasing order.
// The caller must not modify it.
func (l *LatinHypercube) Hypercube() *mat.Dense {
	return l.hypercube
}

// Next returns one stratum value per row.
func (l *LatinHypercube) Next() ([]float64, error) {
	if l.pos == 0 {
		for i := range l.perms {
			l.perms[i] = l.gen.Perm(l.samples)
		}
	}
	out := make([]float64, len(l.perms))
	for i, perm := range l.perms {
		out[i] = l.hypercube.At(i, perm[l.pos])
	}
	l.pos = (l.pos + 1) % l.samples
	return out, nil
}
