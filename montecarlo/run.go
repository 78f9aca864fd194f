// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package montecarlo

import (
	"context"
	"fmt"

	"github.com/aclements/go-uncertainty/uncertainty"
	"golang.org/x/sync/errgroup"
)

// Method selects how Run draws each iteration.
type Method int

const (
	// MonteCarlo draws independent samples with
	// MCRandomNumberGenerator.
	MonteCarlo Method = iota

	// Latin draws stratified samples with LatinHypercube. Each
	// worker stratifies its own share of the iterations.
	Latin
)

// Config configures Run. The zero Config runs nothing.
type Config struct {
	// Iterations is the total number of draws.
	Iterations int

	// Workers is the number of goroutines. Values below 1 mean 1.
	Workers int

	// Seed seeds worker w with Seed+w, so a run is reproducible
	// for a fixed Workers.
	Seed uint64

	Method Method

	// MaximumIterations is the rejection budget for bounded rows.
	MaximumIterations int
}

// Run performs cfg.Iterations draws over params, calling fn with the
// global iteration index and one value per row. The draws are split
// across cfg.Workers goroutines, each with its own seeded sampler,
// so fn is called concurrently; it must synchronize any state it
// shares. values is owned by fn.
//
// Run stops at the first error from fn or from sampling, or when ctx
// is done, and returns that error.
func Run(ctx context.Context, cfg Config, choices *uncertainty.Choices, params uncertainty.Params, fn func(iteration int, values []float64) error) error {
	workers := max(cfg.Workers, 1)
	if cfg.Iterations < 1 {
		return nil
	}
	workers = min(workers, cfg.Iterations)

	counts := make([]int, workers)
	for w := range counts {
		counts[w] = cfg.Iterations / workers
		if w < cfg.Iterations%workers {
			counts[w]++
		}
	}

	// Build every sampler before starting so parameter errors are
	// reported once, synchronously.
	samplers := make([]Sampler, workers)
	for w := range samplers {
		s, err := newSampler(cfg, choices, params, w, counts[w])
		if err != nil {
			return err
		}
		samplers[w] = s
	}

	g, ctx := errgroup.WithContext(ctx)
	start := 0
	for w, s := range samplers {
		first, n := start, counts[w]
		start += n
		g.Go(func() error {
			for it := first; it < first+n; it++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				values, err := s.Next()
				if err != nil {
					return err
				}
				if err := fn(it, values); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func newSampler(cfg Config, choices *uncertainty.Choices, params uncertainty.Params, worker, draws int) (Sampler, error) {
	seed := cfg.Seed + uint64(worker)
	switch cfg.Method {
	case MonteCarlo:
		s, err := NewMCRandomNumberGenerator(choices, params, seed)
		if err != nil {
			return nil, err
		}
		s.MaximumIterations = cfg.MaximumIterations
		return s, nil
	case Latin:
		return NewLatinHypercube(choices, params, seed, draws)
	}
	return nil, fmt.Errorf("montecarlo: unknown method %d", cfg.Method)
}
