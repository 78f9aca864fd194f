// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package random provides the seedable random number generator
// consumed by the distributions in package uncertainty.
package random // import "github.com/aclements/go-uncertainty/random"

import "math/rand/v2"

// streamMix is xored into the seed to derive the second PCG word,
// so that a single uint64 seed fully determines the stream.
const streamMix = 0x9e3779b97f4a7c15

// A Generator is a seedable source of uniform and standard normal
// variates.
//
// A Generator implements rand.Source, so it can be used directly as
// the Src of a gonum distuv distribution.
//
// A Generator is not safe for concurrent use. Callers that sample in
// parallel should give each worker its own Generator.
type Generator struct {
	pcg *rand.PCG
	rnd *rand.Rand
}

// New returns a Generator seeded with seed. Generators created with
// the same seed produce identical streams.
func New(seed uint64) *Generator {
	pcg := rand.NewPCG(seed, seed^streamMix)
	return &Generator{pcg: pcg, rnd: rand.New(pcg)}
}

// NewFromEntropy returns a Generator seeded from the runtime's
// random source.
func NewFromEntropy() *Generator {
	return New(rand.Uint64())
}

// Seed resets g to the stream New(seed) would produce.
func (g *Generator) Seed(seed uint64) {
	g.pcg.Seed(seed, seed^streamMix)
}

// Uint64 returns a uniformly distributed 64-bit value.
func (g *Generator) Uint64() uint64 {
	return g.pcg.Uint64()
}

// Float64 returns a uniform value in [0, 1).
func (g *Generator) Float64() float64 {
	return g.rnd.Float64()
}

// NormFloat64 returns a standard normal value.
func (g *Generator) NormFloat64() float64 {
	return g.rnd.NormFloat64()
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	return g.rnd.IntN(n)
}

// Perm returns a random permutation of [0, n).
func (g *Generator) Perm(n int) []int {
	return g.rnd.Perm(n)
}

// Uniform returns n uniform values in [0, 1).
func (g *Generator) Uniform(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.rnd.Float64()
	}
	return xs
}

// StdNormal returns n standard normal values.
func (g *Generator) StdNormal(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.rnd.NormFloat64()
	}
	return xs
}
