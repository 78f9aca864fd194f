// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"math"

	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
)

// Bernoulli is a two-point distribution. Without bounds, Loc is the
// probability of the outcome 1, and the other outcome is 0. With
// bounds, the outcomes are Minimum and Maximum, and Loc, which must
// lie between them, is the mean.
type Bernoulli struct{}

func (Bernoulli) Kind() Kind { return KindBernoulli }

func (Bernoulli) Validate(params Params) error {
	if err := ValidateBounded(params); err != nil {
		return err
	}
	for i, p := range params {
		if !p.hasBounds() && (p.Loc < 0 || p.Loc > 1) {
			return paramErrorf(ErrInvalidParams, i, "probability %v is outside [0, 1]", p.Loc)
		}
	}
	return nil
}

type twoPoint struct {
	p, lo, hi float64
	gen       *random.Generator
}

func bernoulliRow(p Param, gen *random.Generator) univariate {
	if p.Minimum.Present() && p.Maximum.Present() {
		lo, hi := p.Minimum.Value, p.Maximum.Value
		return twoPoint{p: (p.Loc - lo) / (hi - lo), lo: lo, hi: hi, gen: gen}
	}
	return twoPoint{p: p.Loc, lo: 0, hi: 1, gen: gen}
}

func (t twoPoint) CDF(x float64) float64 {
	switch {
	case x < t.lo:
		return 0
	case x < t.hi:
		return 1 - t.p
	}
	return 1
}

func (t twoPoint) Quantile(q float64) float64 {
	if q <= 1-t.p {
		return t.lo
	}
	return t.hi
}

func (t twoPoint) Rand() float64 {
	if t.gen.Float64() < t.p {
		return t.hi
	}
	return t.lo
}

func (Bernoulli) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return cdfRows(params, vector, bernoulliRow)
}

func (Bernoulli) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return ppfRows(params, percentages, bernoulliRow)
}

func (Bernoulli) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return randRows(params, size, gen, bernoulliRow)
}

// DiscreteUniform is the uniform distribution over the integers
// offset from Minimum: Minimum, Minimum+1, ..., up to but excluding
// Maximum. Maximum is required; Minimum defaults to 0.
type DiscreteUniform struct{}

func (DiscreteUniform) Kind() Kind { return KindDiscreteUniform }

func (DiscreteUniform) Validate(params Params) error {
	if err := ValidateBase(params); err != nil {
		return err
	}
	for i, p := range params {
		if !p.Maximum.Present() || math.IsInf(p.Maximum.Value, 0) {
			return paramErrorf(ErrImproperBounds, i, "a finite maximum is required")
		}
		lo := p.Minimum.Or(0)
		if math.IsInf(lo, 0) || !(lo < p.Maximum.Value) {
			return paramErrorf(ErrImproperBounds, i, "minimum %v must be finite and less than maximum %v", lo, p.Maximum.Value)
		}
		if p.Maximum.Value-lo > maxDiscreteRange {
			return paramErrorf(ErrImproperBounds, i, "range [%v, %v) has more than %d integers", lo, p.Maximum.Value, maxDiscreteRange)
		}
	}
	return nil
}

// maxDiscreteRange is the largest number of support points of a
// DiscreteUniform row.
const maxDiscreteRange = math.MaxInt32

type integers struct {
	lo  float64
	n   int
	gen *random.Generator
}

func discreteRow(p Param, gen *random.Generator) univariate {
	lo := p.Minimum.Or(0)
	n := int(math.Ceil(p.Maximum.Value - lo))
	return integers{lo: lo, n: max(n, 1), gen: gen}
}

func (d integers) CDF(x float64) float64 {
	if x < d.lo {
		return 0
	}
	k := math.Floor(x-d.lo) + 1
	return math.Min(1, k/float64(d.n))
}

// Quantile returns the smallest support point whose CDF is >= q.
func (d integers) Quantile(q float64) float64 {
	k := int(math.Ceil(q*float64(d.n))) - 1
	k = min(max(k, 0), d.n-1)
	return d.lo + float64(k)
}

func (d integers) Rand() float64 {
	return d.lo + float64(d.gen.IntN(d.n))
}

// The support is undefined for an invalid row, so every evaluation
// validates first.

func (d DiscreteUniform) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	return cdfRows(params, vector, discreteRow)
}

func (d DiscreteUniform) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	return ppfRows(params, percentages, discreteRow)
}

func (d DiscreteUniform) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	return randRows(params, size, gen, discreteRow)
}
