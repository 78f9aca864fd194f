// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"math"

	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Lognormal is the lognormal distribution whose logarithm has mean
// Loc and standard deviation Scale. The median is exp(Loc).
//
// If Negative is set, the quantity is the negation of a lognormal
// variate: samples are negative, and bounds and the CDF apply to the
// negated values.
type Lognormal struct{}

func (Lognormal) Kind() Kind { return KindLognormal }

// Validate checks bounds against the signed median rather than Loc,
// which is in log space.
func (Lognormal) Validate(params Params) error {
	if len(params) == 0 {
		return paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	for i, p := range params {
		if err := validateLoc(i, p); err != nil {
			return err
		}
		if err := validatePositive(i, "scale", p.Scale); err != nil {
			return err
		}
		if err := validateBounds(i, signedMedian(p), p); err != nil {
			return err
		}
	}
	return validateBothOrNeither(params)
}

func signedMedian(p Param) float64 {
	m := math.Exp(p.Loc)
	if p.Negative {
		return -m
	}
	return m
}

// signedLognormal mirrors a lognormal about zero when Negative is set.
type signedLognormal struct {
	d   distuv.LogNormal
	neg bool
}

func (s signedLognormal) CDF(x float64) float64 {
	if s.neg {
		return 1 - s.cdf(-x)
	}
	return s.cdf(x)
}

// cdf is the unsigned CDF, extended by 0 below the support.
func (s signedLognormal) cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return s.d.CDF(x)
}

func (s signedLognormal) Quantile(p float64) float64 {
	if s.neg {
		return -s.d.Quantile(1 - p)
	}
	return s.d.Quantile(p)
}

func (s signedLognormal) Rand() float64 {
	if s.neg {
		return -s.d.Rand()
	}
	return s.d.Rand()
}

func lognormalRow(p Param, gen *random.Generator) univariate {
	return signedLognormal{
		d:   distuv.LogNormal{Mu: p.Loc, Sigma: p.Scale.Float(), Src: source(gen)},
		neg: p.Negative,
	}
}

func (Lognormal) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return cdfRows(params, vector, lognormalRow)
}

func (Lognormal) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return ppfRows(params, percentages, lognormalRow)
}

func (Lognormal) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return randRows(params, size, gen, lognormalRow)
}

func (d Lognormal) BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	return BoundedRandomVariables(d, params, size, maximumIterations, gen)
}

func (d Lognormal) CheckBoundsReasonableness(params Params, threshold float64) error {
	return CheckBoundsReasonableness(d, params, threshold)
}
