// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"math"

	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
)

// GeneralizedExtremeValue is the generalized extreme value
// distribution with location Loc, scale Scale and shape ξ = Shape.
// An absent Shape is ξ = 0, the Gumbel distribution.
type GeneralizedExtremeValue struct{}

func (GeneralizedExtremeValue) Kind() Kind { return KindGeneralizedExtremeValue }

func (GeneralizedExtremeValue) Validate(params Params) error {
	if err := ValidateBounded(params); err != nil {
		return err
	}
	for i, p := range params {
		if err := validatePositive(i, "scale", p.Scale); err != nil {
			return err
		}
		if err := validateFinite(i, "shape", p.Shape); err != nil {
			return err
		}
	}
	return nil
}

type gev struct {
	mu, sigma, xi float64
	gen           *random.Generator
}

func gevRow(p Param, gen *random.Generator) univariate {
	return gev{mu: p.Loc, sigma: p.Scale.Float(), xi: p.Shape.Or(0), gen: gen}
}

func (g gev) CDF(x float64) float64 {
	t := (x - g.mu) / g.sigma
	if g.xi == 0 {
		return math.Exp(-math.Exp(-t))
	}
	s := 1 + g.xi*t
	if s <= 0 {
		// Outside the support: below it for ξ > 0, above it
		// for ξ < 0.
		if g.xi > 0 {
			return 0
		}
		return 1
	}
	return math.Exp(-math.Pow(s, -1/g.xi))
}

func (g gev) Quantile(p float64) float64 {
	l := -math.Log(p)
	if g.xi == 0 {
		return g.mu - g.sigma*math.Log(l)
	}
	return g.mu + g.sigma*(math.Pow(l, -g.xi)-1)/g.xi
}

// Rand inverts the CDF at a uniform draw from the open interval
// (0, 1). Quantile(0) and Quantile(1) are infinite for some ξ.
func (g gev) Rand() float64 {
	for {
		if u := g.gen.Float64(); u > 0 {
			return g.Quantile(u)
		}
	}
}

func (GeneralizedExtremeValue) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return cdfRows(params, vector, gevRow)
}

func (GeneralizedExtremeValue) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return ppfRows(params, percentages, gevRow)
}

func (GeneralizedExtremeValue) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return randRows(params, size, gen, gevRow)
}

func (d GeneralizedExtremeValue) BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	return BoundedRandomVariables(d, params, size, maximumIterations, gen)
}

func (d GeneralizedExtremeValue) CheckBoundsReasonableness(params Params, threshold float64) error {
	return CheckBoundsReasonableness(d, params, threshold)
}
