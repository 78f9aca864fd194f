// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is the beta distribution with α = Loc and β = Shape, rescaled
// from [0, 1] to [Minimum, Maximum] when both bounds are given.
//
// Because Loc is a shape parameter here, Validate does not require
// it to lie within the bounds.
type Beta struct{}

func (Beta) Kind() Kind { return KindBeta }

func (Beta) Validate(params Params) error {
	if err := validateBetaShape(params); err != nil {
		return err
	}
	for i, p := range params {
		if p.Minimum.Present() && p.Maximum.Present() && !(p.Minimum.Value < p.Maximum.Value) {
			return paramErrorf(ErrImproperBounds, i, "minimum %v must be less than maximum %v", p.Minimum.Value, p.Maximum.Value)
		}
		if err := validateFinite(i, "minimum", p.Minimum); err != nil {
			return err
		}
		if err := validateFinite(i, "maximum", p.Maximum); err != nil {
			return err
		}
	}
	return validateBothOrNeither(params)
}

func validateBetaShape(params Params) error {
	if len(params) == 0 {
		return paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	for i, p := range params {
		if err := validateLoc(i, p); err != nil {
			return err
		}
		if p.Loc <= 0 {
			return paramErrorf(ErrInvalidParams, i, "alpha (loc) must be positive, got %v", p.Loc)
		}
		if err := validatePositive(i, "beta (shape)", p.Shape); err != nil {
			return err
		}
	}
	return nil
}

// scaledBeta is a beta distribution mapped onto [lo, lo+width].
type scaledBeta struct {
	d         distuv.Beta
	lo, width float64
}

func (s scaledBeta) CDF(x float64) float64 {
	u := (x - s.lo) / s.width
	switch {
	case u <= 0:
		return 0
	case u >= 1:
		return 1
	}
	return s.d.CDF(u)
}

func (s scaledBeta) Quantile(p float64) float64 { return s.lo + s.width*s.d.Quantile(p) }
func (s scaledBeta) Rand() float64              { return s.lo + s.width*s.d.Rand() }

func betaRow(p Param, gen *random.Generator) univariate {
	lo, hi := 0.0, 1.0
	if p.Minimum.Present() && p.Maximum.Present() {
		lo, hi = p.Minimum.Value, p.Maximum.Value
	}
	return scaledBeta{
		d:     distuv.Beta{Alpha: p.Loc, Beta: p.Shape.Value, Src: source(gen)},
		lo:    lo,
		width: hi - lo,
	}
}

// Beta sampling panics on non-positive shapes, so evaluations check
// the shapes first.

func (Beta) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	if err := validateBetaShape(params); err != nil {
		return nil, err
	}
	return cdfRows(params, vector, betaRow)
}

func (Beta) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	if err := validateBetaShape(params); err != nil {
		return nil, err
	}
	return ppfRows(params, percentages, betaRow)
}

func (Beta) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	if err := validateBetaShape(params); err != nil {
		return nil, err
	}
	return randRows(params, size, gen, betaRow)
}
