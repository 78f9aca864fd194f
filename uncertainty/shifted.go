// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// shifted is a distribution supported on [0, ∞) moved right by off.
type shifted struct {
	d   univariate
	off float64
}

func (s shifted) CDF(x float64) float64 {
	if x-s.off <= 0 {
		return 0
	}
	return s.d.CDF(x - s.off)
}

func (s shifted) Quantile(p float64) float64 { return s.off + s.d.Quantile(p) }
func (s shifted) Rand() float64              { return s.off + s.d.Rand() }

// validateScaleShape checks the parameters of a scale/shape family
// without looking at bounds.
func validateScaleShape(params Params) error {
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
		if err := validatePositive(i, "shape", p.Shape); err != nil {
			return err
		}
	}
	return nil
}

// Weibull is the Weibull distribution with scale λ = Scale and shape
// k = Shape, shifted to start at Loc.
type Weibull struct{}

func (Weibull) Kind() Kind { return KindWeibull }

func (Weibull) Validate(params Params) error {
	if err := validateScaleShape(params); err != nil {
		return err
	}
	return ValidateBounded(params)
}

func weibullRow(p Param, gen *random.Generator) univariate {
	return shifted{
		d:   distuv.Weibull{K: p.Shape.Value, Lambda: p.Scale.Value, Src: source(gen)},
		off: p.Loc,
	}
}

func (Weibull) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	if err := validateScaleShape(params); err != nil {
		return nil, err
	}
	return cdfRows(params, vector, weibullRow)
}

func (Weibull) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	if err := validateScaleShape(params); err != nil {
		return nil, err
	}
	return ppfRows(params, percentages, weibullRow)
}

func (Weibull) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	if err := validateScaleShape(params); err != nil {
		return nil, err
	}
	return randRows(params, size, gen, weibullRow)
}

func (d Weibull) BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	return BoundedRandomVariables(d, params, size, maximumIterations, gen)
}

func (d Weibull) CheckBoundsReasonableness(params Params, threshold float64) error {
	return CheckBoundsReasonableness(d, params, threshold)
}

// Gamma is the gamma distribution with shape k = Shape and scale
// θ = Scale, shifted to start at Loc.
type Gamma struct{}

func (Gamma) Kind() Kind { return KindGamma }

func (Gamma) Validate(params Params) error {
	if err := validateScaleShape(params); err != nil {
		return err
	}
	return ValidateBounded(params)
}

func gammaRow(p Param, gen *random.Generator) univariate {
	return shifted{
		d:   distuv.Gamma{Alpha: p.Shape.Value, Beta: 1 / p.Scale.Value, Src: source(gen)},
		off: p.Loc,
	}
}

func (Gamma) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	if err := validateScaleShape(params); err != nil {
		return nil, err
	}
	return cdfRows(params, vector, gammaRow)
}

func (Gamma) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	if err := validateScaleShape(params); err != nil {
		return nil, err
	}
	return ppfRows(params, percentages, gammaRow)
}

func (Gamma) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	if err := validateScaleShape(params); err != nil {
		return nil, err
	}
	return randRows(params, size, gen, gammaRow)
}

func (d Gamma) BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	return BoundedRandomVariables(d, params, size, maximumIterations, gen)
}

func (d Gamma) CheckBoundsReasonableness(params Params, threshold float64) error {
	return CheckBoundsReasonableness(d, params, threshold)
}
