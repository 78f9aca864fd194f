// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"math/rand/v2"

	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
)

// A Distribution is a family of distributions evaluated over every
// row of a Params array at once.
//
// Distribution values are stateless; the parameters of each call
// come entirely from its Params argument.
type Distribution interface {
	// Kind returns the identifier of this family.
	Kind() Kind

	// Validate returns nil if every row of params is a valid
	// parameterization of this family. It never modifies params.
	Validate(params Params) error

	// CDF returns the cumulative distribution function of each
	// row evaluated at the corresponding row of vector. vector
	// must be an N-vector or an N×K matrix, where N is
	// len(params); see Check2DInputs. The result is N×1 or N×K.
	CDF(params Params, vector mat.Matrix) (*mat.Dense, error)

	// PPF returns the inverse of the CDF (the percent point
	// function) of each row at the corresponding row of
	// percentages, which must lie in [0, 1]. Shapes are as for
	// CDF.
	PPF(params Params, percentages mat.Matrix) (*mat.Dense, error)

	// RandomVariables returns an N×size matrix of independent
	// draws, one row per parameter row. Bounds are not applied.
	// If gen is nil, a generator seeded from entropy is used.
	RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error)
}

// A Bounded distribution can be truncated to each row's
// [Minimum, Maximum] by rejection sampling.
type Bounded interface {
	Distribution

	// BoundedRandomVariables is like RandomVariables, but redraws
	// samples outside each row's bounds for up to
	// maximumIterations rounds. See BoundedRandomVariables.
	BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error)

	// CheckBoundsReasonableness returns ErrUnreasonableBounds if
	// the bounds of any row capture less than threshold of that
	// row's probability mass. See CheckBoundsReasonableness.
	CheckBoundsReasonableness(params Params, threshold float64) error
}

// Base is the abstract distribution. It validates rows with
// ValidateBase and refuses every evaluation with
// ErrUndefinedDistribution.
type Base struct{}

func (Base) Validate(params Params) error {
	return ValidateBase(params)
}

func (Base) Check2DInputs(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return Check2DInputs(params, vector)
}

func (Base) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return nil, paramErrorf(ErrUndefinedDistribution, -1, "CDF is not defined for the abstract distribution")
}

func (Base) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return nil, paramErrorf(ErrUndefinedDistribution, -1, "PPF is not defined for the abstract distribution")
}

func (Base) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return nil, paramErrorf(ErrUndefinedDistribution, -1, "RandomVariables is not defined for the abstract distribution")
}

func orEntropy(gen *random.Generator) *random.Generator {
	if gen == nil {
		return random.NewFromEntropy()
	}
	return gen
}

// source converts gen to a distuv Src, keeping nil as a nil
// interface.
func source(gen *random.Generator) rand.Source {
	if gen == nil {
		return nil
	}
	return gen
}

var (
	_ Bounded = Normal{}
	_ Bounded = Lognormal{}
	_ Bounded = Weibull{}
	_ Bounded = Gamma{}
	_ Bounded = GeneralizedExtremeValue{}
	_ Bounded = StudentsT{}
)
