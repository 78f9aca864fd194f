// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
)

// Undefined is a point mass at Loc, used for quantities whose
// uncertainty is unknown. Sampling and PPF return Loc; CDF is not
// defined and fails with ErrUndefinedDistribution.
type Undefined struct{}

func (Undefined) Kind() Kind { return KindUndefined }

// Validate requires only a finite Loc. Bounds are ignored.
func (Undefined) Validate(params Params) error {
	return validatePoint(params)
}

func (Undefined) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return nil, paramErrorf(ErrUndefinedDistribution, -1, "CDF of an undefined distribution")
}

// PPF returns Loc in every cell of the shape of percentages. The
// percentage values are not examined.
func (Undefined) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return pointPPF(params, percentages)
}

func (Undefined) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return pointRandomVariables(params, size)
}

// NoUncertainty is a point mass at Loc with a step CDF.
type NoUncertainty struct{}

func (NoUncertainty) Kind() Kind { return KindNoUncertainty }

func (NoUncertainty) Validate(params Params) error {
	return validatePoint(params)
}

// CDF is 0 below Loc and 1 at or above it.
func (NoUncertainty) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	m, err := Check2DInputs(params, vector)
	if err != nil {
		return nil, err
	}
	for i, p := range params {
		row := m.RawRowView(i)
		for j, x := range row {
			if x < p.Loc {
				row[j] = 0
			} else {
				row[j] = 1
			}
		}
	}
	return m, nil
}

func (NoUncertainty) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return pointPPF(params, percentages)
}

func (NoUncertainty) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return pointRandomVariables(params, size)
}

func validatePoint(params Params) error {
	if len(params) == 0 {
		return paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	for i, p := range params {
		if err := validateLoc(i, p); err != nil {
			return err
		}
	}
	return nil
}

func pointPPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	m, err := Check2DInputs(params, percentages)
	if err != nil {
		return nil, err
	}
	_, c := m.Dims()
	return fillLoc(params, c), nil
}

func pointRandomVariables(params Params, size int) (*mat.Dense, error) {
	if err := checkSize(params, size); err != nil {
		return nil, err
	}
	return fillLoc(params, size), nil
}
