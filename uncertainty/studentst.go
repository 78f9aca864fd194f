// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// StudentsT is Student's t distribution with ν = Shape degrees of
// freedom, location Loc and scale Scale (default 1).
type StudentsT struct{}

func (StudentsT) Kind() Kind { return KindStudentsT }

func (StudentsT) Validate(params Params) error {
	if err := validateStudentsT(params); err != nil {
		return err
	}
	return ValidateBounded(params)
}

func validateStudentsT(params Params) error {
	if len(params) == 0 {
		return paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	for i, p := range params {
		if err := validateLoc(i, p); err != nil {
			return err
		}
		if err := validatePositive(i, "degrees of freedom (shape)", p.Shape); err != nil {
			return err
		}
		if p.Scale.Present() {
			if err := validatePositive(i, "scale", p.Scale); err != nil {
				return err
			}
		}
	}
	return nil
}

func studentsTRow(p Param, gen *random.Generator) univariate {
	return distuv.StudentsT{Mu: p.Loc, Sigma: p.Scale.Or(1), Nu: p.Shape.Value, Src: source(gen)}
}

func (StudentsT) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	if err := validateStudentsT(params); err != nil {
		return nil, err
	}
	return cdfRows(params, vector, studentsTRow)
}

func (StudentsT) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	if err := validateStudentsT(params); err != nil {
		return nil, err
	}
	return ppfRows(params, percentages, studentsTRow)
}

func (StudentsT) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	if err := validateStudentsT(params); err != nil {
		return nil, err
	}
	return randRows(params, size, gen, studentsTRow)
}

func (d StudentsT) BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	return BoundedRandomVariables(d, params, size, maximumIterations, gen)
}

func (d StudentsT) CheckBoundsReasonableness(params Params, threshold float64) error {
	return CheckBoundsReasonableness(d, params, threshold)
}
