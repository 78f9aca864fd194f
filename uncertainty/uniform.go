// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [Minimum,
// Maximum]. Both bounds are required.
type Uniform struct{}

func (Uniform) Kind() Kind { return KindUniform }

func (Uniform) Validate(params Params) error {
	if err := ValidateBase(params); err != nil {
		return err
	}
	return validateBothBounds(params)
}

func uniformRow(p Param, gen *random.Generator) univariate {
	return distuv.Uniform{Min: p.Minimum.Float(), Max: p.Maximum.Float(), Src: source(gen)}
}

func (Uniform) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return cdfRows(params, vector, uniformRow)
}

func (Uniform) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return ppfRows(params, percentages, uniformRow)
}

func (Uniform) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	return randRows(params, size, gen, uniformRow)
}

// Triangular is the triangular distribution on [Minimum, Maximum]
// with mode Loc. Both bounds are required.
type Triangular struct{}

func (Triangular) Kind() Kind { return KindTriangular }

func (Triangular) Validate(params Params) error {
	if err := ValidateBase(params); err != nil {
		return err
	}
	return validateBothBounds(params)
}

func triangularRow(p Param, gen *random.Generator) univariate {
	return distuv.NewTriangle(p.Minimum.Value, p.Maximum.Value, p.Loc, source(gen))
}

// The triangle constructor panics on an invalid row, so every
// evaluation validates first.

func (d Triangular) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	return cdfRows(params, vector, triangularRow)
}

func (d Triangular) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	return ppfRows(params, percentages, triangularRow)
}

func (d Triangular) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	if err := d.Validate(params); err != nil {
		return nil, err
	}
	return randRows(params, size, gen, triangularRow)
}
