// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is the normal distribution with mean Loc and standard
// deviation Scale. It may be truncated to [Minimum, Maximum]; a row
// with one bound must have both.
type Normal struct{}

func (Normal) Kind() Kind { return KindNormal }

func (Normal) Validate(params Params) error {
	if err := ValidateBounded(params); err != nil {
		return err
	}
	for i, p := range params {
		if err := validatePositive(i, "scale", p.Scale); err != nil {
			return err
		}
	}
	return nil
}

func normalRow(p Param, gen *random.Generator) univariate {
	return distuv.Normal{Mu: p.Loc, Sigma: p.Scale.Float(), Src: source(gen)}
}

func (Normal) CDF(params Params, vector mat.Matrix) (*mat.Dense, error) {
	return cdfRows(params, vector, normalRow)
}

func (Normal) PPF(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	return ppfRows(params, percentages, normalRow)
}

// RandomVariables returns Loc + Scale*Z for standard normal draws Z.
func (Normal) RandomVariables(params Params, size int, gen *random.Generator) (*mat.Dense, error) {
	m, err := newSampleMatrix(params, size)
	if err != nil {
		return nil, err
	}
	gen = orEntropy(gen)
	for i, p := range params {
		loc, scale := p.Loc, p.Scale.Float()
		row := m.RawRowView(i)
		for j, z := range gen.StdNormal(size) {
			row[j] = loc + scale*z
		}
	}
	return m, nil
}

func (d Normal) BoundedRandomVariables(params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	return BoundedRandomVariables(d, params, size, maximumIterations, gen)
}

func (d Normal) CheckBoundsReasonableness(params Params, threshold float64) error {
	return CheckBoundsReasonableness(d, params, threshold)
}
