// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"math"

	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
)

// Check2DInputs normalizes an input vector against the N rows of
// params. An N-vector (a column mat.Vector of length N) becomes an
// N×1 matrix, one value per row; an N×K matrix is returned as a copy.
// A transposed vector is a 1×K row.
// Any other shape, including a 1×K row when N > 1, fails with
// ErrInvalidParams.
func Check2DInputs(params Params, vector mat.Matrix) (*mat.Dense, error) {
	n := len(params)
	if n == 0 {
		return nil, paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	if vector == nil {
		return nil, paramErrorf(ErrInvalidParams, -1, "nil input vector")
	}
	r, c := vector.Dims()
	if v, ok := vector.(mat.Vector); ok && c == 1 {
		if v.Len() != n {
			return nil, paramErrorf(ErrInvalidParams, -1, "input vector has length %d, want %d", v.Len(), n)
		}
		out := mat.NewDense(n, 1, nil)
		for i := 0; i < n; i++ {
			out.Set(i, 0, v.AtVec(i))
		}
		return out, nil
	}
	if r != n {
		return nil, paramErrorf(ErrInvalidParams, -1, "input has shape (%d, %d), want (%d, K)", r, c, n)
	}
	return mat.DenseCopyOf(vector), nil
}

// Check2DSlice is Check2DInputs for a one-value-per-row slice.
func Check2DSlice(params Params, xs []float64) (*mat.Dense, error) {
	if len(xs) == 0 {
		return nil, paramErrorf(ErrInvalidParams, -1, "empty input vector")
	}
	return Check2DInputs(params, mat.NewVecDense(len(xs), append([]float64(nil), xs...)))
}

// Check2DRows is Check2DInputs for a slice of equal-length rows.
func Check2DRows(params Params, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, paramErrorf(ErrInvalidParams, -1, "empty input matrix")
	}
	k := len(rows[0])
	data := make([]float64, 0, len(rows)*k)
	for i, row := range rows {
		if len(row) != k {
			return nil, paramErrorf(ErrInvalidParams, -1, "row %d has %d columns, want %d", i, len(row), k)
		}
		data = append(data, row...)
	}
	return Check2DInputs(params, mat.NewDense(len(rows), k, data))
}

// A univariate is one row's distribution.
type univariate interface {
	CDF(x float64) float64
	Quantile(p float64) float64
	Rand() float64
}

// rowDist builds the univariate for a validated row. src may be nil
// when the result will not be sampled.
type rowDist func(p Param, src *random.Generator) univariate

// cdfRows evaluates the CDF of each row over the normalized vector.
func cdfRows(params Params, vector mat.Matrix, dist rowDist) (*mat.Dense, error) {
	m, err := Check2DInputs(params, vector)
	if err != nil {
		return nil, err
	}
	_, k := m.Dims()
	for i, p := range params {
		d := dist(p, nil)
		row := m.RawRowView(i)
		for j := 0; j < k; j++ {
			row[j] = d.CDF(row[j])
		}
	}
	return m, nil
}

// ppfRows evaluates the quantile function of each row over the
// normalized percentages.
func ppfRows(params Params, percentages mat.Matrix, dist rowDist) (*mat.Dense, error) {
	m, err := checkPercentages(params, percentages)
	if err != nil {
		return nil, err
	}
	_, k := m.Dims()
	for i, p := range params {
		d := dist(p, nil)
		row := m.RawRowView(i)
		for j := 0; j < k; j++ {
			row[j] = d.Quantile(row[j])
		}
	}
	return m, nil
}

// randRows draws size samples from each row.
func randRows(params Params, size int, gen *random.Generator, dist rowDist) (*mat.Dense, error) {
	m, err := newSampleMatrix(params, size)
	if err != nil {
		return nil, err
	}
	gen = orEntropy(gen)
	for i, p := range params {
		d := dist(p, gen)
		row := m.RawRowView(i)
		for j := range row {
			row[j] = d.Rand()
		}
	}
	return m, nil
}

// checkPercentages is Check2DInputs plus a [0, 1] range check.
func checkPercentages(params Params, percentages mat.Matrix) (*mat.Dense, error) {
	m, err := Check2DInputs(params, percentages)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			q := m.At(i, j)
			if math.IsNaN(q) || q < 0 || q > 1 {
				return nil, paramErrorf(ErrInvalidParams, i, "percentage %v is outside [0, 1]", q)
			}
		}
	}
	return m, nil
}

func checkSize(params Params, size int) error {
	if len(params) == 0 {
		return paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	if size < 1 {
		return paramErrorf(ErrInvalidParams, -1, "sample size must be at least 1, got %d", size)
	}
	return nil
}

func newSampleMatrix(params Params, size int) (*mat.Dense, error) {
	if err := checkSize(params, size); err != nil {
		return nil, err
	}
	return mat.NewDense(len(params), size, nil), nil
}

// fillLoc returns a len(params)×c matrix holding each row's Loc.
func fillLoc(params Params, c int) *mat.Dense {
	m := mat.NewDense(len(params), c, nil)
	for i, p := range params {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = p.Loc
		}
	}
	return m
}
