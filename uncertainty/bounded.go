// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"github.com/aclements/go-uncertainty/random"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaximumIterations is the redraw budget used by
// BoundedRandomVariables when the caller passes a non-positive one.
const DefaultMaximumIterations = 50

// DefaultReasonableMass is the probability mass below which
// CheckBoundsReasonableness rejects a row's bounds.
const DefaultReasonableMass = 0.1

// BoundedRandomVariables draws an N×size sample from d and truncates
// each row to its [Minimum, Maximum] by rejection. An absent bound
// leaves that side open.
//
// The sample is drawn once with d.RandomVariables. Then, for up to
// maximumIterations rounds, the slots of each row that fall outside
// the row's bounds are overwritten with fresh draws, one per slot.
// Values already inside the bounds are never replaced. The loop stops
// early once no slot violates its bounds.
//
// Exhausting maximumIterations is not an error: the matrix is
// returned with whatever violations remain. The expected number of
// rounds grows as the mass inside the bounds shrinks, so tight
// bounds need a generous budget. Violations counts what is left.
//
// BoundedRandomVariables does not validate params.
func BoundedRandomVariables(d Distribution, params Params, size, maximumIterations int, gen *random.Generator) (*mat.Dense, error) {
	if maximumIterations <= 0 {
		maximumIterations = DefaultMaximumIterations
	}
	gen = orEntropy(gen)
	m, err := d.RandomVariables(params, size, gen)
	if err != nil {
		return nil, err
	}
	if !params.HasBounds() {
		return m, nil
	}

	var rows []int
	var slots [][]int
	for iter := 0; iter < maximumIterations; iter++ {
		rows, slots = violatingSlots(params, m, rows[:0], slots[:0])
		if len(rows) == 0 {
			break
		}
		// Each row draws exactly as many values as it has
		// violations.
		for k, i := range rows {
			fresh, err := d.RandomVariables(params.Subset(rows[k:k+1]), len(slots[k]), gen)
			if err != nil {
				return nil, err
			}
			src := fresh.RawRowView(0)
			dst := m.RawRowView(i)
			for n, j := range slots[k] {
				dst[j] = src[n]
			}
		}
	}
	return m, nil
}

// violatingSlots appends to rows the index of every row of m with a
// value outside its bounds, and to slots the columns of those values.
func violatingSlots(params Params, m *mat.Dense, rows []int, slots [][]int) ([]int, [][]int) {
	for i, p := range params {
		if !p.hasBounds() {
			continue
		}
		lo, hi := p.lower(), p.upper()
		var bad []int
		for j, x := range m.RawRowView(i) {
			if x < lo || x > hi {
				bad = append(bad, j)
			}
		}
		if len(bad) > 0 {
			rows = append(rows, i)
			slots = append(slots, bad)
		}
	}
	return rows, slots
}

// Violations returns the number of values of m that lie outside the
// bounds of their row.
func Violations(params Params, m *mat.Dense) int {
	_, slots := violatingSlots(params, m, nil, nil)
	n := 0
	for _, s := range slots {
		n += len(s)
	}
	return n
}

// CheckBoundsReasonableness returns ErrUnreasonableBounds if the
// bounds of any row of params capture less than threshold of the
// probability mass of d. Rows without bounds always pass. A
// non-positive threshold means DefaultReasonableMass.
//
// This check is not part of Validate.
func CheckBoundsReasonableness(d Distribution, params Params, threshold float64) error {
	if threshold <= 0 {
		threshold = DefaultReasonableMass
	}
	mass, err := BoundedMass(d, params)
	if err != nil {
		return err
	}
	for i, p := range params {
		if p.hasBounds() && mass[i] < threshold {
			return paramErrorf(ErrUnreasonableBounds, i, "bounds [%v, %v] capture %.4g of the distribution, want at least %v",
				p.Minimum.Float(), p.Maximum.Float(), mass[i], threshold)
		}
	}
	return nil
}

// BoundedCumulative returns, for each row, the cumulative
// probabilities lo = CDF(Minimum) and hi = CDF(Maximum) of d. An
// absent bound gives 0 or 1.
func BoundedCumulative(d Distribution, params Params) (lo, hi []float64, err error) {
	if len(params) == 0 {
		return nil, nil, paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	lower := make([]float64, len(params))
	upper := make([]float64, len(params))
	for i, p := range params {
		lower[i], upper[i] = p.lower(), p.upper()
	}
	clo, err := d.CDF(params, mat.NewVecDense(len(lower), lower))
	if err != nil {
		return nil, nil, err
	}
	chi, err := d.CDF(params, mat.NewVecDense(len(upper), upper))
	if err != nil {
		return nil, nil, err
	}
	lo = make([]float64, len(params))
	hi = make([]float64, len(params))
	for i, p := range params {
		lo[i], hi[i] = 0, 1
		if p.Minimum.Present() {
			lo[i] = clo.At(i, 0)
		}
		if p.Maximum.Present() {
			hi[i] = chi.At(i, 0)
		}
	}
	return lo, hi, nil
}

// BoundedMass returns the probability mass of each row of d that
// lies inside the row's bounds.
func BoundedMass(d Distribution, params Params) ([]float64, error) {
	lo, hi, err := BoundedCumulative(d, params)
	if err != nil {
		return nil, err
	}
	mass := make([]float64, len(lo))
	for i := range mass {
		mass[i] = hi[i] - lo[i]
	}
	return mass, nil
}
