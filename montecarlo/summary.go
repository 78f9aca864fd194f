// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package montecarlo

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// Summary describes a Monte Carlo sample of one quantity.
type Summary struct {
	N            int
	Mean, StdDev float64
	Median       float64
	Min, Max     float64
	Lower, Upper float64 // 2.5th and 97.5th percentiles
}

// Summarize computes the Summary of xs. The population standard
// deviation is reported.
func Summarize(xs []float64) (Summary, error) {
	s := Summary{N: len(xs)}
	var err error
	if s.Mean, err = stats.Mean(xs); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(xs); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(xs); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(xs); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(xs); err != nil {
		return s, err
	}
	if s.Lower, err = stats.Percentile(xs, 2.5); err != nil {
		return s, err
	}
	if s.Upper, err = stats.Percentile(xs, 97.5); err != nil {
		return s, err
	}
	return s, nil
}

// SummarizeRows summarizes each row of a sample matrix.
func SummarizeRows(m *mat.Dense) ([]Summary, error) {
	r, _ := m.Dims()
	out := make([]Summary, r)
	for i := range out {
		s, err := Summarize(m.RawRowView(i))
		if err != nil {
			return nil, fmt.Errorf("montecarlo: row %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}
