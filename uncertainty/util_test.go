// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// makeParams is the test fixture: n rows with Loc unset, the shape
// every test starts from.
func makeParams(n int) Params {
	return NewParams(n)
}

func allEqual(m *mat.Dense, v float64) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !aeq(v, m.At(i, j)) {
				return false
			}
		}
	}
	return true
}
