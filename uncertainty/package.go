// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uncertainty evaluates parametric probability distributions
// over arrays of parameter rows.
//
// Each row of a Params array describes one uncertain quantity. A
// Distribution validates, samples, and evaluates the CDF and inverse
// CDF of every row at once, producing one matrix row per parameter
// row. The set of distribution families is closed; Choices maps each
// Kind to its implementation.
package uncertainty // import "github.com/aclements/go-uncertainty/uncertainty"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
