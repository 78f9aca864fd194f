// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams indicates a malformed parameter row, such as
	// an unset Loc, or an input vector of the wrong shape.
	ErrInvalidParams = errors.New("uncertainty: invalid parameters")
	// ErrImproperBounds indicates bounds that are present but
	// inconsistent: misordered, excluding Loc, or one-sided for a
	// family that needs both.
	ErrImproperBounds = errors.New("uncertainty: improper bounds")
	// ErrUnreasonableBounds indicates bounds that are well-formed
	// but capture a negligible share of the probability mass.
	ErrUnreasonableBounds = errors.New("uncertainty: unreasonable bounds")
	// ErrUndefinedDistribution indicates an operation the
	// distribution family does not support.
	ErrUndefinedDistribution = errors.New("uncertainty: undefined distribution")
)

// A ParamError reports a failure against a specific parameter row.
// Err is one of the package's sentinel errors.
type ParamError struct {
	Err error
	// Row is the index of the offending row, or -1 if the error
	// concerns the whole array or an input vector.
	Row int
	Msg string
}

func (e *ParamError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %s", e.Err, e.Msg)
	}
	return fmt.Sprintf("%v: row %d: %s", e.Err, e.Row, e.Msg)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func paramErrorf(err error, row int, format string, args ...any) *ParamError {
	return &ParamError{Err: err, Row: row, Msg: fmt.Sprintf(format, args...)}
}
