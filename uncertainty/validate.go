// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import "math"

// ValidateBase checks the invariants shared by every family: each
// row's Loc is finite, and any bounds are well-ordered and contain
// Loc. A single bound is allowed; Loc must then lie on its permitted
// side.
func ValidateBase(params Params) error {
	if len(params) == 0 {
		return paramErrorf(ErrInvalidParams, -1, "no parameter rows")
	}
	for i, p := range params {
		if err := validateLoc(i, p); err != nil {
			return err
		}
		if err := validateBounds(i, p.Loc, p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBounded is ValidateBase plus the rule of bounded families:
// a row with either bound must have both.
func ValidateBounded(params Params) error {
	if err := ValidateBase(params); err != nil {
		return err
	}
	return validateBothOrNeither(params)
}

func validateLoc(row int, p Param) error {
	if math.IsNaN(p.Loc) || math.IsInf(p.Loc, 0) {
		return paramErrorf(ErrInvalidParams, row, "loc must be finite, got %v", p.Loc)
	}
	return nil
}

// validateBounds checks p's bounds against center, which is Loc for
// most families.
func validateBounds(row int, center float64, p Param) error {
	lo, hi := p.Minimum, p.Maximum
	if lo.Present() && hi.Present() && !(lo.Value < hi.Value) {
		return paramErrorf(ErrImproperBounds, row, "minimum %v must be less than maximum %v", lo.Value, hi.Value)
	}
	if lo.Present() && center < lo.Value {
		return paramErrorf(ErrImproperBounds, row, "loc %v is below minimum %v", center, lo.Value)
	}
	if hi.Present() && center > hi.Value {
		return paramErrorf(ErrImproperBounds, row, "loc %v is above maximum %v", center, hi.Value)
	}
	return nil
}

func validateBothOrNeither(params Params) error {
	for i, p := range params {
		if p.Minimum.Present() != p.Maximum.Present() {
			return paramErrorf(ErrImproperBounds, i, "both minimum and maximum are required when either is given")
		}
	}
	return nil
}

// validateBothBounds requires bounds on every row, for families
// whose support is [Minimum, Maximum].
func validateBothBounds(params Params) error {
	for i, p := range params {
		if !p.Minimum.Present() || !p.Maximum.Present() {
			return paramErrorf(ErrImproperBounds, i, "minimum and maximum are required")
		}
	}
	return nil
}

// validatePositive requires o to be present, finite and > 0.
func validatePositive(row int, name string, o Opt) error {
	if !o.Present() || math.IsInf(o.Value, 0) || o.Value <= 0 {
		return paramErrorf(ErrInvalidParams, row, "%s must be positive and finite, got %v", name, o.Float())
	}
	return nil
}

// validateFinite requires o, if present, to be finite.
func validateFinite(row int, name string, o Opt) error {
	if o.Present() && math.IsInf(o.Value, 0) {
		return paramErrorf(ErrInvalidParams, row, "%s must be finite, got %v", name, o.Value)
	}
	return nil
}
