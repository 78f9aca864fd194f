// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import "math"

// An Opt is an optional float parameter. The zero Opt is absent.
type Opt struct {
	Value float64
	Valid bool
}

// None is the absent Opt.
var None = Opt{}

// Some returns an Opt holding v. Some(NaN) is absent.
func Some(v float64) Opt {
	if math.IsNaN(v) {
		return None
	}
	return Opt{Value: v, Valid: true}
}

// Present reports whether o holds a usable value.
func (o Opt) Present() bool {
	return o.Valid && !math.IsNaN(o.Value)
}

// Or returns o's value if present and def otherwise.
func (o Opt) Or(def float64) float64 {
	if o.Present() {
		return o.Value
	}
	return def
}

// Float returns o's value, or NaN if o is absent.
func (o Opt) Float() float64 {
	return o.Or(nan)
}

// A Param describes one uncertain quantity.
type Param struct {
	// Kind selects the distribution family for drivers that
	// dispatch through Choices. Distribution methods ignore it.
	Kind Kind

	// Input and Output correlate this row with external graph
	// nodes. They are not interpreted.
	Input, Output uint32

	// Loc is the central value: the mean, mode, or location of
	// the family. It must be finite; NaN means unset.
	Loc float64

	// Negative indicates a quantity whose real-world sign is
	// inverted.
	Negative bool

	// Scale and Shape are the family's dispersion and shape
	// parameters, if it uses them.
	Scale, Shape Opt

	// Minimum and Maximum optionally bound the quantity.
	Minimum, Maximum Opt
}

// hasBounds reports whether p has either bound.
func (p Param) hasBounds() bool {
	return p.Minimum.Present() || p.Maximum.Present()
}

// lower and upper return p's bounds, open sides as -Inf and +Inf.
func (p Param) lower() float64 { return p.Minimum.Or(-inf) }
func (p Param) upper() float64 { return p.Maximum.Or(inf) }

// Params is an array of parameter rows sharing one schema. The
// functions in this package never modify a Params.
type Params []Param

// NewParams returns n rows with Loc unset and every optional field
// absent.
func NewParams(n int) Params {
	ps := make(Params, n)
	for i := range ps {
		ps[i].Loc = nan
	}
	return ps
}

// Len returns the number of rows.
func (ps Params) Len() int {
	return len(ps)
}

// HasBounds reports whether any row has a bound.
func (ps Params) HasBounds() bool {
	for _, p := range ps {
		if p.hasBounds() {
			return true
		}
	}
	return false
}

// Subset returns a new Params holding the rows of ps at the given
// indexes, in order.
func (ps Params) Subset(rows []int) Params {
	out := make(Params, len(rows))
	for i, r := range rows {
		out[i] = ps[r]
	}
	return out
}
