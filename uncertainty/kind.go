// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies a distribution family. The numeric values are
// stable identifiers and may be stored by callers.
type Kind int

const (
	KindUndefined Kind = iota
	KindNoUncertainty
	KindLognormal
	KindNormal
	KindUniform
	KindTriangular
	KindBernoulli
	KindDiscreteUniform
	KindWeibull
	KindGamma
	KindBeta
	KindGeneralizedExtremeValue
	KindStudentsT
)

var kindNames = [...]string{
	KindUndefined:               "undefined",
	KindNoUncertainty:           "none",
	KindLognormal:               "lognormal",
	KindNormal:                  "normal",
	KindUniform:                 "uniform",
	KindTriangular:              "triangular",
	KindBernoulli:               "bernoulli",
	KindDiscreteUniform:         "discrete-uniform",
	KindWeibull:                 "weibull",
	KindGamma:                   "gamma",
	KindBeta:                    "beta",
	KindGeneralizedExtremeValue: "gev",
	KindStudentsT:               "students-t",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named s, as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrUndefinedDistribution, s)
}

// Families returns one instance of every built-in distribution
// family, in Kind order.
func Families() []Distribution {
	return []Distribution{
		Undefined{},
		NoUncertainty{},
		Lognormal{},
		Normal{},
		Uniform{},
		Triangular{},
		Bernoulli{},
		DiscreteUniform{},
		Weibull{},
		Gamma{},
		Beta{},
		GeneralizedExtremeValue{},
		StudentsT{},
	}
}

// Choices maps distribution kinds to implementations. A Choices is
// immutable once built and safe for concurrent use.
type Choices struct {
	byKind map[Kind]Distribution
}

// NewChoices returns a Choices holding ds. With no arguments it holds
// every built-in family. A later distribution replaces an earlier one
// of the same Kind.
func NewChoices(ds ...Distribution) *Choices {
	if len(ds) == 0 {
		ds = Families()
	}
	c := &Choices{byKind: make(map[Kind]Distribution, len(ds))}
	for _, d := range ds {
		c.byKind[d.Kind()] = d
	}
	return c
}

// Lookup returns the distribution registered for k, or an error
// wrapping ErrUndefinedDistribution.
func (c *Choices) Lookup(k Kind) (Distribution, error) {
	d, ok := c.byKind[k]
	if !ok {
		return nil, fmt.Errorf("%w: no distribution registered for %v", ErrUndefinedDistribution, k)
	}
	return d, nil
}

// Kinds returns the registered kinds in increasing order.
func (c *Choices) Kinds() []Kind {
	ks := make([]Kind, 0, len(c.byKind))
	for k := range c.byKind {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// Group splits params by Kind. It returns the distinct kinds in
// increasing order and, for each, the row indexes of that kind.
func (c *Choices) Group(params Params) ([]Kind, map[Kind][]int, error) {
	rows := make(map[Kind][]int)
	for i, p := range params {
		if _, ok := c.byKind[p.Kind]; !ok {
			return nil, nil, paramErrorf(ErrUndefinedDistribution, i, "no distribution registered for %v", p.Kind)
		}
		rows[p.Kind] = append(rows[p.Kind], i)
	}
	ks := make([]Kind, 0, len(rows))
	for k := range rows {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks, rows, nil
}
