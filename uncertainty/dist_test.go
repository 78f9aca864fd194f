// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/aclements/go-uncertainty/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func seeded() *random.Generator {
	return random.New(111111)
}

func TestUndefined(t *testing.T) {
	params := makeParams(1)
	_, err := Undefined{}.CDF(params, mat.NewVecDense(1, []float64{0.3}))
	require.ErrorIs(t, err, ErrUndefinedDistribution)

	params = makeParams(2)
	params[0].Loc, params[1].Loc = 9, 9
	rv, err := Undefined{}.RandomVariables(params, 3, nil)
	require.NoError(t, err)
	r, c := rv.Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.True(t, allEqual(rv, 9))

	pct := mat.NewDense(2, 10, seeded().Uniform(20))
	ppf, err := Undefined{}.PPF(params, pct)
	require.NoError(t, err)
	r, c = ppf.Dims()
	assert.Equal(t, [2]int{2, 10}, [2]int{r, c})
	assert.True(t, allEqual(ppf, 9))

	// Bounds are meaningless for a point mass.
	params[0].Minimum = Some(100)
	assert.NoError(t, Undefined{}.Validate(params))
	params[0].Loc = nan
	assert.ErrorIs(t, Undefined{}.Validate(params), ErrInvalidParams)
}

func TestNoUncertainty(t *testing.T) {
	params := makeParams(1)
	params[0].Loc = 2
	cdf, err := NoUncertainty{}.CDF(params, mat.NewDense(1, 3, []float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, cdf.RawRowView(0))

	rv, err := NoUncertainty{}.RandomVariables(params, 4, nil)
	require.NoError(t, err)
	assert.True(t, allEqual(rv, 2))
}

func TestNormal(t *testing.T) {
	params := makeParams(2)
	params[0].Loc, params[0].Scale = 0, Some(1)
	params[1].Loc, params[1].Scale = 10, Some(2)
	require.NoError(t, Normal{}.Validate(params))

	cdf, err := Normal{}.CDF(params, mat.NewVecDense(2, []float64{0, 12}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cdf.At(0, 0), 1e-12)
	assert.InDelta(t, 0.8413447460685429, cdf.At(1, 0), 1e-9)

	ppf, err := Normal{}.PPF(params, mat.NewDense(2, 2, []float64{0.5, 0.975, 0.5, 0.025}))
	require.NoError(t, err)
	assert.InDelta(t, 0, ppf.At(0, 0), 1e-9)
	assert.InDelta(t, 1.959963984540054, ppf.At(0, 1), 1e-6)
	assert.InDelta(t, 10, ppf.At(1, 0), 1e-9)
	assert.InDelta(t, 10-2*1.959963984540054, ppf.At(1, 1), 1e-5)

	rv, err := Normal{}.RandomVariables(params, 50000, seeded())
	require.NoError(t, err)
	mean, std := stat.MeanStdDev(rv.RawRowView(1), nil)
	assert.InDelta(t, 10, mean, 0.05)
	assert.InDelta(t, 2, std, 0.05)

	params[0].Scale = None
	assert.ErrorIs(t, Normal{}.Validate(params), ErrInvalidParams)
	params[0].Scale = Some(-1)
	assert.ErrorIs(t, Normal{}.Validate(params), ErrInvalidParams)
}

func TestPPFRejectsPercentages(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Scale = 0, Some(1)
	for _, q := range []float64{-0.1, 1.1, nan} {
		_, err := Normal{}.PPF(params, mat.NewVecDense(1, []float64{q}))
		assert.ErrorIs(t, err, ErrInvalidParams, "q=%v", q)
	}
}

func TestRandomVariablesSize(t *testing.T) {
	rows := validRows()
	point := NewParams(1)
	point[0].Loc = 1
	rows[Undefined{}] = point[0]
	for d, row := range rows {
		_, err := d.RandomVariables(Params{row}, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidParams, "%v", d.Kind())
	}
}

func TestSeededReproducible(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Scale = 1, Some(0.5)
	a, err := Lognormal{}.RandomVariables(params, 100, random.New(5))
	require.NoError(t, err)
	b, err := Lognormal{}.RandomVariables(params, 100, random.New(5))
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))
}

// validRows returns a valid single-row parameterization of every
// family with a continuous or discrete CDF.
func validRows() map[Distribution]Param {
	p := func(f func(p *Param)) Param {
		ps := NewParams(1)
		f(&ps[0])
		return ps[0]
	}
	return map[Distribution]Param{
		Normal{}: p(func(p *Param) { p.Loc, p.Scale = 3, Some(2) }),
		Lognormal{}: p(func(p *Param) {
			p.Loc, p.Scale = 0.5, Some(0.4)
		}),
		Uniform{}: p(func(p *Param) { p.Loc, p.Minimum, p.Maximum = 1.5, Some(1), Some(4) }),
		Triangular{}: p(func(p *Param) {
			p.Loc, p.Minimum, p.Maximum = 3, Some(1), Some(4)
		}),
		Weibull{}: p(func(p *Param) { p.Loc, p.Scale, p.Shape = 1, Some(2), Some(1.5) }),
		Gamma{}:   p(func(p *Param) { p.Loc, p.Scale, p.Shape = 0, Some(2), Some(3) }),
		Beta{}: p(func(p *Param) {
			p.Loc, p.Shape, p.Minimum, p.Maximum = 2, Some(5), Some(10), Some(20)
		}),
		GeneralizedExtremeValue{}: p(func(p *Param) { p.Loc, p.Scale, p.Shape = 2, Some(1), Some(0.2) }),
		StudentsT{}:               p(func(p *Param) { p.Loc, p.Scale, p.Shape = 1, Some(2), Some(5) }),
	}
}

func TestCDFInvertsPPF(t *testing.T) {
	qs := []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99}
	for d, row := range validRows() {
		t.Run(d.Kind().String(), func(t *testing.T) {
			params := Params{row}
			require.NoError(t, d.Validate(params))
			x, err := d.PPF(params, mat.NewDense(1, len(qs), append([]float64(nil), qs...)))
			require.NoError(t, err)
			q, err := d.CDF(params, x)
			require.NoError(t, err)
			for j, want := range qs {
				if !aeq(want, q.At(0, j)) {
					t.Errorf("CDF(PPF(%v)) = %v", want, q.At(0, j))
				}
			}
			assert.True(t, sort.Float64sAreSorted(x.RawRowView(0)), "PPF is not monotone: %v", x.RawRowView(0))
		})
	}
}

func TestSampleMedians(t *testing.T) {
	for d, row := range validRows() {
		t.Run(d.Kind().String(), func(t *testing.T) {
			params := Params{row, row}
			rv, err := d.RandomVariables(params, 20000, seeded())
			require.NoError(t, err)
			med, err := d.PPF(params, mat.NewVecDense(2, []float64{0.5, 0.5}))
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				xs := append([]float64(nil), rv.RawRowView(i)...)
				// Fraction of the sample below the true median.
				below := 0
				for _, x := range xs {
					if x < med.At(i, 0) {
						below++
					}
				}
				assert.InDelta(t, 0.5, float64(below)/float64(len(xs)), 0.02)
			}
		})
	}
}

func TestNegativeLognormal(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Scale, params[0].Negative = 0, Some(1), true
	params[0].Minimum, params[0].Maximum = Some(-10), Some(-0.1)
	require.NoError(t, Lognormal{}.Validate(params))

	rv, err := Lognormal{}.RandomVariables(params, 1000, seeded())
	require.NoError(t, err)
	for _, x := range rv.RawRowView(0) {
		require.Less(t, x, 0.0)
	}
	cdf, err := Lognormal{}.CDF(params, mat.NewVecDense(1, []float64{-1}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cdf.At(0, 0), 1e-9)
	q, err := Lognormal{}.PPF(params, mat.NewVecDense(1, []float64{0.5}))
	require.NoError(t, err)
	assert.InDelta(t, -1, q.At(0, 0), 1e-9)

	// Bounds are checked against the signed median, -1.
	params[0].Minimum, params[0].Maximum = Some(0.1), Some(10)
	assert.ErrorIs(t, Lognormal{}.Validate(params), ErrImproperBounds)
}

func TestBernoulli(t *testing.T) {
	params := makeParams(2)
	params[0].Loc = 0.3
	params[1].Loc, params[1].Minimum, params[1].Maximum = 7.5, Some(5), Some(15)
	require.NoError(t, Bernoulli{}.Validate(params))

	rv, err := Bernoulli{}.RandomVariables(params, 20000, seeded())
	require.NoError(t, err)
	assert.InDelta(t, 0.3, stat.Mean(rv.RawRowView(0), nil), 0.02)
	for _, x := range rv.RawRowView(1) {
		require.True(t, x == 5 || x == 15, "unexpected outcome %v", x)
	}
	assert.InDelta(t, 7.5, stat.Mean(rv.RawRowView(1), nil), 0.2)

	cdf, err := Bernoulli{}.CDF(params, mat.NewDense(2, 3, []float64{-1, 0.5, 1, 4, 10, 15}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.7, 1}, cdf.RawRowView(0))
	assert.Equal(t, []float64{0, 0.75, 1}, cdf.RawRowView(1))

	params[0].Loc = 1.5
	assert.ErrorIs(t, Bernoulli{}.Validate(params), ErrInvalidParams)
}

func TestDiscreteUniform(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Maximum = 1, Some(3)
	require.NoError(t, DiscreteUniform{}.Validate(params))

	rv, err := DiscreteUniform{}.RandomVariables(params, 3000, seeded())
	require.NoError(t, err)
	counts := map[float64]int{}
	for _, x := range rv.RawRowView(0) {
		counts[x]++
	}
	require.Len(t, counts, 3)
	for v, n := range counts {
		assert.Contains(t, []float64{0, 1, 2}, v)
		assert.InDelta(t, 1000, n, 100)
	}

	cdf, err := DiscreteUniform{}.CDF(params, mat.NewDense(1, 4, []float64{-0.5, 0, 1.5, 7}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, cdf.RawRowView(0), 1e-12)

	ppf, err := DiscreteUniform{}.PPF(params, mat.NewDense(1, 4, []float64{0, 1.0 / 3, 0.5, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 2}, ppf.RawRowView(0))

	params[0].Maximum = None
	_, err = DiscreteUniform{}.RandomVariables(params, 3, nil)
	assert.ErrorIs(t, err, ErrImproperBounds)
}

func TestSupportFamiliesNeedBounds(t *testing.T) {
	params := makeParams(1)
	params[0].Loc = 2
	params[0].Minimum = Some(1)
	for _, d := range []Distribution{Uniform{}, Triangular{}} {
		assert.ErrorIs(t, d.Validate(params), ErrImproperBounds, "%v", d.Kind())
	}
	_, err := Triangular{}.RandomVariables(params, 10, nil)
	assert.ErrorIs(t, err, ErrImproperBounds)
}

func TestGumbel(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Scale = 0, Some(1)
	q, err := GeneralizedExtremeValue{}.PPF(params, mat.NewVecDense(1, []float64{math.Exp(-1)}))
	require.NoError(t, err)
	assert.InDelta(t, 0, q.At(0, 0), 1e-12)
}

func TestGEVRandomVariablesFinite(t *testing.T) {
	params := makeParams(2)
	params[0].Loc, params[0].Scale = 0, Some(1)
	params[1].Loc, params[1].Scale, params[1].Shape = 0, Some(1), Some(0.3)

	// The ends of [0, 1] map to infinity.
	q, err := GeneralizedExtremeValue{}.PPF(params, mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.At(0, 0), 1))
	assert.True(t, math.IsInf(q.At(1, 0), 1))

	rv, err := GeneralizedExtremeValue{}.RandomVariables(params, 20000, seeded())
	require.NoError(t, err)
	for i := range params {
		for _, x := range rv.RawRowView(i) {
			require.False(t, math.IsInf(x, 0) || math.IsNaN(x), "row %d drew %v", i, x)
		}
	}
}

func TestDiscreteUniformRange(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Maximum = 0, Some(1e19)
	assert.ErrorIs(t, DiscreteUniform{}.Validate(params), ErrImproperBounds)
	_, err := DiscreteUniform{}.RandomVariables(params, 3, seeded())
	assert.ErrorIs(t, err, ErrImproperBounds)

	params[0].Maximum = Some(math.MaxInt32)
	assert.NoError(t, DiscreteUniform{}.Validate(params))
}

func TestShapeFamiliesCheckShape(t *testing.T) {
	params := makeParams(1)
	params[0].Loc, params[0].Scale = 1, Some(1)
	for _, d := range []Distribution{Weibull{}, Gamma{}, Beta{}, StudentsT{}} {
		t.Run(fmt.Sprint(d.Kind()), func(t *testing.T) {
			assert.ErrorIs(t, d.Validate(params), ErrInvalidParams)
			_, err := d.RandomVariables(params, 5, nil)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}
