// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uncertainty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRoundTrip(t *testing.T) {
	for _, d := range Families() {
		k, err := ParseKind(d.Kind().String())
		require.NoError(t, err)
		assert.Equal(t, d.Kind(), k)
	}
	_, err := ParseKind("cauchy")
	assert.ErrorIs(t, err, ErrUndefinedDistribution)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestChoices(t *testing.T) {
	c := NewChoices()
	require.Len(t, c.Kinds(), len(Families()))
	for i, k := range c.Kinds() {
		assert.Equal(t, Kind(i), k)
		d, err := c.Lookup(k)
		require.NoError(t, err)
		assert.Equal(t, k, d.Kind())
	}

	only := NewChoices(Normal{}, Uniform{})
	assert.Equal(t, []Kind{KindNormal, KindUniform}, only.Kinds())
	_, err := only.Lookup(KindGamma)
	assert.ErrorIs(t, err, ErrUndefinedDistribution)
}

func TestChoicesGroup(t *testing.T) {
	params := NewParams(4)
	params[0].Kind = KindNormal
	params[1].Kind = KindUndefined
	params[2].Kind = KindNormal
	params[3].Kind = KindUniform

	kinds, rows, err := NewChoices().Group(params)
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindUndefined, KindNormal, KindUniform}, kinds)
	assert.Equal(t, []int{0, 2}, rows[KindNormal])
	assert.Equal(t, []int{1}, rows[KindUndefined])

	_, _, err = NewChoices(Normal{}).Group(params)
	var pe *ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Row)
}
