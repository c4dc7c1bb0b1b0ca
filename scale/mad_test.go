package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/ndarray"
	"github.com/katalvlaran/robust/scale"
)

// TestMAD_Chem pins the classical literal: mad(chem) ≈ 0.52632.
func TestMAD_Chem(t *testing.T) {
	m, err := scale.MAD(chemArray(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rank(), "1-D input must reduce to a scalar")
	assert.InDelta(t, 0.52632, scalarOf(t, m), 1e-4)
}

// TestMAD_CenterChoices covers the tagged center variants.
func TestMAD_CenterChoices(t *testing.T) {
	x := chemArray(t)

	opts := scale.DefaultMADOptions()
	opts.Center = scale.ValueCenter(0)
	m, err := scale.MAD(x, &opts)
	require.NoError(t, err)
	assert.Greater(t, scalarOf(t, m), 0.0)

	opts.Center = scale.MeanCenter()
	mm, err := scale.MAD(x, &opts)
	require.NoError(t, err)
	assert.Greater(t, scalarOf(t, mm), 0.0)

	// A custom reducer returning the median must match the default.
	opts.Center = scale.FuncCenter(func(s []float64) float64 {
		return 3.385 // the chem median
	})
	mc, err := scale.MAD(x, &opts)
	require.NoError(t, err)
	md, err := scale.MAD(x, nil)
	require.NoError(t, err)
	assert.Equal(t, scalarOf(t, md), scalarOf(t, mc))
}

// TestMAD_Shapes verifies axis semantics for 2-D and 3-D input.
func TestMAD_Shapes(t *testing.T) {
	x2 := normalArray(t, 1, 1, 40, 10)
	x3 := normalArray(t, 2, 1, 4, 5, 6)

	cases := []struct {
		in    *ndarray.Array
		axis  ndarray.Axis
		shape []int
	}{
		{x2, ndarray.Along(0), []int{10}},
		{x2, ndarray.Along(1), []int{40}},
		{x3, ndarray.Along(0), []int{5, 6}},
		{x3, ndarray.Along(1), []int{4, 6}},
		{x3, ndarray.Along(2), []int{4, 5}},
		{x3, ndarray.Along(-1), []int{4, 5}},
	}
	for _, tc := range cases {
		opts := scale.DefaultMADOptions()
		opts.Axis = tc.axis
		m, err := scale.MAD(tc.in, &opts)
		require.NoError(t, err)
		assert.Equal(t, tc.shape, m.Shape())
	}

	opts := scale.DefaultMADOptions()
	opts.Axis = ndarray.Flat
	m, err := scale.MAD(x3, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rank())
}

// TestMAD_NegativeLastAxisMatchesExplicit ensures Along(-1) and the
// explicit last axis agree elementwise.
func TestMAD_NegativeLastAxisMatchesExplicit(t *testing.T) {
	x := normalArray(t, 3, 1, 4, 5, 6)

	a := scale.DefaultMADOptions()
	a.Axis = ndarray.Along(2)
	ma, err := scale.MAD(x, &a)
	require.NoError(t, err)

	b := scale.DefaultMADOptions()
	b.Axis = ndarray.Along(-1)
	mb, err := scale.MAD(x, &b)
	require.NoError(t, err)

	assert.Equal(t, ma.Values(), mb.Values())
}

// TestMAD_InvalidAxis is fatal: no partial result.
func TestMAD_InvalidAxis(t *testing.T) {
	x := normalArray(t, 4, 1, 4, 5)

	opts := scale.DefaultMADOptions()
	opts.Axis = ndarray.Along(2)
	m, err := scale.MAD(x, &opts)
	assert.ErrorIs(t, err, ndarray.ErrInvalidAxis)
	assert.Nil(t, m)
}

// TestMAD_AffineEquivariance: mad(a·x + b) = |a|·mad(x).
func TestMAD_AffineEquivariance(t *testing.T) {
	x := chemArray(t)
	base, err := scale.MAD(x, nil)
	require.NoError(t, err)

	vals := x.Values()
	for i := range vals {
		vals[i] = -2.5*vals[i] + 7
	}
	y, err := ndarray.FromSlice(vals)
	require.NoError(t, err)
	m, err := scale.MAD(y, nil)
	require.NoError(t, err)

	assert.InEpsilon(t, 2.5*scalarOf(t, base), scalarOf(t, m), 1e-12)
}

// TestMAD_DegenerateConstant: a constant sample has zero spread, and MAD
// reports exactly that.
func TestMAD_DegenerateConstant(t *testing.T) {
	x, err := ndarray.FromSlice([]float64{3, 3, 3, 3, 3})
	require.NoError(t, err)
	m, err := scale.MAD(x, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scalarOf(t, m))
}

// TestMAD_SingleObservation: a length-1 axis yields MAD 0.
func TestMAD_SingleObservation(t *testing.T) {
	x, err := ndarray.FromData([]float64{5, 6, 7}, 1, 3)
	require.NoError(t, err)
	m, err := scale.MAD(x, nil) // axis 0 has size 1
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, m.Values())
}

// TestMAD_Idempotent: identical input and configuration, bit-identical
// output.
func TestMAD_Idempotent(t *testing.T) {
	x := normalArray(t, 5, 2, 30, 7)
	opts := scale.DefaultMADOptions()
	opts.Axis = ndarray.Along(0)

	a, err := scale.MAD(x, &opts)
	require.NoError(t, err)
	b, err := scale.MAD(x, &opts)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())
}

// TestMAD_ParallelMatchesSequential: Workers > 1 must not change results.
func TestMAD_ParallelMatchesSequential(t *testing.T) {
	x := normalArray(t, 6, 1, 20, 15)

	seq := scale.DefaultMADOptions()
	ms, err := scale.MAD(x, &seq)
	require.NoError(t, err)

	par := scale.DefaultMADOptions()
	par.Workers = 4
	mp, err := scale.MAD(x, &par)
	require.NoError(t, err)

	assert.Equal(t, ms.Values(), mp.Values())
}

// TestMAD_NilAndEmpty covers the fatal input errors.
func TestMAD_NilAndEmpty(t *testing.T) {
	_, err := scale.MAD(nil, nil)
	assert.ErrorIs(t, err, scale.ErrNilSample)
}
