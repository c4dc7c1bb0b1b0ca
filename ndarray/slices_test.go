package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/ndarray"
)

// cube234 builds a 2x3x4 array holding 0..23 in row-major order.
func cube234(t *testing.T) *ndarray.Array {
	t.Helper()
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	a, err := ndarray.FromData(data, 2, 3, 4)
	require.NoError(t, err)

	return a
}

// TestCopySlice_MiddleAxis pins the gather pattern along a middle axis.
func TestCopySlice_MiddleAxis(t *testing.T) {
	a := cube234(t)

	n, err := a.NumSlices(1)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	m, err := a.SliceLen(1)
	require.NoError(t, err)
	assert.Equal(t, 3, m)

	// Slice 5 along axis 1 is (outer=1, inner=1): elements 13, 17, 21.
	s, err := a.CopySlice(1, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{13, 17, 21}, s)

	// Slice 0 along axis 0 runs down the first dimension: 0 and 12.
	s, err = a.CopySlice(0, 0, s)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 12}, s)

	// Slice 1 along the last axis is the second row: 4..7.
	s, err = a.CopySlice(2, 1, s)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7}, s)
}

// TestCopySlice_Errors covers invalid axis and slice index.
func TestCopySlice_Errors(t *testing.T) {
	a := cube234(t)

	_, err := a.CopySlice(3, 0, nil)
	assert.ErrorIs(t, err, ndarray.ErrInvalidAxis)

	_, err = a.CopySlice(0, 12, nil)
	assert.ErrorIs(t, err, ndarray.ErrOutOfRange)
}

// TestReduceAxis_SumShapes reduces every axis of the cube with a sum and
// checks both shape and content against hand-computed values.
func TestReduceAxis_SumShapes(t *testing.T) {
	a := cube234(t)
	sum := func(s []float64) float64 {
		total := 0.0
		for _, v := range s {
			total += v
		}

		return total
	}

	r, err := a.ReduceAxis(2, 1, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, r.Shape())
	assert.Equal(t, []float64{6, 22, 38, 54, 70, 86}, r.Values())

	r, err = a.ReduceAxis(0, 1, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, r.Shape())
	v, err := r.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v) // 0 + 12

	r, err = a.ReduceAxis(1, 1, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, r.Shape())
	v, err = r.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 51.0, v) // 13 + 17 + 21
}

// TestReduceAxis_1DToScalar ensures a vector reduces to a rank-0 array.
func TestReduceAxis_1DToScalar(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	r, err := a.ReduceAxis(0, 1, func(s []float64) float64 { return float64(len(s)) })
	require.NoError(t, err)
	assert.Equal(t, 0, r.Rank())

	v, err := r.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

// TestEachSlice_ParallelMatchesSequential fans the same reduction over
// several workers and requires bit-identical, axis-ordered output.
func TestEachSlice_ParallelMatchesSequential(t *testing.T) {
	data := make([]float64, 6*7*8)
	for i := range data {
		data[i] = float64((i*2654435761)%1000) / 17
	}
	a, err := ndarray.FromData(data, 6, 7, 8)
	require.NoError(t, err)

	for axis := 0; axis < 3; axis++ {
		n, err := a.NumSlices(axis)
		require.NoError(t, err)

		seq := make([]float64, n)
		require.NoError(t, a.EachSlice(axis, 1, func(idx int, s []float64) {
			total := 0.0
			for _, v := range s {
				total += v * v
			}
			seq[idx] = total
		}))

		par := make([]float64, n)
		require.NoError(t, a.EachSlice(axis, 4, func(idx int, s []float64) {
			total := 0.0
			for _, v := range s {
				total += v * v
			}
			par[idx] = total
		}))

		assert.Equal(t, seq, par, "axis %d: parallel reduction must be deterministic", axis)
	}
}

// TestEachSlice_CallbackOwnsBuffer ensures the callback may freely
// overwrite the slice it receives.
func TestEachSlice_CallbackOwnsBuffer(t *testing.T) {
	a := cube234(t)
	require.NoError(t, a.EachSlice(0, 1, func(idx int, s []float64) {
		for i := range s {
			s[i] = -1
		}
	}))

	v, err := a.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "callback writes must not reach the array")
}

// TestReducedShape removes the right dimension.
func TestReducedShape(t *testing.T) {
	assert.Equal(t, []int{3, 4}, ndarray.ReducedShape([]int{2, 3, 4}, 0))
	assert.Equal(t, []int{2, 4}, ndarray.ReducedShape([]int{2, 3, 4}, 1))
	assert.Equal(t, []int{2, 3}, ndarray.ReducedShape([]int{2, 3, 4}, 2))
	assert.Empty(t, ndarray.ReducedShape([]int{5}, 0))
}
