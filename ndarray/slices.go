package ndarray

import "sync"

// This file implements the "reduce along axis k" primitive: iterate every
// 1-D slice running along one axis, apply a reducer, and reassemble the
// per-slice results into an array with that axis removed.
//
// For axis k of shape [d0 ... dn-1] the non-reduced dimensions are
// flattened into (outer, inner) counters with outer = d0*...*d(k-1) and
// inner = d(k+1)*...*d(n-1). Slice s = o*inner + i gathers the elements
//
//	data[(o*dk + j)*inner + i]   for j = 0 .. dk-1
//
// and writes its result at flat position s of the reduced array — exactly
// the row-major order of the reduced shape, so no permutation is needed.

// SliceLen returns the number of elements in each slice along axis
// (the size of that dimension).
func (a *Array) SliceLen(axis int) (int, error) {
	k, err := Along(axis).Resolve(a.Rank())
	if err != nil {
		return 0, arrayErrorf("SliceLen", err)
	}

	return a.shape[k], nil
}

// NumSlices returns how many 1-D slices run along axis.
func (a *Array) NumSlices(axis int) (int, error) {
	k, err := Along(axis).Resolve(a.Rank())
	if err != nil {
		return 0, arrayErrorf("NumSlices", err)
	}

	return len(a.data) / a.shape[k], nil
}

// ReducedShape returns shape with dimension axis removed. The axis must
// already be resolved (non-negative and in range).
func ReducedShape(shape []int, axis int) []int {
	out := make([]int, 0, len(shape)-1)
	out = append(out, shape[:axis]...)
	out = append(out, shape[axis+1:]...)

	return out
}

// CopySlice gathers slice idx along axis into dst, growing dst as needed,
// and returns it. Slice indices follow the row-major order of the reduced
// shape.
func (a *Array) CopySlice(axis, idx int, dst []float64) ([]float64, error) {
	k, err := Along(axis).Resolve(a.Rank())
	if err != nil {
		return nil, arrayErrorf("CopySlice", err)
	}
	n := len(a.data) / a.shape[k]
	if idx < 0 || idx >= n {
		return nil, arrayErrorf("CopySlice", ErrOutOfRange)
	}
	m := a.shape[k]
	inner := 1
	for _, d := range a.shape[k+1:] {
		inner *= d
	}
	o, i := idx/inner, idx%inner
	if cap(dst) < m {
		dst = make([]float64, m)
	}
	dst = dst[:m]
	base := o*m*inner + i
	for j := 0; j < m; j++ {
		dst[j] = a.data[base+j*inner]
	}

	return dst, nil
}

// EachSlice calls fn once per 1-D slice along axis. The slice passed to fn
// is a private copy reused between calls on the same goroutine; fn may
// sort or overwrite it, but must not retain it.
//
// With workers > 1 the slices are fanned out over a bounded pool of
// goroutines. Slices are independent and fn receives the slice index, so
// callers index their output by idx and results are deterministic
// regardless of scheduling. fn must not touch shared state without its
// own synchronization.
func (a *Array) EachSlice(axis, workers int, fn func(idx int, slice []float64)) error {
	if a == nil {
		return arrayErrorf("EachSlice", ErrNilArray)
	}
	k, err := Along(axis).Resolve(a.Rank())
	if err != nil {
		return arrayErrorf("EachSlice", err)
	}
	n := len(a.data) / a.shape[k]
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		var buf []float64
		for idx := 0; idx < n; idx++ {
			buf, _ = a.CopySlice(k, idx, buf)
			fn(idx, buf)
		}

		return nil
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			var buf []float64
			for idx := start; idx < n; idx += workers {
				buf, _ = a.CopySlice(k, idx, buf)
				fn(idx, buf)
			}
		}(w)
	}
	wg.Wait()

	return nil
}

// ReduceAxis applies a scalar reducer to every slice along axis and
// assembles the results into an array with that axis removed. A 1-D input
// reduces to a scalar (rank-0) array.
func (a *Array) ReduceAxis(axis, workers int, fn func(slice []float64) float64) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf("ReduceAxis", ErrNilArray)
	}
	k, err := Along(axis).Resolve(a.Rank())
	if err != nil {
		return nil, arrayErrorf("ReduceAxis", err)
	}
	out := make([]float64, len(a.data)/a.shape[k])
	if err = a.EachSlice(k, workers, func(idx int, slice []float64) {
		out[idx] = fn(slice)
	}); err != nil {
		return nil, err
	}

	return &Array{shape: ReducedShape(a.shape, k), data: out}, nil
}
