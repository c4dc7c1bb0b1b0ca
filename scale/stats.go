package scale

import (
	"math"
	"sort"

	"github.com/katalvlaran/robust/ndarray"
)

// median returns the middle order statistic of xs (the average of the two
// middle values for even lengths), without modifying xs.
func median(xs []float64) float64 {
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}

	return 0.5 * (cp[mid-1] + cp[mid])
}

// madSlice computes the median absolute deviation of one slice about the
// given center, divided by the consistency constant c.
func madSlice(xs []float64, c float64, center Center) float64 {
	cv := center.of(xs)
	dev := make([]float64, len(xs))
	for i, v := range xs {
		dev[i] = math.Abs(v-cv) / c
	}
	sort.Float64s(dev)
	mid := len(dev) / 2
	if len(dev)%2 == 1 {
		return dev[mid]
	}

	return 0.5 * (dev[mid-1] + dev[mid])
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// validateSample rejects nil and empty inputs before any reduction runs.
func validateSample(x *ndarray.Array) error {
	if x == nil {
		return ErrNilSample
	}
	if x.Size() == 0 {
		return ErrEmptySample
	}

	return nil
}

// flatten1D returns the whole array as a single 1-D slice view copy.
func flatten1D(x *ndarray.Array) []float64 {
	return x.Values()
}
