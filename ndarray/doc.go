// Package ndarray provides a minimal N-dimensional float64 array built for
// axis-wise statistical reduction. It is the storage and iteration layer
// under the estimators in package scale.
//
// An Array stores its elements in a single row-major (C-order) slice, the
// same flat layout a dense matrix uses, generalized to arbitrary rank. The
// one operation everything else is built on is "reduce along axis k":
// every 1-D slice running along axis k is extracted, handed to a reducer,
// and the per-slice results are reassembled into an array with axis k
// removed.
//
// # Axis selection
//
// Estimators take an Axis value:
//
//	ndarray.Along(0)  // reduce along the first dimension (the default)
//	ndarray.Along(-1) // negative axes count from the end
//	ndarray.Flat      // flatten the whole array, reduce to one scalar
//
// An axis outside [-rank, rank) is rejected with ErrInvalidAxis before any
// computation runs.
//
// # Slice iteration
//
// EachSlice drives a reducer over every 1-D slice along an axis:
//
//	err := a.EachSlice(axis, workers, func(idx int, slice []float64) {
//	    out[idx] = median(slice)
//	})
//
// Slices along different (idx) positions are independent, so EachSlice can
// fan them out over a bounded pool of goroutines when workers > 1. Results
// are keyed by slice index, so output order never depends on scheduling.
// The slice passed to the callback is a private copy; the callback may
// sort or overwrite it freely.
//
// # Numeric policy
//
// Arrays hold finite real numbers. Constructors and Set reject NaN and
// ±Inf with ErrNaNInf; downstream reducers never need to re-validate.
package ndarray
