package scale

import (
	"github.com/katalvlaran/robust/ndarray"
)

// NormalConsistency is Φ⁻¹(3/4), the constant that makes the median
// absolute deviation consistent for sigma at the normal distribution.
const NormalConsistency = 0.6744897501960817

// MADOptions configures the median-absolute-deviation estimator.
//
//   - C: consistency constant the raw MAD is divided by; 0 selects
//     NormalConsistency. Must not be negative.
//   - Axis: reduction axis; the zero value reduces along axis 0, and
//     ndarray.Flat reduces the whole array to a scalar.
//   - Center: tagged centering choice; the zero value is MedianCenter.
//   - Workers: slices are processed concurrently when > 1.
type MADOptions struct {
	C       float64
	Axis    ndarray.Axis
	Center  Center
	Workers int
}

// DefaultMADOptions returns the conventional configuration: normal
// consistency, axis 0, median centering, sequential.
func DefaultMADOptions() MADOptions {
	return MADOptions{C: NormalConsistency}
}

// MAD computes the median absolute deviation of x along the configured
// axis:
//
//	median(|x - center|) / C
//
// The result has the reduction axis removed; a 1-D input (or ndarray.Flat)
// yields a scalar array. A constant slice yields exactly 0 — MAD is the
// only estimator here that reports degeneracy instead of recovering
// from it.
//
// A nil opts means DefaultMADOptions().
func MAD(x *ndarray.Array, opts *MADOptions) (*ndarray.Array, error) {
	if err := validateSample(x); err != nil {
		return nil, err
	}
	o := DefaultMADOptions()
	if opts != nil {
		o = *opts
		if o.C == 0 {
			o.C = NormalConsistency
		}
	}
	if o.C < 0 {
		return nil, ErrBadConfig
	}

	if o.Axis.IsFlat() || x.Rank() <= 1 {
		if !o.Axis.IsFlat() {
			// A 1-D reduction must still validate its axis.
			if _, err := o.Axis.Resolve(1); err != nil {
				return nil, err
			}
		}

		return ndarray.Scalar(madSlice(flatten1D(x), o.C, o.Center))
	}

	k, err := o.Axis.Resolve(x.Rank())
	if err != nil {
		return nil, err
	}

	return x.ReduceAxis(k, o.Workers, func(slice []float64) float64 {
		return madSlice(slice, o.C, o.Center)
	})
}
