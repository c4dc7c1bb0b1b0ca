package scale

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/robust/ndarray"
	"github.com/katalvlaran/robust/norms"
)

// Huber jointly estimates location and scale with Huber's proposal 2:
// alternate a location step on the ψ-equation with a scale step matched
// to the normal-consistency constant gamma derived from C.
//
// With Norm == nil the location step is the fast one-step fixed point for
// the default HuberT influence (clip to [mu ± C·scale], average). With a
// Norm supplied, the location step is the iteratively reweighted estimate
// norms.EstimateLocation under that norm — while C (and the gamma derived
// from it) still drive the trimming of the scale step, which is the
// established convention for this estimator.
//
// The zero value is not usable; construct with NewHuber and adjust fields
// before the first Estimate call. A Huber must not be mutated once
// estimation has started, and Estimate itself never mutates it.
type Huber struct {
	// C is the clipping constant of the joint equations (default 1.5).
	C float64

	// Tol is the relative convergence tolerance on both parameters
	// (default 1e-6).
	Tol float64

	// MaxIter is the iteration budget per slice (default 30).
	MaxIter int

	// Norm optionally replaces the location step's influence function.
	Norm norms.Norm

	// Workers processes slices concurrently when > 1.
	Workers int
}

// NewHuber returns a Huber estimator with the conventional configuration:
// C=1.5, Tol=1e-6, MaxIter=30, default HuberT location step, sequential.
func NewHuber() *Huber {
	return &Huber{C: 1.5, Tol: 1e-6, MaxIter: 30}
}

// HuberResult carries the per-slice location and scale estimates, each
// shaped like the input with the reduction axis removed. Converged is
// false when any slice exhausted the iteration budget; such slices still
// hold the last iterate.
type HuberResult struct {
	Location  *ndarray.Array
	Scale     *ndarray.Array
	Converged bool
}

// gamma is the consistency constant making the proposal-2 scale estimate
// unbiased for sigma at the normal distribution:
//
//	gamma = F + c²(1-F) - 2cφ(c)     with F = 2Φ(c)-1.
func (h *Huber) gamma() float64 {
	std := distuv.Normal{Mu: 0, Sigma: 1}
	f := 2*std.CDF(h.C) - 1

	return f + h.C*h.C*(1-f) - 2*h.C*std.Prob(h.C)
}

// Estimate reduces x along axis into joint (location, scale) estimates.
// ndarray.Flat reduces the whole array to one scalar pair.
func (h *Huber) Estimate(x *ndarray.Array, axis ndarray.Axis) (*HuberResult, error) {
	if err := validateSample(x); err != nil {
		return nil, err
	}
	if h.C <= 0 || h.Tol <= 0 || h.MaxIter <= 0 {
		return nil, ErrBadConfig
	}
	g := h.gamma()

	if axis.IsFlat() || x.Rank() <= 1 {
		if !axis.IsFlat() {
			if _, err := axis.Resolve(1); err != nil {
				return nil, err
			}
		}
		loc, s, ok := h.estimateSlice(flatten1D(x), g)
		locArr, err := ndarray.Scalar(loc)
		if err != nil {
			return nil, err
		}
		sArr, err := ndarray.Scalar(s)
		if err != nil {
			return nil, err
		}

		return &HuberResult{Location: locArr, Scale: sArr, Converged: ok}, nil
	}

	k, err := axis.Resolve(x.Rank())
	if err != nil {
		return nil, err
	}
	n, err := x.NumSlices(k)
	if err != nil {
		return nil, err
	}
	locOut := make([]float64, n)
	sOut := make([]float64, n)
	converged := make([]bool, n)
	if err = x.EachSlice(k, h.Workers, func(idx int, slice []float64) {
		locOut[idx], sOut[idx], converged[idx] = h.estimateSlice(slice, g)
	}); err != nil {
		return nil, err
	}
	shape := ndarray.ReducedShape(x.Shape(), k)
	locArr, err := ndarray.FromData(locOut, shape...)
	if err != nil {
		return nil, err
	}
	sArr, err := ndarray.FromData(sOut, shape...)
	if err != nil {
		return nil, err
	}
	all := true
	for _, ok := range converged {
		all = all && ok
	}

	return &HuberResult{Location: locArr, Scale: sArr, Converged: all}, nil
}

// estimateSlice runs the proposal-2 alternation for one slice.
//
// The scale step trims observations with |(x-mu)/scale| > C and matches
// the trimmed sum of squares about the new location against
// dof·gamma - trimmed·C², where dof = n-1 accounts for the location
// having been estimated from the same data.
func (h *Huber) estimateSlice(xs []float64, gamma float64) (loc, s float64, ok bool) {
	nobs := len(xs)
	if nobs == 1 {
		return xs[0], 0, true
	}
	dof := float64(nobs - 1)

	mu := median(xs)
	s = madSlice(xs, NormalConsistency, MedianCenter())
	if s == 0 {
		s = 1 // degenerate slice: fall back to a unit pilot scale
	}

	for iter := 0; iter < h.MaxIter; iter++ {
		var nmu float64
		if h.Norm == nil {
			lo, hi := mu-h.C*s, mu+h.C*s
			sum := 0.0
			for _, v := range xs {
				sum += clamp(v, lo, hi)
			}
			nmu = sum / float64(nobs)
		} else {
			nmu, _ = norms.EstimateLocation(xs, s, h.Norm, mu, h.MaxIter, h.Tol)
		}

		inside := 0
		num := 0.0
		for _, v := range xs {
			if math.Abs((v-mu)/s) <= h.C {
				inside++
				d := v - nmu
				num += d * d
			}
		}
		den := dof*gamma - float64(nobs-inside)*h.C*h.C
		if den <= 0 {
			// Too many observations trimmed for the scale equation to
			// have a positive solution; report the last iterate.
			return nmu, s, false
		}
		ns := math.Sqrt(num / den)
		if math.Abs(s-ns) <= ns*h.Tol && math.Abs(mu-nmu) <= ns*h.Tol {
			return nmu, ns, true
		}
		mu, s = nmu, ns
	}

	return mu, s, false
}
