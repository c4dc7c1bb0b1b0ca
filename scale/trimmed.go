package scale

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/robust/ndarray"
)

// ReferenceDistribution is the quantile/density pair of the distribution
// the trimmed-scale correction is computed against. distuv.Normal and
// distuv.StudentsT satisfy it directly.
type ReferenceDistribution interface {
	Quantile(p float64) float64
	Prob(x float64) float64
}

// TrimmedOptions configures the trimmed-scale estimator.
//
//   - Axis: reduction axis; zero value is axis 0, ndarray.Flat flattens.
//   - Distr: reference distribution for the consistency correction; nil
//     selects the standard normal.
//   - Center: center of the retained subsample; zero value is the median.
//   - Workers: slices are processed concurrently when > 1.
type TrimmedOptions struct {
	Axis    ndarray.Axis
	Distr   ReferenceDistribution
	Center  Center
	Workers int
}

// TrimmedResult carries the scale estimate plus trimming diagnostics.
type TrimmedResult struct {
	// Scale is the bias-corrected estimate with the reduction axis
	// removed (a scalar for 1-D or flattened input).
	Scale *ndarray.Array

	// Trimmed holds the retained observations, sorted within each slice;
	// its shape equals the input's with the reduction axis shrunk to the
	// retained count.
	Trimmed *ndarray.Array

	// Center holds the per-slice center of the retained subsample.
	Center *ndarray.Array

	// FracTrimmed is the fraction of observations actually discarded
	// (2·floor(n·alpha/2)/n; it can fall below alpha for small n).
	FracTrimmed float64
}

// ScaleTrimmed estimates scale from a symmetrically trimmed sample:
// the floor(n·alpha/2) smallest and largest order statistics of each
// slice are discarded, the root mean square of the remainder about its
// center is computed, and the result is divided by the standard deviation
// of the reference distribution truncated at the matching quantiles, so
// that a clean sample from that distribution returns its true sigma.
//
// alpha must lie in (0, 0.5); anything else is rejected with
// ErrInvalidTrimFraction before any computation. A nil opts selects
// axis 0, the standard normal reference and median centering.
func ScaleTrimmed(x *ndarray.Array, alpha float64, opts *TrimmedOptions) (*TrimmedResult, error) {
	if err := validateSample(x); err != nil {
		return nil, err
	}
	if !(alpha > 0 && alpha < 0.5) {
		return nil, ErrInvalidTrimFraction
	}
	var o TrimmedOptions
	if opts != nil {
		o = *opts
	}
	distr := o.Distr
	if distr == nil {
		distr = distuv.Normal{Mu: 0, Sigma: 1}
	}

	flat := o.Axis.IsFlat() || x.Rank() <= 1
	var (
		k   int
		err error
	)
	if flat {
		if !o.Axis.IsFlat() && x.Rank() == 1 {
			if _, err = o.Axis.Resolve(1); err != nil {
				return nil, err
			}
		}
	} else {
		if k, err = o.Axis.Resolve(x.Rank()); err != nil {
			return nil, err
		}
	}

	n := x.Size()
	if !flat {
		if n, err = x.SliceLen(k); err != nil {
			return nil, err
		}
	}
	cut := int(float64(n) * alpha / 2)
	kept := n - 2*cut
	fracTrimmed := float64(2*cut) / float64(n)

	// The correction is a property of the reference distribution and the
	// realized trim fraction, so it is computed once for all slices.
	corr := truncatedVariance(distr, fracTrimmed)

	if flat {
		xs := flatten1D(x)
		s, center, retained := trimSlice(xs, cut, o.Center, corr)
		sArr, err := ndarray.Scalar(s)
		if err != nil {
			return nil, err
		}
		cArr, err := ndarray.Scalar(center)
		if err != nil {
			return nil, err
		}
		tArr, err := ndarray.FromSlice(retained)
		if err != nil {
			return nil, err
		}

		return &TrimmedResult{Scale: sArr, Trimmed: tArr, Center: cArr, FracTrimmed: fracTrimmed}, nil
	}

	numSlices, err := x.NumSlices(k)
	if err != nil {
		return nil, err
	}
	sOut := make([]float64, numSlices)
	cOut := make([]float64, numSlices)
	tOut := make([][]float64, numSlices)
	if err = x.EachSlice(k, o.Workers, func(idx int, slice []float64) {
		s, center, retained := trimSlice(slice, cut, o.Center, corr)
		sOut[idx], cOut[idx], tOut[idx] = s, center, retained
	}); err != nil {
		return nil, err
	}

	shape := ndarray.ReducedShape(x.Shape(), k)
	sArr, err := ndarray.FromData(sOut, shape...)
	if err != nil {
		return nil, err
	}
	cArr, err := ndarray.FromData(cOut, shape...)
	if err != nil {
		return nil, err
	}
	tArr, err := scatterTrimmed(tOut, x.Shape(), k, kept)
	if err != nil {
		return nil, err
	}

	return &TrimmedResult{Scale: sArr, Trimmed: tArr, Center: cArr, FracTrimmed: fracTrimmed}, nil
}

// trimSlice sorts a copy of one slice, discards cut observations from
// each tail, and returns the corrected scale, the center used, and the
// retained (sorted) observations.
func trimSlice(xs []float64, cut int, center Center, corr float64) (float64, float64, []float64) {
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	retained := cp[cut : len(cp)-cut]

	cv := center.of(retained)
	dev := append([]float64(nil), retained...)
	floats.AddConst(-cv, dev)
	sraw := floats.Dot(dev, dev) / float64(len(dev))

	return math.Sqrt(sraw / corr), cv, retained
}

// truncatedVariance returns the second moment of the reference
// distribution truncated at its (frac/2, 1-frac/2) quantiles, normalized
// by the retained mass — the factor by which trimming shrinks the mean
// square of a clean sample.
//
// The standard normal case has the closed form
//
//	(F - 2qφ(q)) / F      with q = Φ⁻¹(1-frac/2), F = 1-frac;
//
// any other reference is integrated numerically with Gauss-Legendre
// quadrature. frac = 0 (no observation trimmed, tiny slices) integrates
// essentially the whole support and the correction approaches the
// distribution's variance.
func truncatedVariance(distr ReferenceDistribution, frac float64) float64 {
	p := 1 - frac/2
	if p >= 1 {
		p = 1 - 1e-9
	}
	q := distr.Quantile(p)
	mass := 1 - frac

	if nd, ok := distr.(distuv.Normal); ok && nd.Mu == 0 && nd.Sigma == 1 {
		return (mass - 2*q*nd.Prob(q)) / mass
	}

	m2 := quad.Fixed(func(z float64) float64 {
		return z * z * distr.Prob(z)
	}, -q, q, 400, nil, 0)

	return m2 / mass
}

// scatterTrimmed reassembles per-slice retained observations into an
// array shaped like the input with the reduction axis shrunk to kept.
func scatterTrimmed(slices [][]float64, shape []int, axis, kept int) (*ndarray.Array, error) {
	outShape := make([]int, len(shape))
	copy(outShape, shape)
	outShape[axis] = kept
	inner := 1
	for _, d := range shape[axis+1:] {
		inner *= d
	}
	data := make([]float64, kept*len(slices))
	for idx, retained := range slices {
		o, i := idx/inner, idx%inner
		for j, v := range retained {
			data[(o*kept+j)*inner+i] = v
		}
	}

	return ndarray.FromData(data, outShape...)
}
