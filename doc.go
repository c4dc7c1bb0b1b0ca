// Package robust is a toolkit of outlier-resistant scale estimators for
// numeric samples of arbitrary dimensionality.
//
// Classical dispersion estimators (the standard deviation above all) are
// dragged arbitrarily far from the truth by a handful of corrupted
// observations. The estimators here bound the influence of any single
// observation and stay close to the uncontaminated answer on heavy-tailed
// or contaminated data.
//
// The toolkit is organized under three subpackages:
//
//	ndarray/ — N-dimensional float64 arrays with axis-wise slice reduction
//	norms/   — influence functions: HuberT, Hampel, TukeyBiweight
//	scale/   — the estimators: MAD, IterScale, Huber proposal 2, ScaleTrimmed
//
// Quick example, a sample with one wild value:
//
//	x, _ := ndarray.FromSlice([]float64{2.2, 2.4, 2.5, 2.7, 3.4, 3.7, 28.95})
//	m, err := scale.MAD(x, nil)             // robust: barely notices 28.95
//	h := scale.NewHuber()
//	res, err := h.Estimate(x, ndarray.Flat) // joint location + scale
//
// All estimators are pure functions of their input and configuration: no
// global state, no hidden mutation, bit-identical results across runs.
//
//	go get github.com/katalvlaran/robust
package robust
