// Package scale implements robust estimators of statistical dispersion
// for samples that may contain outliers.
//
// The classical standard deviation has a breakdown point of zero: a single
// corrupted observation moves it arbitrarily far. The estimators here
// trade a little efficiency at the normal distribution for resistance to a
// bounded fraction of contamination:
//
//   - MAD — median absolute deviation, the workhorse pilot estimate.
//     Breakdown point 1/2; consistent for normal sigma after division by
//     Φ⁻¹(3/4).
//   - IterScale — generic fixed-point M-estimator of scale driven by a
//     caller-supplied loss and its normal-consistency bias.
//   - Huber — Huber's proposal 2, the joint location+scale alternating
//     M-estimator, with a fast clipped-mean path for the default HuberT
//     influence and a reweighted path for any norms.Norm.
//   - ScaleTrimmed — standard deviation of a symmetrically rank-trimmed
//     subsample, bias-corrected against a reference distribution
//     (standard normal by default, Student-t or any quantile/pdf pair
//     supported).
//
// All estimators reduce an ndarray.Array along a selectable axis
// (ndarray.Along(k), negative k from the end, or ndarray.Flat for the
// whole array) and return the estimate with that axis removed. Slices are
// independent; a Workers option fans them out over a bounded goroutine
// pool with deterministic, axis-ordered results.
//
// # Error policy
//
// Fatal conditions (invalid axis, trim fraction outside (0, 0.5), empty
// input) abort with a sentinel error and no partial result. Recoverable
// conditions are handled per slice: a degenerate constant slice
// substitutes a pilot scale of 1.0, and an iteration that exhausts its
// budget reports Converged=false on the result while still returning the
// last iterate.
package scale
