// Package scale: sentinel error set. Estimators return these sentinels
// (wrapped with call context where useful); callers match with errors.Is.
// Axis violations surface as ndarray.ErrInvalidAxis from the reduction
// layer.

package scale

import "errors"

var (
	// ErrNilSample indicates a nil input array.
	ErrNilSample = errors.New("scale: nil sample")

	// ErrEmptySample indicates an input with no observations along the
	// reduction axis.
	ErrEmptySample = errors.New("scale: empty sample")

	// ErrInvalidTrimFraction is returned by ScaleTrimmed when alpha lies
	// outside the open interval (0, 0.5).
	ErrInvalidTrimFraction = errors.New("scale: trim fraction must be in (0, 0.5)")

	// ErrBadConfig indicates a non-positive tuning constant, tolerance or
	// iteration budget, or a missing loss function.
	ErrBadConfig = errors.New("scale: invalid configuration")
)
