// Package ndarray: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// call context via fmt.Errorf("Op: %w", ErrX)); tests and callers match
// them with errors.Is. No operation panics on user-triggered conditions.

package ndarray

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a non-positive
	// dimension.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch is returned when the length of a data slice does not
	// equal the product of the requested shape.
	ErrShapeMismatch = errors.New("ndarray: data length does not match shape")

	// ErrOutOfRange indicates an element index outside the valid bounds of
	// its dimension, or an index list whose length differs from the rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrInvalidAxis indicates a reduction axis outside [-rank, rank).
	ErrInvalidAxis = errors.New("ndarray: axis out of range")

	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrEmpty indicates an array with no elements where at least one
	// observation is required.
	ErrEmpty = errors.New("ndarray: empty array")

	// ErrNotScalar is returned by Scalar on an array with more than one
	// element.
	ErrNotScalar = errors.New("ndarray: array is not a scalar")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion; arrays hold
	// finite reals only.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")
)
