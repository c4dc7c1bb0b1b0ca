package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// Array is an N-dimensional array of float64 values stored in row-major
// (C-order) flat backing storage. A rank-0 Array (empty shape) holds a
// single scalar.
type Array struct {
	shape []int     // dimension sizes; empty for a scalar
	data  []float64 // flat backing storage, length == product(shape)
}

// arrayErrorf wraps an underlying error with method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// size returns the element count implied by shape (1 for a scalar).
func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// validShape reports the first shape violation, or nil.
func validShape(shape []int) error {
	for _, d := range shape {
		if d <= 0 {
			return ErrBadShape
		}
	}

	return nil
}

// validFinite rejects NaN and ±Inf values at ingestion.
func validFinite(data []float64) error {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// New creates a zero-filled array with the given shape.
// New() with no dimensions creates a scalar holding 0.
func New(shape ...int) (*Array, error) {
	if err := validShape(shape); err != nil {
		return nil, arrayErrorf("New", err)
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Array{shape: s, data: make([]float64, size(s))}, nil
}

// FromData creates an array with the given shape from a copy of data.
// The data length must equal the product of the shape dimensions and every
// value must be finite.
func FromData(data []float64, shape ...int) (*Array, error) {
	if err := validShape(shape); err != nil {
		return nil, arrayErrorf("FromData", err)
	}
	if len(data) != size(shape) {
		return nil, arrayErrorf("FromData", ErrShapeMismatch)
	}
	if err := validFinite(data); err != nil {
		return nil, arrayErrorf("FromData", err)
	}
	s := make([]int, len(shape))
	copy(s, shape)
	d := make([]float64, len(data))
	copy(d, data)

	return &Array{shape: s, data: d}, nil
}

// FromSlice creates a 1-D array from a copy of data.
// Non-finite values return ErrNaNInf, an empty slice returns ErrEmpty.
func FromSlice(data []float64) (*Array, error) {
	if len(data) == 0 {
		return nil, arrayErrorf("FromSlice", ErrEmpty)
	}

	return FromData(data, len(data))
}

// Scalar creates a rank-0 array holding v.
func Scalar(v float64) (*Array, error) {
	if err := validFinite([]float64{v}); err != nil {
		return nil, arrayErrorf("Scalar", err)
	}

	return &Array{shape: nil, data: []float64{v}}, nil
}

// Rank returns the number of dimensions (0 for a scalar).
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)

	return s
}

// Values returns a copy of the flat row-major backing data.
func (a *Array) Values() []float64 {
	d := make([]float64, len(a.data))
	copy(d, a.data)

	return d
}

// offset computes the flat index for idx, validating rank and bounds.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*a.shape[k] + i
	}

	return off, nil
}

// At returns the element at the given multi-index. A scalar is read with
// no indices.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf("At", err)
	}

	return a.data[off], nil
}

// Set assigns v at the given multi-index. Non-finite v is rejected.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf("Set", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return arrayErrorf("Set", ErrNaNInf)
	}
	a.data[off] = v

	return nil
}

// ValueAt returns the element at flat row-major position i.
func (a *Array) ValueAt(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, arrayErrorf("ValueAt", ErrOutOfRange)
	}

	return a.data[i], nil
}

// Scalar returns the single element of a one-element array (any rank).
func (a *Array) Scalar() (float64, error) {
	if len(a.data) != 1 {
		return 0, arrayErrorf("Scalar", ErrNotScalar)
	}

	return a.data[0], nil
}

// Flatten returns a 1-D view copy of the array in row-major order.
func (a *Array) Flatten() *Array {
	d := make([]float64, len(a.data))
	copy(d, a.data)

	return &Array{shape: []int{len(d)}, data: d}
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	d := make([]float64, len(a.data))
	copy(d, a.data)

	return &Array{shape: s, data: d}
}

// String implements fmt.Stringer for debugging.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("ndarray.Array(shape=[")
	for k, d := range a.shape {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteString("], data=")
	fmt.Fprintf(&sb, "%v)", a.data)

	return sb.String()
}
