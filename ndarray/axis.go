package ndarray

// Axis selects the reduction dimension of an estimator.
//
// The zero value reduces along axis 0, which is the conventional default.
// Along(k) selects dimension k, with negative k counted from the end
// (Along(-1) is the last dimension). Flat reduces over the entire
// flattened array, yielding a scalar.
type Axis struct {
	k    int
	flat bool
}

// Along selects dimension k as the reduction axis. Negative k counts from
// the end. Validity against a concrete rank is checked by Resolve.
func Along(k int) Axis { return Axis{k: k} }

// Flat reduces over the whole array regardless of its shape.
var Flat = Axis{flat: true}

// IsFlat reports whether the axis means "flatten everything".
func (ax Axis) IsFlat() bool { return ax.flat }

// Resolve maps the axis onto a concrete rank, normalizing negative
// indices. It returns ErrInvalidAxis when the axis lies outside
// [-rank, rank) or when called on Flat.
func (ax Axis) Resolve(rank int) (int, error) {
	if ax.flat {
		return 0, ErrInvalidAxis
	}
	k := ax.k
	if k < 0 {
		k += rank
	}
	if k < 0 || k >= rank {
		return 0, ErrInvalidAxis
	}

	return k, nil
}
