package scale

import "gonum.org/v1/gonum/stat"

// CenterKind tags the centering strategy of an estimator.
type CenterKind int

const (
	// CenterMedian centers each slice on its median (the default).
	CenterMedian CenterKind = iota

	// CenterMean centers each slice on its arithmetic mean.
	CenterMean

	// CenterValue centers on a fixed literal value (e.g. 0 for deviations
	// about the origin).
	CenterValue

	// CenterFunc centers on the result of a caller-supplied reducer.
	CenterFunc
)

// Center is an explicit, tagged centering choice. The zero value is
// CenterMedian. Using a tagged value instead of an optional callback keeps
// the default immutable and self-describing.
type Center struct {
	kind  CenterKind
	value float64
	fn    func([]float64) float64
}

// MedianCenter centers each slice on its median.
func MedianCenter() Center { return Center{kind: CenterMedian} }

// MeanCenter centers each slice on its arithmetic mean.
func MeanCenter() Center { return Center{kind: CenterMean} }

// ValueCenter centers every slice on the fixed value v.
func ValueCenter(v float64) Center { return Center{kind: CenterValue, value: v} }

// FuncCenter centers each slice on fn(slice). fn must be pure; it may
// read but not retain the slice.
func FuncCenter(fn func([]float64) float64) Center { return Center{kind: CenterFunc, fn: fn} }

// Kind returns the tag of the centering choice.
func (c Center) Kind() CenterKind { return c.kind }

// of evaluates the center for one slice.
func (c Center) of(slice []float64) float64 {
	switch c.kind {
	case CenterMean:
		return stat.Mean(slice, nil)
	case CenterValue:
		return c.value
	case CenterFunc:
		return c.fn(slice)
	default:
		return median(slice)
	}
}
