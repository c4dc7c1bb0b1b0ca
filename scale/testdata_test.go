package scale_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/ndarray"
)

// chem is the copper-in-wholemeal-flour sample from Venables & Ripley
// (2002), §5.5: 24 determinations with one gross outlier (28.95). It is
// the classical fixture for robust scale estimators.
var chem = []float64{
	2.20, 2.20, 2.4, 2.4, 2.5, 2.7, 2.8, 2.9, 3.03,
	3.03, 3.10, 3.37, 3.4, 3.4, 3.4, 3.5, 3.6, 3.7, 3.7, 3.7, 3.7,
	3.77, 5.28, 28.95,
}

// tukeyRegression is a standard-normal sample of 40 with its first two
// observations replaced by 2.0, preserved verbatim so the fixed-point
// scale estimate can be pinned to full precision.
var tukeyRegression = []float64{
	2, 2, 0.055447754768981311, -0.016021905948142099,
	0.49949733846348043, 0.56048876449010776, 0.592000099699039, 0.42971137147457872,
	0.21999276382132754, 0.33876055260425919, 1.3307324033802153, 1.3023696606133701,
	1.1647051955811736, -0.040584568413495489, -0.46790267263544788, 0.58919109703143258,
	0.24968627866868062, 0.1938797494916768, 2.0966765296737528, -0.64200633653782946,
	0.14665925932846763, 0.97737815628174818, 0.71041868874990843, -0.13040977614392527,
	-1.1914527253204148, 1.6933883176087081, -1.9358556276441954, 0.65660102129794484,
	-1.6863769045453805, 0.054619128174335313, -1.6628644635765943, 0.87046413701939795,
	-0.55171847544359265, 1.7799237308066105, -0.44505818144048404, 1.1545423878050793,
	-0.2344074587989787, -1.2496334382676335, -0.15053629559813295, 1.385875396701111,
}

// chemArray wraps the chem fixture.
func chemArray(t *testing.T) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromSlice(chem)
	require.NoError(t, err)

	return a
}

// normalArray builds a deterministic pseudo-normal array with the given
// shape and sigma.
func normalArray(t *testing.T, seed int64, sigma float64, shape ...int) *ndarray.Array {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = sigma * rng.NormFloat64()
	}
	a, err := ndarray.FromData(data, shape...)
	require.NoError(t, err)

	return a
}

// scalarOf unwraps a one-element result array.
func scalarOf(t *testing.T, a *ndarray.Array) float64 {
	t.Helper()
	v, err := a.Scalar()
	require.NoError(t, err)

	return v
}
