package norms

import "math"

// TukeyBiweight is the smooth redescending biweight influence function.
// The default tuning constant C = 4.685 gives 95% efficiency at the
// normal distribution when estimating location.
//
// Rho keeps the conventional offset form: its minimum is -C²/6 at z=0,
// it reaches 0 at |z| = C, and it is C²/6 beyond. Callers that need a
// loss anchored at rho(0) = 0 add the C²/6 recentering themselves; the
// constant is deliberately not baked in here.
type TukeyBiweight struct {
	C float64
}

// NewTukeyBiweight returns a biweight norm with the standard constant 4.685.
func NewTukeyBiweight() TukeyBiweight { return TukeyBiweight{C: 4.685} }

// Rho returns -(1-(z/C)²)³·C²/6 for |z| <= C and C²/6 beyond.
func (t TukeyBiweight) Rho(z float64) float64 {
	f := t.C * t.C / 6
	if math.Abs(z) > t.C {
		return f
	}
	u := z / t.C
	w := 1 - u*u

	return -w * w * w * f
}

// Psi returns z(1-(z/C)²)² inside [-C, C] and 0 beyond.
func (t TukeyBiweight) Psi(z float64) float64 {
	if math.Abs(z) > t.C {
		return 0
	}
	u := z / t.C
	w := 1 - u*u

	return z * w * w
}

// Weight returns (1-(z/C)²)² inside [-C, C] and 0 beyond.
func (t TukeyBiweight) Weight(z float64) float64 {
	if math.Abs(z) > t.C {
		return 0
	}
	u := z / t.C
	w := 1 - u*u

	return w * w
}

// PsiDeriv returns (1-(z/C)²)(1-5(z/C)²) inside [-C, C] and 0 beyond.
func (t TukeyBiweight) PsiDeriv(z float64) float64 {
	if math.Abs(z) > t.C {
		return 0
	}
	u := z / t.C
	u2 := u * u

	return (1 - u2) * (1 - 5*u2)
}
