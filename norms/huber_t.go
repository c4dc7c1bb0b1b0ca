package norms

import "math"

// HuberT is Huber's monotone influence function: quadratic loss for
// |z| <= T, linear beyond. The default tuning constant T = 1.345 gives
// 95% efficiency at the normal distribution.
type HuberT struct {
	// T is the clipping constant; must be positive.
	T float64
}

// NewHuberT returns a HuberT with the standard tuning constant 1.345.
func NewHuberT() HuberT { return HuberT{T: 1.345} }

// Rho returns z²/2 for |z| <= T and T|z| - T²/2 beyond.
func (h HuberT) Rho(z float64) float64 {
	az := math.Abs(z)
	if az <= h.T {
		return 0.5 * z * z
	}

	return h.T*az - 0.5*h.T*h.T
}

// Psi clips z to [-T, T].
func (h HuberT) Psi(z float64) float64 {
	if z < -h.T {
		return -h.T
	}
	if z > h.T {
		return h.T
	}

	return z
}

// Weight is 1 inside the clip region and T/|z| outside.
func (h HuberT) Weight(z float64) float64 {
	az := math.Abs(z)
	if az <= h.T {
		return 1
	}

	return h.T / az
}

// PsiDeriv is 1 inside the clip region and 0 outside.
func (h HuberT) PsiDeriv(z float64) float64 {
	if math.Abs(z) <= h.T {
		return 1
	}

	return 0
}
