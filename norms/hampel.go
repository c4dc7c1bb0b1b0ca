package norms

import "math"

// Hampel is the three-part redescending influence function: linear rise
// to A, flat to B, linear descent to zero at C, zero beyond. Requires
// 0 < A <= B < C. Defaults (2, 4, 8) follow the classical proposal.
type Hampel struct {
	A, B, C float64
}

// NewHampel returns a Hampel norm with the classical constants (2, 4, 8).
func NewHampel() Hampel { return Hampel{A: 2, B: 4, C: 8} }

// Psi is the three-part redescending influence:
//
//	z                          |z| <  A
//	A·sgn(z)                   A <= |z| < B
//	A·sgn(z)·(C-|z|)/(C-B)     B <= |z| <= C
//	0                          |z| >  C
func (h Hampel) Psi(z float64) float64 {
	az := math.Abs(z)
	switch {
	case az < h.A:
		return z
	case az < h.B:
		return math.Copysign(h.A, z)
	case az <= h.C:
		return math.Copysign(h.A*(h.C-az)/(h.C-h.B), z)
	default:
		return 0
	}
}

// Weight is Psi(z)/z with Weight(0) = 1.
func (h Hampel) Weight(z float64) float64 {
	az := math.Abs(z)
	switch {
	case az < h.A:
		return 1
	case az < h.B:
		return h.A / az
	case az <= h.C:
		return h.A * (h.C - az) / (az * (h.C - h.B))
	default:
		return 0
	}
}

// Rho is the piecewise antiderivative of Psi, continuous everywhere and
// constant at A(B+C-A)/2 beyond C.
func (h Hampel) Rho(z float64) float64 {
	az := math.Abs(z)
	a, b, c := h.A, h.B, h.C
	switch {
	case az < a:
		return 0.5 * z * z
	case az < b:
		return a*az - 0.5*a*a
	case az <= c:
		return a*b - 0.5*a*a + a*(c*(az-b)-0.5*(az*az-b*b))/(c-b)
	default:
		return 0.5 * a * (b + c - a)
	}
}

// PsiDeriv is 1 below A, 0 on the flat part, -A/(C-B) on the descent and
// 0 beyond C.
func (h Hampel) PsiDeriv(z float64) float64 {
	az := math.Abs(z)
	switch {
	case az < h.A:
		return 1
	case az < h.B:
		return 0
	case az <= h.C:
		return -h.A / (h.C - h.B)
	default:
		return 0
	}
}
