package norms

// Norm is an influence function: a loss Rho, its derivative Psi, the
// reweighting function Weight = Psi(z)/z, and the second derivative
// PsiDeriv. Implementations are pure and immutable; all four functions
// are elementwise and safe for concurrent use.
type Norm interface {
	// Rho evaluates the loss at z.
	Rho(z float64) float64

	// Psi evaluates the influence function (dRho/dz) at z.
	Psi(z float64) float64

	// Weight evaluates Psi(z)/z, with Weight(0) defined by the limit (1).
	Weight(z float64) float64

	// PsiDeriv evaluates dPsi/dz at z.
	PsiDeriv(z float64) float64
}
