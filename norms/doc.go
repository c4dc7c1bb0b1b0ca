// Package norms implements the influence functions that drive the robust
// estimators in package scale.
//
// A Norm describes how much pull a standardized residual z exerts on an
// M-estimate through four pure, elementwise functions:
//
//	Rho(z)      — the loss being minimized
//	Psi(z)      — its derivative, the influence function proper
//	Weight(z)   — Psi(z)/z, with the z=0 value defined by the limit (1)
//	PsiDeriv(z) — derivative of Psi, used for Newton-type updates
//
// Three variants are provided:
//
//   - HuberT(t): quadratic loss inside [-t, t], linear beyond. Monotone
//     influence; never fully rejects an observation.
//   - Hampel(a, b, c): three-part redescending influence — linear rise to
//     a, flat to b, linear descent to zero at c, zero beyond. Extreme
//     observations are rejected outright.
//   - TukeyBiweight(c): smooth redescending biweight. Note that Rho keeps
//     the conventional offset form whose minimum is -c²/6 at z=0; callers
//     that need a loss anchored at zero add c²/6 themselves (see
//     scale.IterScale).
//
// Every norm is an immutable value: tuning constants are set at
// construction and never change, so norms are safe to share between
// goroutines.
//
// EstimateLocation is the iteratively-reweighted location M-estimator
// built on Weight; the joint Huber estimator uses it whenever a
// non-default norm drives the location step.
package norms
