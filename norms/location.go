package norms

import "math"

// EstimateLocation computes an M-estimate of location for x by iterated
// reweighting: starting from initial, each pass recomputes
//
//	mu ← Σ Weight((x-mu)/scale)·x / Σ Weight((x-mu)/scale)
//
// until the location moves by less than scale·tol or maxIter passes have
// run. The second return value reports convergence; on a false return the
// last iterate is still a usable best-effort estimate.
//
// scale must be a positive, already-estimated dispersion (typically MAD).
// If every weight vanishes (all observations beyond a redescending norm's
// rejection point), the current iterate is returned unconverged.
func EstimateLocation(x []float64, scale float64, n Norm, initial float64, maxIter int, tol float64) (float64, bool) {
	mu := initial
	for iter := 0; iter < maxIter; iter++ {
		var sw, swx float64
		for _, v := range x {
			w := n.Weight((v - mu) / scale)
			sw += w
			swx += w * v
		}
		if sw == 0 {
			return mu, false
		}
		nmu := swx / sw
		if math.Abs(mu-nmu) < scale*tol {
			return nmu, true
		}
		mu = nmu
	}

	return mu, false
}
