package mpert

import "math"

// degenerateEpsilon bounds how thin the [a, b] interval, or how small
// the propagated variance, may be before fitting a distribution stops
// being meaningful and a point estimate is returned instead.
const degenerateEpsilon = 1e-9

// clampMargin is the fractional distance from each bound that the
// fitted mode and shape solve are kept clear of, so the resulting Beta
// parameters stay finite and well away from the degenerate alpha/beta
// <= 0 region.
const clampMargin = 1e-6

// Fit solves for the mode m and shape gamma of a modified-PERT
// distribution on [a, b] whose mean is M and variance is D. ok is
// false in the degenerate regime (an effectively zero-width interval,
// or variance too small to distinguish from a point estimate); callers
// should treat that as "use M directly", not as an error.
func Fit(mean, variance, a, b float64) (m, gamma float64, ok bool) {
	width := b - a
	if width <= degenerateEpsilon {
		return mean, 0, false
	}
	if math.Sqrt(variance) < degenerateEpsilon*width {
		return mean, 0, false
	}

	tau := width * clampMargin
	lo, hi := a+tau, b-tau
	mm := clamp(mean, lo, hi)

	half := width/2 - tau
	skew := 2*mm - a - b
	gammaMin := math.Abs(skew)/(half-math.Abs(skew)/2) + clampMargin

	g := (mm-a)*(b-mm)/variance - 3
	if g < gammaMin {
		// No (mode, gamma) pair reproduces this exact (mean, variance)
		// without pushing the mode outside [a, b]: substituting gammaMin
		// here would keep g positive but silently break the round-trip
		// (recomputing mean/variance from the clamped mode and gammaMin
		// would no longer recover the inputs). Treat this the same as
		// the degenerate-interval/variance cases above.
		return mean, 0, false
	}

	mode := mm + skew/g
	mode = clamp(mode, lo, hi)

	return mode, g, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
