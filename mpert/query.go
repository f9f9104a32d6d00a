package mpert

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// betaParams maps the modified-PERT (a, m, b, gamma) parameterization
// onto the Beta distribution's canonical (alpha, beta) shape.
func betaParams(a, m, b, gamma float64) (alpha, beta float64) {
	width := b - a
	alpha = 1 + gamma*(m-a)/width
	beta = 1 + gamma*(b-m)/width
	return alpha, beta
}

// Quantile answers p_quantile(p, mean, variance, a, b): fit a modified
// PERT distribution and evaluate its inverse CDF at p. In the
// degenerate regime, or if the Beta evaluation produces NaN, it falls
// back to the point estimate mean.
func Quantile(p, mean, variance, a, b float64) float64 {
	m, gamma, ok := Fit(mean, variance, a, b)
	if !ok {
		return mean
	}
	alpha, beta := betaParams(a, m, b, gamma)
	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	u := dist.Quantile(p)
	if math.IsNaN(u) {
		return mean
	}
	return a + (b-a)*u
}

// CDF answers prob(val, mean, variance, a, b) analogously to Quantile.
func CDF(val, mean, variance, a, b float64) float64 {
	m, gamma, ok := Fit(mean, variance, a, b)
	if !ok {
		if val >= mean {
			return 1
		}
		return 0
	}
	alpha, beta := betaParams(a, m, b, gamma)
	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	u := (val - a) / (b - a)
	p := dist.CDF(u)
	if math.IsNaN(p) {
		if val >= mean {
			return 1
		}
		return 0
	}
	return p
}
