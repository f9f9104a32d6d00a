// Package mpert fits a modified-PERT (BetaPERT-like) distribution to a
// propagated (mean, variance, optimistic bound, pessimistic bound)
// quadruple and answers quantile and CDF queries against it.
//
// The modified PERT distribution is a four-parameter Beta distribution
// on [a, b] with mode m and shape gamma; gamma = 4 recovers the
// classic PERT distribution. Quantile and CDF evaluation is delegated
// to gonum's stat/distuv.Beta after mapping (a, m, b, gamma) to the
// Beta distribution's canonical (alpha, beta) shape parameters.
package mpert
