package cpmnet

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/cpmnet/internalgraph"
	"github.com/katalvlaran/cpmnet/schedule"
)

// Options holds the resolved construction-time configuration for a
// NetworkModel. Zero value is never used directly; build one with
// DefaultOptions() and the With* functions.
type Options struct {
	duration    schedule.DurationFunc
	p           float64
	defaultRisk float64
	debug       bool
	logger      zerolog.Logger
}

// Option customizes Options before a NetworkModel is built.
type Option func(*Options)

// identityDuration is the default duration callback: duration equals
// effort, unconditionally. It is sign-preserving and base-time-free by
// construction, so it trivially satisfies DurationFunc's contract.
func identityDuration(effort float64, _ *internalgraph.Activity, _ *float64) (float64, error) {
	return effort, nil
}

// DefaultOptions returns the baseline configuration: identity duration,
// p = 0.95, default_risk = 0.3, debug off, a no-op logger.
func DefaultOptions() Options {
	return Options{
		duration:    identityDuration,
		p:           0.95,
		defaultRisk: 0.3,
		debug:       false,
		logger:      zerolog.Nop(),
	}
}

// WithDuration overrides the effort-to-duration callback. Panics on nil.
func WithDuration(fn schedule.DurationFunc) Option {
	if fn == nil {
		panic("cpmnet: WithDuration(nil)")
	}
	return func(o *Options) { o.duration = fn }
}

// WithP sets the probability level used by quantile queries. Panics
// unless p is strictly between 0 and 1.
func WithP(p float64) Option {
	if !(p > 0 && p < 1) {
		panic("cpmnet: WithP(p) requires 0 < p < 1")
	}
	return func(o *Options) { o.p = p }
}

// WithDefaultRisk sets the fractional half-width used to derive (a, b)
// from a direct-form activity's mean when it carries no variance.
// Panics unless risk is in [0, 1).
func WithDefaultRisk(risk float64) Option {
	if !(risk >= 0 && risk < 1) {
		panic("cpmnet: WithDefaultRisk(risk) requires 0 <= risk < 1")
	}
	return func(o *Options) { o.defaultRisk = risk }
}

// WithDebug toggles inclusion of *_err error-bound fields in exports.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.debug = debug }
}

// WithLogger attaches a zerolog.Logger the model uses for debug-level
// tracing of the pipeline stages.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}
