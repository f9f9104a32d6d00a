package cpmnet

import (
	"fmt"
	"math"
)

// Activity is a single user-supplied WBS entry. Exactly one of the
// three effort forms must be populated:
//
//   - direct:      Expected (required), ExpVar (optional, default 0)
//   - three-point: Optimistic, MostLikely, Pessimistic
//   - two-point:   Optimistic, Pessimistic
//
// Data carries arbitrary caller fields verbatim through to table/dict
// export; it is never interpreted by the engine.
type Activity struct {
	WbsID int
	Letter string
	Name   string

	Expected *float64
	ExpVar   *float64

	Optimistic  *float64
	MostLikely  *float64
	Pessimistic *float64

	Data map[string]interface{}
}

// effortBounds is the normalized per-activity effort the pipeline
// consumes: a mean/variance pair plus the (a, b) envelope used both to
// derive the PERT optimistic/pessimistic efforts and, later, as the
// bounds fed to quantile/CDF queries.
type effortBounds struct {
	mean     float64
	variance float64
	a, b     float64
}

// normalizeEffort reduces one of the three user-facing effort forms to
// effortBounds, validating a <= m <= b, a <= b, mean >= 0, variance >= 0.
//
// For the direct form, (a, b) are not user-supplied; they are derived
// from exp_var when given (the interval, centred on the mean, whose
// classic-PERT variance ((b-a)/6)^2 reproduces exp_var), or else from
// defaultRisk as a fractional half-width around the mean. This is the
// "factor for deriving (a,m,b) from direct (expected, exp_var)" role
// defaultRisk plays.
func normalizeEffort(act Activity, defaultRisk float64) (effortBounds, error) {
	switch {
	case act.Optimistic != nil && act.MostLikely != nil && act.Pessimistic != nil:
		a, m, b := *act.Optimistic, *act.MostLikely, *act.Pessimistic
		if !(a <= m && m <= b) {
			return effortBounds{}, fmt.Errorf("cpmnet: wbs_id %d: %w", act.WbsID, ErrEffortShape)
		}
		mean := (a + 4*m + b) / 6
		variance := math.Pow((b-a)/6, 2)
		return effortBounds{mean: mean, variance: variance, a: a, b: b}, nil

	case act.Optimistic != nil && act.Pessimistic != nil && act.MostLikely == nil:
		a, b := *act.Optimistic, *act.Pessimistic
		if !(a <= b) {
			return effortBounds{}, fmt.Errorf("cpmnet: wbs_id %d: %w", act.WbsID, ErrEffortShape)
		}
		mean := (a + b) / 2
		variance := math.Pow((b-a)/6, 2)
		return effortBounds{mean: mean, variance: variance, a: a, b: b}, nil

	case act.Expected != nil:
		mean := *act.Expected
		if mean < 0 {
			return effortBounds{}, fmt.Errorf("cpmnet: wbs_id %d: %w", act.WbsID, ErrEffortShape)
		}
		variance := 0.0
		if act.ExpVar != nil {
			if *act.ExpVar < 0 {
				return effortBounds{}, fmt.Errorf("cpmnet: wbs_id %d: %w", act.WbsID, ErrEffortShape)
			}
			variance = *act.ExpVar
		}

		var width float64
		if variance > 0 {
			width = 6 * math.Sqrt(variance)
		} else {
			width = 2 * defaultRisk * mean
		}
		a := mean - width/2
		b := mean + width/2
		return effortBounds{mean: mean, variance: variance, a: a, b: b}, nil

	default:
		return effortBounds{}, fmt.Errorf("cpmnet: wbs_id %d: %w", act.WbsID, ErrEffortShape)
	}
}
