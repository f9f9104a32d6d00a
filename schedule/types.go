package schedule

import "github.com/katalvlaran/cpmnet/internalgraph"

// DurationFunc resolves an activity's effort to a duration. baseTime
// lets the callback model calendar or resource constraints relative to
// the current point in the schedule. The scheduler calls it only from
// the forward sweeps (early, optimistic, pessimistic), with the
// activity's expected, optimistic or pessimistic effort and a non-nil
// baseTime; the backward sweep does not call it (it reuses the forward
// duration), so this package never passes a negated effort or a nil
// baseTime. Implementations must satisfy sign(dur) == sign(effort) and
// dur(0, _, _) == 0; a result whose sign disagrees with the expected
// effort is reported as ErrInternal, an internal error, not a user one.
type DurationFunc func(effort float64, activity *internalgraph.Activity, baseTime *float64) (float64, error)

// EffortSpec is the normalized, per-activity effort the scheduler
// consumes; the three user-facing effort forms (direct, three-point,
// two-point) are reduced to this shape before C5 runs.
type EffortSpec struct {
	Expected    float64
	Optimistic  float64
	Pessimistic float64
}

// Event is a single AoA event's schedule.
type Event struct {
	ID          int
	Stage       int
	Early       Triple
	Late        Triple
	Reserve     Triple
	Optimistic  float64
	Pessimistic float64
}

// ScheduledActivity is an internal activity plus its computed schedule.
type ScheduledActivity struct {
	*internalgraph.Activity

	EarlyStart Triple
	EarlyEnd   Triple
	LateStart  Triple
	LateEnd    Triple
	Reserve    Triple

	DurRes float64
	DurOpt float64
	DurPes float64
	PertD  float64 // per-activity modified-PERT variance, classic gamma=4 formula

	OptStart, OptEnd float64
	PesStart, PesEnd float64
}

// Result is the full C5 output: one Event per (1-based) event id and
// one ScheduledActivity per live internal activity.
type Result struct {
	Events     []Event // Events[i] is event i+1
	Activities []*ScheduledActivity
}
