// Package schedule implements C5 of the pipeline: a forward/backward CPM
// sweep over the AoA event graph C4 produced, with certainty-aware time
// arithmetic and an optional PERT variance overlay.
//
// Every time quantity is a Triple (value, variance, error bound). The
// forward and backward sweeps never simply overwrite a competing
// estimate at a shared event; they run it through Choose, which returns
// the dominating triple when the two differ by more than their combined
// error, and a mixed triple otherwise. This keeps the schedule stable
// under the kind of floating-point noise that two different paths to
// the same event can accumulate.
//
// Duration is resolved through a user-supplied DurationFunc, called with
// the activity's (expected, optimistic, or pessimistic) effort and the
// current base time; the scheduler never interprets effort itself, it
// is purely a number handed to the callback alongside the activity. The
// backward sweep never calls the callback again - it reuses the forward
// pass's resolved duration, so a late time always composes with the
// exact same value its early counterpart did.
package schedule
