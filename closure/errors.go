package closure

import (
	"errors"
	"fmt"
)

// ErrCycle is the sentinel returned (wrapped) when an activity is found to
// be self-reachable during closure. Callers should branch with errors.Is
// and, if the offending position is needed, errors.As into *CycleError.
var ErrCycle = errors.New("closure: cycle detected")

// CycleError carries the 0-based activity position that was found
// self-reachable, so the caller (cpmnet) can translate it back to the
// user-supplied wbs_id for error reporting.
type CycleError struct {
	Pos int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("closure: activity at position %d is self-reachable", e.Pos)
}

func (e *CycleError) Unwrap() error { return ErrCycle }
