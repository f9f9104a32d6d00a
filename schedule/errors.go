package schedule

import "errors"

// ErrInternal marks a violated scheduling invariant: a late time
// strictly before its early counterpart beyond the error bound, more
// than one source or sink event, or a duration callback that returned
// a value whose sign disagrees with the effort it was given. These are
// bugs in the network or the callback, never user-input errors, so
// callers should treat them as unrecoverable for the current build.
var ErrInternal = errors.New("schedule: internal invariant violated")
