package tasks

import "errors"

// ErrNotFound indicates an operation referenced a task ID that is not in the
// registry. Callers decide whether to log, retry, or ignore; the registry
// never swallows the miss.
var ErrNotFound = errors.New("task not found")

// ErrInvalidTransition indicates a patch would move a task out of a terminal
// state, set progress outside [0,100], or decrease progress while running.
var ErrInvalidTransition = errors.New("invalid task transition")
