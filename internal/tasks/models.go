package tasks

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a tracked generation job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusRunning,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// terminalStatuses are statuses from which no further transition is accepted.
var terminalStatuses = map[Status]struct{}{
	StatusCompleted: {},
	StatusFailed:    {},
}

// validTransitions enumerates the permitted status moves. Same-status updates
// are always allowed for non-terminal tasks and are not listed here.
var validTransitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusRunning: {},
		StatusFailed:  {},
	},
	StatusRunning: {
		StatusCompleted: {},
		StatusFailed:    {},
	},
}

// Type identifies the kind of generation job a task tracks.
type Type string

const (
	TypeVideoGeneration Type = "video_generation"
	TypePodcastCreation Type = "podcast_creation"
	TypeDocumentation   Type = "documentation"
)

var allTypes = []Type{
	TypeVideoGeneration,
	TypePodcastCreation,
	TypeDocumentation,
}

var typeSet = func() map[Type]struct{} {
	set := make(map[Type]struct{}, len(allTypes))
	for _, t := range allTypes {
		set[t] = struct{}{}
	}
	return set
}()

// Task is one tracked generation job and its reported progress.
type Task struct {
	ID        string
	Type      Type
	Status    Status
	Progress  float64
	Message   string
	CreatedAt time.Time
}

// Draft carries the caller-supplied fields for registration. CreatedAt is
// stamped by the registry and never accepted from callers.
type Draft struct {
	ID       string
	Type     Type
	Status   Status
	Progress float64
	Message  string
}

// Patch describes a partial update. Nil fields are left untouched; only
// status, progress, and message are mutable after registration.
type Patch struct {
	Status   *Status
	Progress *float64
	Message  *string
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// AllTypes returns the ordered list of known task types.
func AllTypes() []Type {
	cp := make([]Type, len(allTypes))
	copy(cp, allTypes)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// ParseType converts a string into a known Type.
func ParseType(value string) (Type, bool) {
	normalized := Type(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := typeSet[normalized]
	return normalized, ok
}

// IsTerminal reports whether a status accepts no further transitions.
func (s Status) IsTerminal() bool {
	_, ok := terminalStatuses[s]
	return ok
}

// IsTerminal reports whether the task has reached a terminal status.
func (t Task) IsTerminal() bool {
	return t.Status.IsTerminal()
}

// CanTransition reports whether a status move is permitted by the lifecycle.
// A same-status "move" is permitted unless the status is terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return !from.IsTerminal()
	}
	next, ok := validTransitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}
