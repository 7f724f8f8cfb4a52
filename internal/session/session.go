// Package session composes the task registry and the script tree into one
// explicitly constructed state core.
//
// A Session is created at daemon startup and passed by reference to every
// consumer; there is no package-level singleton. The two halves are not
// coupled in code: by convention, a podcast_creation task reaching completed
// is followed by a script replace from the generation pipeline, but nothing
// links a task ID to the document it produced. That linkage is caller-managed.
//
// Everything in a Session is volatile. A restart loses all in-flight job
// tracking and the current script tree; only the prefs store survives.
package session

import (
	"time"

	"scriptdesk/internal/script"
	"scriptdesk/internal/tasks"
)

// Session owns the volatile state core for one daemon process.
type Session struct {
	registry  *tasks.Registry
	tree      *script.Tree
	startedAt time.Time
}

// New constructs a session with an empty registry and tree.
func New() *Session {
	return &Session{
		registry:  tasks.NewRegistry(),
		tree:      script.NewTree(),
		startedAt: time.Now().UTC(),
	}
}

// Tasks returns the job registry.
func (s *Session) Tasks() *tasks.Registry {
	return s.registry
}

// Script returns the script tree.
func (s *Session) Script() *script.Tree {
	return s.tree
}

// StartedAt reports when the session was constructed.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Reset discards all volatile state, as a process restart would. Intended for
// app/test teardown.
func (s *Session) Reset() {
	s.registry = tasks.NewRegistry()
	s.tree = script.NewTree()
}
