package tasks

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Registry is the keyed collection of tracked jobs. All methods are safe for
// concurrent use; a single mutex makes every mutation atomic so readers never
// see a half-applied patch.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*Task
	now   func() time.Time
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*Task),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Add registers a task from the caller-supplied draft, stamping CreatedAt.
// Re-registering an existing ID silently replaces the whole prior record;
// retry after failure is expressed this way rather than via transition rules.
func (r *Registry) Add(draft Draft) (Task, error) {
	id := strings.TrimSpace(draft.ID)
	if id == "" {
		return Task{}, fmt.Errorf("add task: id is required")
	}
	if _, ok := typeSet[draft.Type]; !ok {
		return Task{}, fmt.Errorf("add task %q: unknown type %q", id, draft.Type)
	}
	status := draft.Status
	if status == "" {
		status = StatusPending
	}
	if _, ok := statusSet[status]; !ok {
		return Task{}, fmt.Errorf("add task %q: unknown status %q", id, draft.Status)
	}
	if draft.Progress < 0 || draft.Progress > 100 {
		return Task{}, fmt.Errorf("add task %q: progress %.1f outside [0,100]", id, draft.Progress)
	}

	task := Task{
		ID:        id,
		Type:      draft.Type,
		Status:    status,
		Progress:  draft.Progress,
		Message:   draft.Message,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	r.items[id] = &task
	r.mu.Unlock()
	return task, nil
}

// Update merges the patch into the task identified by id. Omitted fields are
// left untouched. Returns ErrNotFound for unknown IDs and ErrInvalidTransition
// when the patch violates the lifecycle or progress rules; in either case the
// stored record is unchanged.
func (r *Registry) Update(id string, patch Patch) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return Task{}, fmt.Errorf("update task %q: %w", id, ErrNotFound)
	}

	next := *current
	if patch.Status != nil {
		target := *patch.Status
		if _, known := statusSet[target]; !known {
			return Task{}, fmt.Errorf("update task %q: unknown status %q", id, target)
		}
		if !CanTransition(current.Status, target) {
			return Task{}, fmt.Errorf("update task %q: %w: %s -> %s", id, ErrInvalidTransition, current.Status, target)
		}
		next.Status = target
	} else if current.Status.IsTerminal() && (patch.Progress != nil || patch.Message != nil) {
		return Task{}, fmt.Errorf("update task %q: %w: task is %s", id, ErrInvalidTransition, current.Status)
	}

	if patch.Progress != nil {
		progress := *patch.Progress
		if progress < 0 || progress > 100 {
			return Task{}, fmt.Errorf("update task %q: %w: progress %.1f outside [0,100]", id, ErrInvalidTransition, progress)
		}
		// Progress is monotonic while the task stays running.
		if current.Status == StatusRunning && next.Status == StatusRunning && progress < current.Progress {
			return Task{}, fmt.Errorf("update task %q: %w: progress %.1f below %.1f while running", id, ErrInvalidTransition, progress, current.Progress)
		}
		next.Progress = progress
	}
	if patch.Message != nil {
		next.Message = *patch.Message
	}

	*current = next
	return next, nil
}

// Remove deletes the record if present and reports whether it existed.
// Removing an absent ID is a no-op; cancellation of already-finished jobs
// should not error.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}

// Get returns a copy of the task and whether it exists.
func (r *Registry) Get(id string) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.items[id]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

// List returns a snapshot of all tasks ordered by creation time, then ID.
func (r *Registry) List() []Task {
	r.mu.RLock()
	snapshot := make([]Task, 0, len(r.items))
	for _, task := range r.items {
		snapshot = append(snapshot, *task)
	}
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].CreatedAt.Equal(snapshot[j].CreatedAt) {
			return snapshot[i].ID < snapshot[j].ID
		}
		return snapshot[i].CreatedAt.Before(snapshot[j].CreatedAt)
	})
	return snapshot
}

// Stats returns a count of tasks grouped by status.
func (r *Registry) Stats() map[Status]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := make(map[Status]int, len(allStatuses))
	for _, task := range r.items {
		stats[task.Status]++
	}
	return stats
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
