package tasks_test

import (
	"errors"
	"testing"

	"scriptdesk/internal/tasks"
)

func statusPtr(s tasks.Status) *tasks.Status { return &s }

func float64Ptr(v float64) *float64 { return &v }

func stringPtr(s string) *string { return &s }

func TestAddStampsCreatedAt(t *testing.T) {
	reg := tasks.NewRegistry()

	added, err := reg.Add(tasks.Draft{
		ID:      "t1",
		Type:    tasks.TypePodcastCreation,
		Status:  tasks.StatusPending,
		Message: "Queued",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}

	fetched, ok := reg.Get("t1")
	if !ok {
		t.Fatal("expected task to exist")
	}
	if fetched.Type != tasks.TypePodcastCreation || fetched.Status != tasks.StatusPending || fetched.Message != "Queued" {
		t.Fatalf("unexpected task: %#v", fetched)
	}
	if fetched.Progress != 0 {
		t.Fatalf("expected zero progress, got %v", fetched.Progress)
	}
}

func TestAddDefaultsStatusToPending(t *testing.T) {
	reg := tasks.NewRegistry()
	added, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypeDocumentation})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.Status != tasks.StatusPending {
		t.Fatalf("expected pending, got %s", added.Status)
	}
}

func TestAddValidatesDraft(t *testing.T) {
	reg := tasks.NewRegistry()
	cases := []struct {
		name  string
		draft tasks.Draft
	}{
		{"missing id", tasks.Draft{Type: tasks.TypeDocumentation}},
		{"unknown type", tasks.Draft{ID: "t1", Type: "transcoding"}},
		{"unknown status", tasks.Draft{ID: "t1", Type: tasks.TypeDocumentation, Status: "paused"}},
		{"progress below range", tasks.Draft{ID: "t1", Type: tasks.TypeDocumentation, Progress: -1}},
		{"progress above range", tasks.Draft{ID: "t1", Type: tasks.TypeDocumentation, Progress: 101}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := reg.Add(tc.draft); err == nil {
				t.Fatalf("expected error for draft %#v", tc.draft)
			}
		})
	}
	if reg.Len() != 0 {
		t.Fatalf("expected empty registry, got %d tasks", reg.Len())
	}
}

func TestAddOverwritesExistingID(t *testing.T) {
	reg := tasks.NewRegistry()
	if _, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypePodcastCreation, Status: tasks.StatusFailed, Message: "boom"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	replaced, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypeDocumentation})
	if err != nil {
		t.Fatalf("re-Add failed: %v", err)
	}
	if replaced.Status != tasks.StatusPending || replaced.Message != "" {
		t.Fatalf("expected fresh record, got %#v", replaced)
	}
	if replaced.Type != tasks.TypeDocumentation {
		t.Fatalf("expected type replaced, got %s", replaced.Type)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected a single record, got %d", reg.Len())
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	reg := tasks.NewRegistry()
	if _, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypePodcastCreation, Message: "Queued"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, err := reg.Update("t1", tasks.Patch{
		Status:   statusPtr(tasks.StatusRunning),
		Progress: float64Ptr(45),
		Message:  stringPtr("3/10 dialogues"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != tasks.StatusRunning || updated.Progress != 45 || updated.Message != "3/10 dialogues" {
		t.Fatalf("unexpected task after update: %#v", updated)
	}

	// Omitted fields stay put.
	again, err := reg.Update("t1", tasks.Patch{Progress: float64Ptr(60)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if again.Status != tasks.StatusRunning || again.Message != "3/10 dialogues" {
		t.Fatalf("expected untouched fields preserved: %#v", again)
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	reg := tasks.NewRegistry()
	_, err := reg.Update("missing", tasks.Patch{Message: stringPtr("hello")})
	if !errors.Is(err, tasks.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRejectsLifecycleViolations(t *testing.T) {
	cases := []struct {
		name  string
		from  tasks.Status
		patch tasks.Patch
	}{
		{"completed is terminal", tasks.StatusCompleted, tasks.Patch{Status: statusPtr(tasks.StatusRunning)}},
		{"failed is terminal", tasks.StatusFailed, tasks.Patch{Status: statusPtr(tasks.StatusPending)}},
		{"terminal rejects progress", tasks.StatusCompleted, tasks.Patch{Progress: float64Ptr(10)}},
		{"terminal rejects message", tasks.StatusFailed, tasks.Patch{Message: stringPtr("still going")}},
		{"pending cannot complete directly", tasks.StatusPending, tasks.Patch{Status: statusPtr(tasks.StatusCompleted)}},
		{"running cannot return to pending", tasks.StatusRunning, tasks.Patch{Status: statusPtr(tasks.StatusPending)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := tasks.NewRegistry()
			if _, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypeVideoGeneration, Status: tc.from}); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			_, err := reg.Update("t1", tc.patch)
			if !errors.Is(err, tasks.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			got, _ := reg.Get("t1")
			if got.Status != tc.from {
				t.Fatalf("record mutated on rejected update: %#v", got)
			}
		})
	}
}

func TestUpdateProgressRules(t *testing.T) {
	reg := tasks.NewRegistry()
	if _, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypePodcastCreation, Status: tasks.StatusRunning, Progress: 50}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := reg.Update("t1", tasks.Patch{Progress: float64Ptr(40)}); !errors.Is(err, tasks.ErrInvalidTransition) {
		t.Fatalf("expected decrease while running to be rejected, got %v", err)
	}
	if _, err := reg.Update("t1", tasks.Patch{Progress: float64Ptr(50)}); err != nil {
		t.Fatalf("equal progress should be accepted: %v", err)
	}
	if _, err := reg.Update("t1", tasks.Patch{Progress: float64Ptr(120)}); !errors.Is(err, tasks.ErrInvalidTransition) {
		t.Fatalf("expected out-of-range progress to be rejected, got %v", err)
	}

	// Finishing may carry a final progress value in range.
	done, err := reg.Update("t1", tasks.Patch{Status: statusPtr(tasks.StatusCompleted), Progress: float64Ptr(100)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if done.Status != tasks.StatusCompleted || done.Progress != 100 {
		t.Fatalf("unexpected final task: %#v", done)
	}
}

func TestRemoveThenGetAbsent(t *testing.T) {
	reg := tasks.NewRegistry()
	if _, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypePodcastCreation}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !reg.Remove("t1") {
		t.Fatal("expected Remove to report existing record")
	}
	if _, ok := reg.Get("t1"); ok {
		t.Fatal("expected task to be absent after Remove")
	}
	if reg.Remove("t1") {
		t.Fatal("expected second Remove to be a no-op")
	}
}

func TestListOrdersByCreationThenID(t *testing.T) {
	reg := tasks.NewRegistry()
	for _, id := range []string{"b", "a", "c"} {
		if _, err := reg.Add(tasks.Draft{ID: id, Type: tasks.TypeDocumentation}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	listed := reg.List()
	if len(listed) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		prev, cur := listed[i-1], listed[i]
		if cur.CreatedAt.Before(prev.CreatedAt) {
			t.Fatalf("list not ordered by creation time: %v before %v", cur.CreatedAt, prev.CreatedAt)
		}
		if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID < prev.ID {
			t.Fatalf("list not ordered by id for equal timestamps: %q after %q", cur.ID, prev.ID)
		}
	}
}

func TestStatsGroupsByStatus(t *testing.T) {
	reg := tasks.NewRegistry()
	drafts := []tasks.Draft{
		{ID: "p1", Type: tasks.TypePodcastCreation, Status: tasks.StatusPending},
		{ID: "p2", Type: tasks.TypeDocumentation, Status: tasks.StatusPending},
		{ID: "r1", Type: tasks.TypeVideoGeneration, Status: tasks.StatusRunning},
		{ID: "f1", Type: tasks.TypePodcastCreation, Status: tasks.StatusFailed},
	}
	for _, draft := range drafts {
		if _, err := reg.Add(draft); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	stats := reg.Stats()
	if stats[tasks.StatusPending] != 2 || stats[tasks.StatusRunning] != 1 || stats[tasks.StatusFailed] != 1 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	reg := tasks.NewRegistry()
	if _, err := reg.Add(tasks.Draft{ID: "t1", Type: tasks.TypePodcastCreation}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	first, _ := reg.Get("t1")
	first.Message = "mutated locally"

	second, _ := reg.Get("t1")
	if second.Message != "" {
		t.Fatalf("registry record leaked a mutable reference: %#v", second)
	}
}
