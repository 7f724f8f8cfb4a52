package tasks_test

import (
	"testing"

	"scriptdesk/internal/tasks"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected tasks.Status
		ok       bool
	}{
		{"pending", tasks.StatusPending, true},
		{"  Running ", tasks.StatusRunning, true},
		{"COMPLETED", tasks.StatusCompleted, true},
		{"failed", tasks.StatusFailed, true},
		{"", "", false},
		{"cancelled", "", false},
	}
	for _, tc := range cases {
		parsed, ok := tasks.ParseStatus(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseStatus(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
		}
		if ok && parsed != tc.expected {
			t.Fatalf("ParseStatus(%q) = %s, expected %s", tc.input, parsed, tc.expected)
		}
	}
}

func TestParseType(t *testing.T) {
	cases := []struct {
		input    string
		expected tasks.Type
		ok       bool
	}{
		{"podcast_creation", tasks.TypePodcastCreation, true},
		{" Video_Generation ", tasks.TypeVideoGeneration, true},
		{"documentation", tasks.TypeDocumentation, true},
		{"", "", false},
		{"transcription", "", false},
	}
	for _, tc := range cases {
		parsed, ok := tasks.ParseType(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseType(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
		}
		if ok && parsed != tc.expected {
			t.Fatalf("ParseType(%q) = %s, expected %s", tc.input, parsed, tc.expected)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to tasks.Status
		allowed  bool
	}{
		{tasks.StatusPending, tasks.StatusRunning, true},
		{tasks.StatusPending, tasks.StatusFailed, true},
		{tasks.StatusPending, tasks.StatusCompleted, false},
		{tasks.StatusRunning, tasks.StatusCompleted, true},
		{tasks.StatusRunning, tasks.StatusFailed, true},
		{tasks.StatusRunning, tasks.StatusPending, false},
		{tasks.StatusCompleted, tasks.StatusRunning, false},
		{tasks.StatusCompleted, tasks.StatusCompleted, false},
		{tasks.StatusFailed, tasks.StatusPending, false},
		{tasks.StatusPending, tasks.StatusPending, true},
		{tasks.StatusRunning, tasks.StatusRunning, true},
	}
	for _, tc := range cases {
		if got := tasks.CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if tasks.StatusPending.IsTerminal() || tasks.StatusRunning.IsTerminal() {
		t.Fatal("pending/running must not be terminal")
	}
	if !tasks.StatusCompleted.IsTerminal() || !tasks.StatusFailed.IsTerminal() {
		t.Fatal("completed/failed must be terminal")
	}
}
