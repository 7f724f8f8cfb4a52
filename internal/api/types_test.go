package api_test

import (
	"encoding/json"
	"strings"
	"testing"

	"scriptdesk/internal/api"
)

func TestTaskPatchRejectsUnknownKeys(t *testing.T) {
	payload := `{"status":"running","priority":"high"}`
	var patch api.TaskPatch
	err := json.Unmarshal([]byte(payload), &patch)
	if err == nil {
		t.Fatalf("expected unknown keys to be rejected, got %#v", patch)
	}
	if !strings.Contains(err.Error(), "priority") {
		t.Fatalf("expected error to name the unknown field, got %v", err)
	}

	if err := json.Unmarshal([]byte(`{"status":"running","progress":10}`), &patch); err != nil {
		t.Fatalf("known fields failed to decode: %v", err)
	}
	if patch.Status == nil || *patch.Status != "running" {
		t.Fatalf("unexpected patch: %#v", patch)
	}
}

func TestDialoguePatchViewRejectsUnknownKeys(t *testing.T) {
	var patch api.DialoguePatch
	err := json.Unmarshal([]byte(`{"text":"new","mood":"angry"}`), &patch)
	if err == nil {
		t.Fatalf("expected unknown keys to be rejected, got %#v", patch)
	}
	if !strings.Contains(err.Error(), "mood") {
		t.Fatalf("expected error to name the unknown field, got %v", err)
	}

	if err := json.Unmarshal([]byte(`{"text":"new","visualization":{"type":"markdown","content":"x"}}`), &patch); err != nil {
		t.Fatalf("known fields failed to decode: %v", err)
	}
	if patch.Visualization == nil || patch.Visualization.Type != "markdown" {
		t.Fatalf("unexpected patch: %#v", patch)
	}
}
