package ipc

import (
	"encoding/json"

	"scriptdesk/internal/api"
)

// TaskView mirrors the API task DTO for IPC callers.
type TaskView = api.TaskView

// TaskPatch mirrors the API task patch for IPC callers.
type TaskPatch = api.TaskPatch

// DialoguePatch mirrors the API dialogue patch for IPC callers.
type DialoguePatch = api.DialoguePatch

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime information.
type StatusResponse struct {
	Running     bool              `json:"running"`
	PID         int               `json:"pid"`
	StartedAt   string            `json:"started_at,omitempty"`
	SocketPath  string            `json:"socket_path"`
	LockPath    string            `json:"lock_path"`
	PrefsDBPath string            `json:"prefs_db_path,omitempty"`
	TaskStats   map[string]int    `json:"task_stats"`
	Script      api.ScriptSummary `json:"script"`
}

// TaskAddRequest registers a new task.
type TaskAddRequest struct {
	Task api.TaskDraft `json:"task"`
}

// TaskAddResponse returns the stored task.
type TaskAddResponse struct {
	Task TaskView `json:"task"`
}

// TaskUpdateRequest applies a partial update to a task.
type TaskUpdateRequest struct {
	ID    string    `json:"id"`
	Patch TaskPatch `json:"patch"`
}

// TaskUpdateResponse returns the updated task.
type TaskUpdateResponse struct {
	Task TaskView `json:"task"`
}

// TaskRemoveRequest deletes a task by ID.
type TaskRemoveRequest struct {
	ID string `json:"id"`
}

// TaskRemoveResponse reports whether the task existed.
type TaskRemoveResponse struct {
	Removed bool `json:"removed"`
}

// TaskGetRequest fetches a single task by ID.
type TaskGetRequest struct {
	ID string `json:"id"`
}

// TaskGetResponse contains a single task.
type TaskGetResponse struct {
	Task TaskView `json:"task"`
}

// TaskListRequest lists every tracked task.
type TaskListRequest struct{}

// TaskListResponse contains task entries ordered by creation time.
type TaskListResponse struct {
	Tasks []TaskView `json:"tasks"`
}

// TaskStatsRequest fetches per-status task counts.
type TaskStatsRequest struct{}

// TaskStatsResponse contains per-status task counts.
type TaskStatsResponse struct {
	Counts map[string]int `json:"counts"`
}

// ScriptLoadRequest swaps in a complete script document.
type ScriptLoadRequest struct {
	Document json.RawMessage `json:"document"`
}

// ScriptLoadResponse summarizes the accepted document.
type ScriptLoadResponse struct {
	Summary api.ScriptSummary `json:"summary"`
}

// ScriptClearRequest removes the loaded document.
type ScriptClearRequest struct{}

// ScriptClearResponse acknowledges the clear.
type ScriptClearResponse struct {
	Cleared bool `json:"cleared"`
}

// ScriptShowRequest fetches the loaded document.
type ScriptShowRequest struct{}

// ScriptShowResponse contains the document and its summary.
type ScriptShowResponse struct {
	Document api.ScriptDocument `json:"document"`
	Summary  api.ScriptSummary  `json:"summary"`
}

// DialogueUpdateRequest edits a single dialogue line.
type DialogueUpdateRequest struct {
	ClusterID  string        `json:"cluster_id"`
	DialogueID int           `json:"dialogue_id"`
	Patch      DialoguePatch `json:"patch"`
}

// DialogueUpdateResponse returns the updated dialogue.
type DialogueUpdateResponse struct {
	Dialogue api.DialogueView `json:"dialogue"`
}

// ViewSelectRequest records the selected cluster; empty clears the selection.
type ViewSelectRequest struct {
	ClusterID string `json:"cluster_id"`
}

// ViewSelectResponse acknowledges the selection change.
type ViewSelectResponse struct{}

// ViewToggleRequest flips a cluster's expansion state.
type ViewToggleRequest struct {
	ClusterID string `json:"cluster_id"`
}

// ViewToggleResponse reports the resulting expansion state.
type ViewToggleResponse struct {
	Expanded bool `json:"expanded"`
}

// ViewExpandAllRequest expands every cluster in the current document.
type ViewExpandAllRequest struct{}

// ViewExpandAllResponse reports how many clusters are now expanded.
type ViewExpandAllResponse struct {
	Expanded int `json:"expanded"`
}

// ViewCollapseAllRequest collapses every cluster.
type ViewCollapseAllRequest struct{}

// ViewCollapseAllResponse acknowledges the collapse.
type ViewCollapseAllResponse struct{}

// ViewSearchRequest stores the view's search text.
type ViewSearchRequest struct {
	Query string `json:"query"`
}

// ViewSearchResponse acknowledges the query change.
type ViewSearchResponse struct{}

// ViewStateRequest fetches selection, expansion, and search state.
type ViewStateRequest struct{}

// ViewStateResponse contains the current view state.
type ViewStateResponse struct {
	State api.ViewState `json:"state"`
}

// PrefSetRequest stores a preference.
type PrefSetRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PrefSetResponse acknowledges the write.
type PrefSetResponse struct{}

// PrefGetRequest fetches a stored preference.
type PrefGetRequest struct {
	Key string `json:"key"`
}

// PrefGetResponse contains the stored preference.
type PrefGetResponse struct {
	Entry api.PrefEntry `json:"entry"`
}

// PrefDeleteRequest removes a preference.
type PrefDeleteRequest struct {
	Key string `json:"key"`
}

// PrefDeleteResponse reports whether the key existed.
type PrefDeleteResponse struct {
	Removed bool `json:"removed"`
}

// PrefListRequest lists every stored preference.
type PrefListRequest struct{}

// PrefListResponse contains preference entries sorted by key.
type PrefListResponse struct {
	Entries []api.PrefEntry `json:"entries"`
}
