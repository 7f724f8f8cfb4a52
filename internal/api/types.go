package api

import (
	"bytes"
	"encoding/json"
)

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// TaskView describes a tracked task in a transport-friendly format.
type TaskView struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Message   string  `json:"message,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// TaskDraft carries the caller-supplied fields for a new task.
type TaskDraft struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Status   string  `json:"status,omitempty"`
	Progress float64 `json:"progress"`
	Message  string  `json:"message,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Status   *string  `json:"status,omitempty"`
	Progress *float64 `json:"progress,omitempty"`
	Message  *string  `json:"message,omitempty"`
}

// UnmarshalJSON rejects unknown keys so patch payloads with drifted field
// names error out instead of being silently dropped.
func (p *TaskPatch) UnmarshalJSON(data []byte) error {
	type plain TaskPatch
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var decoded plain
	if err := decoder.Decode(&decoded); err != nil {
		return err
	}
	*p = TaskPatch(decoded)
	return nil
}

// TaskListResponse wraps a collection of tasks.
type TaskListResponse struct {
	Tasks []TaskView `json:"tasks"`
}

// TaskStatsResponse provides per-status task counts.
type TaskStatsResponse struct {
	Counts map[string]int `json:"counts"`
}

// VisualizationView mirrors an optional dialogue visualization.
type VisualizationView struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// DialogueView describes one dialogue line.
type DialogueView struct {
	DialogueID    int                `json:"dialogueId"`
	Speaker       string             `json:"speaker"`
	Text          string             `json:"text"`
	Emotion       string             `json:"emotion,omitempty"`
	Visualization *VisualizationView `json:"visualization,omitempty"`
}

// DialoguePatch is a partial dialogue edit. Nil fields are left untouched.
type DialoguePatch struct {
	Speaker       *string            `json:"speaker,omitempty"`
	Text          *string            `json:"text,omitempty"`
	Emotion       *string            `json:"emotion,omitempty"`
	Visualization *VisualizationView `json:"visualization,omitempty"`
}

// UnmarshalJSON rejects unknown keys, matching the task patch behavior.
func (p *DialoguePatch) UnmarshalJSON(data []byte) error {
	type plain DialoguePatch
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var decoded plain
	if err := decoder.Decode(&decoded); err != nil {
		return err
	}
	*p = DialoguePatch(decoded)
	return nil
}

// ClusterView describes one topic cluster and its dialogue lines.
type ClusterView struct {
	ClusterID string         `json:"clusterId"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary,omitempty"`
	Dialogues []DialogueView `json:"dialogues"`
}

// ParticipantView describes one speaker in the script.
type ParticipantView struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Voice string `json:"voice,omitempty"`
}

// ScriptSummary reports the shape of the loaded document without its body.
type ScriptSummary struct {
	Loaded       bool `json:"loaded"`
	Clusters     int  `json:"clusters"`
	Dialogues    int  `json:"dialogues"`
	Participants int  `json:"participants"`
	HasMetadata  bool `json:"hasMetadata"`
}

// ScriptDocument is the full loaded script in API form.
type ScriptDocument struct {
	Metadata     json.RawMessage   `json:"metadata,omitempty"`
	Participants []ParticipantView `json:"participants,omitempty"`
	Clusters     []ClusterView     `json:"clusters"`
}

// ViewState reports the ephemeral UI state alongside the loaded document.
type ViewState struct {
	SelectedCluster  string   `json:"selectedCluster,omitempty"`
	ExpandedClusters []string `json:"expandedClusters,omitempty"`
	SearchQuery      string   `json:"searchQuery,omitempty"`
}

// PrefEntry is one stored preference.
type PrefEntry struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// PrefListResponse wraps every stored preference.
type PrefListResponse struct {
	Entries []PrefEntry `json:"entries"`
}
