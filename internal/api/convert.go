package api

import (
	"fmt"
	"time"

	"scriptdesk/internal/script"
	"scriptdesk/internal/tasks"
)

// FromTask converts a task record to its API representation.
func FromTask(task tasks.Task) TaskView {
	view := TaskView{
		ID:       task.ID,
		Type:     string(task.Type),
		Status:   string(task.Status),
		Progress: task.Progress,
		Message:  task.Message,
	}
	if !task.CreatedAt.IsZero() {
		view.CreatedAt = task.CreatedAt.UTC().Format(dateTimeFormat)
	}
	return view
}

// FromTasks converts a slice of task records into API DTOs.
func FromTasks(items []tasks.Task) []TaskView {
	if len(items) == 0 {
		return nil
	}
	out := make([]TaskView, 0, len(items))
	for _, task := range items {
		out = append(out, FromTask(task))
	}
	return out
}

// MergeTaskStats produces a string-keyed representation of task stats.
func MergeTaskStats(stats map[tasks.Status]int) map[string]int {
	out := make(map[string]int, len(stats))
	for status, count := range stats {
		out[string(status)] = count
	}
	return out
}

// FromDialogue converts one dialogue line to its API representation.
func FromDialogue(dialogue script.Dialogue) DialogueView {
	view := DialogueView{
		DialogueID: dialogue.DialogueID,
		Speaker:    dialogue.Speaker,
		Text:       dialogue.Text,
		Emotion:    dialogue.Emotion,
	}
	if dialogue.Visualization.Type != "" {
		view.Visualization = &VisualizationView{
			Type:    string(dialogue.Visualization.Type),
			Content: dialogue.Visualization.Content,
		}
	}
	return view
}

// FromCluster converts one cluster and its dialogue lines.
func FromCluster(cluster script.Cluster) ClusterView {
	view := ClusterView{
		ClusterID: cluster.ClusterID,
		Title:     cluster.ClusterTitle,
		Summary:   cluster.McKinseySummary,
	}
	if len(cluster.Dialogues) > 0 {
		view.Dialogues = make([]DialogueView, 0, len(cluster.Dialogues))
		for _, dialogue := range cluster.Dialogues {
			view.Dialogues = append(view.Dialogues, FromDialogue(dialogue))
		}
	}
	return view
}

// FromDocument converts the loaded script into its API form. A nil document
// yields an empty payload.
func FromDocument(doc *script.PodcastData) ScriptDocument {
	if doc == nil {
		return ScriptDocument{}
	}
	out := ScriptDocument{Metadata: doc.Metadata}
	if len(doc.Participants) > 0 {
		out.Participants = make([]ParticipantView, 0, len(doc.Participants))
		for _, p := range doc.Participants {
			out.Participants = append(out.Participants, ParticipantView{
				Name:  p.Name,
				Role:  p.Role,
				Voice: p.Voice,
			})
		}
	}
	if len(doc.Clusters) > 0 {
		out.Clusters = make([]ClusterView, 0, len(doc.Clusters))
		for _, cluster := range doc.Clusters {
			out.Clusters = append(out.Clusters, FromCluster(cluster))
		}
	}
	return out
}

// SummarizeDocument reports counts for the loaded script.
func SummarizeDocument(doc *script.PodcastData) ScriptSummary {
	if doc == nil {
		return ScriptSummary{}
	}
	summary := ScriptSummary{
		Loaded:       true,
		Clusters:     len(doc.Clusters),
		Participants: len(doc.Participants),
		HasMetadata:  len(doc.Metadata) > 0,
	}
	for _, cluster := range doc.Clusters {
		summary.Dialogues += len(cluster.Dialogues)
	}
	return summary
}

// ToDialoguePatch converts an API patch into the script package's form.
func ToDialoguePatch(patch DialoguePatch) (script.DialoguePatch, error) {
	out := script.DialoguePatch{
		Speaker: patch.Speaker,
		Text:    patch.Text,
		Emotion: patch.Emotion,
	}
	if patch.Visualization != nil {
		kind, ok := script.ParseVisualizationType(patch.Visualization.Type)
		if !ok {
			return script.DialoguePatch{}, fmt.Errorf("visualization: unknown type %q", patch.Visualization.Type)
		}
		out.Visualization = &script.Visualization{
			Type:    kind,
			Content: patch.Visualization.Content,
		}
	}
	return out, nil
}

// FormatTime converts a time to RFC3339 or returns empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
