package script

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// VisualizationType identifies how a dialogue's visualization is rendered.
type VisualizationType string

const (
	VisualizationMarkdown VisualizationType = "markdown"
	VisualizationMermaid  VisualizationType = "mermaid"
)

var visualizationTypeSet = map[VisualizationType]struct{}{
	VisualizationMarkdown: {},
	VisualizationMermaid:  {},
}

// ParseVisualizationType converts a string into a known VisualizationType.
func ParseVisualizationType(value string) (VisualizationType, bool) {
	normalized := VisualizationType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := visualizationTypeSet[normalized]
	return normalized, ok
}

// Visualization is the embedded rendering payload attached to a dialogue.
type Visualization struct {
	Type    VisualizationType `json:"type"`
	Content string            `json:"content"`
}

// Dialogue is one turn of scripted conversation. DialogueID is unique within
// its owning cluster, not globally.
type Dialogue struct {
	DialogueID    int           `json:"dialogue_id"`
	Speaker       string        `json:"speaker"`
	Text          string        `json:"text"`
	Emotion       string        `json:"emotion"`
	Visualization Visualization `json:"visualization"`
}

// Cluster is a named group of related dialogue turns with a summary.
type Cluster struct {
	ClusterID       string     `json:"cluster_id"`
	ClusterTitle    string     `json:"cluster_title"`
	McKinseySummary string     `json:"mckinsey_summary"`
	Dialogues       []Dialogue `json:"dialogues"`
}

// Participant describes one voice in the generated conversation. Participants
// are display-only and immutable once the document is set.
type Participant struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Voice string `json:"voice,omitempty"`
}

// PodcastData is the root of the generated script document. Metadata carries
// generation provenance and config and is opaque to this package.
type PodcastData struct {
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	Participants []Participant   `json:"participants"`
	Clusters     []Cluster       `json:"clusters"`
}

// DialoguePatch describes a partial dialogue edit. Nil fields are left
// untouched; the dialogue ID is not patchable.
type DialoguePatch struct {
	Speaker       *string        `json:"speaker,omitempty"`
	Text          *string        `json:"text,omitempty"`
	Emotion       *string        `json:"emotion,omitempty"`
	Visualization *Visualization `json:"visualization,omitempty"`
}

// UnmarshalJSON rejects unknown keys so schema drift in patch payloads
// surfaces as an error instead of a silently dropped field.
func (patch *DialoguePatch) UnmarshalJSON(data []byte) error {
	type plain DialoguePatch
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var decoded plain
	if err := decoder.Decode(&decoded); err != nil {
		return err
	}
	*patch = DialoguePatch(decoded)
	return nil
}

// Validate checks the structural invariants of the document: cluster IDs are
// unique within the document and dialogue IDs are unique within their cluster.
func (p *PodcastData) Validate() error {
	if p == nil {
		return nil
	}
	clusterIDs := make(map[string]struct{}, len(p.Clusters))
	for _, cluster := range p.Clusters {
		id := strings.TrimSpace(cluster.ClusterID)
		if id == "" {
			return fmt.Errorf("cluster with empty cluster_id")
		}
		if _, dup := clusterIDs[id]; dup {
			return fmt.Errorf("duplicate cluster_id %q", id)
		}
		clusterIDs[id] = struct{}{}

		dialogueIDs := make(map[int]struct{}, len(cluster.Dialogues))
		for _, dialogue := range cluster.Dialogues {
			if _, dup := dialogueIDs[dialogue.DialogueID]; dup {
				return fmt.Errorf("cluster %q: duplicate dialogue_id %d", id, dialogue.DialogueID)
			}
			dialogueIDs[dialogue.DialogueID] = struct{}{}
			if vt := dialogue.Visualization.Type; vt != "" {
				if _, ok := visualizationTypeSet[vt]; !ok {
					return fmt.Errorf("cluster %q dialogue %d: unknown visualization type %q", id, dialogue.DialogueID, vt)
				}
			}
		}
	}
	return nil
}

// Parse decodes and validates a PodcastData JSON document.
func Parse(data []byte) (*PodcastData, error) {
	var doc PodcastData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse podcast data: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("parse podcast data: %w", err)
	}
	return &doc, nil
}

// Clone returns a deep copy of the document.
func (p *PodcastData) Clone() *PodcastData {
	if p == nil {
		return nil
	}
	cp := PodcastData{}
	if len(p.Metadata) > 0 {
		cp.Metadata = append(json.RawMessage(nil), p.Metadata...)
	}
	if p.Participants != nil {
		cp.Participants = append([]Participant(nil), p.Participants...)
	}
	if p.Clusters != nil {
		cp.Clusters = make([]Cluster, len(p.Clusters))
		for i, cluster := range p.Clusters {
			copied := cluster
			copied.Dialogues = append([]Dialogue(nil), cluster.Dialogues...)
			cp.Clusters[i] = copied
		}
	}
	return &cp
}

// apply merges the patch into a copy of the dialogue.
func (patch DialoguePatch) apply(dialogue Dialogue) Dialogue {
	if patch.Speaker != nil {
		dialogue.Speaker = *patch.Speaker
	}
	if patch.Text != nil {
		dialogue.Text = *patch.Text
	}
	if patch.Emotion != nil {
		dialogue.Emotion = *patch.Emotion
	}
	if patch.Visualization != nil {
		dialogue.Visualization = *patch.Visualization
	}
	return dialogue
}
