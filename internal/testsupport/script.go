package testsupport

import (
	"testing"

	"scriptdesk/internal/script"
)

// ScriptJSON is a small podcast script payload in the generation pipeline's
// wire format, useful for load and edit tests.
const ScriptJSON = `{
  "metadata": {"title": "Signals", "episode": 4},
  "participants": [
    {"name": "Maya", "role": "host", "voice": "alloy"},
    {"name": "Theo", "role": "expert", "voice": "ember"}
  ],
  "clusters": [
    {
      "cluster_id": "c1",
      "cluster_title": "Opening",
      "mckinsey_summary": "Why the topic matters now.",
      "dialogues": [
        {"dialogue_id": 1, "speaker": "Maya", "text": "Welcome back.", "emotion": "warm"},
        {
          "dialogue_id": 2,
          "speaker": "Theo",
          "text": "Glad to be here.",
          "emotion": "calm",
          "visualization": {"type": "markdown", "content": "## Agenda"}
        }
      ]
    },
    {
      "cluster_id": "c2",
      "cluster_title": "Deep dive",
      "mckinsey_summary": "The mechanics underneath.",
      "dialogues": [
        {
          "dialogue_id": 1,
          "speaker": "Theo",
          "text": "Start with the flow.",
          "emotion": "focused",
          "visualization": {"type": "mermaid", "content": "graph TD; A-->B"}
        }
      ]
    }
  ]
}`

// SampleScript parses ScriptJSON and fails the test on error.
func SampleScript(t testing.TB) *script.PodcastData {
	t.Helper()

	doc, err := script.Parse([]byte(ScriptJSON))
	if err != nil {
		t.Fatalf("parse sample script: %v", err)
	}
	return doc
}
