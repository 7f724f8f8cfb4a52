package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scriptdesk/internal/config"
	"scriptdesk/internal/logging"
	"scriptdesk/internal/prefs"
	"scriptdesk/internal/script"
	"scriptdesk/internal/session"
	"scriptdesk/internal/tasks"
)

// ErrPrefsDisabled indicates the preference store is turned off in config.
var ErrPrefsDisabled = errors.New("preference store is disabled")

// Service is the operation facade over the state core and preference store.
type Service struct {
	session *session.Session
	store   *prefs.Store
	limits  config.Limits
	logger  *slog.Logger
}

// NewService wires the facade. store may be nil when preferences are
// disabled; a nil logger falls back to a no-op.
func NewService(sess *session.Session, store *prefs.Store, cfg *config.Config, logger *slog.Logger) *Service {
	limits := config.Limits{}
	if cfg != nil {
		limits = cfg.Limits
	}
	return &Service{
		session: sess,
		store:   store,
		limits:  limits,
		logger:  logging.WithComponent(logger, "api"),
	}
}

// AddTask registers a new tracked task. An existing task with the same ID is
// replaced wholesale.
func (s *Service) AddTask(draft TaskDraft) (TaskView, error) {
	kind, ok := tasks.ParseType(draft.Type)
	if !ok {
		return TaskView{}, fmt.Errorf("task type: unknown value %q", draft.Type)
	}

	internal := tasks.Draft{
		ID:       draft.ID,
		Type:     kind,
		Progress: draft.Progress,
		Message:  draft.Message,
	}
	if draft.Status != "" {
		status, ok := tasks.ParseStatus(draft.Status)
		if !ok {
			return TaskView{}, fmt.Errorf("task status: unknown value %q", draft.Status)
		}
		internal.Status = status
	}

	task, err := s.session.Tasks().Add(internal)
	if err != nil {
		return TaskView{}, err
	}
	s.logger.Info("task added",
		logging.String("task_id", task.ID),
		logging.String("task_type", string(task.Type)),
		logging.String("status", string(task.Status)))
	return FromTask(task), nil
}

// UpdateTask applies a partial update to a tracked task.
func (s *Service) UpdateTask(id string, patch TaskPatch) (TaskView, error) {
	internal := tasks.Patch{
		Progress: patch.Progress,
		Message:  patch.Message,
	}
	if patch.Status != nil {
		status, ok := tasks.ParseStatus(*patch.Status)
		if !ok {
			return TaskView{}, fmt.Errorf("task status: unknown value %q", *patch.Status)
		}
		internal.Status = &status
	}

	task, err := s.session.Tasks().Update(id, internal)
	if err != nil {
		return TaskView{}, err
	}
	s.logger.Debug("task updated",
		logging.String("task_id", task.ID),
		logging.String("status", string(task.Status)),
		logging.Float64("progress", task.Progress))
	return FromTask(task), nil
}

// RemoveTask deletes a task. It reports whether the task existed.
func (s *Service) RemoveTask(id string) bool {
	removed := s.session.Tasks().Remove(id)
	if removed {
		s.logger.Info("task removed", logging.String("task_id", id))
	}
	return removed
}

// GetTask returns a single task by ID.
func (s *Service) GetTask(id string) (TaskView, error) {
	task, ok := s.session.Tasks().Get(id)
	if !ok {
		return TaskView{}, fmt.Errorf("task %q: %w", id, tasks.ErrNotFound)
	}
	return FromTask(task), nil
}

// ListTasks returns every tracked task ordered by creation time.
func (s *Service) ListTasks() []TaskView {
	return FromTasks(s.session.Tasks().List())
}

// TaskStats returns per-status task counts.
func (s *Service) TaskStats() map[string]int {
	return MergeTaskStats(s.session.Tasks().Stats())
}

// LoadScript parses, validates, and swaps in a complete script document.
func (s *Service) LoadScript(raw []byte) (ScriptSummary, error) {
	doc, err := script.Parse(raw)
	if err != nil {
		return ScriptSummary{}, err
	}
	if err := s.checkLimits(doc); err != nil {
		return ScriptSummary{}, err
	}
	if err := s.session.Script().Replace(doc); err != nil {
		return ScriptSummary{}, err
	}
	summary := SummarizeDocument(doc)
	s.logger.Info("script loaded",
		logging.Int("clusters", summary.Clusters),
		logging.Int("dialogues", summary.Dialogues))
	return summary, nil
}

// ClearScript removes the loaded document. View state is left alone.
func (s *Service) ClearScript() error {
	if err := s.session.Script().Replace(nil); err != nil {
		return err
	}
	s.logger.Info("script cleared")
	return nil
}

// ShowScript returns the full loaded document plus a summary.
func (s *Service) ShowScript() (ScriptDocument, ScriptSummary) {
	doc := s.session.Script().Snapshot()
	return FromDocument(doc), SummarizeDocument(doc)
}

// UpdateDialogue edits a single dialogue line addressed by cluster and
// dialogue ID.
func (s *Service) UpdateDialogue(clusterID string, dialogueID int, patch DialoguePatch) (DialogueView, error) {
	internal, err := ToDialoguePatch(patch)
	if err != nil {
		return DialogueView{}, err
	}
	updated, err := s.session.Script().UpdateDialogue(clusterID, dialogueID, internal)
	if err != nil {
		return DialogueView{}, err
	}
	s.logger.Debug("dialogue updated",
		logging.String("cluster_id", clusterID),
		logging.Int("dialogue_id", dialogueID))
	return FromDialogue(updated), nil
}

// SelectCluster records the selected cluster; an empty ID clears the
// selection.
func (s *Service) SelectCluster(id string) {
	if id == "" {
		s.session.Script().ClearSelection()
		return
	}
	s.session.Script().SelectCluster(id)
}

// ToggleCluster flips a cluster's expansion state.
func (s *Service) ToggleCluster(id string) {
	s.session.Script().ToggleCluster(id)
}

// ExpandAll expands every cluster in the current document.
func (s *Service) ExpandAll() {
	s.session.Script().ExpandAll()
}

// CollapseAll collapses every cluster.
func (s *Service) CollapseAll() {
	s.session.Script().CollapseAll()
}

// SetSearchQuery stores the view's search text.
func (s *Service) SetSearchQuery(q string) {
	s.session.Script().SetSearchQuery(q)
}

// CurrentViewState reports selection, expansion, and search state.
func (s *Service) CurrentViewState() ViewState {
	tree := s.session.Script()
	state := ViewState{
		ExpandedClusters: tree.ExpandedClusters(),
		SearchQuery:      tree.SearchQuery(),
	}
	if selected, ok := tree.SelectedClusterID(); ok {
		state.SelectedCluster = selected
	}
	return state
}

// SetPref stores a preference.
func (s *Service) SetPref(ctx context.Context, key, value string) error {
	if s.store == nil {
		return ErrPrefsDisabled
	}
	return s.store.Set(ctx, key, value)
}

// GetPref returns a stored preference.
func (s *Service) GetPref(ctx context.Context, key string) (PrefEntry, error) {
	if s.store == nil {
		return PrefEntry{}, ErrPrefsDisabled
	}
	entry, err := s.store.Get(ctx, key)
	if err != nil {
		return PrefEntry{}, err
	}
	return fromPrefEntry(entry), nil
}

// DeletePref removes a preference, reporting whether it existed.
func (s *Service) DeletePref(ctx context.Context, key string) (bool, error) {
	if s.store == nil {
		return false, ErrPrefsDisabled
	}
	return s.store.Delete(ctx, key)
}

// ListPrefs returns every stored preference sorted by key.
func (s *Service) ListPrefs(ctx context.Context) ([]PrefEntry, error) {
	if s.store == nil {
		return nil, ErrPrefsDisabled
	}
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PrefEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, fromPrefEntry(entry))
	}
	return out, nil
}

func (s *Service) checkLimits(doc *script.PodcastData) error {
	if doc == nil {
		return nil
	}
	if s.limits.MaxClusters > 0 && len(doc.Clusters) > s.limits.MaxClusters {
		return fmt.Errorf("script has %d clusters, limit is %d", len(doc.Clusters), s.limits.MaxClusters)
	}
	if s.limits.MaxDialoguesPerCluster > 0 {
		for _, cluster := range doc.Clusters {
			if len(cluster.Dialogues) > s.limits.MaxDialoguesPerCluster {
				return fmt.Errorf("cluster %q has %d dialogues, limit is %d",
					cluster.ClusterID, len(cluster.Dialogues), s.limits.MaxDialoguesPerCluster)
			}
		}
	}
	return nil
}

func fromPrefEntry(entry prefs.Entry) PrefEntry {
	return PrefEntry{
		Key:       entry.Key,
		Value:     entry.Value,
		UpdatedAt: FormatTime(entry.UpdatedAt),
	}
}
