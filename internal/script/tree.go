package script

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrClusterNotFound indicates an edit referenced a cluster_id absent from the
// current document.
var ErrClusterNotFound = errors.New("cluster not found")

// ErrDialogueNotFound indicates an edit referenced a dialogue_id absent from
// the targeted cluster.
var ErrDialogueNotFound = errors.New("dialogue not found")

// Tree holds the current script document plus the UI-local view state. All
// methods are safe for concurrent use; a single mutex keeps every mutation
// atomic so readers never observe a document with a dangling or duplicated
// node.
type Tree struct {
	mu       sync.RWMutex
	data     *PodcastData
	selected string
	expanded map[string]struct{}
	search   string
}

// NewTree constructs an empty tree with no document loaded.
func NewTree() *Tree {
	return &Tree{expanded: make(map[string]struct{})}
}

// Replace atomically swaps in a complete document; nil clears the tree.
// Expansion and selection state are deliberately left alone: entries that
// reference clusters absent from the new document are tolerated as stale
// rather than pruned.
func (t *Tree) Replace(data *PodcastData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("replace script: %w", err)
	}
	cloned := data.Clone()

	t.mu.Lock()
	t.data = cloned
	t.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy of the current document, or nil when the tree
// is empty.
func (t *Tree) Snapshot() *PodcastData {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data.Clone()
}

// HasDocument reports whether a document is currently loaded.
func (t *Tree) HasDocument() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.data != nil
}

// ClusterIDs returns the ordered cluster IDs of the current document.
func (t *Tree) ClusterIDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return nil
	}
	ids := make([]string, 0, len(t.data.Clusters))
	for _, cluster := range t.data.Clusters {
		ids = append(ids, cluster.ClusterID)
	}
	return ids
}

// UpdateDialogue merges the patch into the dialogue addressed by
// (clusterID, dialogueID) and returns the updated copy. Only the path from the
// root to the targeted dialogue is rebuilt; sibling clusters and dialogues
// keep their prior values. Lookup misses return ErrClusterNotFound or
// ErrDialogueNotFound and leave the document untouched.
func (t *Tree) UpdateDialogue(clusterID string, dialogueID int, patch DialoguePatch) (Dialogue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data == nil {
		return Dialogue{}, fmt.Errorf("update dialogue: no document loaded: %w", ErrClusterNotFound)
	}

	ci := indexOf(t.data.Clusters, func(c Cluster) bool { return c.ClusterID == clusterID })
	if ci < 0 {
		return Dialogue{}, fmt.Errorf("cluster %q: %w", clusterID, ErrClusterNotFound)
	}
	cluster := t.data.Clusters[ci]

	di := indexOf(cluster.Dialogues, func(d Dialogue) bool { return d.DialogueID == dialogueID })
	if di < 0 {
		return Dialogue{}, fmt.Errorf("cluster %q dialogue %d: %w", clusterID, dialogueID, ErrDialogueNotFound)
	}

	updated := patch.apply(cluster.Dialogues[di])
	cluster.Dialogues = replaceAt(cluster.Dialogues, di, updated)

	next := *t.data
	next.Clusters = replaceAt(t.data.Clusters, ci, cluster)
	t.data = &next
	return updated, nil
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

// replaceAt rebuilds items with the element at index swapped for value. The
// input slice is never mutated; all other elements are carried over unchanged.
func replaceAt[T any](items []T, index int, value T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[index] = value
	return out
}

// SelectCluster records the selected cluster ID. The ID is not validated
// against the current document.
func (t *Tree) SelectCluster(id string) {
	t.mu.Lock()
	t.selected = id
	t.mu.Unlock()
}

// ClearSelection removes the cluster selection.
func (t *Tree) ClearSelection() {
	t.mu.Lock()
	t.selected = ""
	t.mu.Unlock()
}

// SelectedClusterID returns the selected cluster ID and whether one is set.
func (t *Tree) SelectedClusterID() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selected, t.selected != ""
}

// ToggleCluster flips membership of the cluster ID in the expansion set.
func (t *Tree) ToggleCluster(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.expanded[id]; ok {
		delete(t.expanded, id)
		return
	}
	t.expanded[id] = struct{}{}
}

// ExpandAll resets the expansion set to exactly the current document's cluster
// IDs, dropping any stale entries.
func (t *Tree) ExpandAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expanded = make(map[string]struct{})
	if t.data == nil {
		return
	}
	for _, cluster := range t.data.Clusters {
		t.expanded[cluster.ClusterID] = struct{}{}
	}
}

// CollapseAll empties the expansion set.
func (t *Tree) CollapseAll() {
	t.mu.Lock()
	t.expanded = make(map[string]struct{})
	t.mu.Unlock()
}

// IsExpanded reports whether a cluster ID is in the expansion set.
func (t *Tree) IsExpanded(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.expanded[id]
	return ok
}

// ExpandedClusters returns a sorted snapshot of the expansion set.
func (t *Tree) ExpandedClusters() []string {
	t.mu.RLock()
	ids := make([]string, 0, len(t.expanded))
	for id := range t.expanded {
		ids = append(ids, id)
	}
	t.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// SetSearchQuery stores the query string. The core performs no filtering; the
// value is opaque and consumed by external filter logic.
func (t *Tree) SetSearchQuery(q string) {
	t.mu.Lock()
	t.search = q
	t.mu.Unlock()
}

// SearchQuery returns the stored query string.
func (t *Tree) SearchQuery() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.search
}
