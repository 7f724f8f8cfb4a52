// Package script owns the in-memory podcast script document and its
// presentational view state.
//
// The document (PodcastData) is replaced wholesale by the generation pipeline
// and never built up in place; the only incremental mutation is a targeted
// edit of a single dialogue. Dialogue edits rebuild only the path from the
// root to the edited leaf, so every sibling cluster and dialogue keeps its
// prior value and consumers can rely on deep equality to detect unrelated
// subtrees as unchanged.
//
// Selection, cluster expansion, and the search query are UI-local state held
// alongside the tree. They are never validated against the document (stale
// expansion entries are tolerated) and never persisted.
package script
