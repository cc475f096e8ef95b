package shuku

import "context"

// TagVocabulary accumulates every tag seen on parsed works and powers the
// tag filter's options.
//
// The vocabulary is append-only: a tag once merged is never removed.
// Concurrent writers race with last-write-wins semantics.
type TagVocabulary interface {
	// Load returns the persisted tags in insertion order.
	Load(ctx context.Context) ([]string, error)

	// Merge adds tags not already present and returns how many were added.
	// Nothing is persisted when no tag was added.
	Merge(ctx context.Context, tags []string) (int, error)

	// Options returns the tags sorted for display as filter options.
	Options(ctx context.Context) ([]FilterOption, error)
}
