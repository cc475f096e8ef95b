package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shuku"
)

// Ensure LoggingVocabulary implements shuku.TagVocabulary.
var _ shuku.TagVocabulary = (*LoggingVocabulary)(nil)

// LoggingVocabulary wraps a TagVocabulary with logging of merges.
type LoggingVocabulary struct {
	next   shuku.TagVocabulary
	logger *slog.Logger
}

// NewLoggingVocabulary creates a new LoggingVocabulary.
func NewLoggingVocabulary(next shuku.TagVocabulary, logger *slog.Logger) *LoggingVocabulary {
	return &LoggingVocabulary{next: next, logger: logger}
}

// Load delegates to the wrapped vocabulary.
func (v *LoggingVocabulary) Load(ctx context.Context) ([]string, error) {
	return v.next.Load(ctx)
}

// Merge logs how many of the offered tags were new.
func (v *LoggingVocabulary) Merge(ctx context.Context, tags []string) (added int, err error) {
	defer func(begin time.Time) {
		v.logger.Info("vocabulary merge",
			"offered", len(tags),
			"added", added,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.Merge(ctx, tags)
}

// Options delegates to the wrapped vocabulary.
func (v *LoggingVocabulary) Options(ctx context.Context) ([]shuku.FilterOption, error) {
	return v.next.Options(ctx)
}
