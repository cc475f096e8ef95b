// Package vocab implements the persisted tag vocabulary.
package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/shuku"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ensure Cache implements shuku.TagVocabulary at compile time.
var _ shuku.TagVocabulary = (*Cache)(nil)

// Key is the store key the vocabulary is persisted under.
const Key = "tag_vocabulary"

// Cache is a shuku.TagVocabulary persisted in a shuku.KVStore as a JSON
// array. It keeps no state between calls: every operation reads the store.
type Cache struct {
	store shuku.KVStore
	lang  language.Tag
}

// Option configures a Cache.
type Option func(*Cache)

// WithLanguage sets the collation language for Options.
// Defaults to Simplified Chinese (pinyin order).
func WithLanguage(tag language.Tag) Option {
	return func(c *Cache) {
		c.lang = tag
	}
}

// NewCache creates a new Cache over store.
func NewCache(store shuku.KVStore, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		lang:  language.SimplifiedChinese,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the persisted tags. A missing or malformed value is an
// empty vocabulary; non-string elements are dropped.
func (c *Cache) Load(ctx context.Context) ([]string, error) {
	raw, ok, err := c.store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("loading tag vocabulary: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}

	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}, nil
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags, nil
}

// Merge adds each non-empty tag not already present and persists the
// result only if something was added.
func (c *Cache) Merge(ctx context.Context, tags []string) (int, error) {
	current, err := c.Load(ctx)
	if err != nil {
		return 0, err
	}

	known := make(map[string]bool, len(current))
	for _, t := range current {
		known[t] = true
	}

	added := 0
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || known[t] {
			continue
		}
		known[t] = true
		current = append(current, t)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	b, err := json.Marshal(current)
	if err != nil {
		return 0, err
	}
	if err := c.store.Set(ctx, Key, string(b)); err != nil {
		return 0, fmt.Errorf("saving tag vocabulary: %w", err)
	}
	return added, nil
}

// Options returns the vocabulary sorted by the cache's collation language,
// each tag used as both label and value.
func (c *Cache) Options(ctx context.Context) ([]shuku.FilterOption, error) {
	tags, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}

	collate.New(c.lang).SortStrings(tags)

	opts := make([]shuku.FilterOption, 0, len(tags))
	for _, t := range tags {
		opts = append(opts, shuku.FilterOption{Label: t, Value: t})
	}
	return opts, nil
}
