package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/shuku"
)

// Compile-time interface verification.
var (
	_ shuku.KVStore       = (*KVStore)(nil)
	_ shuku.KVStore       = (*MemoryStore)(nil)
	_ shuku.TagVocabulary = (*TagVocabulary)(nil)
)

// KVStore is a mock implementation of shuku.KVStore.
type KVStore struct {
	GetFn func(ctx context.Context, key string) (string, bool, error)
	SetFn func(ctx context.Context, key, value string) error
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

// MemoryStore is an in-memory shuku.KVStore that counts writes.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	Writes int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.Writes++
	return nil
}

// TagVocabulary is a mock implementation of shuku.TagVocabulary.
type TagVocabulary struct {
	LoadFn    func(ctx context.Context) ([]string, error)
	MergeFn   func(ctx context.Context, tags []string) (int, error)
	OptionsFn func(ctx context.Context) ([]shuku.FilterOption, error)
}

func (v *TagVocabulary) Load(ctx context.Context) ([]string, error) {
	return v.LoadFn(ctx)
}

func (v *TagVocabulary) Merge(ctx context.Context, tags []string) (int, error) {
	return v.MergeFn(ctx, tags)
}

func (v *TagVocabulary) Options(ctx context.Context) ([]shuku.FilterOption, error) {
	return v.OptionsFn(ctx)
}
