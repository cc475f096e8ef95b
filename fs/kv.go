// Package fs provides file-based storage for shuku.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/shuku"
)

// Ensure KVStore implements shuku.KVStore at compile time.
var _ shuku.KVStore = (*KVStore)(nil)

// KVStore implements shuku.KVStore as a single JSON object on disk.
// Writes go to a temporary file first and are renamed into place, so a
// reader never observes a partially written file.
type KVStore struct {
	path string

	mu sync.Mutex
}

// NewKVStore creates a KVStore backed by the file at path.
// The file and its parent directories are created on first Set.
func NewKVStore(path string) *KVStore {
	return &KVStore{path: path}
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key. An unchanged value is not rewritten.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return shuku.Errorf(shuku.EINVALID, "key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if old, ok := values[key]; ok && old == value {
		return nil
	}
	values[key] = value
	return s.save(values)
}

func (s *KVStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode store %s: %w", s.path, err)
	}
	return values, nil
}

func (s *KVStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
