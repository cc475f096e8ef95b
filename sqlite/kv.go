package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shuku"
)

// Compile-time interface verification.
var _ shuku.KVStore = (*KVStore)(nil)

// KVStore implements shuku.KVStore using SQLite.
type KVStore struct {
	db *DB
}

// NewKVStore creates a new KVStore.
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// hashValue computes the xxHash of a value and returns it as hex.
func hashValue(value string) string {
	var b [8]byte
	h := xxhash.Sum64String(value)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key. Rows whose stored hash already matches are
// left untouched, so rewriting an unchanged value costs no write.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return shuku.Errorf(shuku.EINVALID, "key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, value_hash, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			value_hash = excluded.value_hash,
			updated_at = excluded.updated_at
		WHERE kv.value_hash != excluded.value_hash
	`, key, value, hashValue(value), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
// Returns ENOTFOUND if the key has never been set.
func (s *KVStore) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var updatedAt string
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, shuku.Errorf(shuku.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return t, nil
}
