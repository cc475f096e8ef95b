package shuku

import "context"

// KVStore is a generic persistent key/value store.
type KVStore interface {
	// Get returns the value stored under key.
	// ok is false if the key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
