// Package kv is the durable key-value substrate the ledger persists into.
//
// Values are JSON-encoded entity collections or singletons. An absent key is
// a valid, expected state and is never reported as an error.
package kv

import "context"

// Store reads, writes and deletes JSON payloads by string key.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent, which is not an error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
