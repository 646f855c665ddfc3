// ABOUTME: KV interface for the workout snapshot persistence boundary.
// ABOUTME: Backends store one JSON blob per key; last write wins.
package storage

import "context"

// SnapshotKey is the fixed key holding the serialized workout collection.
const SnapshotKey = "@workouts"

// KV is the external key-value store the workout snapshot lives in.
// Get reports ok=false for an absent key.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
