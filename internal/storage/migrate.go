// ABOUTME: Data migration between storage backends.
// ABOUTME: Copies the workout snapshot from a source KV to a destination KV.

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Workouts int
	Bytes    int
}

// MigrateData copies the snapshot under key from src to dst. The destination
// must not already hold a snapshot unless overwrite is set.
func MigrateData(ctx context.Context, src, dst KV, key string, overwrite bool) (*MigrateSummary, error) {
	value, ok, err := src.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read source snapshot: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("source has no snapshot under %q", key)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, fmt.Errorf("source snapshot is not a JSON array: %w", err)
	}

	if !overwrite {
		_, exists, err := dst.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read destination snapshot: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("destination already has a snapshot under %q", key)
		}
	}

	if err := dst.Set(ctx, key, value); err != nil {
		return nil, fmt.Errorf("write destination snapshot: %w", err)
	}

	return &MigrateSummary{Workouts: len(entries), Bytes: len(value)}, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
