// ABOUTME: Tests for KV implementations.
// ABOUTME: Runs the same get/set contract against SQLite, Badger, and memory.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir := t.TempDir()
	db, err := Open(filepath.Join(tmpDir, "routine.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestBadger(t *testing.T) *BadgerKV {
	t.Helper()

	kv, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func kvBackends(t *testing.T) map[string]KV {
	return map[string]KV{
		"sqlite": setupTestDB(t),
		"badger": setupTestBadger(t),
		"memory": NewMemoryKV(),
	}
}

func TestKVGetAbsent(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := kv.Get(ctx, SnapshotKey)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Errorf("expected absent key, got %q", value)
			}
		})
	}
}

func TestKVSetAndGet(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(ctx, SnapshotKey, `[{"id":"1"}]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			value, ok, err := kv.Get(ctx, SnapshotKey)
			if err != nil || !ok {
				t.Fatalf("Get = (%q, %v, %v)", value, ok, err)
			}
			if value != `[{"id":"1"}]` {
				t.Errorf("value = %q", value)
			}
		})
	}
}

func TestKVLastWriteWins(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, v := range []string{"[]", `[{"id":"a"}]`, `[{"id":"b"}]`} {
				if err := kv.Set(ctx, SnapshotKey, v); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
			}
			value, _, _ := kv.Get(ctx, SnapshotKey)
			if value != `[{"id":"b"}]` {
				t.Errorf("value = %q, want last write", value)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "routine.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Set(ctx, SnapshotKey, "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	value, ok, err := db.Get(ctx, SnapshotKey)
	if err != nil || !ok || value != "[]" {
		t.Errorf("Get after reopen = (%q, %v, %v)", value, ok, err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "routine.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != "/tmp/xdg-data/routine" {
		t.Errorf("DataDir() = %q", got)
	}
}

func TestMemoryKVCountsWrites(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	_ = kv.Set(ctx, "a", "1")
	_ = kv.Set(ctx, "a", "2")
	if kv.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", kv.Writes())
	}
}
