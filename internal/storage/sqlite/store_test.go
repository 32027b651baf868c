package sqlite

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReadWrite(t *testing.T) {
	store := newTestStore(t)

	value, found, err := store.Read("habits")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if found || value != "" {
		t.Errorf("read = (%q, %v), want empty and not found", value, found)
	}

	if err := store.Write("habits", `[]`); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	value, found, err = store.Read("habits")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !found || value != `[]` {
		t.Errorf("read = (%q, %v), want ([], true)", value, found)
	}
}

func TestWriteReplaces(t *testing.T) {
	store := newTestStore(t)

	if err := store.Write("dark-mode", "false"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Write("dark-mode", "true"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	value, _, _ := store.Read("dark-mode")
	if value != "true" {
		t.Errorf("value = %q, want true", value)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("keys = %v, want a single row per key", keys)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected load to fail before init")
	}
}

func TestLoadAfterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := store.Write("water-target", "2500"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer reopened.Close()

	value, found, err := reopened.Read("water-target")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !found || value != "2500" {
		t.Errorf("read = (%q, %v), want persisted value", value, found)
	}
}
