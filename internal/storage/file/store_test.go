package file

import (
	"path/filepath"
	"testing"
)

func TestReadWrite(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	t.Run("absent key reads as not found", func(t *testing.T) {
		value, found, err := store.Read("habits")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if found || value != "" {
			t.Errorf("read = (%q, %v), want empty and not found", value, found)
		}
	})

	t.Run("write then read round-trips", func(t *testing.T) {
		if err := store.Write("habits", `[{"id":"1"}]`); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		value, found, err := store.Read("habits")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if !found || value != `[{"id":"1"}]` {
			t.Errorf("read = (%q, %v), want the written value", value, found)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		if err := store.Write("water-intake", "250"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := store.Write("water-intake", "500"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		value, _, _ := store.Read("water-intake")
		if value != "500" {
			t.Errorf("value = %q, want 500", value)
		}
	})
}

func TestKeys(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	for _, key := range []string{"habits", "supplements", "water-target"} {
		if err := store.Write(key, "x"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("keys = %v, want 3 entries", keys)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"))
	if err := store.Load(); err == nil {
		t.Error("expected load to fail before init")
	}

	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Errorf("load after init failed: %v", err)
	}
}
