package storage

import (
	"testing"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage/file"
)

func newTestStore(t *testing.T) (*Store, Backend) {
	t.Helper()
	backend := file.NewStore(t.TempDir())
	if err := backend.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return New(backend), backend
}

func TestCollectionsRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	habits := []models.Habit{{ID: "h1", Name: "Read", Rhythm: constants.FrequencyDaily}}
	if err := store.SaveHabits(habits); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Habits()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "Read" {
		t.Errorf("loaded = %+v, want the saved habit", loaded)
	}
}

func TestMalformedRecordsFallBackToDefaults(t *testing.T) {
	store, backend := newTestStore(t)

	t.Run("garbage collection json reads as empty", func(t *testing.T) {
		if err := backend.Write(constants.KeyHabits, "{not json"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		habits, err := store.Habits()
		if err != nil {
			t.Fatalf("expected malformed data to be tolerated, got %v", err)
		}
		if len(habits) != 0 {
			t.Errorf("habits = %+v, want empty", habits)
		}
	})

	t.Run("garbage water scalar reads as default", func(t *testing.T) {
		if err := backend.Write(constants.KeyWaterTarget, "lots"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		water, err := store.Water()
		if err != nil {
			t.Fatalf("expected malformed data to be tolerated, got %v", err)
		}
		if water.TargetMl != constants.DefaultWaterTargetMl {
			t.Errorf("target = %d, want default %d", water.TargetMl, constants.DefaultWaterTargetMl)
		}
	})

	t.Run("garbage last opened date reads as never opened", func(t *testing.T) {
		if err := backend.Write(constants.KeyLastOpenedDate, "yesterday"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		date, err := store.LastOpenedDate()
		if err != nil {
			t.Fatalf("expected malformed data to be tolerated, got %v", err)
		}
		if date != "" {
			t.Errorf("date = %q, want empty", date)
		}
	})

	t.Run("garbage last water time is discarded", func(t *testing.T) {
		if err := backend.Write(constants.KeyLastWaterTime, "noon"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		water, err := store.Water()
		if err != nil {
			t.Fatalf("expected malformed data to be tolerated, got %v", err)
		}
		if water.LastIntakeAt != nil {
			t.Errorf("lastIntakeAt = %v, want nil", water.LastIntakeAt)
		}
	})
}

func TestWaterDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	water, err := store.Water()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if water.TargetMl != constants.DefaultWaterTargetMl {
		t.Errorf("target = %d, want %d", water.TargetMl, constants.DefaultWaterTargetMl)
	}
	if water.SelectedSize != constants.DefaultWaterSizeMl {
		t.Errorf("selected size = %d, want %d", water.SelectedSize, constants.DefaultWaterSizeMl)
	}
	if len(water.Sizes) != len(constants.DefaultWaterSizes) {
		t.Errorf("sizes = %v, want defaults", water.Sizes)
	}
	if water.IntakeMl != 0 {
		t.Errorf("intake = %d, want 0", water.IntakeMl)
	}
}

func TestWaterRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	stamp := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	water := models.WaterLog{
		IntakeMl:     750,
		TargetMl:     3000,
		SelectedSize: 330,
		Sizes:        []int{250, 330},
		LastIntakeAt: &stamp,
	}
	if err := store.SaveWater(water); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Water()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.IntakeMl != 750 || loaded.TargetMl != 3000 || loaded.SelectedSize != 330 {
		t.Errorf("loaded = %+v, want the saved values", loaded)
	}
	if loaded.LastIntakeAt == nil || !loaded.LastIntakeAt.Equal(stamp) {
		t.Errorf("lastIntakeAt = %v, want %v", loaded.LastIntakeAt, stamp)
	}
}

func TestSettings(t *testing.T) {
	store, backend := newTestStore(t)

	t.Run("defaults apply when nothing is stored", func(t *testing.T) {
		settings, err := store.Settings()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !settings.NotificationsEnabled {
			t.Error("notifications default to enabled")
		}
		if settings.DarkMode {
			t.Error("dark mode defaults to off")
		}
	})

	t.Run("round trip including the dark-mode scalar key", func(t *testing.T) {
		if err := store.SaveSettings(models.Settings{NotificationsEnabled: false, DarkMode: true}); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		settings, err := store.Settings()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if settings.NotificationsEnabled || !settings.DarkMode {
			t.Errorf("settings = %+v, want saved values", settings)
		}

		// Dark mode is readable without parsing the settings document
		raw, found, err := backend.Read(constants.KeyDarkMode)
		if err != nil || !found {
			t.Fatalf("dark-mode key read = (%v, %v)", found, err)
		}
		if raw != "true" {
			t.Errorf("dark-mode raw value = %q, want true", raw)
		}
	})
}
