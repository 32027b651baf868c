package cli

import (
	"testing"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/internal/storage/file"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	backend := file.NewStore(t.TempDir())
	if err := backend.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	store := storage.New(backend)
	return &Context{Store: store}
}

func TestResolveHabit(t *testing.T) {
	ctx := newTestContext(t)
	if err := ctx.Store.SaveHabits([]models.Habit{
		{ID: "habit-1", Name: "Morning Run", Rhythm: constants.FrequencyDaily},
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	t.Run("by id", func(t *testing.T) {
		habit, err := ResolveHabit(ctx.Store, "habit-1")
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if habit.Name != "Morning Run" {
			t.Errorf("resolved %q", habit.Name)
		}
	})

	t.Run("by case-insensitive name", func(t *testing.T) {
		habit, err := ResolveHabit(ctx.Store, "morning run")
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if habit.ID != "habit-1" {
			t.Errorf("resolved %q", habit.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := ResolveHabit(ctx.Store, "evening run"); err == nil {
			t.Error("expected error for unknown habit")
		}
	})
}

func TestResolveSupplement(t *testing.T) {
	ctx := newTestContext(t)
	if err := ctx.Store.SaveSupplements([]models.Supplement{
		{ID: "sup-1", Name: "Vitamin D", Frequency: constants.FrequencyDaily},
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sup, err := ResolveSupplement(ctx.Store, "vitamin d")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sup.ID != "sup-1" {
		t.Errorf("resolved %q", sup.ID)
	}
}

func TestResolveTask(t *testing.T) {
	ctx := newTestContext(t)
	if err := ctx.Store.SaveTasks([]models.Task{
		{ID: "task-1", Title: "File taxes"},
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	task, err := ResolveTask(ctx.Store, "FILE TAXES")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if task.ID != "task-1" {
		t.Errorf("resolved %q", task.ID)
	}
}

func TestPerformAutomaticBackupWithoutSQLite(t *testing.T) {
	ctx := newTestContext(t)
	// No SQLitePath set; must be a silent no-op
	ctx.PerformAutomaticBackup()
}
