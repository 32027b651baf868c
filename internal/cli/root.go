package cli

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow/internal/backup"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/internal/tracker"
)

// Context is passed to every command's Run method.
type Context struct {
	Store   *storage.Store
	Tracker *tracker.Tracker

	// SQLitePath is set when the active backend is SQLite; snapshot
	// backups only work against that backend.
	SQLitePath string
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.SQLitePath == "" {
		return
	}
	mgr := backup.NewManager(c.SQLitePath)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveHabit finds a habit by id or case-insensitive name.
func ResolveHabit(store *storage.Store, ref string) (models.Habit, error) {
	habits, err := store.Habits()
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if h.ID == ref || strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// ResolveSupplement finds a supplement by id or case-insensitive name.
func ResolveSupplement(store *storage.Store, ref string) (models.Supplement, error) {
	supplements, err := store.Supplements()
	if err != nil {
		return models.Supplement{}, err
	}
	for _, s := range supplements {
		if s.ID == ref || strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}
	return models.Supplement{}, fmt.Errorf("supplement %q not found", ref)
}

// ResolveTask finds a task by id or case-insensitive title.
func ResolveTask(store *storage.Store, ref string) (models.Task, error) {
	tasks, err := store.Tasks()
	if err != nil {
		return models.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == ref || strings.EqualFold(t.Title, ref) {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %q not found", ref)
}
