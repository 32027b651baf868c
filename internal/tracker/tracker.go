package tracker

import (
	"time"

	"github.com/habitflow/habitflow/internal/storage"
)

// ReminderFunc is invoked fire-and-forget when an entity's reminder time
// changes. Delivery is not guaranteed; failures stay inside the hook.
type ReminderFunc func(name, reminderTime string)

// Tracker owns every state transition over the record store: daily
// rollover, habit/supplement/task mutation, streak accounting, and water
// intake. All mutation is synchronous; each operation runs to completion
// and persists its collection before returning.
type Tracker struct {
	store *storage.Store
	now   func() time.Time

	// Single-slot undo pointer. Only the most recently taken supplement has
	// a live undo affordance; taking another supplement replaces the
	// pointer without reverting the previous take.
	undoSupplementID string
	undoArmedAt      time.Time

	reminderHook ReminderFunc
}

func New(store *storage.Store) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
	}
}

// SetReminderHook registers a callback fired after mutations that touch an
// entity carrying a reminder time.
func (t *Tracker) SetReminderHook(fn ReminderFunc) {
	t.reminderHook = fn
}

func (t *Tracker) Store() *storage.Store {
	return t.store
}

func (t *Tracker) notifyReminderChanged(name, reminderTime string) {
	if t.reminderHook != nil && reminderTime != "" {
		t.reminderHook(name, reminderTime)
	}
}
