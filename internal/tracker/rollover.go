package tracker

import (
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/utils"
)

// CheckAndResetDaily performs the daily rollover. It compares today's
// calendar date against the persisted last-opened date and, when they
// differ, clears every habit's completedToday flag, every supplement's
// takenToday flag (streaks are untouched), zeroes the water intake, and
// persists today as the new last-opened date. Days on which the app was
// never opened are skipped silently; there is no backfill.
//
// Calling it again on the same day is a no-op, so it is safe to invoke on
// every start. Returns true when a reset was performed.
func (t *Tracker) CheckAndResetDaily() (bool, error) {
	today := utils.Today(t.now())

	lastOpened, err := t.store.LastOpenedDate()
	if err != nil {
		return false, err
	}
	if lastOpened == today {
		return false, nil
	}

	habits, err := t.store.Habits()
	if err != nil {
		return false, err
	}
	for i := range habits {
		habits[i].CompletedToday = false
	}
	if err := t.store.SaveHabits(habits); err != nil {
		return false, err
	}

	supplements, err := t.store.Supplements()
	if err != nil {
		return false, err
	}
	for i := range supplements {
		supplements[i].TakenToday = false
	}
	if err := t.store.SaveSupplements(supplements); err != nil {
		return false, err
	}

	water, err := t.store.Water()
	if err != nil {
		return false, err
	}
	water.IntakeMl = 0
	if err := t.store.SaveWater(water); err != nil {
		return false, err
	}

	if err := t.store.SetLastOpenedDate(today); err != nil {
		return false, err
	}

	logger.Info("Daily rollover performed", "lastOpened", lastOpened, "today", today)
	return true, nil
}
