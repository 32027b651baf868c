package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

// HabitPatch carries the fields of a habit update. Nil fields are left
// unchanged on the stored record.
type HabitPatch struct {
	Name         *string
	Icon         *string
	Rhythm       *constants.Frequency
	ReminderTime *string
	WeekDays     *[]time.Weekday
}

// AddHabit assigns an id and creation timestamp, appends the habit, and
// persists the collection.
func (t *Tracker) AddHabit(habit models.Habit) (models.Habit, error) {
	habit.ID = uuid.NewString()
	habit.CompletedToday = false
	habit.CreatedAt = t.now()

	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}

	habits, err := t.store.Habits()
	if err != nil {
		return models.Habit{}, err
	}
	habits = append(habits, habit)
	if err := t.store.SaveHabits(habits); err != nil {
		return models.Habit{}, err
	}

	t.notifyReminderChanged(habit.Name, habit.ReminderTime)
	return habit, nil
}

// UpdateHabit merges the patch into the habit with the given id. Unknown
// ids are a silent no-op.
func (t *Tracker) UpdateHabit(id string, patch HabitPatch) error {
	habits, err := t.store.Habits()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		if patch.Name != nil {
			habits[i].Name = *patch.Name
		}
		if patch.Icon != nil {
			habits[i].Icon = *patch.Icon
		}
		if patch.Rhythm != nil {
			habits[i].Rhythm = *patch.Rhythm
		}
		if patch.ReminderTime != nil {
			habits[i].ReminderTime = *patch.ReminderTime
		}
		if patch.WeekDays != nil {
			habits[i].WeekDays = *patch.WeekDays
		}
		if err := habits[i].Validate(); err != nil {
			return err
		}
		if err := t.store.SaveHabits(habits); err != nil {
			return err
		}
		t.notifyReminderChanged(habits[i].Name, habits[i].ReminderTime)
		return nil
	}

	return nil
}

// DeleteHabit filters the habit out of the collection. Deleting an id that
// does not exist is not an error.
func (t *Tracker) DeleteHabit(id string) error {
	habits, err := t.store.Habits()
	if err != nil {
		return err
	}

	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	return t.store.SaveHabits(kept)
}

// ToggleHabit flips the habit's completedToday flag. Habits carry no streak
// counter, so a toggle has no other side effect.
func (t *Tracker) ToggleHabit(id string) (models.Habit, error) {
	habits, err := t.store.Habits()
	if err != nil {
		return models.Habit{}, err
	}

	for i := range habits {
		if habits[i].ID == id {
			habits[i].CompletedToday = !habits[i].CompletedToday
			if err := t.store.SaveHabits(habits); err != nil {
				return models.Habit{}, err
			}
			return habits[i], nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit not found: %s", id)
}
