package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

// SupplementPatch carries the fields of a supplement update. Nil fields are
// left unchanged on the stored record.
type SupplementPatch struct {
	Name         *string
	Icon         *string
	Frequency    *constants.Frequency
	ReminderTime *string
	WeekDays     *[]time.Weekday
}

// AddSupplement assigns an id and creation timestamp, starts the streak at
// zero, appends the supplement, and persists the collection.
func (t *Tracker) AddSupplement(supplement models.Supplement) (models.Supplement, error) {
	supplement.ID = uuid.NewString()
	supplement.Streak = 0
	supplement.TakenToday = false
	supplement.LastTakenAt = nil
	supplement.CreatedAt = t.now()

	if err := supplement.Validate(); err != nil {
		return models.Supplement{}, err
	}

	supplements, err := t.store.Supplements()
	if err != nil {
		return models.Supplement{}, err
	}
	supplements = append(supplements, supplement)
	if err := t.store.SaveSupplements(supplements); err != nil {
		return models.Supplement{}, err
	}

	t.notifyReminderChanged(supplement.Name, supplement.ReminderTime)
	return supplement, nil
}

// UpdateSupplement merges the patch into the supplement with the given id.
// Unknown ids are a silent no-op.
func (t *Tracker) UpdateSupplement(id string, patch SupplementPatch) error {
	supplements, err := t.store.Supplements()
	if err != nil {
		return err
	}

	for i := range supplements {
		if supplements[i].ID != id {
			continue
		}
		if patch.Name != nil {
			supplements[i].Name = *patch.Name
		}
		if patch.Icon != nil {
			supplements[i].Icon = *patch.Icon
		}
		if patch.Frequency != nil {
			supplements[i].Frequency = *patch.Frequency
		}
		if patch.ReminderTime != nil {
			supplements[i].ReminderTime = *patch.ReminderTime
		}
		if patch.WeekDays != nil {
			supplements[i].WeekDays = *patch.WeekDays
		}
		if err := supplements[i].Validate(); err != nil {
			return err
		}
		if err := t.store.SaveSupplements(supplements); err != nil {
			return err
		}
		t.notifyReminderChanged(supplements[i].Name, supplements[i].ReminderTime)
		return nil
	}

	return nil
}

// DeleteSupplement filters the supplement out of the collection. Deleting
// an id that does not exist is not an error.
func (t *Tracker) DeleteSupplement(id string) error {
	supplements, err := t.store.Supplements()
	if err != nil {
		return err
	}

	kept := supplements[:0]
	for _, s := range supplements {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if err := t.store.SaveSupplements(kept); err != nil {
		return err
	}

	if t.undoSupplementID == id {
		t.undoSupplementID = ""
	}
	return nil
}

// TakeSupplement marks the supplement taken: streak +1, takenToday set,
// lastTakenAt stamped. It also arms the undo affordance for this
// supplement, displacing whichever supplement held it before. Taking a
// supplement that is already taken today is a no-op.
func (t *Tracker) TakeSupplement(id string) (models.Supplement, error) {
	supplements, err := t.store.Supplements()
	if err != nil {
		return models.Supplement{}, err
	}

	for i := range supplements {
		if supplements[i].ID != id {
			continue
		}
		if supplements[i].TakenToday {
			return supplements[i], nil
		}

		now := t.now()
		supplements[i].Streak++
		supplements[i].TakenToday = true
		supplements[i].LastTakenAt = &now

		if err := t.store.SaveSupplements(supplements); err != nil {
			return models.Supplement{}, err
		}

		t.undoSupplementID = id
		t.undoArmedAt = now
		return supplements[i], nil
	}

	return models.Supplement{}, fmt.Errorf("supplement not found: %s", id)
}

// UntakeSupplement reverts a take: streak -1 floored at zero, takenToday
// cleared, lastTakenAt cleared. Untaking a supplement that is not taken
// today is a no-op, so a take committed before rollover cannot be eroded
// the next day.
func (t *Tracker) UntakeSupplement(id string) (models.Supplement, error) {
	supplements, err := t.store.Supplements()
	if err != nil {
		return models.Supplement{}, err
	}

	for i := range supplements {
		if supplements[i].ID != id {
			continue
		}
		if !supplements[i].TakenToday {
			return supplements[i], nil
		}

		if supplements[i].Streak > 0 {
			supplements[i].Streak--
		}
		supplements[i].TakenToday = false
		supplements[i].LastTakenAt = nil

		if err := t.store.SaveSupplements(supplements); err != nil {
			return models.Supplement{}, err
		}

		if t.undoSupplementID == id {
			t.undoSupplementID = ""
		}
		return supplements[i], nil
	}

	return models.Supplement{}, fmt.Errorf("supplement not found: %s", id)
}

// ToggleSupplement takes the supplement if it is not taken today, and
// untakes it otherwise.
func (t *Tracker) ToggleSupplement(id string) (models.Supplement, error) {
	supplements, err := t.store.Supplements()
	if err != nil {
		return models.Supplement{}, err
	}

	for _, s := range supplements {
		if s.ID == id {
			if s.TakenToday {
				return t.UntakeSupplement(id)
			}
			return t.TakeSupplement(id)
		}
	}

	return models.Supplement{}, fmt.Errorf("supplement not found: %s", id)
}

// PendingUndo returns the supplement id holding the undo affordance and the
// time left on its window. When no undo is live it returns ("", 0).
func (t *Tracker) PendingUndo() (string, time.Duration) {
	if t.undoSupplementID == "" {
		return "", 0
	}
	remaining := constants.UndoWindow - t.now().Sub(t.undoArmedAt)
	if remaining <= 0 {
		// Window expired: the take is permanent, only the affordance goes away
		t.undoSupplementID = ""
		return "", 0
	}
	return t.undoSupplementID, remaining
}

// Undo reverts the take currently holding the undo affordance, if its
// window is still open.
func (t *Tracker) Undo() (models.Supplement, error) {
	id, remaining := t.PendingUndo()
	if id == "" || remaining <= 0 {
		return models.Supplement{}, fmt.Errorf("nothing to undo")
	}
	return t.UntakeSupplement(id)
}
