package tracker

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/models"
)

// Water returns the current water log.
func (t *Tracker) Water() (models.WaterLog, error) {
	return t.store.Water()
}

// DrinkWater adds the currently selected size to today's intake and stamps
// the last intake time.
func (t *Tracker) DrinkWater() (models.WaterLog, error) {
	water, err := t.store.Water()
	if err != nil {
		return models.WaterLog{}, err
	}
	return t.addWater(water, water.SelectedSize)
}

// AddWater adds an explicit amount to today's intake.
func (t *Tracker) AddWater(ml int) (models.WaterLog, error) {
	if ml <= 0 {
		return models.WaterLog{}, fmt.Errorf("amount must be positive")
	}
	water, err := t.store.Water()
	if err != nil {
		return models.WaterLog{}, err
	}
	return t.addWater(water, ml)
}

func (t *Tracker) addWater(water models.WaterLog, ml int) (models.WaterLog, error) {
	now := t.now()
	water.IntakeMl += ml
	water.LastIntakeAt = &now
	if err := t.store.SaveWater(water); err != nil {
		return models.WaterLog{}, err
	}
	return water, nil
}

// SetWaterTarget updates the daily target.
func (t *Tracker) SetWaterTarget(ml int) error {
	if ml <= 0 {
		return fmt.Errorf("target must be positive")
	}
	water, err := t.store.Water()
	if err != nil {
		return err
	}
	water.TargetMl = ml
	return t.store.SaveWater(water)
}

// SetWaterSize selects the increment used by DrinkWater. The size must be
// one of the configured sizes.
func (t *Tracker) SetWaterSize(ml int) error {
	water, err := t.store.Water()
	if err != nil {
		return err
	}
	for _, size := range water.Sizes {
		if size == ml {
			water.SelectedSize = ml
			return t.store.SaveWater(water)
		}
	}
	return fmt.Errorf("size %dml is not one of the configured sizes", ml)
}

// SetWaterSizes replaces the configured increment set. The selected size is
// clamped onto the new set when it no longer appears.
func (t *Tracker) SetWaterSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("at least one size is required")
	}
	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("sizes must be positive, got %d", size)
		}
	}

	water, err := t.store.Water()
	if err != nil {
		return err
	}
	water.Sizes = sizes

	selected := false
	for _, size := range sizes {
		if size == water.SelectedSize {
			selected = true
			break
		}
	}
	if !selected {
		water.SelectedSize = sizes[0]
	}

	return t.store.SaveWater(water)
}
