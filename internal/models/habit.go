package models

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Icon           string              `json:"icon"`
	CompletedToday bool                `json:"completedToday"`
	Rhythm         constants.Frequency `json:"rhythm"`
	ReminderTime   string              `json:"reminderTime,omitempty"` // HH:MM format
	WeekDays       []time.Weekday      `json:"weekDays,omitempty"`     // 0-6, Sunday to Saturday
	CreatedAt      time.Time           `json:"createdAt"`
}

func (h *Habit) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if h.Rhythm != constants.FrequencyDaily && h.Rhythm != constants.FrequencyWeekly {
		return fmt.Errorf("invalid rhythm %q (expected daily or weekly)", h.Rhythm)
	}

	// Weekday set only carries meaning for weekly habits
	if h.Rhythm == constants.FrequencyWeekly && len(h.WeekDays) == 0 {
		return fmt.Errorf("weekdays must be specified for weekly rhythm")
	}

	if h.ReminderTime != "" {
		if _, err := time.Parse(constants.TimeFormat, h.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}

	for _, wd := range h.WeekDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday: %d", wd)
		}
	}

	return nil
}

// IsDueToday checks whether the habit is expected today given its rhythm
func (h *Habit) IsDueToday(today time.Time) bool {
	if h.Rhythm == constants.FrequencyDaily {
		return true
	}
	todayWeekday := today.Weekday()
	for _, wd := range h.WeekDays {
		if wd == todayWeekday {
			return true
		}
	}
	return false
}
