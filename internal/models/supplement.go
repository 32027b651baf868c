package models

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
)

// Supplement represents a supplement with a cumulative take streak
type Supplement struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Icon         string              `json:"icon"`
	Streak       int                 `json:"streak"`
	TakenToday   bool                `json:"takenToday"`
	Frequency    constants.Frequency `json:"frequency"`
	ReminderTime string              `json:"reminderTime,omitempty"` // HH:MM format
	WeekDays     []time.Weekday      `json:"weekDays,omitempty"`     // 0-6, Sunday to Saturday
	LastTakenAt  *time.Time          `json:"lastTakenAt,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func (s *Supplement) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("supplement name cannot be empty")
	}

	if s.Streak < 0 {
		return fmt.Errorf("streak cannot be negative")
	}

	if s.Frequency != constants.FrequencyDaily && s.Frequency != constants.FrequencyWeekly {
		return fmt.Errorf("invalid frequency %q (expected daily or weekly)", s.Frequency)
	}

	if s.Frequency == constants.FrequencyWeekly && len(s.WeekDays) == 0 {
		return fmt.Errorf("weekdays must be specified for weekly frequency")
	}

	if s.ReminderTime != "" {
		if _, err := time.Parse(constants.TimeFormat, s.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}

	for _, wd := range s.WeekDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday: %d", wd)
		}
	}

	return nil
}

// IsDueToday checks whether the supplement is expected today given its frequency
func (s *Supplement) IsDueToday(today time.Time) bool {
	if s.Frequency == constants.FrequencyDaily {
		return true
	}
	todayWeekday := today.Weekday()
	for _, wd := range s.WeekDays {
		if wd == todayWeekday {
			return true
		}
	}
	return false
}
