package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow/internal/constants"
)

func validateReminderTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

// NewHabitForm creates a new form for adding habits
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Description("Optional emoji shown next to the name").
				Value(&fm.Icon),
			huh.NewSelect[string]().
				Title("Rhythm").
				Options(
					huh.NewOption("Daily", string(constants.FrequencyDaily)),
					huh.NewOption("Weekly", string(constants.FrequencyWeekly)),
				).
				Value(&fm.Rhythm),
			huh.NewInput().
				Title("Reminder (HH:MM)").
				Description("Leave empty for no reminder").
				Value(&fm.ReminderTime).
				Validate(validateReminderTime),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSupplementForm creates a new form for adding supplements
func NewSupplementForm(fm *SupplementFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Supplement Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("supplement name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Description("Optional emoji shown next to the name").
				Value(&fm.Icon),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(constants.FrequencyDaily)),
					huh.NewOption("Weekly", string(constants.FrequencyWeekly)),
				).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Reminder (HH:MM)").
				Description("Leave empty for no reminder").
				Value(&fm.ReminderTime).
				Validate(validateReminderTime),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewTaskForm creates a new form for adding tasks
func NewTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Description("Leave empty for no due date").
				Value(&fm.DueDate).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(constants.PriorityLow)),
					huh.NewOption("Medium", string(constants.PriorityMedium)),
					huh.NewOption("High", string(constants.PriorityHigh)),
				).
				Value(&fm.Priority),
		),
	).WithTheme(huh.ThemeDracula())
}
