package models

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
)

// Task represents a one-off to-do item
type Task struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Completed bool               `json:"completed"`
	DueDate   string             `json:"dueDate,omitempty"` // YYYY-MM-DD format
	Priority  constants.Priority `json:"priority,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}

	if t.DueDate != "" {
		if _, err := time.Parse(constants.DateFormat, t.DueDate); err != nil {
			return fmt.Errorf("invalid due date format (expected YYYY-MM-DD): %w", err)
		}
	}

	switch t.Priority {
	case "", constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
	default:
		return fmt.Errorf("invalid priority %q (expected low, medium, or high)", t.Priority)
	}

	return nil
}
