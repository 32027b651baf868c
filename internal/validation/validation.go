package validation

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHabitName      ConflictType = "duplicate_habit_name"
	ConflictDuplicateSupplementName ConflictType = "duplicate_supplement_name"
	ConflictInvalidReminderTime     ConflictType = "invalid_reminder_time"
	ConflictInvalidWeekdaySet       ConflictType = "invalid_weekday_set"
	ConflictNegativeStreak          ConflictType = "negative_streak"
)

// Conflict represents a detected conflict in the tracked collections
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // names of the entities involved
	IDs         []string // ids of the entities involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates the tracked collections for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks habits for duplicate names and malformed fields
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	var result ValidationResult

	seen := make(map[string][]string)
	for _, h := range habits {
		name := strings.ToLower(strings.TrimSpace(h.Name))
		seen[name] = append(seen[name], h.ID)

		if err := h.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidReminderTime,
				Description: fmt.Sprintf("habit %q is invalid: %v", h.Name, err),
				Items:       []string{h.Name},
				IDs:         []string{h.ID},
			})
		}
	}

	for name, ids := range seen {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("habit name %q is used by %d habits", name, len(ids)),
				Items:       []string{name},
				IDs:         ids,
			})
		}
	}

	return result
}

// ValidateSupplements checks supplements for duplicate names, malformed
// fields, and streak invariant violations
func (v *Validator) ValidateSupplements(supplements []models.Supplement) ValidationResult {
	var result ValidationResult

	seen := make(map[string][]string)
	for _, s := range supplements {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		seen[name] = append(seen[name], s.ID)

		if s.Streak < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeStreak,
				Description: fmt.Sprintf("supplement %q has negative streak %d", s.Name, s.Streak),
				Items:       []string{s.Name},
				IDs:         []string{s.ID},
			})
			continue
		}

		if err := s.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidReminderTime,
				Description: fmt.Sprintf("supplement %q is invalid: %v", s.Name, err),
				Items:       []string{s.Name},
				IDs:         []string{s.ID},
			})
		}
	}

	for name, ids := range seen {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateSupplementName,
				Description: fmt.Sprintf("supplement name %q is used by %d supplements", name, len(ids)),
				Items:       []string{name},
				IDs:         ids,
			})
		}
	}

	return result
}
