package entities

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/utils"
)

// HabitItem adapts a habit for the bubbles list.
type HabitItem struct {
	Habit models.Habit
}

func (i HabitItem) Title() string {
	mark := "☐"
	if i.Habit.CompletedToday {
		mark = "✓"
	}
	if i.Habit.Icon != "" {
		return fmt.Sprintf("%s %s %s", mark, i.Habit.Icon, i.Habit.Name)
	}
	return fmt.Sprintf("%s %s", mark, i.Habit.Name)
}

func (i HabitItem) Description() string {
	desc := string(i.Habit.Rhythm)
	if i.Habit.Rhythm == constants.FrequencyWeekly && len(i.Habit.WeekDays) > 0 {
		desc += " | " + utils.FormatWeekdays(i.Habit.WeekDays)
	}
	if i.Habit.ReminderTime != "" {
		desc += " | ⏰ " + i.Habit.ReminderTime
	}
	return desc
}

func (i HabitItem) FilterValue() string { return i.Habit.Name }

// SupplementItem adapts a supplement for the bubbles list.
type SupplementItem struct {
	Supplement models.Supplement
}

func (i SupplementItem) Title() string {
	mark := "☐"
	if i.Supplement.TakenToday {
		mark = "✓"
	}
	if i.Supplement.Icon != "" {
		return fmt.Sprintf("%s %s %s", mark, i.Supplement.Icon, i.Supplement.Name)
	}
	return fmt.Sprintf("%s %s", mark, i.Supplement.Name)
}

func (i SupplementItem) Description() string {
	desc := fmt.Sprintf("🔥 %d day streak", i.Supplement.Streak)
	if i.Supplement.ReminderTime != "" {
		desc += " | ⏰ " + i.Supplement.ReminderTime
	}
	return desc
}

func (i SupplementItem) FilterValue() string { return i.Supplement.Name }

// TaskItem adapts a task for the bubbles list.
type TaskItem struct {
	Task models.Task
}

func (i TaskItem) Title() string {
	mark := "☐"
	if i.Task.Completed {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s", mark, i.Task.Title)
}

func (i TaskItem) Description() string {
	desc := string(i.Task.Priority)
	if i.Task.DueDate != "" {
		desc += " | due " + i.Task.DueDate
	}
	return desc
}

func (i TaskItem) FilterValue() string { return i.Task.Title }

// Model wraps a bubbles list for one entity tab. All tabs share the same
// behavior; only the items differ.
type Model struct {
	list list.Model
}

func New(title string, items []list.Item, width, height int) Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is handled globally in the main model
	l.SetShowStatusBar(false)

	return Model{list: l}
}

func (m *Model) SetItems(items []list.Item) {
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetWidth(width)
	m.list.SetHeight(height)
}

// SelectedID returns the id of the highlighted entity, or "" when the list
// is empty.
func (m Model) SelectedID() string {
	switch item := m.list.SelectedItem().(type) {
	case HabitItem:
		return item.Habit.ID
	case SupplementItem:
		return item.Supplement.ID
	case TaskItem:
		return item.Task.ID
	default:
		return ""
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// HabitItems converts habits to list items.
func HabitItems(habits []models.Habit) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = HabitItem{Habit: h}
	}
	return items
}

// SupplementItems converts supplements to list items.
func SupplementItems(supplements []models.Supplement) []list.Item {
	items := make([]list.Item, len(supplements))
	for i, s := range supplements {
		items[i] = SupplementItem{Supplement: s}
	}
	return items
}

// TaskItems converts tasks to list items.
func TaskItems(tasks []models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Task: t}
	}
	return items
}
