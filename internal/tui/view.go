package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.styles.Doc.Render(m.habitList.View())
	case StateSupplements:
		content = m.styles.Doc.Render(m.supplementList.View())
	case StateWater:
		content = m.viewWater()
	case StateTasks:
		content = m.styles.Doc.Render(m.taskList.View())
	case StateAddHabit, StateAddSupplement, StateAddTask:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if banner := m.viewUndoBanner(); banner != "" {
		sections = append(sections, banner)
	}
	if m.statusMessage != "" {
		sections = append(sections, m.styles.Muted.Render(m.statusMessage))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Supplements", "Water", "Tasks"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewWater() string {
	water, err := m.tracker.Water()
	if err != nil {
		return m.styles.Doc.Render(m.styles.Danger.Render("Failed to load water log: " + err.Error()))
	}

	bar := renderProgressBar(water.Progress(), 30)
	lines := []string{
		fmt.Sprintf("💧 %d / %d ml", water.IntakeMl, water.TargetMl),
		"",
		m.styles.Accent.Render(bar) + fmt.Sprintf(" %d%%", int(water.Progress()*100)),
		"",
		fmt.Sprintf("Glass size: %d ml", water.SelectedSize),
	}
	if water.LastIntakeAt != nil {
		lines = append(lines, m.styles.Muted.Render("Last drink: "+water.LastIntakeAt.Format("15:04")))
	}
	lines = append(lines, "", m.styles.Muted.Render("Press enter to log a glass"))

	return m.styles.Doc.Render(strings.Join(lines, "\n"))
}

// viewUndoBanner shows the pending supplement undo countdown, if any.
func (m Model) viewUndoBanner() string {
	id, remaining := m.tracker.PendingUndo()
	if id == "" {
		return ""
	}
	seconds := int(remaining.Seconds()) + 1
	return m.styles.Accent.Render(fmt.Sprintf("  Supplement taken. Press u to undo (%ds)", seconds))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Danger.Render("Are you sure you want to delete this item?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
