package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

// tickMsg drives the undo countdown and the water panel clock.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 6
		if listHeight < 1 {
			listHeight = 1
		}
		m.habitList.SetSize(msg.Width, listHeight)
		m.supplementList.SetSize(msg.Width, listHeight)
		m.taskList.SetSize(msg.Width, listHeight)
		return m, nil

	case tickMsg:
		// Keep ticking so the undo countdown and water panel stay fresh
		return m, tickCmd()
	}

	switch m.state {
	case StateAddHabit, StateAddSupplement, StateAddTask:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMessage = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMessage = ""
			return m, nil
		}

		switch m.state {
		case StateHabits:
			return m.updateHabits(msg)
		case StateSupplements:
			return m.updateSupplements(msg)
		case StateWater:
			return m.updateWater(msg)
		case StateTasks:
			return m.updateTasks(msg)
		}
	}

	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if id := m.habitList.SelectedID(); id != "" {
			if _, err := m.tracker.ToggleHabit(id); err != nil {
				m.statusMessage = err.Error()
			}
			m.refreshLists()
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{Rhythm: string(constants.FrequencyDaily)}
		m.form = NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if id := m.habitList.SelectedID(); id != "" {
			m.deleteTargetID = id
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateSupplements(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if id := m.supplementList.SelectedID(); id != "" {
			if _, err := m.tracker.ToggleSupplement(id); err != nil {
				m.statusMessage = err.Error()
			}
			m.refreshLists()
		}
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		if sup, err := m.tracker.Undo(); err != nil {
			m.statusMessage = err.Error()
		} else {
			m.statusMessage = fmt.Sprintf("Reverted %s", sup.Name)
		}
		m.refreshLists()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.supplementForm = &SupplementFormModel{Frequency: string(constants.FrequencyDaily)}
		m.form = NewSupplementForm(m.supplementForm)
		m.previousState = m.state
		m.state = StateAddSupplement
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if id := m.supplementList.SelectedID(); id != "" {
			m.deleteTargetID = id
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.supplementList, cmd = m.supplementList.Update(msg)
	return m, cmd
}

func (m Model) updateWater(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Drink) {
		water, err := m.tracker.DrinkWater()
		if err != nil {
			m.statusMessage = err.Error()
		} else {
			m.statusMessage = fmt.Sprintf("Logged %d ml", water.SelectedSize)
		}
	}
	return m, nil
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if id := m.taskList.SelectedID(); id != "" {
			if _, err := m.tracker.ToggleTask(id); err != nil {
				m.statusMessage = err.Error()
			}
			m.refreshLists()
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.taskForm = &TaskFormModel{Priority: string(constants.PriorityMedium)}
		m.form = NewTaskForm(m.taskForm)
		m.previousState = m.state
		m.state = StateAddTask
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if id := m.taskList.SelectedID(); id != "" {
			m.deleteTargetID = id
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		m.refreshLists()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submitForm() {
	switch m.state {
	case StateAddHabit:
		habit := models.Habit{
			Name:         m.habitForm.Name,
			Icon:         m.habitForm.Icon,
			Rhythm:       constants.Frequency(m.habitForm.Rhythm),
			ReminderTime: m.habitForm.ReminderTime,
		}
		if habit.Rhythm == constants.FrequencyWeekly {
			habit.WeekDays = []time.Weekday{time.Now().Weekday()}
		}
		if _, err := m.tracker.AddHabit(habit); err != nil {
			m.statusMessage = err.Error()
		}
	case StateAddSupplement:
		supplement := models.Supplement{
			Name:         m.supplementForm.Name,
			Icon:         m.supplementForm.Icon,
			Frequency:    constants.Frequency(m.supplementForm.Frequency),
			ReminderTime: m.supplementForm.ReminderTime,
		}
		if supplement.Frequency == constants.FrequencyWeekly {
			supplement.WeekDays = []time.Weekday{time.Now().Weekday()}
		}
		if _, err := m.tracker.AddSupplement(supplement); err != nil {
			m.statusMessage = err.Error()
		}
	case StateAddTask:
		task := models.Task{
			Title:    m.taskForm.Title,
			DueDate:  m.taskForm.DueDate,
			Priority: constants.Priority(m.taskForm.Priority),
		}
		if _, err := m.tracker.AddTask(task); err != nil {
			m.statusMessage = err.Error()
		}
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		switch m.previousState {
		case StateHabits:
			err = m.tracker.DeleteHabit(m.deleteTargetID)
		case StateSupplements:
			err = m.tracker.DeleteSupplement(m.deleteTargetID)
		case StateTasks:
			err = m.tracker.DeleteTask(m.deleteTargetID)
		}
		if err != nil {
			m.statusMessage = err.Error()
		}
		m.refreshLists()
		m.deleteTargetID = ""
		m.state = m.previousState
	case "n", "N", "esc":
		m.deleteTargetID = ""
		m.state = m.previousState
	}
	return m, nil
}
