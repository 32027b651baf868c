package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/internal/tracker"
	"github.com/habitflow/habitflow/internal/tui/components/entities"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateSupplements
	StateWater
	StateTasks
	StateAddHabit
	StateAddSupplement
	StateAddTask
	StateConfirmDelete
)

// tabCount is the number of cycle-able tabs; the form and confirm states
// sit outside the tab cycle.
const tabCount = 4

type HabitFormModel struct {
	Name         string
	Icon         string
	Rhythm       string
	ReminderTime string
}

type SupplementFormModel struct {
	Name         string
	Icon         string
	Frequency    string
	ReminderTime string
}

type TaskFormModel struct {
	Title    string
	DueDate  string
	Priority string
}

type Model struct {
	store   *storage.Store
	tracker *tracker.Tracker

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles

	habitList      entities.Model
	supplementList entities.Model
	taskList       entities.Model

	form           *huh.Form
	habitForm      *HabitFormModel
	supplementForm *SupplementFormModel
	taskForm       *TaskFormModel

	deleteTargetID string
	statusMessage  string
	quitting       bool
	width          int
	height         int
}

func NewModel(store *storage.Store, trk *tracker.Tracker) Model {
	habits, _ := store.Habits()
	supplements, _ := store.Supplements()
	tasks, _ := store.Tasks()
	settings, _ := store.Settings()

	return Model{
		store:          store,
		tracker:        trk,
		state:          StateHabits,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		styles:         NewStyles(settings.DarkMode),
		habitList:      entities.New("Habits", entities.HabitItems(habits), 0, 0),
		supplementList: entities.New("Supplements", entities.SupplementItems(supplements), 0, 0),
		taskList:       entities.New("Tasks", entities.TaskItems(tasks), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits, StateTasks:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	case StateSupplements:
		keys = append(keys, m.keys.Enter, m.keys.Undo, m.keys.Add, m.keys.Delete)
	case StateWater:
		keys = append(keys, m.keys.Drink)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits, StateTasks:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case StateSupplements:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Undo}
	case StateWater:
		actions = []key.Binding{m.keys.Drink}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// refreshLists reloads all collections from the store. Called after every
// mutation so the lists never render stale state.
func (m *Model) refreshLists() {
	habits, _ := m.store.Habits()
	supplements, _ := m.store.Supplements()
	tasks, _ := m.store.Tasks()
	m.habitList.SetItems(entities.HabitItems(habits))
	m.supplementList.SetItems(entities.SupplementItems(supplements))
	m.taskList.SetItems(entities.TaskItems(tasks))
}
