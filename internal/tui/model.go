// Package tui is the interactive demo experience: a tabbed bubbletea app over
// the demo and quiz stores.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/store"
)

// SessionState tracks which screen the TUI is showing.
type SessionState int

const (
	StateHome SessionState = iota
	StateCalendar
	StatePersonas
	StateSettings
	StateAddSteps
	StateEditSettings
	StateQuiz
	StateQuizResults
	StateMilestone
	StateConfirmReset
)

// StepsFormModel backs the add-steps huh form.
type StepsFormModel struct {
	Amount string
}

// SettingsFormModel backs the settings huh form.
type SettingsFormModel struct {
	DailyGoal       string
	MorningTime     string
	EveningTime     string
	EnableMorning   bool
	EnableAfternoon bool
	EnableEvening   bool
	RandomizeTiming bool
	ShowStreak      bool
}

type Model struct {
	demo *store.DemoStore
	quiz *store.QuizStore

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	form         *huh.Form
	stepsForm    *StepsFormModel
	settingsForm *SettingsFormModel
	quizChoice   string
	formError    string

	lastNotification *models.Notification
	statusMessage    string
	quitting         bool
	width            int
	height           int
}

func NewModel(demo *store.DemoStore, quiz *store.QuizStore) Model {
	state := StateHome
	switch demo.State().ActiveTab {
	case models.TabCalendar:
		state = StateCalendar
	case models.TabPersonas:
		state = StatePersonas
	case models.TabSettings:
		state = StateSettings
	}

	m := Model{
		demo:  demo,
		quiz:  quiz,
		state: state,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	// A celebration left undismissed reappears on the next launch.
	if demo.State().ActiveMilestone != nil {
		m.previousState = m.state
		m.state = StateMilestone
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHome:
		keys = append(keys, m.keys.AddSteps, m.keys.Motivate, m.keys.Freeze)
	case StatePersonas:
		keys = append(keys, m.keys.StartQuiz)
	case StateSettings:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHome:
		actions = []key.Binding{m.keys.AddSteps, m.keys.Motivate, m.keys.Freeze, m.keys.Reset}
	case StatePersonas:
		actions = []key.Binding{m.keys.StartQuiz}
	case StateSettings:
		actions = []key.Binding{m.keys.Edit}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// activeTab maps the screen back to the persisted tab identity.
func (m Model) activeTab() models.DemoTab {
	switch m.state {
	case StateCalendar:
		return models.TabCalendar
	case StatePersonas, StateQuiz, StateQuizResults:
		return models.TabPersonas
	case StateSettings, StateEditSettings:
		return models.TabSettings
	default:
		return models.TabHome
	}
}
