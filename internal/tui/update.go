package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/walkiapp/walki/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	switch m.state {
	case StateAddSteps:
		return m.updateAddSteps(msg)
	case StateEditSettings:
		return m.updateEditSettings(msg)
	case StateQuiz:
		return m.updateQuiz(msg)
	case StateQuizResults:
		return m.updateQuizResults(msg)
	case StateMilestone:
		return m.updateMilestone(msg)
	case StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.updateMain(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.demo.SetActiveTab(m.activeTab())
	m.quitting = true
	return m, tea.Quit
}

// updateMain handles the four browsing tabs.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		m.statusMessage = ""
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		m.statusMessage = ""
		return m, nil
	}

	switch m.state {
	case StateHome:
		return m.updateHome(msg)
	case StatePersonas:
		if key.Matches(msg, m.keys.StartQuiz) {
			return m.startQuiz()
		}
	case StateSettings:
		if key.Matches(msg, m.keys.Edit) {
			return m.startEditSettings()
		}
	}
	return m, nil
}

// nextTab cycles Home -> Calendar -> Personas -> Settings.
func nextTab(state SessionState, direction int) SessionState {
	tabs := []SessionState{StateHome, StateCalendar, StatePersonas, StateSettings}
	for i, tab := range tabs {
		if tab == state {
			return tabs[(i+direction+len(tabs))%len(tabs)]
		}
	}
	return StateHome
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.AddSteps):
		m.stepsForm = &StepsFormModel{}
		m.form = newStepsForm(m.stepsForm)
		m.formError = ""
		m.state = StateAddSteps
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Motivate):
		notification, err := m.demo.RequestMotivation(nil)
		if err != nil {
			m.statusMessage = errorStyle.Render(err.Error())
			return m, nil
		}
		m.lastNotification = &notification
		m.statusMessage = ""
		return m, nil

	case key.Matches(msg, m.keys.Freeze):
		if err := m.demo.ApplyFreeze(); err != nil {
			m.statusMessage = errorStyle.Render(err.Error())
			return m, nil
		}
		m.statusMessage = goalMetStyle.Render("Streak freeze applied ❄")
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.previousState = m.state
		m.state = StateConfirmReset
		return m, nil
	}
	return m, nil
}

func newStepsForm(data *StepsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many steps?").
				Value(&data.Amount).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number")
					}
					if n <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
		),
	)
}

func (m Model) updateAddSteps(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHome
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		amount, err := strconv.Atoi(strings.TrimSpace(m.stepsForm.Amount))
		if err == nil {
			err = m.demo.AddSteps(amount)
		}
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.state = StateHome
		if m.demo.State().ActiveMilestone != nil {
			m.previousState = StateHome
			m.state = StateMilestone
		}
	case huh.StateAborted:
		m.state = StateHome
	}
	return m, cmd
}

func (m Model) startEditSettings() (tea.Model, tea.Cmd) {
	settings := m.demo.State().Settings
	m.settingsForm = &SettingsFormModel{
		DailyGoal:       strconv.Itoa(settings.DailyGoal),
		MorningTime:     settings.MorningNotificationTime,
		EveningTime:     settings.EveningNotificationTime,
		EnableMorning:   settings.EnableMorningNotifications,
		EnableAfternoon: settings.EnableAfternoonNotifications,
		EnableEvening:   settings.EnableEveningNotifications,
		RandomizeTiming: settings.RandomizeTiming,
		ShowStreak:      settings.ShowStreakOnHome,
	}
	m.form = newSettingsForm(m.settingsForm)
	m.formError = ""
	m.state = StateEditSettings
	return m, m.form.Init()
}

func newSettingsForm(data *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily step goal").
				Value(&data.DailyGoal),
			huh.NewInput().
				Title("Morning notification time").
				Value(&data.MorningTime),
			huh.NewInput().
				Title("Evening notification time").
				Value(&data.EveningTime),
			huh.NewConfirm().
				Title("Morning notifications").
				Value(&data.EnableMorning),
			huh.NewConfirm().
				Title("Afternoon notifications").
				Value(&data.EnableAfternoon),
			huh.NewConfirm().
				Title("Evening notifications").
				Value(&data.EnableEvening),
			huh.NewConfirm().
				Title("Randomize timing").
				Value(&data.RandomizeTiming),
			huh.NewConfirm().
				Title("Show streak on home").
				Value(&data.ShowStreak),
		),
	)
}

func (m Model) updateEditSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateSettings
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		goal, err := strconv.Atoi(strings.TrimSpace(m.settingsForm.DailyGoal))
		if err != nil {
			m.formError = "daily goal must be a whole number"
			m.form.State = huh.StateNormal
			return m, cmd
		}

		settings := m.demo.State().Settings
		settings.DailyGoal = goal
		settings.MorningNotificationTime = m.settingsForm.MorningTime
		settings.EveningNotificationTime = m.settingsForm.EveningTime
		settings.EnableMorningNotifications = m.settingsForm.EnableMorning
		settings.EnableAfternoonNotifications = m.settingsForm.EnableAfternoon
		settings.EnableEveningNotifications = m.settingsForm.EnableEvening
		settings.RandomizeTiming = m.settingsForm.RandomizeTiming
		settings.ShowStreakOnHome = m.settingsForm.ShowStreak

		if err := m.demo.UpdateSettings(settings); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.state = StateSettings
	case huh.StateAborted:
		m.state = StateSettings
	}
	return m, cmd
}

func (m Model) startQuiz() (tea.Model, tea.Cmd) {
	m.quiz.Start()
	m.formError = ""
	m.state = StateQuiz
	return m.nextQuizForm()
}

// nextQuizForm builds a select form for the question under the cursor.
func (m Model) nextQuizForm() (tea.Model, tea.Cmd) {
	question := m.quiz.CurrentQuestion()

	options := make([]huh.Option[string], len(question.Options))
	for i, option := range question.Options {
		options[i] = huh.NewOption(option.Text, option.ID)
	}

	m.quizChoice = ""
	if answer := m.quiz.Progress().Answers[m.quiz.Progress().CurrentQuestionIndex]; answer != nil {
		m.quizChoice = *answer
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%d/%d  %s", m.quiz.Progress().CurrentQuestionIndex+1, len(m.quiz.Questions()), question.Question)).
				Options(options...).
				Value(&m.quizChoice),
		),
	)
	return m, m.form.Init()
}

func (m Model) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		// Progress is already persisted per answer; resume later.
		m.state = StatePersonas
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		index := m.quiz.Progress().CurrentQuestionIndex
		if err := m.quiz.SetAnswer(index, m.quizChoice); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}

		if m.quiz.AnsweredCount() == len(m.quiz.Questions()) {
			results, err := m.quiz.Complete()
			if err != nil {
				m.formError = err.Error()
				m.state = StatePersonas
				return m, cmd
			}
			m.demo.ApplyQuizResults(*results)
			m.state = StateQuizResults
			return m, cmd
		}

		m.quiz.Next()
		return m.nextQuizForm()
	case huh.StateAborted:
		m.state = StatePersonas
	}
	return m, cmd
}

func (m Model) updateQuizResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.state = StatePersonas
	}
	return m, nil
}

func (m Model) updateMilestone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			m.demo.DismissMilestone()
			// Another queued celebration keeps the modal up.
			if m.demo.State().ActiveMilestone == nil {
				m.state = m.previousState
			}
		}
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			if err := m.demo.Reset(); err != nil {
				m.statusMessage = errorStyle.Render(err.Error())
			} else {
				m.statusMessage = "Demo reset to the seeded experience."
				m.lastNotification = nil
			}
			m.state = m.previousState
		case "n", "esc", "q":
			m.state = m.previousState
		}
	}
	return m, nil
}

// visibleCalendar returns the calendar most-recent-first for display.
func (m Model) visibleCalendar() []models.DayRecord {
	calendar := m.demo.State().Calendar
	out := make([]models.DayRecord, len(calendar))
	for i, day := range calendar {
		out[len(calendar)-1-i] = day
	}
	return out
}
