package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/inject"
	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/streak"
	"github.com/walkiapp/walki/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateCalendar:
		content = m.viewCalendar()
	case StatePersonas:
		content = m.viewPersonas()
	case StateSettings:
		content = m.viewSettings()
	case StateAddSteps, StateEditSettings, StateQuiz:
		content = m.viewForm()
	case StateQuizResults:
		content = m.viewQuizResults()
	case StateMilestone:
		return m.viewMilestone()
	case StateConfirmReset:
		return m.viewConfirmReset()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{"Home", "Calendar", "Personas", "Settings"}
	states := []SessionState{StateHome, StateCalendar, StatePersonas, StateSettings}
	for i, title := range titles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	state := m.demo.State()
	var b strings.Builder

	remaining := state.DailyGoal - state.TodaySteps
	if remaining < 0 {
		remaining = 0
	}

	b.WriteString(titleStyle.Render("Today") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s / %s steps\n", utils.FormatNumber(state.TodaySteps), utils.FormatNumber(state.DailyGoal)))
	b.WriteString("  " + progressBar(state.TodaySteps, state.DailyGoal, 30) + "\n")
	if remaining > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s to go", utils.FormatNumber(remaining))) + "\n")
	} else {
		b.WriteString(goalMetStyle.Render("  Goal reached ✓") + "\n")
	}

	if state.Settings.ShowStreakOnHome {
		b.WriteString("\n" + titleStyle.Render("Streak") + "\n\n")
		b.WriteString(fmt.Sprintf("  🔥 %d days (longest %d)\n", state.CurrentStreak, state.LongestStreak))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  next milestone: %d days · freezes left: %d", inject.NextMilestone(state.CurrentStreak), state.FreezesAvailable)) + "\n")

		risk := m.demo.Risk(time.Now().Hour())
		switch risk {
		case streak.RiskHigh:
			b.WriteString("  " + riskHighStyle.Render("Streak at risk - get moving!") + "\n")
		case streak.RiskMedium:
			b.WriteString("  " + riskMediumStyle.Render("A bit behind pace for today.") + "\n")
		}
	}

	if m.lastNotification != nil {
		name := string(m.lastNotification.PersonaID)
		if persona, ok := data.PersonaByID(m.lastNotification.PersonaID); ok {
			name = persona.Name
		}
		b.WriteString("\n" + titleStyle.Render(name+" says") + "\n\n")
		b.WriteString(messageStyle.Render("  "+m.lastNotification.Message) + "\n")
	}

	if m.statusMessage != "" {
		b.WriteString("\n" + m.statusMessage + "\n")
	}

	return docStyle.Render(b.String())
}

func progressBar(current, goal, width int) string {
	if goal <= 0 {
		goal = 1
	}
	filled := current * width / goal
	if filled > width {
		filled = width
	}
	return goalMetStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent days") + "\n\n")

	for _, day := range m.visibleCalendar() {
		marker := mutedStyle.Render("✗")
		switch {
		case day.FreezeUsed:
			marker = "❄"
		case day.Completed:
			marker = goalMetStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %7s / %s\n",
			day.Date, marker, utils.FormatNumber(day.Steps), utils.FormatNumber(day.Goal)))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewPersonas() string {
	state := m.demo.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your persona mix") + "\n\n")
	for _, id := range models.PersonaIds {
		name := string(id)
		if persona, ok := data.PersonaByID(id); ok {
			name = persona.Name
		}
		weight := state.PersonaWeights[id]
		b.WriteString(fmt.Sprintf("  %-10s %3d%%  %s\n", name, weight, weightBar(weight)))
	}

	progress := m.quiz.Progress()
	b.WriteString("\n")
	switch {
	case progress.IsComplete && progress.Results != nil:
		if persona, ok := data.PersonaByID(progress.Results.TopPersona); ok {
			b.WriteString(fmt.Sprintf("  Top persona: %s — %s\n", titleStyle.Render(persona.Name), persona.Title))
		}
		b.WriteString(mutedStyle.Render("  Press 's' to retake the quiz.") + "\n")
	case progress.HasStarted:
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  Quiz in progress (%d/%d answered). Press 's' to continue.",
			m.quiz.AnsweredCount(), len(m.quiz.Questions()))) + "\n")
	default:
		b.WriteString(mutedStyle.Render("  Take the quiz to tune which voices you hear. Press 's' to start.") + "\n")
	}

	if m.formError != "" {
		b.WriteString("\n" + errorStyle.Render("  "+m.formError) + "\n")
	}

	return docStyle.Render(b.String())
}

func weightBar(percent int) string {
	filled := percent / 5
	if filled > 20 {
		filled = 20
	}
	return goalMetStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", 20-filled))
}

func (m Model) viewSettings() string {
	settings := m.demo.State().Settings
	var b strings.Builder

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	b.WriteString(fmt.Sprintf("  Daily goal:              %s steps\n", utils.FormatNumber(settings.DailyGoal)))
	b.WriteString(fmt.Sprintf("  Morning notifications:   %s (%s)\n", onOff(settings.EnableMorningNotifications), settings.MorningNotificationTime))
	b.WriteString(fmt.Sprintf("  Afternoon notifications: %s\n", onOff(settings.EnableAfternoonNotifications)))
	b.WriteString(fmt.Sprintf("  Evening notifications:   %s (%s)\n", onOff(settings.EnableEveningNotifications), settings.EveningNotificationTime))
	b.WriteString(fmt.Sprintf("  Randomize timing:        %s\n", onOff(settings.RandomizeTiming)))
	b.WriteString(fmt.Sprintf("  Show streak on home:     %s\n", onOff(settings.ShowStreakOnHome)))
	b.WriteString("\n" + mutedStyle.Render("  Press 'e' to edit.") + "\n")

	return docStyle.Render(b.String())
}

func (m Model) viewForm() string {
	view := m.form.View()
	if m.formError != "" {
		view += "\n" + errorStyle.Render(m.formError)
	}
	return docStyle.Render(view)
}

func (m Model) viewQuizResults() string {
	progress := m.quiz.Progress()
	if progress.Results == nil {
		return docStyle.Render("No results yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz complete!") + "\n\n")
	for _, id := range models.PersonaIds {
		name := string(id)
		if persona, ok := data.PersonaByID(id); ok {
			name = persona.Name
		}
		b.WriteString(fmt.Sprintf("  %-10s %3d%%  %s\n", name, progress.Results.Percentages[id], weightBar(progress.Results.Percentages[id])))
	}

	if persona, ok := data.PersonaByID(progress.Results.TopPersona); ok {
		b.WriteString(fmt.Sprintf("\n  %s — %s\n", titleStyle.Render(persona.Name), persona.Title))
		b.WriteString(mutedStyle.Render("  "+persona.Description) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("  Press any key to continue.") + "\n")

	return docStyle.Render(b.String())
}

func (m Model) viewMilestone() string {
	milestone := m.demo.State().ActiveMilestone
	if milestone == nil {
		return ""
	}

	modal := milestoneStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		"🎉",
		titleStyle.Render(milestone.Title),
		"",
		milestone.Message,
		"",
		mutedStyle.Render("press enter to continue"),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			riskHighStyle.Render("Reset the demo and discard all progress?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
