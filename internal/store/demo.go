// Package store holds the mutable application state behind the demo and quiz
// experiences. All mutation goes through discrete actions; every action
// persists the new state synchronously through the storage provider.
// Persistence failures are logged, never fatal, so the in-memory session
// keeps working on a broken disk.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walkiapp/walki/internal/constants"
	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/inject"
	"github.com/walkiapp/walki/internal/logger"
	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/scoring"
	"github.com/walkiapp/walki/internal/selector"
	"github.com/walkiapp/walki/internal/storage"
	"github.com/walkiapp/walki/internal/streak"
	"github.com/walkiapp/walki/internal/utils"
	"github.com/walkiapp/walki/internal/validation"
)

// Hooks for deterministic tests.
var (
	timeNow = time.Now
	newID   = uuid.NewString
)

// DemoStore owns the demo state and the actions that mutate it.
type DemoStore struct {
	provider storage.Provider
	library  []models.NotificationTemplate
	state    models.DemoState
}

// NewDemoStore hydrates a store from the provider, falling back to the seeded
// base state when nothing usable is stored.
func NewDemoStore(provider storage.Provider) *DemoStore {
	s := &DemoStore{
		provider: provider,
		library:  data.NotificationLibrary,
	}
	s.hydrate()
	return s
}

func (s *DemoStore) hydrate() {
	base := data.SeedDemoState()

	stored, found, err := s.provider.GetDemoState()
	if err != nil {
		logger.Warn("could not load demo state, starting from seed", "error", err)
	}
	if err != nil || !found {
		s.state = base
		s.persist()
		return
	}

	s.state = sanitize(stored, base)
}

// sanitize clamps a stored state into shape, field by field, substituting the
// seeded base value wherever the stored one is unusable. Mirrors the tolerant
// hydrate in the persisted-blob contract: a partially valid blob keeps its
// valid parts.
func sanitize(stored, base models.DemoState) models.DemoState {
	if stored.TodaySteps < 0 {
		stored.TodaySteps = base.TodaySteps
	}
	if stored.CurrentStreak < 0 {
		stored.CurrentStreak = base.CurrentStreak
	}
	if stored.LongestStreak < stored.CurrentStreak {
		stored.LongestStreak = stored.CurrentStreak
	}
	if stored.TotalActiveDays < 0 {
		stored.TotalActiveDays = base.TotalActiveDays
	}
	if validation.ValidateDailyGoal(stored.DailyGoal) != nil {
		stored.DailyGoal = base.DailyGoal
	}
	if stored.FreezesAvailable < 0 {
		stored.FreezesAvailable = 0
	}

	if stored.Calendar == nil {
		stored.Calendar = base.Calendar
	}
	stored.Calendar = withTodaySteps(stored.Calendar, stored.TodaySteps, stored.DailyGoal)

	if stored.Notifications == nil {
		stored.Notifications = []models.Notification{}
	}
	if len(stored.Notifications) > constants.MaxNotificationHistory {
		stored.Notifications = stored.Notifications[:constants.MaxNotificationHistory]
	}
	if stored.RecentTemplateIDs == nil {
		stored.RecentTemplateIDs = []string{}
	}
	if len(stored.RecentTemplateIDs) > constants.MaxRecentTemplates {
		stored.RecentTemplateIDs = stored.RecentTemplateIDs[:constants.MaxRecentTemplates]
	}
	if stored.SeenMilestones == nil {
		stored.SeenMilestones = []string{}
	}

	if !validWeights(stored.PersonaWeights) {
		stored.PersonaWeights = base.PersonaWeights
	}
	if stored.Settings.DailyGoal == 0 {
		stored.Settings = base.Settings
	}
	switch stored.ActiveTab {
	case models.TabHome, models.TabCalendar, models.TabPersonas, models.TabSettings:
	default:
		stored.ActiveTab = models.TabHome
	}

	return stored
}

func validWeights(weights models.PersonaPercentages) bool {
	if len(weights) == 0 {
		return false
	}
	for id, w := range weights {
		if !id.Valid() || w < 0 {
			return false
		}
	}
	return true
}

// withTodaySteps upserts today's calendar record with the given step count,
// recomputing completion against the goal.
func withTodaySteps(calendar []models.DayRecord, steps, goal int) []models.DayRecord {
	today := utils.Today()
	updated := make([]models.DayRecord, len(calendar))
	hasToday := false

	for i, day := range calendar {
		if day.Date != today {
			updated[i] = day
			continue
		}
		hasToday = true
		day.Steps = steps
		day.Goal = goal
		day.Completed = day.FreezeUsed || steps >= goal
		updated[i] = day
	}

	if hasToday {
		return updated
	}
	return append(updated, models.DayRecord{
		Date:      today,
		Steps:     steps,
		Goal:      goal,
		Completed: steps >= goal,
		Events:    []models.WalkEvent{},
	})
}

// State returns a snapshot of the current demo state. The calendar and other
// slices are shared; callers treat the snapshot as read-only.
func (s *DemoStore) State() models.DemoState {
	return s.state
}

// AddSteps records a manual step entry. Crossing the daily goal increments
// the streak and queues celebration milestones, each at most once per
// seen-milestone ID.
func (s *DemoStore) AddSteps(amount int) error {
	if err := validation.ValidateStepAmount(amount); err != nil {
		return err
	}

	next := s.state.TodaySteps + amount
	wasGoalMet := s.state.TodaySteps >= s.state.DailyGoal || s.todayFrozen()
	isGoalMet := next >= s.state.DailyGoal

	s.state.TodaySteps = next
	if isGoalMet && !wasGoalMet {
		s.state.CurrentStreak++
		s.state.TotalActiveDays++
		if s.state.CurrentStreak > s.state.LongestStreak {
			s.state.LongestStreak = s.state.CurrentStreak
		}

		s.queueMilestone(models.MilestoneEvent{
			ID:      "goal-" + utils.Today(),
			Title:   "Goal Reached",
			Message: fmt.Sprintf("You hit %s steps. Incredible finish today.", utils.FormatNumber(s.state.DailyGoal)),
		})
		if constants.StreakMilestones[s.state.CurrentStreak] {
			s.queueMilestone(models.MilestoneEvent{
				ID:      fmt.Sprintf("streak-%d", s.state.CurrentStreak),
				Title:   fmt.Sprintf("%d-Day Streak", s.state.CurrentStreak),
				Message: fmt.Sprintf("Streak milestone unlocked: %d straight days.", s.state.CurrentStreak),
			})
		}
	}

	s.state.Calendar = withTodaySteps(s.state.Calendar, next, s.state.DailyGoal)
	s.appendTodayEvent(amount)
	s.promoteMilestone()
	s.persist()
	return nil
}

// todayFrozen reports whether a streak freeze is already spent on today's
// record. A frozen day counts toward the streak, so it never counts again.
func (s *DemoStore) todayFrozen() bool {
	today := utils.Today()
	for _, day := range s.state.Calendar {
		if day.Date == today {
			return day.FreezeUsed
		}
	}
	return false
}

// queueMilestone enqueues the event unless its ID has already fired.
func (s *DemoStore) queueMilestone(event models.MilestoneEvent) {
	for _, seen := range s.state.SeenMilestones {
		if seen == event.ID {
			return
		}
	}
	s.state.QueuedMilestones = append(s.state.QueuedMilestones, event)
	s.state.SeenMilestones = append(s.state.SeenMilestones, event.ID)
}

// promoteMilestone moves the head of the queue into the active slot when
// nothing is currently showing.
func (s *DemoStore) promoteMilestone() {
	if s.state.ActiveMilestone != nil || len(s.state.QueuedMilestones) == 0 {
		return
	}
	head := s.state.QueuedMilestones[0]
	s.state.ActiveMilestone = &head
	s.state.QueuedMilestones = s.state.QueuedMilestones[1:]
}

// DismissMilestone clears the active celebration and promotes the next queued
// one, if any.
func (s *DemoStore) DismissMilestone() {
	s.state.ActiveMilestone = nil
	s.promoteMilestone()
	s.persist()
}

func (s *DemoStore) appendTodayEvent(steps int) {
	now := timeNow()
	today := utils.Today()
	for i := range s.state.Calendar {
		if s.state.Calendar[i].Date != today {
			continue
		}
		s.state.Calendar[i].Events = append(s.state.Calendar[i].Events, models.WalkEvent{
			ID:    newID(),
			Time:  utils.Clock(now),
			Steps: steps,
		})
		return
	}
}

// RequestMotivation runs the full notification pipeline: build context, select
// a persona-weighted template, render it, and append the result to the bounded
// history. at overrides the clock for deterministic output; nil means now.
func (s *DemoStore) RequestMotivation(at *time.Time) (models.Notification, error) {
	ctx := selector.NewContext(s.state.CurrentStreak, s.state.TodaySteps, s.state.DailyGoal, at)

	template, ok := selector.Select(s.library, ctx, s.state.PersonaWeights, s.state.RecentTemplateIDs)
	if !ok {
		return models.Notification{}, fmt.Errorf("notification library is empty")
	}

	notification := models.Notification{
		ID:        newID(),
		PersonaID: template.PersonaID,
		Message:   inject.Render(template.Template, ctx),
		Timestamp: timeNow(),
		Context:   ctx,
	}

	s.state.Notifications = append([]models.Notification{notification}, s.state.Notifications...)
	if len(s.state.Notifications) > constants.MaxNotificationHistory {
		s.state.Notifications = s.state.Notifications[:constants.MaxNotificationHistory]
	}
	s.state.RecentTemplateIDs = append([]string{template.ID}, s.state.RecentTemplateIDs...)
	if len(s.state.RecentTemplateIDs) > constants.MaxRecentTemplates {
		s.state.RecentTemplateIDs = s.state.RecentTemplateIDs[:constants.MaxRecentTemplates]
	}

	s.persist()
	return notification, nil
}

// ApplyFreeze spends a streak freeze on today, marking the day as qualifying
// without the steps. No-op errors when no freeze is available or today already
// qualifies.
func (s *DemoStore) ApplyFreeze() error {
	if s.state.FreezesAvailable <= 0 {
		return fmt.Errorf("no streak freezes available")
	}
	if s.state.TodaySteps >= s.state.DailyGoal {
		return fmt.Errorf("today's goal is already met, freeze not needed")
	}

	today := utils.Today()
	for i := range s.state.Calendar {
		if s.state.Calendar[i].Date != today {
			continue
		}
		if s.state.Calendar[i].FreezeUsed {
			return fmt.Errorf("a freeze is already applied to today")
		}
		s.state.Calendar[i].FreezeUsed = true
		s.state.Calendar[i].Completed = true
	}

	s.state.FreezesAvailable--
	s.state.CurrentStreak++
	if s.state.CurrentStreak > s.state.LongestStreak {
		s.state.LongestStreak = s.state.CurrentStreak
	}
	s.persist()
	return nil
}

// SetDailyGoal updates the goal and recomputes today's completion against it.
func (s *DemoStore) SetDailyGoal(goal int) error {
	if err := validation.ValidateDailyGoal(goal); err != nil {
		return err
	}
	s.state.DailyGoal = goal
	s.state.Settings.DailyGoal = goal
	s.state.Calendar = withTodaySteps(s.state.Calendar, s.state.TodaySteps, goal)
	s.persist()
	return nil
}

// UpdateSettings replaces the settings wholesale, keeping the daily goal in
// sync with the top-level field.
func (s *DemoStore) UpdateSettings(settings models.Settings) error {
	if err := validation.ValidateDailyGoal(settings.DailyGoal); err != nil {
		return err
	}
	s.state.Settings = settings
	if settings.DailyGoal != s.state.DailyGoal {
		s.state.DailyGoal = settings.DailyGoal
		s.state.Calendar = withTodaySteps(s.state.Calendar, s.state.TodaySteps, settings.DailyGoal)
	}
	s.persist()
	return nil
}

// ApplyQuizResults retargets notification selection toward the quiz outcome.
// The raw scores are normalized to a distribution summing to exactly 100; an
// all-zero outcome keeps the previous weights.
func (s *DemoStore) ApplyQuizResults(results models.QuizResults) {
	weights := scoring.NormalizeWeights(results.Scores)
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return
	}
	s.state.PersonaWeights = weights
	s.persist()
}

// SetActiveTab records which demo tab is showing so the TUI reopens there.
func (s *DemoStore) SetActiveTab(tab models.DemoTab) {
	s.state.ActiveTab = tab
	s.persist()
}

// Reset discards all state and reseeds the demo.
func (s *DemoStore) Reset() error {
	if err := s.provider.Reset(); err != nil {
		return err
	}
	s.state = data.SeedDemoState()
	s.persist()
	return nil
}

// Risk assesses how likely today's streak is to break, given the hour.
func (s *DemoStore) Risk(hourOfDay int) streak.Risk {
	return streak.AssessRisk(s.state.TodaySteps, s.state.DailyGoal, hourOfDay)
}

// StreakStartDate reports when the current streak began.
func (s *DemoStore) StreakStartDate() (time.Time, bool) {
	return streak.StreakStartDate(s.state.Calendar)
}

func (s *DemoStore) persist() {
	if err := s.provider.SaveDemoState(s.state); err != nil {
		logger.Error("could not persist demo state", "error", err)
	}
}
