package data

import (
	"fmt"

	"github.com/walkiapp/walki/internal/constants"
	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/utils"
)

// DefaultSettings returns the demo's out-of-the-box settings.
func DefaultSettings() models.Settings {
	return models.Settings{
		DailyGoal:                    constants.DefaultDailyGoal,
		MorningNotificationTime:      constants.DefaultMorningNotificationTime,
		EveningNotificationTime:      constants.DefaultEveningNotificationTime,
		NotificationFrequency:        constants.DefaultNotificationFrequency,
		RandomizeTiming:              constants.DefaultRandomizeTiming,
		ShowStreakOnHome:             constants.DefaultShowStreakOnHome,
		EnableMorningNotifications:   constants.DefaultEnableMorning,
		EnableAfternoonNotifications: constants.DefaultEnableAfternoon,
		EnableEveningNotifications:   constants.DefaultEnableEvening,
	}
}

// DefaultPersonaWeights is the pre-quiz persona distribution.
func DefaultPersonaWeights() models.PersonaPercentages {
	return models.PersonaPercentages{
		models.PersonaSunny:   20,
		models.PersonaDrQuinn: 15,
		models.PersonaPep:     25,
		models.PersonaRico:    10,
		models.PersonaFern:    15,
		models.PersonaRusty:   15,
	}
}

// SeedCalendar builds the demo's last-20-days calendar relative to today: a
// missed day, then an unbroken 18-day streak (one day covered by a freeze),
// then today in progress. Step counts are deterministic so the seed is stable
// across runs.
func SeedCalendar() []models.DayRecord {
	goal := constants.DefaultDailyGoal
	var calendar []models.DayRecord

	// The miss that ended the previous streak.
	calendar = append(calendar, models.DayRecord{
		Date: utils.DaysAgo(19), Steps: 3200, Goal: goal, Completed: false,
		Events: []models.WalkEvent{
			{ID: "event-19-1", Time: "10:30 AM", Steps: 1800, Distance: 0.9, Notes: "Quick morning walk"},
			{ID: "event-19-2", Time: "3:15 PM", Steps: 1400},
		},
	})

	// The current streak: days 18 through 1 ago.
	for daysAgo := 18; daysAgo >= 1; daysAgo-- {
		if daysAgo == 5 {
			// Busy day covered by a streak freeze.
			calendar = append(calendar, models.DayRecord{
				Date: utils.DaysAgo(5), Steps: 4200, Goal: goal, Completed: true, FreezeUsed: true,
				Events: []models.WalkEvent{
					{ID: "event-5-1", Time: "2:00 PM", Steps: 4200, Notes: "Busy day - used freeze"},
				},
			})
			continue
		}

		steps := goal + 300 + (daysAgo*137)%2400
		morning := 2000 + (daysAgo*211)%1500
		calendar = append(calendar, models.DayRecord{
			Date: utils.DaysAgo(daysAgo), Steps: steps, Goal: goal, Completed: true,
			Events: []models.WalkEvent{
				{ID: fmt.Sprintf("event-%d-1", daysAgo), Time: "8:00 AM", Steps: morning, Distance: float64(morning) / 2000},
				{ID: fmt.Sprintf("event-%d-2", daysAgo), Time: "6:30 PM", Steps: steps - morning, Distance: float64(steps-morning) / 2000},
			},
		})
	}

	// Today, in progress.
	calendar = append(calendar, models.DayRecord{
		Date: utils.Today(), Steps: 6247, Goal: goal, Completed: false,
		Events: []models.WalkEvent{
			{ID: "event-today-1", Time: "7:30 AM", Steps: 2450, Distance: 1.2, Notes: "Morning walk"},
			{ID: "event-today-2", Time: "12:45 PM", Steps: 1897, Notes: "Lunch break walk"},
			{ID: "event-today-3", Time: "4:30 PM", Steps: 1900, Distance: 1.0},
		},
	})

	return calendar
}

// SeedDemoState builds the initial demo state: 18-day streak, today partway
// toward goal, no notification history yet.
func SeedDemoState() models.DemoState {
	return models.DemoState{
		CurrentStreak:    18,
		LongestStreak:    18,
		TotalActiveDays:  42,
		DailyGoal:        constants.DefaultDailyGoal,
		TodaySteps:       6247,
		Calendar:         SeedCalendar(),
		Notifications:    []models.Notification{},
		SeenMilestones:   []string{},
		PersonaWeights:   DefaultPersonaWeights(),
		FreezesAvailable: constants.DefaultFreezesAvailable,
		Settings:         DefaultSettings(),
		ActiveTab:        models.TabHome,
	}
}
