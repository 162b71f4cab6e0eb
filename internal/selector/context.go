package selector

import (
	"time"

	"github.com/walkiapp/walki/internal/models"
)

// TimeOfDayAt buckets an hour (0-23) into the three notification windows:
// morning [5,12), afternoon [12,17), evening for everything else.
func TimeOfDayAt(hour int) models.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return models.Morning
	case hour >= 12 && hour < 17:
		return models.Afternoon
	default:
		return models.Evening
	}
}

// TimeOfDayNow returns the bucket for the current local hour.
func TimeOfDayNow() models.TimeOfDay {
	return TimeOfDayAt(time.Now().Hour())
}

// DayOfWeek returns the English weekday name for the given date.
func DayOfWeek(date time.Time) string {
	return date.Weekday().String()
}

// NewContext builds a fresh notification context from the current demo state.
// The zero value of override leaves time-of-day and weekday derived from now.
func NewContext(streakLength, stepsTaken, dailyGoal int, override *time.Time) models.NotificationContext {
	at := time.Now()
	if override != nil {
		at = *override
	}

	remaining := dailyGoal - stepsTaken
	if remaining < 0 {
		remaining = 0
	}

	return models.NotificationContext{
		StreakLength:   streakLength,
		StepsRemaining: remaining,
		StepsTaken:     stepsTaken,
		DailyGoal:      dailyGoal,
		TimeOfDay:      TimeOfDayAt(at.Hour()),
		DayOfWeek:      DayOfWeek(at),
	}
}

// deriveTags computes the context tag set used to filter the template library.
func deriveTags(ctx models.NotificationContext) []string {
	tags := []string{string(ctx.TimeOfDay)}

	switch {
	case ctx.StepsRemaining <= 1000:
		tags = append(tags, "close-to-goal")
	case float64(ctx.StepsRemaining) > float64(ctx.DailyGoal)*0.5:
		tags = append(tags, "behind-goal")
	default:
		tags = append(tags, "on-track")
	}

	if ctx.StreakLength > 0 && (ctx.StreakLength%7 == 0 || ctx.StreakLength >= 30) {
		tags = append(tags, "milestone")
	}
	tags = append(tags, "streak")

	if ctx.StepsRemaining == 0 {
		tags = append(tags, "goal-reached")
	}

	return tags
}
