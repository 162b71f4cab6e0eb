package models

import "time"

// TimeOfDay buckets the clock into the three notification windows.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// NotificationTemplate is static library data: a persona-voiced message with
// {{variable}} placeholders, tagged with the situations it suits. Never
// mutated at runtime.
type NotificationTemplate struct {
	ID          string    `json:"id"`
	PersonaID   PersonaId `json:"persona_id"`
	Template    string    `json:"template"`
	ContextTags []string  `json:"context_tags"`
	Weight      float64   `json:"weight"`
}

// NotificationContext is the situational snapshot a motivation request is
// rendered against. Recomputed fresh on every request.
type NotificationContext struct {
	StreakLength   int       `json:"streak_length"`
	StepsRemaining int       `json:"steps_remaining"`
	StepsTaken     int       `json:"steps_taken"`
	DailyGoal      int       `json:"daily_goal"`
	TimeOfDay      TimeOfDay `json:"time_of_day"`
	DayOfWeek      string    `json:"day_of_week"`
}

// Notification is a rendered motivational message appended to the bounded
// history feed.
type Notification struct {
	ID        string              `json:"id"`
	PersonaID PersonaId           `json:"persona_id"`
	Message   string              `json:"message"`
	Timestamp time.Time           `json:"timestamp"`
	Context   NotificationContext `json:"context"`
}
