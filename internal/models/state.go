package models

// DemoTab identifies the active tab of the interactive demo.
type DemoTab string

const (
	TabHome     DemoTab = "home"
	TabCalendar DemoTab = "calendar"
	TabPersonas DemoTab = "personas"
	TabSettings DemoTab = "settings"
)

// MilestoneEvent is a queued celebration (goal reached, streak milestone).
// Each fires at most once, tracked by seen-milestone IDs of the form
// "goal-<date>" or "streak-<n>".
type MilestoneEvent struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// DemoState is the whole mutable application state of the demo experience.
// All mutation happens through DemoStore actions; the struct itself carries
// no behavior beyond serialization.
type DemoState struct {
	CurrentStreak     int                `json:"current_streak"`
	LongestStreak     int                `json:"longest_streak"`
	TotalActiveDays   int                `json:"total_active_days"`
	DailyGoal         int                `json:"daily_goal"`
	TodaySteps        int                `json:"today_steps"`
	Calendar          []DayRecord        `json:"calendar"`
	Notifications     []Notification     `json:"notifications"`
	RecentTemplateIDs []string           `json:"recent_template_ids"`
	SeenMilestones    []string           `json:"seen_milestones"`
	QueuedMilestones  []MilestoneEvent   `json:"queued_milestones,omitempty"`
	ActiveMilestone   *MilestoneEvent    `json:"active_milestone,omitempty"`
	PersonaWeights    PersonaPercentages `json:"persona_weights"`
	FreezesAvailable  int                `json:"freezes_available"`
	Settings          Settings           `json:"settings"`
	ActiveTab         DemoTab            `json:"active_tab"`
}
