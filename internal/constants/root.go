package constants

const (
	AppName           = "walki"
	DefaultConfigPath = "~/.config/walki/walki.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the display format for walk event times (e.g. "7:30 AM")
	ClockFormat = "3:04 PM"

	// MaxNotificationHistory bounds the persisted notification feed; older
	// entries are evicted most-recent-first.
	MaxNotificationHistory = 50

	// MaxRecentTemplates bounds the template-id exclusion window used to keep
	// back-to-back motivations from repeating.
	MaxRecentTemplates = 30

	// StepsPerMinute is the assumed average walking pace for time estimates.
	StepsPerMinute = 100

	// CaloriesPerStep is the assumed average burn rate for calorie estimates.
	CaloriesPerStep = 0.04

	// MaxStepEntry is the largest single step amount accepted from manual entry.
	MaxStepEntry = 100000

	// MaxDailyGoal bounds the configurable daily step goal.
	MinDailyGoal = 1000
	MaxDailyGoal = 50000
)
