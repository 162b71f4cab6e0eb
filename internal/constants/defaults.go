package constants

const (
	// Default Settings Values
	DefaultDailyGoal               = 7000
	DefaultMorningNotificationTime = "8:00 AM"
	DefaultEveningNotificationTime = "6:30 PM"
	DefaultNotificationFrequency   = 2
	DefaultRandomizeTiming         = true
	DefaultShowStreakOnHome        = true
	DefaultEnableMorning           = true
	DefaultEnableAfternoon         = false
	DefaultEnableEvening           = true
	DefaultFreezesAvailable        = 1
)

// StreakMilestones are the streak lengths that trigger a celebration modal.
var StreakMilestones = map[int]bool{7: true, 14: true, 21: true}

// NextMilestoneTable is the ordered ladder used to resolve the next streak
// milestone; past the last entry the ladder continues in hundreds.
var NextMilestoneTable = []int{7, 14, 21, 30, 60, 90, 100, 180, 365}
