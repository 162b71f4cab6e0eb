package streak

// Risk is the streak risk tier for the current day.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// lateHour is the hour after which being far behind escalates to high risk.
const lateHour = 20

// AssessRisk classifies how likely today's streak is to break given progress
// so far and the hour of day (0-23). A met goal is always low risk; otherwise
// progress toward the goal is compared against the fraction of the day already
// elapsed. At or ahead of pace is low, behind is medium, and less than half of
// the expected pace late in the evening is high.
func AssessRisk(stepsTaken, goal, hourOfDay int) Risk {
	if goal <= 0 || stepsTaken >= goal {
		return RiskLow
	}

	progress := float64(stepsTaken) / float64(goal)
	expected := float64(hourOfDay) / 24

	if progress >= expected {
		return RiskLow
	}
	if hourOfDay >= lateHour && progress < expected/2 {
		return RiskHigh
	}
	return RiskMedium
}
