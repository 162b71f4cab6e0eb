// Package validation checks user input before the stores act on it. Failures
// surface as inline messages; they never abort the session.
package validation

import (
	"fmt"

	"github.com/walkiapp/walki/internal/constants"
)

// ValidateStepAmount checks a manually entered step amount.
func ValidateStepAmount(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("step amount must be positive")
	}
	if amount > constants.MaxStepEntry {
		return fmt.Errorf("step amount cannot exceed %d in a single entry", constants.MaxStepEntry)
	}
	return nil
}

// ValidateDailyGoal checks a configured daily step goal.
func ValidateDailyGoal(goal int) error {
	if goal < constants.MinDailyGoal {
		return fmt.Errorf("daily goal must be at least %d steps", constants.MinDailyGoal)
	}
	if goal > constants.MaxDailyGoal {
		return fmt.Errorf("daily goal cannot exceed %d steps", constants.MaxDailyGoal)
	}
	return nil
}
