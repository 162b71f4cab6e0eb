package system

import (
	"fmt"
	"time"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/inject"
	"github.com/walkiapp/walki/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: demo state blob loads (only if storage is reachable)
	if storageReachable {
		if err := checkDemoState(ctx); err != nil {
			fmt.Printf("❌ Demo state: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Demo state: OK\n")
		}
	} else {
		fmt.Printf("⊘ Demo state: SKIPPED (storage not reachable)\n")
	}

	// Check 3: calendar integrity (only if storage is reachable)
	if storageReachable {
		if err := checkCalendar(ctx); err != nil {
			fmt.Printf("❌ Calendar integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Calendar integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Calendar integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 4: notification library renders cleanly
	if err := checkLibrary(); err != nil {
		fmt.Printf("❌ Notification library: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Notification library: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDemoState(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	state := demo.State()
	if state.CurrentStreak < 0 || state.TodaySteps < 0 {
		return fmt.Errorf("state carries negative counters after sanitization")
	}
	if state.LongestStreak < state.CurrentStreak {
		return fmt.Errorf("longest streak (%d) shorter than current (%d)", state.LongestStreak, state.CurrentStreak)
	}
	return nil
}

func checkCalendar(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, day := range demo.State().Calendar {
		if !utils.ValidateDateFormat(day.Date) {
			return fmt.Errorf("calendar record with invalid date %q", day.Date)
		}
		if seen[day.Date] {
			return fmt.Errorf("duplicate calendar record for %s", day.Date)
		}
		seen[day.Date] = true
	}
	return nil
}

func checkLibrary() error {
	if len(data.NotificationLibrary) == 0 {
		return fmt.Errorf("notification library is empty")
	}
	for _, template := range data.NotificationLibrary {
		if !template.PersonaID.Valid() {
			return fmt.Errorf("template %s references unknown persona %q", template.ID, template.PersonaID)
		}
		if unknown := inject.ValidateTemplate(template.Template); len(unknown) > 0 {
			return fmt.Errorf("template %s uses unknown placeholders %v", template.ID, unknown)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
