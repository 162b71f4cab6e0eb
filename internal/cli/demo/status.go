package demo

import (
	"fmt"
	"time"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/inject"
	"github.com/walkiapp/walki/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	state := demo.State()
	remaining := state.DailyGoal - state.TodaySteps
	if remaining < 0 {
		remaining = 0
	}
	percent := 0
	if state.DailyGoal > 0 {
		percent = state.TodaySteps * 100 / state.DailyGoal
	}

	fmt.Printf("Today:          %s / %s steps (%d%%)\n",
		utils.FormatNumber(state.TodaySteps), utils.FormatNumber(state.DailyGoal), percent)
	if remaining > 0 {
		fmt.Printf("Remaining:      %s steps\n", utils.FormatNumber(remaining))
	} else {
		fmt.Println("Remaining:      goal reached ✓")
	}

	fmt.Printf("Streak:         %d days (longest %d)\n", state.CurrentStreak, state.LongestStreak)
	if start, ok := demo.StreakStartDate(); ok {
		fmt.Printf("Streak since:   %s\n", start.Format("2006-01-02"))
	}
	fmt.Printf("Next milestone: %d days\n", inject.NextMilestone(state.CurrentStreak))
	fmt.Printf("Active days:    %d\n", state.TotalActiveDays)
	fmt.Printf("Freezes left:   %d\n", state.FreezesAvailable)
	fmt.Printf("Risk:           %s\n", cli.RiskLabel(demo.Risk(time.Now().Hour())))

	return nil
}
