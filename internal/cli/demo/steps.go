// Package demo holds the commands that drive the day-to-day walking
// experience: logging steps, requesting motivation, and managing the streak.
package demo

import (
	"fmt"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/utils"
)

type StepsCmd struct {
	Add StepsAddCmd `cmd:"" help:"Log a step entry for today."`
}

type StepsAddCmd struct {
	Amount int `arg:"" help:"Number of steps to add."`
}

func (c *StepsAddCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	if err := demo.AddSteps(c.Amount); err != nil {
		return err
	}

	state := demo.State()
	fmt.Printf("Logged %s steps. Today: %s / %s\n",
		utils.FormatNumber(c.Amount),
		utils.FormatNumber(state.TodaySteps),
		utils.FormatNumber(state.DailyGoal))

	// Celebrations print inline; the TUI shows them as a modal instead.
	for state.ActiveMilestone != nil {
		fmt.Printf("\n🎉 %s\n   %s\n", state.ActiveMilestone.Title, state.ActiveMilestone.Message)
		demo.DismissMilestone()
		state = demo.State()
	}

	return nil
}
