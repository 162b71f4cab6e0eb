package demo

import (
	"fmt"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/utils"
)

type GoalCmd struct {
	Amount int `arg:"" help:"New daily step goal."`
}

func (c *GoalCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	if err := demo.SetDailyGoal(c.Amount); err != nil {
		return err
	}

	fmt.Printf("Daily goal set to %s steps.\n", utils.FormatNumber(c.Amount))
	return nil
}
