package demo

import (
	"fmt"

	"github.com/walkiapp/walki/internal/cli"
)

type FreezeCmd struct{}

func (c *FreezeCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	if err := demo.ApplyFreeze(); err != nil {
		return err
	}

	state := demo.State()
	fmt.Printf("Streak freeze applied. Today counts toward your %d-day streak.\n", state.CurrentStreak)
	fmt.Printf("Freezes remaining: %d\n", state.FreezesAvailable)
	return nil
}
