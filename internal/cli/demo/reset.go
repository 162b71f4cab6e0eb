package demo

import (
	"fmt"

	"github.com/walkiapp/walki/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		return fmt.Errorf("this discards all progress; re-run with --yes to confirm")
	}

	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	if err := demo.Reset(); err != nil {
		return err
	}

	fmt.Println("Demo state reset to the seeded experience.")
	return nil
}
