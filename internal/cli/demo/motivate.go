package demo

import (
	"fmt"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/data"
)

type MotivateCmd struct{}

func (c *MotivateCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	notification, err := demo.RequestMotivation(nil)
	if err != nil {
		return err
	}

	name := string(notification.PersonaID)
	if persona, ok := data.PersonaByID(notification.PersonaID); ok {
		name = persona.Name
	}

	fmt.Printf("%s says:\n\n  %s\n", name, notification.Message)
	return nil
}
