package demo

import (
	"fmt"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/data"
)

type HistoryCmd struct {
	Limit int `help:"How many notifications to show." default:"10"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	notifications := demo.State().Notifications
	if len(notifications) == 0 {
		fmt.Println("No motivational messages yet. Try 'walki motivate'.")
		return nil
	}
	if c.Limit > 0 && len(notifications) > c.Limit {
		notifications = notifications[:c.Limit]
	}

	for _, n := range notifications {
		name := string(n.PersonaID)
		if persona, ok := data.PersonaByID(n.PersonaID); ok {
			name = persona.Name
		}
		fmt.Printf("%s  %s\n    %s\n", n.Timestamp.Format("2006-01-02 3:04 PM"), name, n.Message)
	}
	return nil
}
