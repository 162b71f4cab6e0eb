package demo

import (
	"fmt"
	"sort"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/utils"
)

type CalendarCmd struct {
	Days int `help:"How many days back to show." default:"14"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}

	calendar := append([]models.DayRecord(nil), demo.State().Calendar...)
	sort.Slice(calendar, func(i, j int) bool {
		return calendar[i].Date > calendar[j].Date
	})

	shown := 0
	for _, day := range calendar {
		if c.Days > 0 && shown >= c.Days {
			break
		}
		shown++

		marker := "✗"
		switch {
		case day.FreezeUsed:
			marker = "❄"
		case day.Completed:
			marker = "✓"
		}
		fmt.Printf("%s  %s  %7s / %s steps\n",
			day.Date, marker, utils.FormatNumber(day.Steps), utils.FormatNumber(day.Goal))
	}

	if shown == 0 {
		fmt.Println("No calendar history yet.")
	}
	return nil
}
