package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	demo, err := ctx.Demo()
	if err != nil {
		return err
	}
	quiz, err := ctx.Quiz()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(demo, quiz), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
