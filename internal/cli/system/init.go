package system

import (
	"fmt"
	"os"

	"github.com/walkiapp/walki/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete existing storage before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized walki storage at: %s\n", ctx.Store.GetConfigPath())

	// Hydrating the demo store writes the seeded experience, so the first
	// 'walki status' has something to show.
	if _, err := ctx.Demo(); err != nil {
		return err
	}
	fmt.Println("Seeded demo state: an 18-day streak with today in progress.")

	return nil
}
