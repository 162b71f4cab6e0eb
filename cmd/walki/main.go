package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/cli/demo"
	"github.com/walkiapp/walki/internal/cli/quiz"
	"github.com/walkiapp/walki/internal/cli/system"
	"github.com/walkiapp/walki/internal/constants"
	"github.com/walkiapp/walki/internal/errors"
	"github.com/walkiapp/walki/internal/logger"
	"github.com/walkiapp/walki/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db suffix selects the SQLite backend; anything else uses JSON." type:"path" default:"~/.config/walki/walki.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd   `cmd:"" help:"Initialize walki storage with the seeded demo."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Steps    demo.StepsCmd    `cmd:"" help:"Log steps."`
	Motivate demo.MotivateCmd `cmd:"" help:"Get a motivational message from your persona mix."`
	Status   demo.StatusCmd   `cmd:"" help:"Show today's progress and streak."`
	Calendar demo.CalendarCmd `cmd:"" help:"Show recent day history."`
	History  demo.HistoryCmd  `cmd:"" help:"Show recent motivational messages."`
	Freeze   demo.FreezeCmd   `cmd:"" help:"Spend a streak freeze on today."`
	Goal     demo.GoalCmd     `cmd:"" help:"Set the daily step goal."`
	Reset    demo.ResetCmd    `cmd:"" help:"Reset the demo to its seeded state."`
	Quiz     quiz.QuizCmd     `cmd:"" help:"Take the persona quiz."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Streak-first walking companion with persona-voiced motivation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}

	// The storage backend follows the config file's extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
