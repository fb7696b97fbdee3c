package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ritual-cli/ritual/internal/analytics"
	"github.com/ritual-cli/ritual/internal/cli"
	"github.com/ritual-cli/ritual/internal/storage"
	"github.com/ritual-cli/ritual/internal/streak"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/ritual/ritual.json"`

	Init cli.InitCmd `cmd:"" help:"Initialize ritual storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	User struct {
		Create cli.UserCreateCmd `cmd:"" help:"Create the owner record."`
	} `cmd:"" help:"Manage the owner record."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and its check-ins."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
	} `cmd:"" help:"Manage habits."`
	Checkin   cli.CheckInCmd   `cmd:"" help:"Record a check-in for a habit."`
	Analytics cli.AnalyticsCmd `cmd:"" help:"Streak analytics."`
	Reset     cli.ResetCmd     `cmd:"" help:"Delete all stored data."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage storage backups."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Check the stored document for conflicts."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run environment and data diagnostics."`
	Debug     cli.DebugCmd     `cmd:"" help:"Inspection helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ritual"),
		kong.Description("Personal habit tracker with streak analytics"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	engine := streak.New()
	appCtx := &cli.Context{
		Store:  store,
		Engine: engine,
		Report: analytics.New(engine),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
