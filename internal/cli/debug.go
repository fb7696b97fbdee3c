package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show storage path."`
	DumpUser  *DebugDumpUserCmd  `cmd:"" help:"Dump the full owner document as JSON."`
	DumpHabit *DebugDumpHabitCmd `cmd:"" help:"Dump one habit as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpUserCmd struct{}

func (cmd *DebugDumpUserCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpHabitCmd struct {
	ID int `arg:"" help:"ID of the habit to dump."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	habit, err := user.FindHabit(cmd.ID)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(habit, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habit: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
