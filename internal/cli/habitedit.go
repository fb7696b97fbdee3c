package cli

import (
	"fmt"
)

type HabitEditCmd struct {
	ID          int    `arg:"" help:"Habit ID to edit."`
	Periodicity string `short:"p" help:"New periodicity (daily|weekly|FxP, e.g. 3x7)."`
	Name        string `short:"n" help:"New habit name."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	habit, err := user.FindHabit(c.ID)
	if err != nil {
		return err
	}

	if c.Periodicity == "" && c.Name == "" {
		return fmt.Errorf("nothing to edit: pass --periodicity and/or --name")
	}

	if c.Periodicity != "" {
		p, err := parsePeriodicity(c.Periodicity)
		if err != nil {
			return err
		}
		// Recorded streaks stay as they are; the new periodicity only
		// affects future computations.
		if err := habit.SetPeriodicity(p); err != nil {
			return err
		}
	}
	if c.Name != "" {
		habit.Name = c.Name
	}

	if err := ctx.Store.Save(); err != nil {
		return err
	}

	fmt.Printf("Habit updated: %s\n", habit)
	return nil
}
