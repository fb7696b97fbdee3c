package cli

import (
	"fmt"
	"time"
)

type CheckInCmd struct {
	ID int    `arg:"" help:"Habit ID to check in."`
	At string `help:"Check-in time (RFC 3339 or YYYY-MM-DD, default now)."`
}

func (c *CheckInCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	habit, err := user.FindHabit(c.ID)
	if err != nil {
		return err
	}

	at := time.Now()
	if c.At != "" {
		at, err = parseTimestamp(c.At)
		if err != nil {
			return err
		}
	}

	habit.CheckIn(at)
	ctx.Engine.Update(habit, time.Time{})

	if err := ctx.Store.Save(); err != nil {
		return err
	}

	fmt.Printf("Checked in for habit '%s'. Current streak: %d (best: %d)\n",
		habit.Name, habit.Streak, habit.LongestStreak)
	return nil
}
