package cli

import "fmt"

type HabitDeleteCmd struct {
	ID int `arg:"" help:"Habit ID to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	habit, err := user.FindHabit(c.ID)
	if err != nil {
		return err
	}
	name := habit.Name

	if err := user.DeleteHabit(c.ID); err != nil {
		return err
	}
	if err := ctx.Store.Save(); err != nil {
		return err
	}

	fmt.Printf("Habit '%s' deleted.\n", name)
	return nil
}
