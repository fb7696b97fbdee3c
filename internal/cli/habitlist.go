package cli

import "fmt"

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	habits := ctx.Report.AllHabits(user)
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	// Streaks were just recomputed; persist the refreshed counters.
	if err := ctx.Store.Save(); err != nil {
		return err
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		fmt.Printf("  [%d] %-25s %s  streak %d (best %d)  %d check-in(s)\n",
			h.ID, h.Name, formatPeriodicity(h.Periodicity), h.Streak, h.LongestStreak, len(h.History))
	}

	return nil
}
