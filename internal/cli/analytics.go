package cli

import "fmt"

type AnalyticsCmd struct {
	List        AnalyticsListCmd        `cmd:"" help:"List all tracked habits with streaks."`
	Periodicity AnalyticsPeriodicityCmd `cmd:"" help:"List habits matching a periodicity."`
	Longest     AnalyticsLongestCmd     `cmd:"" help:"Show the longest streak (overall or per habit)."`
}

type AnalyticsListCmd struct{}

func (c *AnalyticsListCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	for _, h := range ctx.Report.AllHabits(user) {
		fmt.Printf("%s  streak %d (best %d)\n", h, h.Streak, h.LongestStreak)
	}
	return ctx.Store.Save()
}

type AnalyticsPeriodicityCmd struct {
	Periodicity string `arg:"" help:"Periodicity to match (daily|weekly|FxP, e.g. 3x7)."`
}

func (c *AnalyticsPeriodicityCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	p, err := parsePeriodicity(c.Periodicity)
	if err != nil {
		return err
	}

	matched := ctx.Report.HabitsByPeriodicity(user, p)
	if len(matched) == 0 {
		fmt.Printf("No habits with periodicity %s.\n", formatPeriodicity(p))
		return nil
	}
	for _, h := range matched {
		fmt.Printf("%s  streak %d (best %d)\n", h, h.Streak, h.LongestStreak)
	}
	return ctx.Store.Save()
}

type AnalyticsLongestCmd struct {
	ID *int `arg:"" optional:"" help:"Habit ID (omit for the longest streak across all habits)."`
}

func (c *AnalyticsLongestCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	if c.ID == nil {
		fmt.Printf("Longest streak among all habits: %d\n", ctx.Report.LongestStreakOverall(user))
		return ctx.Store.Save()
	}

	longest, err := ctx.Report.LongestStreakFor(user, *c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Longest streak for habit ID %d: %d\n", *c.ID, longest)
	return ctx.Store.Save()
}
