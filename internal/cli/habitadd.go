package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ritual-cli/ritual/internal/models"
)

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Periodicity string `short:"p" help:"Periodicity (daily|weekly|FxP, e.g. 3x7)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Enter the name of the new habit").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	var periodicity models.Periodicity
	if c.Periodicity != "" {
		periodicity, err = parsePeriodicity(c.Periodicity)
		if err != nil {
			return err
		}
	} else {
		periodicity, err = promptPeriodicity()
		if err != nil {
			return err
		}
	}

	habit, err := models.NewHabit(ctx.Store.Allocator(), name, periodicity, time.Now())
	if err != nil {
		return err
	}
	user.AddHabit(habit)

	if err := ctx.Store.Save(); err != nil {
		return err
	}

	fmt.Printf("Habit '%s' added with ID %d.\n", name, habit.ID)
	return nil
}

// promptPeriodicity walks the daily/weekly/custom selection the same way the
// habit type is usually described: daily, weekly, or x times every y days.
func promptPeriodicity() (models.Periodicity, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select periodicity type").
			Options(
				huh.NewOption("Daily (1 time every 1 day)", "daily"),
				huh.NewOption("Weekly (1 time every 7 days)", "weekly"),
				huh.NewOption("Special (x times every y days)", "special"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return models.Periodicity{}, err
	}

	switch choice {
	case "daily":
		return models.Periodicity{Frequency: 1, Period: 1}, nil
	case "weekly":
		return models.Periodicity{Frequency: 1, Period: 7}, nil
	}

	var freqStr, periodStr string
	form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Enter frequency (number of times)").
			Value(&freqStr).
			Validate(validatePositiveInt),
		huh.NewInput().
			Title("Enter period in days").
			Value(&periodStr).
			Validate(validatePositiveInt),
	))
	if err := form.Run(); err != nil {
		return models.Periodicity{}, err
	}

	freq, _ := strconv.Atoi(freqStr)
	period, _ := strconv.Atoi(periodStr)
	p := models.Periodicity{Frequency: freq, Period: period}
	return p, p.Validate()
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}
