package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ritual-cli/ritual/internal/models"
)

type UserCreateCmd struct {
	Name string `arg:"" optional:"" help:"Your display name."`
}

func (c *UserCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if _, err := ctx.Store.User(); err == nil {
		return fmt.Errorf("a user already exists; run 'ritual reset' to start over")
	}

	name := c.Name
	if name == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Enter your name").
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

	if err := ctx.Store.SetUser(models.NewUser(name)); err != nil {
		return err
	}

	fmt.Printf("User '%s' created.\n", name)
	return nil
}
