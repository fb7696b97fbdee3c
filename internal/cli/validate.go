package cli

import (
	"fmt"

	"github.com/ritual-cli/ritual/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	result := validation.New().ValidateUser(user)
	fmt.Print(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("validation found %d problem(s)", len(result.Conflicts))
	}
	return nil
}
