package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

// Run deletes all persisted data: the owner record and every habit it owns.
func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if _, err := ctx.Store.User(); err != nil {
		fmt.Println("No user data to delete.")
		return nil
	}

	if !c.Force {
		fmt.Println("⚠️  WARNING: This will permanently delete the user and all habits.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteAll(); err != nil {
		return err
	}

	fmt.Println("User data deleted.")
	return nil
}
