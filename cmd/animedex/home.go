package main

import (
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the home command.
func (c *HomeCmd) Run(deps *Dependencies) error {
	home, err := deps.Client.Home(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}
	return printJSON(deps.Stdout, home)
}
