package main

import (
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the episodes command.
func (c *EpisodesCmd) Run(deps *Dependencies) error {
	episodes, err := deps.Client.Episodes(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}
	return printJSON(deps.Stdout, episodes)
}
