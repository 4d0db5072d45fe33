package main

import (
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the anime command.
func (c *AnimeCmd) Run(deps *Dependencies) error {
	anime, err := deps.Client.Anime(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}
	return printJSON(deps.Stdout, anime)
}
