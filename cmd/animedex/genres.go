package main

import (
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the genres command.
func (c *GenresCmd) Run(deps *Dependencies) error {
	genres, err := deps.Client.GenreList(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}
	return printJSON(deps.Stdout, genres)
}

// Run executes the genre command.
func (c *GenreCmd) Run(deps *Dependencies) error {
	listing, err := deps.Client.AnimeByGenre(deps.Ctx, c.Slug, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}
	return printJSON(deps.Stdout, listing)
}
