package main

import (
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Client.Search(deps.Ctx, c.Keyword)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Keyword)
		return nil
	}
	return printJSON(deps.Stdout, results)
}
