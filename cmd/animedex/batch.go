package main

import (
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	batch, err := deps.Client.Batch(deps.Ctx, c.Slug)
	if err != nil {
		if animedex.ErrorCode(err) == animedex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "No batch release yet for %q.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		}
		return err
	}
	return printJSON(deps.Stdout, batch)
}
