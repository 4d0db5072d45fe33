package main

import (
	"context"
	"fmt"

	"github.com/kitanime/animedex"
)

// Run executes the ongoing command.
func (c *OngoingCmd) Run(deps *Dependencies) error {
	return runListing(deps, c.Page, c.Pages, c.Concurrency, deps.Client.Ongoing, deps.Client.OngoingRange)
}

// Run executes the complete command.
func (c *CompleteCmd) Run(deps *Dependencies) error {
	return runListing(deps, c.Page, c.Pages, c.Concurrency, deps.Client.Complete, deps.Client.CompleteRange)
}

// runListing prints a single listing page, or a page range when more
// than one page was requested.
func runListing(
	deps *Dependencies,
	page, pages, concurrency int,
	fetchOne func(context.Context, int) (*animedex.ListingPage, error),
	fetchRange func(ctx context.Context, from, to, concurrency int) ([]*animedex.ListingPage, error),
) error {
	if pages <= 1 {
		listing, err := fetchOne(deps.Ctx, page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
			return err
		}
		return printJSON(deps.Stdout, listing)
	}

	listings, err := fetchRange(deps.Ctx, page, page+pages-1, concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", animedex.ErrorMessage(err))
		return err
	}
	return printJSON(deps.Stdout, listings)
}
