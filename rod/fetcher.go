// Package rod provides a browser-based implementation of
// animedex.Fetcher for pages that are only complete after JavaScript
// runs (the source site's genre-list page, and any page behind a
// JS challenge).
package rod

import (
	"context"

	"github.com/go-rod/rod/lib/proto"
	"github.com/kitanime/animedex"
)

// Ensure Fetcher implements animedex.Fetcher at compile time.
var _ animedex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. The underlying browser is shared across fetches and
// recycled by the BrowserManager; each Fetch acquires its own page and
// closes it on every exit path.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
}

// NewFetcher launches a headless Chrome browser and returns a Fetcher
// over it. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...ManagerOption) (*Fetcher, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", animedex.Errorf(animedex.EINVALID, "fetch URL required")
	}
	if f.manager == nil {
		return "", animedex.Errorf(animedex.EINTERNAL, "fetcher not initialized")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	if f.manager == nil {
		return nil
	}
	return f.manager.Close()
}
