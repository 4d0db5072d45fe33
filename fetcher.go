package animedex

import "context"

// Fetcher retrieves raw HTML from URLs. Implementations may use plain
// HTTP or browser automation to handle JavaScript-rendered pages; either
// way the extraction layer only ever sees the returned markup string,
// never a network error.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources (connections, browser
	// processes). Must be called when the Fetcher is no longer needed.
	Close() error
}
