// Package otakudesu is the network collaborator over the source site.
// It owns the request shapes (path templates, page numbering, search
// query) and composes a Fetcher with the extraction engine; the
// extraction functions themselves never see a URL or a network error.
package otakudesu

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kitanime/animedex"
	"github.com/kitanime/animedex/goquery"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the source site's current mirror.
const DefaultBaseURL = "https://otakudesu.cloud"

// DefaultConcurrency limits concurrent page fetches in range requests.
const DefaultConcurrency = 4

// Client resolves catalog entities by fetching the right page and
// handing its markup to the extraction engine.
type Client struct {
	baseURL string
	fetcher animedex.Fetcher
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the source site mirror.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithRateLimit throttles fetches to rps requests per second with a
// burst of 1. Unset means no throttling; politeness toward the source
// site is this collaborator's concern, never the extraction engine's.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client over the given fetcher.
func NewClient(fetcher animedex.Fetcher, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		fetcher: fetcher,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches one path under the base URL, honoring the rate limit.
func (c *Client) get(ctx context.Context, path string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return c.fetcher.Fetch(ctx, c.baseURL+path)
}

// Home fetches the front page's ongoing and complete sections.
func (c *Client) Home(ctx context.Context) (*animedex.Home, error) {
	markup, err := c.get(ctx, "/")
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeHome(markup), nil
}

// Anime fetches and assembles a full anime profile.
func (c *Client) Anime(ctx context.Context, slug string) (*animedex.Anime, error) {
	if slug == "" {
		return nil, animedex.Errorf(animedex.EINVALID, "anime slug required")
	}
	markup, err := c.get(ctx, "/anime/"+slug)
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeAnime(markup)
}

// Episodes fetches an anime's episode list, oldest first.
func (c *Client) Episodes(ctx context.Context, slug string) ([]animedex.Episode, error) {
	if slug == "" {
		return nil, animedex.Errorf(animedex.EINVALID, "anime slug required")
	}
	markup, err := c.get(ctx, "/anime/"+slug)
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeEpisodes(markup)
}

// Ongoing fetches one page of the ongoing listing. Pages are 1-based.
func (c *Client) Ongoing(ctx context.Context, page int) (*animedex.ListingPage, error) {
	markup, err := c.get(ctx, fmt.Sprintf("/ongoing-anime/page/%d", normalizePage(page)))
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeOngoingPage(markup), nil
}

// Complete fetches one page of the complete listing. Pages are 1-based.
func (c *Client) Complete(ctx context.Context, page int) (*animedex.ListingPage, error) {
	markup, err := c.get(ctx, fmt.Sprintf("/complete-anime/page/%d", normalizePage(page)))
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeCompletePage(markup), nil
}

// Search fetches free-text search results for a keyword.
func (c *Client) Search(ctx context.Context, keyword string) ([]animedex.SearchItem, error) {
	if keyword == "" {
		return nil, animedex.Errorf(animedex.EINVALID, "search keyword required")
	}
	markup, err := c.get(ctx, "/?s="+url.QueryEscape(keyword)+"&post_type=anime")
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeSearch(markup), nil
}

// GenreList fetches the genre taxonomy. The genre-list page is only
// complete after JavaScript runs, so pair this with the rod fetcher.
func (c *Client) GenreList(ctx context.Context) ([]animedex.Genre, error) {
	markup, err := c.get(ctx, "/genre-list")
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeGenreList(markup), nil
}

// AnimeByGenre fetches one page of a genre-filtered listing.
func (c *Client) AnimeByGenre(ctx context.Context, genre string, page int) (*animedex.ListingPage, error) {
	if genre == "" {
		return nil, animedex.Errorf(animedex.EINVALID, "genre slug required")
	}
	markup, err := c.get(ctx, fmt.Sprintf("/genres/%s/page/%d", genre, normalizePage(page)))
	if err != nil {
		return nil, err
	}
	return goquery.ScrapeGenreAnime(markup), nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
