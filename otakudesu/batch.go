package otakudesu

import (
	"context"

	"github.com/kitanime/animedex"
	"github.com/kitanime/animedex/goquery"
)

// Batch resolves the batch download entry for an anime. The anime page
// only links the batch page when one exists, so resolution is two-step:
// find the batch anchor on the anime page, then confirm the canonical
// slug on the batch page itself. A fetch failure on the second step
// falls back to the anchor-derived entry.
func (c *Client) Batch(ctx context.Context, animeSlug string) (*animedex.Batch, error) {
	if animeSlug == "" {
		return nil, animedex.Errorf(animedex.EINVALID, "anime slug required")
	}
	markup, err := c.get(ctx, "/anime/"+animeSlug)
	if err != nil {
		return nil, err
	}
	entry := goquery.FindBatch(goquery.Load(markup))
	if entry == nil {
		return nil, animedex.Errorf(animedex.ENOTFOUND, "no batch release for %q", animeSlug)
	}

	batchMarkup, err := c.get(ctx, "/batch/"+entry.Slug)
	if err != nil {
		return entry, nil
	}
	canonical, err := goquery.ScrapeBatch(batchMarkup)
	if err != nil {
		return entry, nil
	}
	return canonical, nil
}
