package otakudesu

import (
	"context"

	"github.com/kitanime/animedex"
	"golang.org/x/sync/errgroup"
)

// OngoingRange fetches pages from through to of the ongoing listing
// concurrently, returned in page order.
func (c *Client) OngoingRange(ctx context.Context, from, to, concurrency int) ([]*animedex.ListingPage, error) {
	return c.fetchRange(ctx, from, to, concurrency, c.Ongoing)
}

// CompleteRange fetches pages from through to of the complete listing
// concurrently, returned in page order.
func (c *Client) CompleteRange(ctx context.Context, from, to, concurrency int) ([]*animedex.ListingPage, error) {
	return c.fetchRange(ctx, from, to, concurrency, c.Complete)
}

func (c *Client) fetchRange(ctx context.Context, from, to, concurrency int, fetch func(context.Context, int) (*animedex.ListingPage, error)) ([]*animedex.ListingPage, error) {
	if from < 1 || to < from {
		return nil, animedex.Errorf(animedex.EINVALID, "invalid page range %d-%d", from, to)
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*animedex.ListingPage, to-from+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range pages {
		g.Go(func() error {
			page, err := fetch(ctx, from+i)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
