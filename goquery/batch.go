package goquery

import (
	"regexp"

	"github.com/kitanime/animedex"
)

// batchHrefRe matches combined-download page URLs anywhere on a page.
var batchHrefRe = regexp.MustCompile(`^https?://otakudesu\.[a-zA-Z0-9-]+/batch/`)

// FindBatch locates the batch-download link on a detail page. Returns
// nil when the anime has no batch release yet; an absent batch is not an
// error.
func FindBatch(d *Document) *animedex.Batch {
	for _, a := range d.Select("a") {
		href := a.Attr("href")
		if !batchHrefRe.MatchString(href) {
			continue
		}
		return &animedex.Batch{
			Slug: animedex.Slug(href),
			URL:  href,
		}
	}
	return nil
}

// batchSelfSelectors locate the batch page's own canonical URL.
var batchSelfSelectors = []struct {
	selector string
	attr     string
}{
	{`link[rel="canonical"]`, "href"},
	{`meta[property="og:url"]`, "content"},
}

// ScrapeBatch resolves a Batch from a batch-download page itself, using
// the page's canonical URL. Returns an ENOTFOUND error when the page
// carries no recognizable batch URL.
func ScrapeBatch(markup string) (*animedex.Batch, error) {
	d := Load(markup)
	for _, s := range batchSelfSelectors {
		url := d.First(s.selector).Attr(s.attr)
		if batchHrefRe.MatchString(url) {
			return &animedex.Batch{
				Slug: animedex.Slug(url),
				URL:  url,
			}, nil
		}
	}
	if batch := FindBatch(d); batch != nil {
		return batch, nil
	}
	return nil, animedex.Errorf(animedex.ENOTFOUND, "no batch link found")
}
