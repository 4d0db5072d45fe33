package goquery

import "github.com/kitanime/animedex"

// episodeSelectors are tried in order; the first that matches wins. The
// usual detail-page template carries two .episodelist blocks with the
// episodes in the second, but some pages ship only one.
var episodeSelectors = []string{
	".episodelist:nth-child(2) ul li",
	".episodelist ul li",
}

// ScrapeEpisodes extracts the episode list from a detail page. The
// source lists episodes newest-first; the returned slice is oldest-first.
// Returns an ENOTFOUND error when the page carries no episode list at
// all.
func ScrapeEpisodes(markup string) ([]animedex.Episode, error) {
	d := Load(markup)
	items := d.SelectAny(episodeSelectors...)
	if len(items) == 0 {
		return nil, animedex.Errorf(animedex.ENOTFOUND, "no episode list found")
	}

	episodes := make([]animedex.Episode, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		a := items[i].First("span a")
		url := a.Attr("href")
		ep := animedex.Episode{
			Episode: a.Text(),
			URL:     url,
		}
		if slug := animedex.Slug(url); slug != url {
			ep.Slug = slug
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}
