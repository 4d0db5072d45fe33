package goquery

import "github.com/kitanime/animedex"

// recommendBlockSelector matches the card containers of the
// recommendation block embedded in a detail page.
const recommendBlockSelector = "#recommend-anime-series .isi-recommend-anime-series .isi-konten"

// ScrapeRecommendations extracts the related-anime cards from a detail
// page. A malformed card yields a partial item (missing slug or poster)
// rather than aborting the list; an empty slice is a valid result.
func ScrapeRecommendations(markup string) []animedex.Recommendation {
	d := Load(markup)
	block := concat(d.Select(recommendBlockSelector))

	var recs []animedex.Recommendation
	for _, fragment := range SplitFragments(block, RecommendDelimiter) {
		card := Load(fragment)
		url := card.First(".isi-anime a").Attr("href")
		rec := animedex.Recommendation{
			Title:  card.First(".judul-anime").Text(),
			Poster: card.First(".isi-anime img").Attr("src"),
			URL:    url,
		}
		if slug := animedex.Slug(url); slug != url {
			rec.Slug = slug
		}
		recs = append(recs, rec)
	}
	return recs
}
