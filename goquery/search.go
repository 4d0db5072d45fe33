package goquery

import (
	"strings"

	"github.com/kitanime/animedex"
)

// ScrapeSearch extracts the results of a free-text search page. Each
// result's metadata rows reuse the "Label: Value" convention of the
// detail panel, so the same first-colon split applies. An empty slice
// is a valid result for a search without matches.
func ScrapeSearch(markup string) []animedex.SearchItem {
	d := Load(markup)

	var results []animedex.SearchItem
	for _, card := range d.Select("ul.chivsrc li") {
		url := card.First("h2 a").Attr("href")
		item := animedex.SearchItem{
			Title:  strings.TrimSpace(card.First("h2 a").Text()),
			Poster: card.First("img").Attr("src"),
			URL:    url,
		}
		if slug := animedex.Slug(url); slug != url {
			item.Slug = slug
		}

		for _, set := range card.Select(".set") {
			label, value, ok := splitLabel(set.Text())
			if !ok {
				continue
			}
			switch label {
			case "Genres":
				item.Genres = MapGenres(set.HTML())
			case "Status":
				item.Status = value
			case "Rating":
				item.Rating = value
			}
		}

		results = append(results, item)
	}
	return results
}
