package goquery

import "github.com/kitanime/animedex"

// MapGenres extracts one Genre per anchor in the given markup fragment.
// An anchor whose href doesn't match the known URL shape still yields
// its title and URL, just no slug.
func MapGenres(markup string) []animedex.Genre {
	d := Load(markup)
	anchors := d.Select("a")
	genres := make([]animedex.Genre, 0, len(anchors))
	for _, a := range anchors {
		url := a.Attr("href")
		g := animedex.Genre{
			Title: a.Text(),
			URL:   url,
		}
		if slug := animedex.Slug(url); slug != url {
			g.Slug = slug
		}
		genres = append(genres, g)
	}
	return genres
}

// ScrapeGenreList extracts the full genre taxonomy from the genre-list
// page. An empty slice is a valid result for a page without the genre
// container.
func ScrapeGenreList(markup string) []animedex.Genre {
	d := Load(markup)
	return MapGenres(concat(d.Select(".genres li a")))
}
