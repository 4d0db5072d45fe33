package goquery

import "github.com/kitanime/animedex"

// detailRowSelector matches the "Label: Value" rows of the detail
// panel on an anime page.
const detailRowSelector = ".infozin .infozingle p"

// ScrapeAnime assembles a full anime profile from a detail page.
//
// Every scalar field is best-effort: the detail panel's labels are
// source-language free text and any missing label just leaves its field
// empty. Episodes are load-bearing — when no episode list can be found
// the whole profile extraction fails with ENOTFOUND rather than
// producing a partial profile.
func ScrapeAnime(markup string) (*animedex.Anime, error) {
	episodes, err := ScrapeEpisodes(markup)
	if err != nil {
		return nil, err
	}

	d := Load(markup)
	details := ParseDetails(d, detailRowSelector)

	var genres []animedex.Genre
	if rows := d.Select(detailRowSelector); len(rows) > 0 {
		last := rows[len(rows)-1]
		genres = MapGenres(concat(last.Select("span a")))
	}

	return &animedex.Anime{
		Title:           details["Judul"],
		JapaneseTitle:   details["Japanese"],
		Poster:          Poster(d),
		Rating:          details["Skor"],
		Producer:        details["Produser"],
		Type:            details["Tipe"],
		Status:          details["Status"],
		EpisodeCount:    details["Total Episode"],
		Duration:        details["Durasi"],
		ReleaseDate:     details["Tanggal Rilis"],
		Studio:          details["Studio"],
		Genres:          genres,
		Synopsis:        Synopsis(d),
		Batch:           FindBatch(d),
		Episodes:        episodes,
		Recommendations: ScrapeRecommendations(markup),
	}, nil
}
