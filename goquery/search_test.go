package goquery_test

import (
	"testing"

	"github.com/kitanime/animedex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeSearch(t *testing.T) {
	t.Parallel()

	t.Run("extracts results with badges and genres", func(t *testing.T) {
		t.Parallel()

		results := goquery.ScrapeSearch(searchPage)

		require.Len(t, results, 2)

		first := results[0]
		assert.Equal(t, "Sousou no Frieren Subtitle Indonesia", first.Title)
		assert.Equal(t, "frieren-sub-indo", first.Slug)
		assert.Equal(t, "https://otakudesu.cloud/wp-content/uploads/frieren-search.jpg", first.Poster)
		assert.Equal(t, "Completed", first.Status)
		assert.Equal(t, "9.03", first.Rating)
		require.Len(t, first.Genres, 2)
		assert.Equal(t, "adventure", first.Genres[0].Slug)
		assert.Equal(t, "fantasy", first.Genres[1].Slug)
	})

	t.Run("missing badge rows leave fields empty", func(t *testing.T) {
		t.Parallel()

		results := goquery.ScrapeSearch(searchPage)

		require.Len(t, results, 2)
		second := results[1]
		assert.Equal(t, "Ongoing", second.Status)
		assert.Empty(t, second.Rating)
		assert.Empty(t, second.Genres)
	})

	t.Run("no results is a valid empty list", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.ScrapeSearch(`<html><body><p>Tidak ditemukan</p></body></html>`))
	})
}
