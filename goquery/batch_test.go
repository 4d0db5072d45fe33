package goquery_test

import (
	"testing"

	"github.com/kitanime/animedex"
	"github.com/kitanime/animedex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBatch(t *testing.T) {
	t.Parallel()

	t.Run("locates the batch link anywhere on the page", func(t *testing.T) {
		t.Parallel()

		batch := goquery.FindBatch(goquery.Load(detailPage))

		require.NotNil(t, batch)
		assert.Equal(t, "fsn-frieren-batch-sub-indo", batch.Slug)
		assert.Equal(t, "https://otakudesu.cloud/batch/fsn-frieren-batch-sub-indo/", batch.URL)
	})

	t.Run("absent batch is nil not an error", func(t *testing.T) {
		t.Parallel()

		batch := goquery.FindBatch(goquery.Load(`<a href="https://otakudesu.cloud/anime/frieren-sub-indo/">x</a>`))

		assert.Nil(t, batch)
	})
}

func TestScrapeBatch(t *testing.T) {
	t.Parallel()

	t.Run("resolves from the canonical link", func(t *testing.T) {
		t.Parallel()

		markup := `<html><head><link rel="canonical" href="https://otakudesu.cloud/batch/fsn-frieren-batch-sub-indo/"></head><body></body></html>`

		batch, err := goquery.ScrapeBatch(markup)

		require.NoError(t, err)
		assert.Equal(t, "fsn-frieren-batch-sub-indo", batch.Slug)
	})

	t.Run("falls back to the og:url meta tag", func(t *testing.T) {
		t.Parallel()

		markup := `<html><head><meta property="og:url" content="https://otakudesu.cloud/batch/op-batch-sub-indo/"></head><body></body></html>`

		batch, err := goquery.ScrapeBatch(markup)

		require.NoError(t, err)
		assert.Equal(t, "op-batch-sub-indo", batch.Slug)
	})

	t.Run("falls back to a batch anchor in the body", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body><a href="https://otakudesu.cloud/batch/op-batch-sub-indo/">Batch</a></body></html>`

		batch, err := goquery.ScrapeBatch(markup)

		require.NoError(t, err)
		assert.Equal(t, "op-batch-sub-indo", batch.Slug)
	})

	t.Run("page without a batch URL is not found", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ScrapeBatch(`<html><body><p>404</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, animedex.ENOTFOUND, animedex.ErrorCode(err))
	})
}
