package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/extract"
)

func TestParseClassName(t *testing.T) {
	t.Parallel()

	t.Run("Instanced", func(t *testing.T) {
		t.Parallel()

		id, field, err := extract.ParseClassName("movie-3-name", "movie", true)
		require.NoError(t, err)
		assert.Equal(t, "3", id)
		assert.Equal(t, "name", field)
	})

	t.Run("Singleton", func(t *testing.T) {
		t.Parallel()

		id, field, err := extract.ParseClassName("article-headline", "article", false)
		require.NoError(t, err)
		assert.Empty(t, id)
		assert.Equal(t, "headline", field)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		t.Parallel()

		id, field, err := extract.ParseClassName("Movie-A-Name", "movie", true)
		require.NoError(t, err)
		assert.Equal(t, "a", id)
		assert.Equal(t, "name", field)
	})

	t.Run("AlphanumericInstanceID", func(t *testing.T) {
		t.Parallel()

		id, field, err := extract.ParseClassName("product-sku42-price", "product", true)
		require.NoError(t, err)
		assert.Equal(t, "sku42", id)
		assert.Equal(t, "price", field)
	})

	t.Run("TooFewSegments", func(t *testing.T) {
		t.Parallel()

		_, _, err := extract.ParseClassName("movie-name", "movie", true)
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("EmptySegment", func(t *testing.T) {
		t.Parallel()

		_, _, err := extract.ParseClassName("movie--name", "movie", true)
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})
}
