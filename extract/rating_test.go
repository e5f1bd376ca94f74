package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/extract"
)

func TestCombineRatings(t *testing.T) {
	t.Parallel()

	t.Run("WeightedMean", func(t *testing.T) {
		t.Parallel()

		got := extract.CombineRatings([]richmark.AggregateRating{
			{Value: 4, Best: 5, Count: 10},
			{Value: 2, Best: 5, Count: 5},
		})
		require.NotNil(t, got)
		assert.InDelta(t, 3.33, got.Value, 1e-9)
		assert.Equal(t, 15, got.Count)
		assert.InDelta(t, 5, got.Best, 1e-9)
	})

	t.Run("SingleIsIdentity", func(t *testing.T) {
		t.Parallel()

		in := richmark.AggregateRating{Value: 4.6, Best: 10, Count: 3}
		got := extract.CombineRatings([]richmark.AggregateRating{in})
		require.NotNil(t, got)
		assert.Equal(t, in, *got)
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, extract.CombineRatings(nil))
	})
}

func TestGroupID(t *testing.T) {
	t.Parallel()

	t.Run("Shape", func(t *testing.T) {
		t.Parallel()

		id, err := extract.GroupID("Trail Shoe", "products/shoes.html")
		require.NoError(t, err)
		assert.Len(t, id, 32)
		assert.Regexp(t, "^[0-9a-f]+$", id)
	})

	t.Run("NotReproducible", func(t *testing.T) {
		t.Parallel()

		a, err := extract.GroupID("Trail Shoe", "products/shoes.html")
		require.NoError(t, err)
		b, err := extract.GroupID("Trail Shoe", "products/shoes.html")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		t.Parallel()

		id, err := extract.GroupID("", "")
		require.NoError(t, err)
		assert.Len(t, id, 32)
	})
}
