package richmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("DefaultsWithBaseURL", func(t *testing.T) {
		t.Parallel()

		cfg := richmark.DefaultConfig()
		cfg.BaseURL = "https://example.com"

		require.NoError(t, cfg.Validate())
	})

	t.Run("MissingBaseURL", func(t *testing.T) {
		t.Parallel()

		cfg := richmark.DefaultConfig()

		err := cfg.Validate()
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("RelativeBaseURL", func(t *testing.T) {
		t.Parallel()

		cfg := richmark.DefaultConfig()
		cfg.BaseURL = "/just/a/path"

		err := cfg.Validate()
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("HyphenatedBaseID", func(t *testing.T) {
		t.Parallel()

		cfg := richmark.DefaultConfig()
		cfg.BaseURL = "https://example.com"
		cfg.Kinds[richmark.KindMovie] = richmark.KindConfig{BaseID: "my-movie"}

		err := cfg.Validate()
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("DuplicateBaseID", func(t *testing.T) {
		t.Parallel()

		cfg := richmark.DefaultConfig()
		cfg.BaseURL = "https://example.com"
		cfg.Kinds[richmark.KindMovie] = richmark.KindConfig{BaseID: "recipe"}

		err := cfg.Validate()
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("OverlappingDurationMarkers", func(t *testing.T) {
		t.Parallel()

		cfg := richmark.DefaultConfig()
		cfg.BaseURL = "https://example.com"
		cfg.Durations.Hours = append(cfg.Durations.Hours, "min")

		err := cfg.Validate()
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})
}

func TestConfig_KindLookups(t *testing.T) {
	t.Parallel()

	cfg := richmark.DefaultConfig()

	assert.Equal(t, "movie", cfg.BaseID(richmark.KindMovie))
	assert.Equal(t, "localbusiness", cfg.BaseID(richmark.KindLocalBusiness))
	assert.Empty(t, cfg.BaseID(richmark.KindBreadcrumb))

	assert.True(t, cfg.Carousel(richmark.KindMovie))
	assert.True(t, cfg.Carousel(richmark.KindCourse))
	assert.False(t, cfg.Carousel(richmark.KindProduct))
}

func TestKind_Args(t *testing.T) {
	t.Parallel()

	assert.Equal(t, richmark.ArgsSource, richmark.KindArticle.Args())
	assert.Equal(t, richmark.ArgsSource, richmark.KindFAQ.Args())
	assert.Equal(t, richmark.ArgsPath, richmark.KindBreadcrumb.Args())
	assert.Equal(t, richmark.ArgsPath, richmark.KindSiteSearch.Args())
	assert.Equal(t, richmark.ArgsSourceAndPath, richmark.KindProduct.Args())
}

func TestKind_Valid(t *testing.T) {
	t.Parallel()

	for _, kind := range richmark.Kinds() {
		assert.True(t, kind.Valid(), string(kind))
	}
	assert.False(t, richmark.Kind("poem").Valid())
}

func TestKind_Instanced(t *testing.T) {
	t.Parallel()

	assert.False(t, richmark.KindArticle.Instanced())
	assert.True(t, richmark.KindMovie.Instanced())
}
