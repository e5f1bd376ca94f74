package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/yaml"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("OverlaysDefaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte(`
base_url: https://example.com
video_timeout: 3s
offer_validity_days: 14
kinds:
  movie:
    base_id: film
    carousel: false
  recipe:
    carousel: true
`))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.VideoTimeout)
		assert.Equal(t, 14, cfg.OfferValidityDays)

		assert.Equal(t, "film", cfg.Kinds[richmark.KindMovie].BaseID)
		assert.False(t, cfg.Kinds[richmark.KindMovie].Carousel)
		assert.True(t, cfg.Kinds[richmark.KindRecipe].Carousel)

		assert.Equal(t, "article", cfg.Kinds[richmark.KindArticle].BaseID, "untouched kinds keep defaults")
		assert.Equal(t, richmark.DefaultConfig().SearchURLTemplate, cfg.SearchURLTemplate)
	})

	t.Run("MissingBaseURL", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("video_timeout: 3s\n"))
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("UnknownKind", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("base_url: https://example.com\nkinds:\n  podcast:\n    base_id: pod\n"))
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("BadVideoTimeout", func(t *testing.T) {
		t.Parallel()

		for _, timeout := range []string{"soon", "-2s", "0s"} {
			_, err := yaml.Parse([]byte("base_url: https://example.com\nvideo_timeout: " + timeout + "\n"))
			assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err), timeout)
		}
	})

	t.Run("BadYAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("base_url: [unclosed"))
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})

	t.Run("CustomDurations", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte(`
base_url: https://example.com
durations:
  minutes: ["min"]
  hours: ["hr"]
  days: ["day"]
  weeks: ["wk"]
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"min"}, cfg.Durations.Minutes)
		assert.Equal(t, []string{"wk"}, cfg.Durations.Weeks)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "richmark.yml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: https://example.com\n"), 0644))

		cfg, err := yaml.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", cfg.BaseURL)
	})

	t.Run("NotFound", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Equal(t, richmark.ENOTFOUND, richmark.ErrorCode(err))
	})
}
