// Package yaml loads engine configuration from YAML files.
package yaml

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pwalkowski/richmark"
)

// fileConfig mirrors the on-disk configuration shape. Absent fields fall
// back to the built-in defaults.
type fileConfig struct {
	BaseURL           string              `yaml:"base_url"`
	DateFormat        string              `yaml:"date_format"`
	SearchURLTemplate string              `yaml:"search_url_template"`
	VideoTimeout      string              `yaml:"video_timeout"`
	OfferValidityDays int                 `yaml:"offer_validity_days"`
	Durations         *fileDurations      `yaml:"durations"`
	Kinds             map[string]fileKind `yaml:"kinds"`
}

type fileDurations struct {
	Minutes []string `yaml:"minutes"`
	Hours   []string `yaml:"hours"`
	Days    []string `yaml:"days"`
	Weeks   []string `yaml:"weeks"`
}

type fileKind struct {
	BaseID   string `yaml:"base_id"`
	Carousel *bool  `yaml:"carousel"`
}

// Load reads a YAML configuration file, overlays it onto the defaults, and
// validates the result.
func Load(path string) (*richmark.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, richmark.Errorf(richmark.ENOTFOUND, "config file not found: %s", path)
		}
		return nil, richmark.Errorf(richmark.EINTERNAL, "failed to read config %s: %v", path, err)
	}
	return Parse(data)
}

// Parse overlays YAML configuration onto the defaults and validates the
// result.
func Parse(data []byte) (*richmark.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, richmark.Errorf(richmark.EINVALID, "invalid config: %v", err)
	}

	cfg := richmark.DefaultConfig()
	cfg.BaseURL = fc.BaseURL
	if fc.DateFormat != "" {
		cfg.DateFormat = fc.DateFormat
	}
	if fc.SearchURLTemplate != "" {
		cfg.SearchURLTemplate = fc.SearchURLTemplate
	}
	if fc.VideoTimeout != "" {
		d, err := time.ParseDuration(fc.VideoTimeout)
		if err != nil || d <= 0 {
			return nil, richmark.Errorf(richmark.EINVALID, "invalid video timeout %q", fc.VideoTimeout)
		}
		cfg.VideoTimeout = d
	}
	if fc.OfferValidityDays > 0 {
		cfg.OfferValidityDays = fc.OfferValidityDays
	}
	if fc.Durations != nil {
		cfg.Durations = richmark.DurationScheme{
			Minutes: fc.Durations.Minutes,
			Hours:   fc.Durations.Hours,
			Days:    fc.Durations.Days,
			Weeks:   fc.Durations.Weeks,
		}
	}
	for name, fk := range fc.Kinds {
		kind := richmark.Kind(name)
		if !kind.Valid() {
			return nil, richmark.Errorf(richmark.EINVALID, "unknown entity kind %q in config", name)
		}
		kc := cfg.Kinds[kind]
		if fk.BaseID != "" {
			kc.BaseID = fk.BaseID
		}
		if fk.Carousel != nil {
			kc.Carousel = *fk.Carousel
		}
		cfg.Kinds[kind] = kc
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
