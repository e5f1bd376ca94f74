package richmark

import (
	"net/url"
	"strings"
	"time"
)

// DefaultDateFormat is the reference layout used to parse marked-up dates
// when the configuration does not override it.
const DefaultDateFormat = "2006-01-02 15:04"

// DurationScheme maps unit marker words to duration units. Marker matching
// is case-insensitive. A marker must belong to exactly one unit; overlap is
// a configuration-consistency error.
type DurationScheme struct {
	Minutes []string
	Hours   []string
	Days    []string
	Weeks   []string
}

// DefaultDurationScheme returns the built-in duration unit markers.
func DefaultDurationScheme() DurationScheme {
	return DurationScheme{
		Minutes: []string{"minutes", "minute", "mins", "min", "m"},
		Hours:   []string{"hours", "hour", "hrs", "hr", "h"},
		Days:    []string{"days", "day", "d"},
		Weeks:   []string{"weeks", "week", "wks", "wk", "w"},
	}
}

// KindConfig holds the per-kind lookup data the engine consumes.
type KindConfig struct {
	// BaseID is the class-name prefix identifying elements of this kind.
	BaseID string

	// Carousel wraps multi-instance output in an ItemList when true.
	Carousel bool
}

// Config is the read-only lookup data injected into every aggregator and
// serializer. It replaces free-form global configuration with a typed
// struct validated once at load time.
type Config struct {
	// BaseURL is the canonical domain root used to build deep-link URLs,
	// e.g. "https://example.com".
	BaseURL string

	// DateFormat is the Go reference layout for marked-up date values.
	DateFormat string

	// Durations maps marker words to duration units.
	Durations DurationScheme

	// SearchURLTemplate is the site-search action template, relative to
	// BaseURL, e.g. "/search?q={search_term_string}".
	SearchURLTemplate string

	// VideoTimeout bounds each remote video metadata fetch.
	VideoTimeout time.Duration

	// OfferValidityDays is the length of the validity window derived from
	// document modification time for offer and event provenance fields.
	OfferValidityDays int

	// Kinds maps each entity kind to its lookup data.
	Kinds map[Kind]KindConfig
}

// DefaultConfig returns a Config with built-in base identifiers and
// defaults. The base URL must still be supplied before validation.
func DefaultConfig() *Config {
	kinds := make(map[Kind]KindConfig)
	for kind, baseID := range map[Kind]string{
		KindArticle:       "article",
		KindMovie:         "movie",
		KindRecipe:        "recipe",
		KindCourse:        "course",
		KindRestaurant:    "restaurant",
		KindLocalBusiness: "localbusiness",
		KindOrganization:  "organization",
		KindProduct:       "product",
		KindProductGroup:  "productgroup",
		KindEvent:         "event",
		KindFAQ:           "faq",
		KindVideo:         "video",
		KindProfilePage:   "profile",
		KindSoftwareApp:   "softwareapp",
	} {
		kinds[kind] = KindConfig{BaseID: baseID}
	}
	// Movies and courses render as carousels by default; both rich result
	// types are list-shaped.
	kinds[KindMovie] = KindConfig{BaseID: "movie", Carousel: true}
	kinds[KindCourse] = KindConfig{BaseID: "course", Carousel: true}

	return &Config{
		DateFormat:        DefaultDateFormat,
		Durations:         DefaultDurationScheme(),
		SearchURLTemplate: "/search?q={search_term_string}",
		VideoTimeout:      10 * time.Second,
		OfferValidityDays: 30,
		Kinds:             kinds,
	}
}

// BaseID returns the class-name prefix for the kind, or "" if the kind has
// no class-driven markup (breadcrumb, site-search).
func (c *Config) BaseID(kind Kind) string {
	return c.Kinds[kind].BaseID
}

// Carousel reports whether the kind renders as an ItemList.
func (c *Config) Carousel(kind Kind) bool {
	return c.Kinds[kind].Carousel
}

// Validate returns an error if the configuration is internally
// inconsistent. It is called once at load time; aggregators and
// serializers assume a validated Config.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be absolute", c.BaseURL)
	}
	if c.DateFormat == "" {
		return Errorf(EINVALID, "date format required")
	}

	if err := c.Durations.validate(); err != nil {
		return err
	}

	seen := make(map[string]Kind)
	for kind, kc := range c.Kinds {
		if !kind.Valid() {
			return Errorf(EINVALID, "unknown entity kind %q", kind)
		}
		if kind.Args() != ArgsPath && kc.BaseID == "" {
			return Errorf(EINVALID, "kind %q requires a base identifier", kind)
		}
		if kc.BaseID == "" {
			continue
		}
		if strings.Contains(kc.BaseID, "-") {
			return Errorf(EINVALID, "base identifier %q must not contain hyphens", kc.BaseID)
		}
		if other, ok := seen[strings.ToLower(kc.BaseID)]; ok {
			return Errorf(EINVALID, "base identifier %q shared by kinds %q and %q", kc.BaseID, other, kind)
		}
		seen[strings.ToLower(kc.BaseID)] = kind
	}
	return nil
}

// validate checks that no marker word maps to more than one unit. An
// inconsistent scheme is globally fatal because duration parsing would be
// ambiguous for every document.
func (s DurationScheme) validate() error {
	seen := make(map[string]string)
	for unit, markers := range map[string][]string{
		"minutes": s.Minutes,
		"hours":   s.Hours,
		"days":    s.Days,
		"weeks":   s.Weeks,
	} {
		for _, m := range markers {
			m = strings.ToLower(m)
			if m == "" {
				return Errorf(EINVALID, "duration scheme: empty %s marker", unit)
			}
			if other, ok := seen[m]; ok && other != unit {
				return Errorf(EINVALID, "duration scheme: marker %q maps to both %s and %s", m, other, unit)
			}
			seen[m] = unit
		}
	}
	return nil
}
