package extract_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/mock"
)

func TestEngine_Event(t *testing.T) {
	t.Parallel()

	store := &mock.PageStore{
		ModTimeFn: func(ctx context.Context, path string) (time.Time, error) {
			return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), nil
		},
	}

	source := `<html><body>
		<h1 class="event-gig-name">Summer Concert</h1>
		<time class="event-gig-startdate">2026-07-01 19:00</time>
		<span class="event-gig-mode" data-value="offline"></span>
		<span class="event-gig-status" data-value="scheduled"></span>
		<span class="event-gig-venue">City Park</span>
		<span class="event-gig-address">Park Ave 1, Springfield</span>
		<a class="event-gig-organizer" href="https://example.com/org">Live Events Ltd</a>
		<span class="event-gig-price" data-value="49.5"></span>
		<span class="event-gig-currency">EUR</span>
	</body></html>`

	e := newTestEngine(store, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Path:   "events/concert.html",
		Kinds:  []richmark.Kind{richmark.KindEvent},
	})

	assert.Equal(t, "Event", doc["@type"])
	assert.Equal(t, "Summer Concert", doc["name"])
	assert.Equal(t, "2026-07-01T19:00:00+00:00", doc["startDate"])
	assert.Equal(t, "OfflineEventAttendanceMode", doc["eventAttendanceMode"])
	assert.Equal(t, "EventScheduled", doc["eventStatus"])

	loc, ok := doc["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Place", loc["@type"])
	assert.Equal(t, "City Park", loc["name"])

	organizer, ok := doc["organizer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Organization", organizer["@type"])
	assert.Equal(t, "https://example.com/org", organizer["url"])

	offers, ok := doc["offers"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 49.5, offers["price"], 1e-9)
	assert.Equal(t, "EUR", offers["priceCurrency"])
	assert.Equal(t, "2026-05-01T00:00:00+00:00", offers["validFrom"])
	assert.Equal(t, doc["url"], offers["url"])
}

func TestEngine_Event_VirtualLocationWins(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="event-web-name">Webinar</h1>
		<time class="event-web-startdate">2026-07-01 19:00</time>
		<span class="event-web-venue">Studio</span>
		<a class="event-web-virtualurl" href="https://stream.example.com/live">Watch</a>
	</body></html>`

	e := newTestEngine(nil, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Path:   "events/webinar.html",
		Kinds:  []richmark.Kind{richmark.KindEvent},
	})

	loc, ok := doc["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VirtualLocation", loc["@type"])
	assert.Equal(t, "https://stream.example.com/live", loc["url"])
}

func TestEngine_Event_MissingStartDate(t *testing.T) {
	t.Parallel()

	source := `<html><body><h1 class="event-gig-name">No Date</h1></body></html>`

	e := newTestEngine(nil, nil)
	_, err := e.Extract(context.Background(), richmark.ExtractRequest{
		Source: source,
		Path:   "events.html",
		Kinds:  []richmark.Kind{richmark.KindEvent},
	})
	assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
}

func TestEngine_Event_UnknownMode(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="event-gig-name">Gig</h1>
		<time class="event-gig-startdate">2026-07-01 19:00</time>
		<span class="event-gig-mode" data-value="hologram"></span>
	</body></html>`

	e := newTestEngine(nil, nil)
	_, err := e.Extract(context.Background(), richmark.ExtractRequest{
		Source: source,
		Path:   "events.html",
		Kinds:  []richmark.Kind{richmark.KindEvent},
	})
	assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
}

func TestEngine_LocalBusiness_CategoryMatch(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="localbusiness-b1-name">Sweet Corner</h1>
		<img class="localbusiness-b1-image" src="/img/shop.jpg">
		<span class="localbusiness-b1-category">artisan bakery downtown</span>
		<span class="localbusiness-b1-hours">Mon-Fri (08:00AM - 04:00PM)</span>
	</body></html>`

	e := newTestEngine(nil, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Path:   "places/bakery.html",
		Kinds:  []richmark.Kind{richmark.KindLocalBusiness},
	})

	assert.Equal(t, "LocalBusiness", doc["@type"])
	assert.Equal(t, "Bakery", doc["category"])

	hours, ok := doc["openingHoursSpecification"].([]any)
	require.True(t, ok)
	require.Len(t, hours, 1)
	spec, ok := hours[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, spec["dayOfWeek"])
}

func TestEngine_Organization(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="organization-acme-name">Acme Corp</h1>
		<img class="organization-acme-logo" src="/img/logo.png">
		<span class="organization-acme-telephone">+1 555 0100</span>
		<span class="organization-acme-email">hello@acme.test</span>
		<span class="organization-acme-contacttype">customer service</span>
		<a class="organization-acme-sameas" href="https://social.example/acme">Profile</a>
	</body></html>`

	e := newTestEngine(nil, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Path:   "about.html",
		Kinds:  []richmark.Kind{richmark.KindOrganization},
	})

	assert.Equal(t, "Organization", doc["@type"])
	assert.Equal(t, "Acme Corp", doc["name"])

	logo, ok := doc["logo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/img/logo.png", logo["url"])

	cp, ok := doc["contactPoint"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "+1 555 0100", cp["telephone"])
	assert.Equal(t, "hello@acme.test", cp["email"])
	assert.Equal(t, "customer service", cp["contactType"])

	assert.Equal(t, []any{"https://social.example/acme"}, doc["sameAs"])
}

func TestEngine_ProfilePage(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="profile-jan-name">Jan Kowalski</h1>
		<span class="profile-jan-alternatename">jank</span>
		<span class="profile-jan-followers" data-value="1200"></span>
		<span class="profile-jan-posts" data-value="87"></span>
	</body></html>`

	e := newTestEngine(nil, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Kinds:  []richmark.Kind{richmark.KindProfilePage},
	})

	assert.Equal(t, "ProfilePage", doc["@type"])
	entity, ok := doc["mainEntity"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jan Kowalski", entity["name"])
	assert.Equal(t, "jank", entity["alternateName"])

	stats, ok := entity["interactionStatistic"].([]any)
	require.True(t, ok)
	require.Len(t, stats, 2)
	follow, ok := stats[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://schema.org/FollowAction", follow["interactionType"])
	assert.InDelta(t, 1200, follow["userInteractionCount"], 1e-9)
}

func TestEngine_ProfilePage_MultipleProfiles(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="profile-a-name">One</h1>
		<h1 class="profile-b-name">Two</h1>
	</body></html>`

	e := newTestEngine(nil, nil)
	_, err := e.Extract(context.Background(), richmark.ExtractRequest{
		Source: source,
		Kinds:  []richmark.Kind{richmark.KindProfilePage},
	})
	assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
}

func TestEngine_SoftwareApp(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h1 class="softwareapp-editor-name">Pixel Editor</h1>
		<span class="softwareapp-editor-os">Windows, macOS</span>
		<span class="softwareapp-editor-category">DesignApplication</span>
		<span class="softwareapp-editor-price" data-value="0"></span>
		<span class="softwareapp-editor-currency" data-value="usd"></span>
		<span class="softwareapp-editor-rating" data-value="4.8" data-count="512"></span>
	</body></html>`

	e := newTestEngine(nil, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Path:   "apps/editor.html",
		Kinds:  []richmark.Kind{richmark.KindSoftwareApp},
	})

	assert.Equal(t, "SoftwareApplication", doc["@type"])
	assert.Equal(t, "Pixel Editor", doc["name"])
	assert.Equal(t, "Windows, macOS", doc["operatingSystem"])
	assert.Equal(t, "DesignApplication", doc["applicationCategory"])

	offers, ok := doc["offers"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0, offers["price"], 1e-9)
	assert.Equal(t, "USD", offers["priceCurrency"])
}

func TestEngine_CourseCarousel(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<h2 class="course-go-name">Intro to Go</h2>
		<p class="course-go-description">Learn the basics.</p>
		<a class="course-go-provider" href="https://example.com/school">Example School</a>
		<h2 class="course-rust-name">Intro to Rust</h2>
		<p class="course-rust-description">Borrow checker included.</p>
	</body></html>`

	e := newTestEngine(nil, nil)
	doc := extractOne(t, e, richmark.ExtractRequest{
		Source: source,
		Path:   "courses.html",
		Kinds:  []richmark.Kind{richmark.KindCourse},
	})

	assert.Equal(t, "ItemList", doc["@type"])
	items, ok := doc["itemListElement"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	entry, ok := items[0].(map[string]any)
	require.True(t, ok)
	course, ok := entry["item"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Course", course["@type"])
	assert.Equal(t, "Intro to Go", course["name"])

	provider, ok := course["provider"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Organization", provider["@type"])
	assert.Equal(t, "Example School", provider["name"])
	assert.Equal(t, "https://example.com/school", provider["url"])
}
