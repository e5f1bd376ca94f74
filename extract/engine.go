package extract

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/pwalkowski/richmark"
)

// Ensure Engine implements richmark.Extractor at compile time.
var _ richmark.Extractor = (*Engine)(nil)

// Engine is the extraction-and-normalization engine. One Extract call owns
// its accumulators exclusively; an Engine is safe for concurrent use.
type Engine struct {
	cfg    *richmark.Config
	parser richmark.DocumentParser
	store  richmark.PageStore
	videos richmark.VideoMetadataService

	runners map[richmark.Kind]runner
}

// runner aggregates and serializes one kind. A nil message means the kind
// matched nothing on the page.
type runner func(ctx context.Context, inv *invocation) (json.RawMessage, error)

// invocation carries the per-document state for one Extract call.
type invocation struct {
	doc       richmark.Document
	path      string
	sourceURL string
}

// New creates an Engine. The store may be nil when no path-derived kinds
// or provenance fields are needed; the video service may be nil when
// remote video metadata is not wanted.
func New(cfg *richmark.Config, parser richmark.DocumentParser, store richmark.PageStore, videos richmark.VideoMetadataService) *Engine {
	e := &Engine{
		cfg:    cfg,
		parser: parser,
		store:  store,
		videos: videos,
	}

	// Dispatch table: kind -> aggregator+serializer pair. Built once so
	// dispatch is a map lookup, not string comparison per element.
	e.runners = map[richmark.Kind]runner{
		richmark.KindArticle:       e.runArticle,
		richmark.KindMovie:         e.runMovies,
		richmark.KindRecipe:        e.runRecipes,
		richmark.KindCourse:        e.runCourses,
		richmark.KindRestaurant:    e.runRestaurants,
		richmark.KindLocalBusiness: e.runLocalBusinesses,
		richmark.KindOrganization:  e.runOrganizations,
		richmark.KindProduct:       e.runProducts,
		richmark.KindProductGroup:  e.runProductGroup,
		richmark.KindEvent:         e.runEvents,
		richmark.KindFAQ:           e.runFAQ,
		richmark.KindVideo:         e.runVideos,
		richmark.KindProfilePage:   e.runProfilePage,
		richmark.KindSoftwareApp:   e.runSoftwareApps,
		richmark.KindBreadcrumb:    e.runBreadcrumb,
		richmark.KindSiteSearch:    e.runSiteSearch,
	}
	return e
}

// Extract implements richmark.Extractor.
func (e *Engine) Extract(ctx context.Context, req richmark.ExtractRequest) ([]richmark.Result, error) {
	inv := &invocation{path: req.Path, sourceURL: req.SourceURL}

	needsSource := false
	for _, kind := range req.Kinds {
		if !kind.Valid() {
			return nil, richmark.Errorf(richmark.EINVALID, "unknown entity kind %q", kind)
		}
		if kind.Args() != richmark.ArgsPath {
			needsSource = true
		}
		if kind.Args() != richmark.ArgsSource && req.Path == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "kind %q requires a document path", kind)
		}
	}
	if needsSource {
		if req.Source == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "document source required")
		}
		doc, err := e.parser.Parse(req.Source)
		if err != nil {
			return nil, err
		}
		inv.doc = doc
	}

	var results []richmark.Result
	for _, kind := range req.Kinds {
		msg, err := e.runners[kind](ctx, inv)
		if err != nil {
			return nil, err
		}
		if msg == nil {
			continue
		}
		results = append(results, richmark.Result{Kind: kind, JSONLD: msg})
	}
	return results, nil
}

// scan visits every element whose class starts with the kind's base
// identifier, parsing (instanceID, fieldType) from the matching class.
func (e *Engine) scan(doc richmark.Document, kind richmark.Kind, visit func(id, field string, el richmark.Element) error) error {
	base := strings.ToLower(e.cfg.BaseID(kind))
	prefix := base + "-"
	for _, el := range doc.SelectClassPrefix(prefix) {
		token, ok := classToken(el.Class(), prefix)
		if !ok {
			continue
		}
		id, field, err := ParseClassName(token, base, kind.Instanced())
		if err != nil {
			return err
		}
		if err := visit(id, field, el); err != nil {
			return err
		}
	}
	return nil
}

// accumulator groups records by instance ID in insertion order. Records
// are created lazily on first field match; completion is implicit at
// end-of-scan.
type accumulator[T any] struct {
	order []string
	items map[string]*T
}

func newAccumulator[T any]() *accumulator[T] {
	return &accumulator[T]{items: make(map[string]*T)}
}

func (a *accumulator[T]) get(id string, init func() (*T, error)) (*T, error) {
	if rec, ok := a.items[id]; ok {
		return rec, nil
	}
	rec, err := init()
	if err != nil {
		return nil, err
	}
	a.order = append(a.order, id)
	a.items[id] = rec
	return rec, nil
}

func (a *accumulator[T]) empty() bool {
	return len(a.order) == 0
}

func (a *accumulator[T]) records() []*T {
	out := make([]*T, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.items[id])
	}
	return out
}

// deepLink computes the deterministic deep-link URL for an instance:
// the absolute source URL when the input was fetched remotely, otherwise
// the document's relative path resolved against the configured base URL,
// with the instance ID as fragment anchor.
func (e *Engine) deepLink(inv *invocation, id string) string {
	base := e.pageURL(inv)
	if id == "" {
		return base
	}
	return base + "#" + id
}

func (e *Engine) pageURL(inv *invocation) string {
	if inv.sourceURL != "" {
		return inv.sourceURL
	}
	return strings.TrimSuffix(e.cfg.BaseURL, "/") + "/" + path.Clean(strings.TrimPrefix(inv.path, "/"))
}

// productDeepLink appends the variation-axis query string to a product
// deep link, e.g. .../catalog.html?color=red&size=m#p1.
func (e *Engine) productDeepLink(inv *invocation, id string, p *richmark.Product) string {
	q := url.Values{}
	for _, axis := range []struct{ name, value string }{
		{"color", p.Color},
		{"material", p.Material},
		{"pattern", p.Pattern},
		{"size", p.Size},
	} {
		if axis.value != "" {
			q.Set(axis.name, axis.value)
		}
	}
	base := e.pageURL(inv)
	if len(q) > 0 {
		base += "?" + q.Encode()
	}
	return base + "#" + id
}

// validityWindow derives the offer/event validity window from the
// document's modification time (default-provenance rule). Returns empty
// strings when no store or path is available.
func (e *Engine) validityWindow(ctx context.Context, inv *invocation) (from, until string, err error) {
	if e.store == nil || inv.path == "" {
		return "", "", nil
	}
	mtime, err := e.store.ModTime(ctx, inv.path)
	if err != nil {
		return "", "", err
	}
	days := e.cfg.OfferValidityDays
	if days <= 0 {
		days = 30
	}
	return mtime.Format(isoDateTime), mtime.AddDate(0, 0, days).Format(isoDateTime), nil
}
