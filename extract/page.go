package extract

import (
	"context"
	"encoding/json"
	"path"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
)

// runFAQ aggregates the page's question/answer pairs into one FAQPage.
// A question without an answer (or the reverse) is a structural error.
func (e *Engine) runFAQ(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindFAQ
	acc := newAccumulator[richmark.Question]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		q, err := acc.get(id, func() (*richmark.Question, error) {
			return &richmark.Question{ID: id}, nil
		})
		if err != nil {
			return err
		}
		switch field {
		case "question":
			q.Question = strings.TrimSpace(el.Text())
		case "answer":
			q.Answer = StripText(el.Text())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	faq := &richmark.FAQ{URL: e.pageURL(inv)}
	for _, q := range acc.records() {
		if q.Question == "" || q.Answer == "" {
			return nil, richmark.Errorf(richmark.EINVALID,
				"%s-%s: question and answer are both required", e.cfg.BaseID(kind), q.ID)
		}
		faq.Questions = append(faq.Questions, *q)
	}
	return jsonld.Marshal(jsonld.FAQ(faq))
}

// runProfilePage aggregates the page's profile record. Interaction counts
// are numeric fields; an unparseable count is a structural error.
func (e *Engine) runProfilePage(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindProfilePage
	acc := newAccumulator[richmark.ProfilePage]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		p, err := acc.get(id, func() (*richmark.ProfilePage, error) {
			return &richmark.ProfilePage{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			p.Name = strings.TrimSpace(el.Text())
		case "alternatename":
			p.AlternateName = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			p.Images = append(p.Images, src)
		case "description":
			p.Description = StripText(el.Text())
		case "sameas":
			href, err := linkField(ref, el)
			if err != nil {
				return err
			}
			p.SameAs = append(p.SameAs, href)
		case "followers":
			n, err := parseInt(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			p.Followers = n
		case "posts":
			n, err := parseInt(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			p.Posts = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	profiles := acc.records()
	p := profiles[0]
	if len(profiles) > 1 {
		return nil, richmark.Errorf(richmark.EINVALID,
			"%s: a page carries at most one profile, found %d", e.cfg.BaseID(kind), len(profiles))
	}
	if p.Name == "" {
		return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), p.ID)
	}
	return jsonld.Marshal(jsonld.Profile(p))
}

// runBreadcrumb derives the breadcrumb trail from the document's path,
// walking from the leaf directory up to the site root. A level without an
// index document is skipped and every already-collected item's position
// is decremented, so positions renumber contiguously from 1 at the root.
func (e *Engine) runBreadcrumb(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	if e.store == nil {
		return nil, richmark.Errorf(richmark.EINTERNAL, "breadcrumb extraction requires a page store")
	}

	p := path.Clean(strings.TrimPrefix(inv.path, "/"))
	var levels []string
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		levels = append(levels, dir)
	}
	levels = append(levels, "") // site root

	var items []richmark.BreadcrumbItem
	pos := len(levels)
	for _, level := range levels {
		exists, err := e.store.IndexExists(ctx, level)
		if err != nil {
			return nil, err
		}
		if !exists {
			for i := range items {
				items[i].Position--
			}
			pos--
			continue
		}

		name := "Home"
		u := strings.TrimSuffix(e.cfg.BaseURL, "/") + "/"
		if level != "" {
			name = titleFromSegment(path.Base(level))
			u += level + "/"
		}
		items = append(items, richmark.BreadcrumbItem{Name: name, URL: u, Position: pos})
		pos--
	}
	if len(items) == 0 {
		return nil, nil
	}

	// Leaf-first collection; position 1 belongs to the root.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return jsonld.Marshal(jsonld.Breadcrumb(&richmark.Breadcrumb{Items: items}))
}

// titleFromSegment turns a path segment into a display name:
// "ice-cream_shops" becomes "Ice Cream Shops".
func titleFromSegment(segment string) string {
	words := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// runSiteSearch emits the WebSite record with the configured search
// action.
func (e *Engine) runSiteSearch(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	if e.cfg.SearchURLTemplate == "" {
		return nil, nil
	}
	s := &richmark.SiteSearch{
		URL:        e.cfg.BaseURL,
		Target:     strings.TrimSuffix(e.cfg.BaseURL, "/") + e.cfg.SearchURLTemplate,
		QueryInput: "required name=" + templatePlaceholder(e.cfg.SearchURLTemplate),
	}
	return jsonld.Marshal(jsonld.SiteSearch(s))
}

func templatePlaceholder(template string) string {
	start := strings.IndexByte(template, '{')
	end := strings.IndexByte(template, '}')
	if start < 0 || end <= start {
		return "search_term_string"
	}
	return template[start+1 : end]
}
