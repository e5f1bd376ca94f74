package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
)

// runArticle aggregates the page's singleton article. When no headline is
// marked up, the document title element supplies it; a page with neither
// is a structural error.
func (e *Engine) runArticle(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindArticle
	var art *richmark.Article

	err := e.scan(inv.doc, kind, func(_, field string, el richmark.Element) error {
		if art == nil {
			art = &richmark.Article{URL: e.deepLink(inv, "")}
		}
		ref := e.ref(kind, "", field)
		switch field {
		case "headline":
			art.Headline = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			art.Images = append(art.Images, src)
		case "description":
			art.Description = StripText(el.Text())
		case "author":
			art.Author = strings.TrimSpace(el.Text())
			if t, ok := el.Data("type"); ok {
				art.AuthorType = t
			}
			if href, ok := el.Attr("href"); ok {
				art.AuthorURL = href
			}
		case "publisher":
			art.Publisher = strings.TrimSpace(el.Text())
		case "publisherlogo":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			art.PublisherLogo = src
		case "datepublished":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			art.DatePublished = d
		case "datemodified":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			art.DateModified = d
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, nil
	}

	if art.Headline == "" {
		title, err := inv.doc.Title()
		if err != nil {
			return nil, richmark.Errorf(richmark.EINVALID,
				"%s: no headline element and no document title", e.cfg.BaseID(kind))
		}
		art.Headline = title
	}
	if len(art.Images) == 0 {
		return nil, richmark.Errorf(richmark.EINVALID,
			"%s: at least one image is required", e.cfg.BaseID(kind))
	}
	return jsonld.Marshal(jsonld.Article(art))
}
