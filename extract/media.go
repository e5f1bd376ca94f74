package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
	"golang.org/x/sync/errgroup"
)

// runMovies aggregates movie records.
func (e *Engine) runMovies(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindMovie
	acc := newAccumulator[richmark.Movie]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		movie, err := acc.get(id, func() (*richmark.Movie, error) {
			return &richmark.Movie{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			movie.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			movie.Images = append(movie.Images, src)
		case "description":
			movie.Description = StripText(el.Text())
		case "director":
			movie.Director = strings.TrimSpace(el.Text())
		case "datecreated":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			movie.DateCreated = d
		case "rating":
			rating, err := ratingField(ref, el)
			if err != nil {
				return err
			}
			movie.Rating = rating
		case "review":
			review, err := reviewField(ref, el)
			if err != nil {
				return err
			}
			movie.Reviews = append(movie.Reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	movies := acc.records()
	for _, m := range movies {
		if m.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), m.ID)
		}
		if len(m.Images) == 0 {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: at least one image is required", e.cfg.BaseID(kind), m.ID)
		}
	}
	return jsonld.Marshal(jsonld.Movies(movies, e.cfg.Carousel(kind)))
}

// runVideos aggregates embedded video records. Fields missing from the
// markup are filled from remote embed metadata, fetched fan-out/fan-in:
// each fetch writes only its own record, so no write races another.
func (e *Engine) runVideos(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindVideo
	acc := newAccumulator[richmark.Video]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		video, err := acc.get(id, func() (*richmark.Video, error) {
			return &richmark.Video{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			video.Name = strings.TrimSpace(el.Text())
		case "description":
			video.Description = StripText(el.Text())
		case "thumbnail":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			video.Thumbnails = append(video.Thumbnails, src)
		case "uploaddate":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			video.UploadDate = d
		case "duration":
			d, err := Duration(el.Text(), e.cfg.Durations)
			if err != nil {
				return wrapRef(ref, err)
			}
			video.Duration = d
		case "contenturl":
			href, err := linkField(ref, el)
			if err != nil {
				return err
			}
			video.ContentURL = href
		case "embed":
			src, ok := el.Attr("src")
			if !ok || src == "" {
				return richmark.Errorf(richmark.EINVALID, "%s: embed element has no src", ref)
			}
			video.EmbedURL = src
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	videos := acc.records()
	if e.videos != nil {
		g, gctx := errgroup.WithContext(ctx)
		for _, v := range videos {
			if v.EmbedURL == "" {
				continue
			}
			v := v
			g.Go(func() error {
				lctx, cancel := context.WithTimeout(gctx, e.cfg.VideoTimeout)
				defer cancel()
				meta, err := e.videos.Lookup(lctx, v.EmbedURL)
				if err != nil {
					return err
				}
				if v.Name == "" {
					v.Name = meta.Title
				}
				if v.Description == "" {
					v.Description = meta.Description
				}
				if len(v.Thumbnails) == 0 && meta.ThumbnailURL != "" {
					v.Thumbnails = []string{meta.ThumbnailURL}
				}
				if v.UploadDate == "" {
					v.UploadDate = meta.UploadDate
				}
				if v.Duration == "" {
					v.Duration = meta.Duration
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	for _, v := range videos {
		if v.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), v.ID)
		}
	}
	return jsonld.Marshal(jsonld.Videos(videos, e.cfg.Carousel(kind)))
}
