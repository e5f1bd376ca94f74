package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
)

// runSoftwareApps aggregates software-application records.
func (e *Engine) runSoftwareApps(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindSoftwareApp
	acc := newAccumulator[richmark.SoftwareApp]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		app, err := acc.get(id, func() (*richmark.SoftwareApp, error) {
			return &richmark.SoftwareApp{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			app.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			app.Images = append(app.Images, src)
		case "os":
			app.OperatingSystem = strings.TrimSpace(el.Text())
		case "category":
			app.Category = strings.TrimSpace(el.Text())
		case "price":
			price, err := parseFloat(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			ensureAppOffer(app).Price = price
		case "currency":
			ensureAppOffer(app).Currency = strings.ToUpper(strings.TrimSpace(dataField(el, "value")))
		case "rating":
			rating, err := ratingField(ref, el)
			if err != nil {
				return err
			}
			app.Rating = rating
		case "review":
			review, err := reviewField(ref, el)
			if err != nil {
				return err
			}
			app.Reviews = append(app.Reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	apps := acc.records()
	for _, app := range apps {
		if app.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), app.ID)
		}
	}
	return jsonld.Marshal(jsonld.SoftwareApps(apps, e.cfg.Carousel(kind)))
}

func ensureAppOffer(app *richmark.SoftwareApp) *richmark.Offer {
	if app.Offer == nil {
		app.Offer = &richmark.Offer{}
	}
	return app.Offer
}
