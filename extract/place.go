package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
)

// canonicalBusinessCategories are the local-business categories the
// partial matcher resolves against.
var canonicalBusinessCategories = []string{
	"Bakery",
	"Bar",
	"Cafe",
	"Dentist",
	"Gym",
	"Hair Salon",
	"Hotel",
	"Pharmacy",
	"Shop",
	"Store",
	"Supermarket",
}

// runRestaurants aggregates restaurant records.
func (e *Engine) runRestaurants(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindRestaurant
	acc := newAccumulator[richmark.Restaurant]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		r, err := acc.get(id, func() (*richmark.Restaurant, error) {
			return &richmark.Restaurant{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)

		handled, err := businessField(ref, &r.Business, field, el)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}

		switch field {
		case "name":
			r.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			r.Images = append(r.Images, src)
		case "description":
			r.Description = StripText(el.Text())
		case "cuisine":
			r.Cuisines = append(r.Cuisines, strings.TrimSpace(el.Text()))
		case "menu":
			href, err := linkField(ref, el)
			if err != nil {
				return err
			}
			r.MenuURL = href
		case "rating":
			rating, err := ratingField(ref, el)
			if err != nil {
				return err
			}
			r.Rating = rating
		case "review":
			review, err := reviewField(ref, el)
			if err != nil {
				return err
			}
			r.Reviews = append(r.Reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	restaurants := acc.records()
	for _, r := range restaurants {
		if r.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), r.ID)
		}
		if len(r.Images) == 0 {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: at least one image is required", e.cfg.BaseID(kind), r.ID)
		}
	}
	return jsonld.Marshal(jsonld.Restaurants(restaurants, e.cfg.Carousel(kind)))
}

// runLocalBusinesses aggregates local-business records. The category
// field resolves against the canonical category list by partial match.
func (e *Engine) runLocalBusinesses(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindLocalBusiness
	acc := newAccumulator[richmark.LocalBusiness]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		b, err := acc.get(id, func() (*richmark.LocalBusiness, error) {
			return &richmark.LocalBusiness{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)

		handled, err := businessField(ref, &b.Business, field, el)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}

		switch field {
		case "name":
			b.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			b.Images = append(b.Images, src)
		case "description":
			b.Description = StripText(el.Text())
		case "category":
			b.Category = MatchCategory(el.Text(), canonicalBusinessCategories)
		case "rating":
			rating, err := ratingField(ref, el)
			if err != nil {
				return err
			}
			b.Rating = rating
		case "review":
			review, err := reviewField(ref, el)
			if err != nil {
				return err
			}
			b.Reviews = append(b.Reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	businesses := acc.records()
	for _, b := range businesses {
		if b.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), b.ID)
		}
		if len(b.Images) == 0 {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: at least one image is required", e.cfg.BaseID(kind), b.ID)
		}
	}
	return jsonld.Marshal(jsonld.LocalBusinesses(businesses, e.cfg.Carousel(kind)))
}

// runOrganizations aggregates organization records.
func (e *Engine) runOrganizations(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindOrganization
	acc := newAccumulator[richmark.Organization]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		org, err := acc.get(id, func() (*richmark.Organization, error) {
			return &richmark.Organization{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			org.Name = strings.TrimSpace(el.Text())
		case "logo":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			org.Logo = src
		case "description":
			org.Description = StripText(el.Text())
		case "address":
			addr, err := ParseAddress(el.Text())
			if err != nil {
				return wrapRef(ref, err)
			}
			org.Address = addr
		case "telephone":
			ensureContact(org).Telephone = strings.TrimSpace(el.Text())
		case "email":
			ensureContact(org).Email = strings.TrimSpace(el.Text())
		case "contacttype":
			ensureContact(org).ContactType = strings.TrimSpace(el.Text())
		case "sameas":
			href, err := linkField(ref, el)
			if err != nil {
				return err
			}
			org.SameAs = append(org.SameAs, href)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	orgs := acc.records()
	for _, o := range orgs {
		if o.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), o.ID)
		}
	}
	return jsonld.Marshal(jsonld.Organizations(orgs, e.cfg.Carousel(kind)))
}

func ensureContact(org *richmark.Organization) *richmark.ContactPoint {
	if org.Contact == nil {
		org.Contact = &richmark.ContactPoint{}
	}
	return org.Contact
}
