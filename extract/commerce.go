package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
	"golang.org/x/sync/errgroup"
)

// scanProducts runs the shared product scan for the standalone product
// kind and the variant-group kind. Offer validity windows derive from the
// document modification time, fetched fan-out/fan-in alongside the scan
// results.
func (e *Engine) scanProducts(ctx context.Context, inv *invocation, kind richmark.Kind) ([]*richmark.Product, error) {
	acc := newAccumulator[richmark.Product]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		p, err := acc.get(id, func() (*richmark.Product, error) {
			return &richmark.Product{ID: id}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			p.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			p.Images = append(p.Images, src)
		case "description":
			p.Description = StripText(el.Text())
		case "sku":
			p.SKU = strings.TrimSpace(el.Text())
		case "brand":
			p.Brand = strings.TrimSpace(el.Text())
		case "color":
			p.Color = strings.TrimSpace(el.Text())
		case "material":
			p.Material = strings.TrimSpace(el.Text())
		case "pattern":
			p.Pattern = strings.TrimSpace(el.Text())
		case "size":
			p.Size = strings.TrimSpace(el.Text())
		case "price":
			price, err := parseFloat(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			ensureOffer(p).Price = price
		case "currency":
			ensureOffer(p).Currency = strings.ToUpper(strings.TrimSpace(dataField(el, "value")))
		case "availability":
			v, err := enumField(ref, el, availabilityValues)
			if err != nil {
				return err
			}
			ensureOffer(p).Availability = v
		case "condition":
			v, err := enumField(ref, el, conditionValues)
			if err != nil {
				return err
			}
			ensureOffer(p).Condition = v
		case "shippingrate":
			rate, err := parseFloat(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			currency, _ := el.Data("currency")
			ensureShipping(p).Rate = &richmark.MonetaryAmount{Value: rate, Currency: strings.ToUpper(currency)}
		case "shippingcountry":
			ensureShipping(p).Country = strings.TrimSpace(el.Text())
		case "handlingdays":
			n, err := parseInt(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			ensureShipping(p).HandlingDays = n
		case "transitdays":
			n, err := parseInt(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			ensureShipping(p).TransitDays = n
		case "returndays":
			n, err := parseInt(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			ensureReturns(p).Days = n
		case "returnfees":
			ensureReturns(p).Fees = strings.TrimSpace(el.Text())
		case "returncountry":
			ensureReturns(p).Country = strings.TrimSpace(el.Text())
		case "rating":
			rating, err := ratingField(ref, el)
			if err != nil {
				return err
			}
			p.Rating = rating
		case "review":
			review, err := reviewField(ref, el)
			if err != nil {
				return err
			}
			p.Reviews = append(p.Reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	products := acc.records()
	base := e.cfg.BaseID(kind)
	for _, p := range products {
		if p.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", base, p.ID)
		}
		if len(p.Images) == 0 {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: at least one image is required", base, p.ID)
		}
		p.URL = e.productDeepLink(inv, p.ID, p)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		from, until, err := e.validityWindow(gctx, inv)
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.Offer != nil {
				p.Offer.ValidFrom = from
				p.Offer.ValidUntil = until
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return products, nil
}

func ensureOffer(p *richmark.Product) *richmark.Offer {
	if p.Offer == nil {
		p.Offer = &richmark.Offer{}
	}
	return p.Offer
}

func ensureShipping(p *richmark.Product) *richmark.ShippingDetails {
	o := ensureOffer(p)
	if o.Shipping == nil {
		o.Shipping = &richmark.ShippingDetails{}
	}
	return o.Shipping
}

func ensureReturns(p *richmark.Product) *richmark.ReturnPolicy {
	o := ensureOffer(p)
	if o.Returns == nil {
		o.Returns = &richmark.ReturnPolicy{}
	}
	return o.Returns
}

// runProducts aggregates standalone product records.
func (e *Engine) runProducts(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	products, err := e.scanProducts(ctx, inv, richmark.KindProduct)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return jsonld.Marshal(jsonld.Products(products, e.cfg.Carousel(richmark.KindProduct)))
}

// runProductGroup aggregates variant records into one product group. The
// group takes its name, description and brand from the first variant,
// lifts that variant's shipping and return policies to group level (the
// serializer references them by @id from every variant offer), collects
// the variation axes, and combines all variants' ratings and reviews.
func (e *Engine) runProductGroup(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	variants, err := e.scanProducts(ctx, inv, richmark.KindProductGroup)
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, nil
	}

	first := variants[0]
	group := &richmark.ProductGroup{
		Name:        first.Name,
		Description: first.Description,
		Brand:       first.Brand,
		Variants:    variants,
		URL:         e.pageURL(inv),
	}

	gid, err := GroupID(first.Name, inv.path)
	if err != nil {
		return nil, err
	}
	group.GroupID = gid

	if first.Offer != nil {
		group.Shipping = first.Offer.Shipping
		group.Returns = first.Offer.Returns
	}
	for _, v := range variants {
		if v.Offer != nil {
			v.Offer.Shipping = nil
			v.Offer.Returns = nil
		}
	}

	axes := map[string]bool{}
	var ratings []richmark.AggregateRating
	for _, v := range variants {
		if v.Color != "" {
			axes["color"] = true
		}
		if v.Material != "" {
			axes["material"] = true
		}
		if v.Pattern != "" {
			axes["pattern"] = true
		}
		if v.Size != "" {
			axes["size"] = true
		}
		if v.Rating != nil {
			ratings = append(ratings, *v.Rating)
			v.Rating = nil
		}
		group.Reviews = append(group.Reviews, v.Reviews...)
		v.Reviews = nil
	}
	for _, axis := range []string{"color", "material", "pattern", "size"} {
		if axes[axis] {
			group.VariesBy = append(group.VariesBy, axis)
		}
	}
	group.Rating = CombineRatings(ratings)

	return jsonld.Marshal(jsonld.ProductGroup(group))
}
