package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
	"golang.org/x/sync/errgroup"
)

// runEvents aggregates event records. Offer validity windows derive from
// the document modification time.
func (e *Engine) runEvents(ctx context.Context, inv *invocation) (json.RawMessage, error) {
	kind := richmark.KindEvent
	acc := newAccumulator[richmark.Event]()

	err := e.scan(inv.doc, kind, func(id, field string, el richmark.Element) error {
		ev, err := acc.get(id, func() (*richmark.Event, error) {
			return &richmark.Event{ID: id, URL: e.deepLink(inv, id)}, nil
		})
		if err != nil {
			return err
		}
		ref := e.ref(kind, id, field)
		switch field {
		case "name":
			ev.Name = strings.TrimSpace(el.Text())
		case "image":
			src, err := imageField(ref, el)
			if err != nil {
				return err
			}
			ev.Images = append(ev.Images, src)
		case "description":
			ev.Description = StripText(el.Text())
		case "startdate":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			ev.StartDate = d
		case "enddate":
			d, err := NormalizeDate(el.Text(), e.cfg.DateFormat)
			if err != nil {
				return wrapRef(ref, err)
			}
			ev.EndDate = d
		case "mode":
			v, err := enumField(ref, el, attendanceValues)
			if err != nil {
				return err
			}
			ev.AttendanceMode = v
		case "status":
			v, err := enumField(ref, el, eventStatusValues)
			if err != nil {
				return err
			}
			ev.Status = v
		case "venue":
			ensureLocation(ev).Name = strings.TrimSpace(el.Text())
		case "address":
			addr, err := ParseAddress(el.Text())
			if err != nil {
				return wrapRef(ref, err)
			}
			ensureLocation(ev).Address = addr
		case "virtualurl":
			href, err := linkField(ref, el)
			if err != nil {
				return err
			}
			ensureLocation(ev).VirtualURL = href
		case "organizer":
			ev.Organizer = strings.TrimSpace(el.Text())
			if href, ok := el.Attr("href"); ok {
				ev.OrganizerURL = href
			}
		case "performer":
			ev.Performer = strings.TrimSpace(el.Text())
		case "price":
			price, err := parseFloat(ref, dataField(el, "value"))
			if err != nil {
				return err
			}
			ensureEventOffer(ev).Price = price
		case "currency":
			ensureEventOffer(ev).Currency = strings.ToUpper(strings.TrimSpace(dataField(el, "value")))
		case "availability":
			v, err := enumField(ref, el, availabilityValues)
			if err != nil {
				return err
			}
			ensureEventOffer(ev).Availability = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if acc.empty() {
		return nil, nil
	}

	events := acc.records()
	for _, ev := range events {
		if ev.Name == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: name is required", e.cfg.BaseID(kind), ev.ID)
		}
		if ev.StartDate == "" {
			return nil, richmark.Errorf(richmark.EINVALID, "%s-%s: start date is required", e.cfg.BaseID(kind), ev.ID)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		from, until, err := e.validityWindow(gctx, inv)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if ev.Offer != nil {
				ev.Offer.ValidFrom = from
				ev.Offer.ValidUntil = until
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return jsonld.Marshal(jsonld.Events(events, e.cfg.Carousel(kind)))
}

func ensureLocation(ev *richmark.Event) *richmark.EventLocation {
	if ev.Location == nil {
		ev.Location = &richmark.EventLocation{}
	}
	return ev.Location
}

func ensureEventOffer(ev *richmark.Event) *richmark.Offer {
	if ev.Offer == nil {
		ev.Offer = &richmark.Offer{}
	}
	return ev.Offer
}
