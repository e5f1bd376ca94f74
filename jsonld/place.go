package jsonld

import "github.com/pwalkowski/richmark"

// RestaurantNode is a Restaurant.
type RestaurantNode struct {
	AtContext                 string             `json:"@context,omitempty"`
	AtType                    string             `json:"@type"`
	Name                      string             `json:"name"`
	Image                     []string           `json:"image"`
	Description               string             `json:"description,omitempty"`
	ServesCuisine             []string           `json:"servesCuisine,omitempty"`
	HasMenu                   string             `json:"hasMenu,omitempty"`
	Telephone                 string             `json:"telephone,omitempty"`
	PriceRange                string             `json:"priceRange,omitempty"`
	Address                   *AddressNode       `json:"address,omitempty"`
	Geo                       *GeoNode           `json:"geo,omitempty"`
	OpeningHoursSpecification []OpeningHoursNode `json:"openingHoursSpecification,omitempty"`
	AggregateRating           *RatingNode        `json:"aggregateRating,omitempty"`
	Review                    []ReviewNode       `json:"review,omitempty"`
	URL                       string             `json:"url"`
}

// Restaurants serializes restaurant records, optionally as a carousel.
func Restaurants(rs []*richmark.Restaurant, carousel bool) any {
	nodes := make([]*RestaurantNode, 0, len(rs))
	for _, r := range rs {
		nodes = append(nodes, &RestaurantNode{
			AtType:                    "Restaurant",
			Name:                      r.Name,
			Image:                     r.Images,
			Description:               r.Description,
			ServesCuisine:             r.Cuisines,
			HasMenu:                   r.MenuURL,
			Telephone:                 r.Business.Telephone,
			PriceRange:                r.Business.PriceRange,
			Address:                   address(r.Business.Address),
			Geo:                       geo(r.Business.Geo),
			OpeningHoursSpecification: openingHours(r.Business.OpeningHours),
			AggregateRating:           aggregateRating(r.Rating),
			Review:                    reviews(r.Reviews),
			URL:                       r.URL,
		})
	}
	return finish(nodes, carousel, func(n *RestaurantNode) { n.AtContext = Context })
}

// LocalBusinessNode is a LocalBusiness.
type LocalBusinessNode struct {
	AtContext                 string             `json:"@context,omitempty"`
	AtType                    string             `json:"@type"`
	Name                      string             `json:"name"`
	Image                     []string           `json:"image"`
	Description               string             `json:"description,omitempty"`
	Category                  string             `json:"category,omitempty"`
	Telephone                 string             `json:"telephone,omitempty"`
	PriceRange                string             `json:"priceRange,omitempty"`
	Address                   *AddressNode       `json:"address,omitempty"`
	Geo                       *GeoNode           `json:"geo,omitempty"`
	OpeningHoursSpecification []OpeningHoursNode `json:"openingHoursSpecification,omitempty"`
	AggregateRating           *RatingNode        `json:"aggregateRating,omitempty"`
	Review                    []ReviewNode       `json:"review,omitempty"`
	URL                       string             `json:"url"`
}

// LocalBusinesses serializes local-business records, optionally as a
// carousel.
func LocalBusinesses(bs []*richmark.LocalBusiness, carousel bool) any {
	nodes := make([]*LocalBusinessNode, 0, len(bs))
	for _, b := range bs {
		nodes = append(nodes, &LocalBusinessNode{
			AtType:                    "LocalBusiness",
			Name:                      b.Name,
			Image:                     b.Images,
			Description:               b.Description,
			Category:                  b.Category,
			Telephone:                 b.Business.Telephone,
			PriceRange:                b.Business.PriceRange,
			Address:                   address(b.Business.Address),
			Geo:                       geo(b.Business.Geo),
			OpeningHoursSpecification: openingHours(b.Business.OpeningHours),
			AggregateRating:           aggregateRating(b.Rating),
			Review:                    reviews(b.Reviews),
			URL:                       b.URL,
		})
	}
	return finish(nodes, carousel, func(n *LocalBusinessNode) { n.AtContext = Context })
}

// OrganizationNode is an Organization.
type OrganizationNode struct {
	AtContext    string       `json:"@context,omitempty"`
	AtType       string       `json:"@type"`
	Name         string       `json:"name"`
	Logo         *ImageNode   `json:"logo,omitempty"`
	Description  string       `json:"description,omitempty"`
	Address      *AddressNode `json:"address,omitempty"`
	ContactPoint *ContactNode `json:"contactPoint,omitempty"`
	SameAs       []string     `json:"sameAs,omitempty"`
	URL          string       `json:"url"`
}

// Organizations serializes organization records, optionally as a carousel.
func Organizations(os []*richmark.Organization, carousel bool) any {
	nodes := make([]*OrganizationNode, 0, len(os))
	for _, o := range os {
		nodes = append(nodes, &OrganizationNode{
			AtType:       "Organization",
			Name:         o.Name,
			Logo:         image(o.Logo),
			Description:  o.Description,
			Address:      address(o.Address),
			ContactPoint: contact(o.Contact),
			SameAs:       o.SameAs,
			URL:          o.URL,
		})
	}
	return finish(nodes, carousel, func(n *OrganizationNode) { n.AtContext = Context })
}

// PlaceNode is a physical event venue.
type PlaceNode struct {
	AtType  string       `json:"@type"`
	Name    string       `json:"name,omitempty"`
	Address *AddressNode `json:"address,omitempty"`
}

// VirtualLocationNode is a virtual event venue.
type VirtualLocationNode struct {
	AtType string `json:"@type"`
	URL    string `json:"url"`
}

// EventNode is an Event.
type EventNode struct {
	AtContext           string      `json:"@context,omitempty"`
	AtType              string      `json:"@type"`
	Name                string      `json:"name"`
	Image               []string    `json:"image,omitempty"`
	Description         string      `json:"description,omitempty"`
	StartDate           string      `json:"startDate"`
	EndDate             string      `json:"endDate,omitempty"`
	EventAttendanceMode string      `json:"eventAttendanceMode,omitempty"`
	EventStatus         string      `json:"eventStatus,omitempty"`
	Location            any         `json:"location,omitempty"`
	Organizer           *PersonNode `json:"organizer,omitempty"`
	Performer           *PersonNode `json:"performer,omitempty"`
	Offers              *OfferNode  `json:"offers,omitempty"`
	URL                 string      `json:"url"`
}

// Events serializes event records, optionally as a carousel.
func Events(es []*richmark.Event, carousel bool) any {
	nodes := make([]*EventNode, 0, len(es))
	for _, e := range es {
		node := &EventNode{
			AtType:              "Event",
			Name:                e.Name,
			Image:               e.Images,
			Description:         e.Description,
			StartDate:           e.StartDate,
			EndDate:             e.EndDate,
			EventAttendanceMode: e.AttendanceMode,
			EventStatus:         e.Status,
			Organizer:           person(e.Organizer, "Organization", e.OrganizerURL),
			Performer:           person(e.Performer, "Person", ""),
			Offers:              offer(e.Offer),
			URL:                 e.URL,
		}
		if node.Offers != nil {
			node.Offers.URL = e.URL
		}
		if loc := e.Location; loc != nil {
			if loc.VirtualURL != "" {
				node.Location = &VirtualLocationNode{AtType: "VirtualLocation", URL: loc.VirtualURL}
			} else {
				node.Location = &PlaceNode{AtType: "Place", Name: loc.Name, Address: address(loc.Address)}
			}
		}
		nodes = append(nodes, node)
	}
	return finish(nodes, carousel, func(n *EventNode) { n.AtContext = Context })
}
