package jsonld

import "github.com/pwalkowski/richmark"

// Shared sub-object nodes. Every optional property is omitempty so absent
// record fields never leak null keys into the output.

// PersonNode is a Person or Organization reference.
type PersonNode struct {
	AtType string `json:"@type"`
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
}

func person(name, typ, url string) *PersonNode {
	if name == "" {
		return nil
	}
	if typ == "" {
		typ = "Person"
	}
	return &PersonNode{AtType: typ, Name: name, URL: url}
}

// ImageNode is an ImageObject.
type ImageNode struct {
	AtType string `json:"@type"`
	URL    string `json:"url"`
}

func image(url string) *ImageNode {
	if url == "" {
		return nil
	}
	return &ImageNode{AtType: "ImageObject", URL: url}
}

// BrandNode is a Brand.
type BrandNode struct {
	AtType string `json:"@type"`
	Name   string `json:"name"`
}

func brand(name string) *BrandNode {
	if name == "" {
		return nil
	}
	return &BrandNode{AtType: "Brand", Name: name}
}

// RatingNode serves both AggregateRating and per-review Rating.
type RatingNode struct {
	AtType      string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	BestRating  float64 `json:"bestRating,omitempty"`
	RatingCount int     `json:"ratingCount,omitempty"`
}

func aggregateRating(r *richmark.AggregateRating) *RatingNode {
	if r == nil {
		return nil
	}
	return &RatingNode{
		AtType:      "AggregateRating",
		RatingValue: r.Value,
		BestRating:  r.Best,
		RatingCount: r.Count,
	}
}

// ReviewNode is a Review.
type ReviewNode struct {
	AtType       string      `json:"@type"`
	Author       *PersonNode `json:"author,omitempty"`
	Publisher    *PersonNode `json:"publisher,omitempty"`
	ReviewRating *RatingNode `json:"reviewRating"`
	ReviewBody   string      `json:"reviewBody,omitempty"`
}

func reviews(rs []richmark.Review) []ReviewNode {
	if len(rs) == 0 {
		return nil
	}
	nodes := make([]ReviewNode, 0, len(rs))
	for _, r := range rs {
		nodes = append(nodes, ReviewNode{
			AtType:    "Review",
			Author:    person(r.Author, r.AuthorType, ""),
			Publisher: person(r.Publisher, "Organization", ""),
			ReviewRating: &RatingNode{
				AtType:      "Rating",
				RatingValue: r.Rating,
				BestRating:  r.Best,
			},
			ReviewBody: r.Body,
		})
	}
	return nodes
}

// AddressNode is a PostalAddress.
type AddressNode struct {
	AtType          string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

func address(a *richmark.PostalAddress) *AddressNode {
	if a == nil {
		return nil
	}
	return &AddressNode{
		AtType:          "PostalAddress",
		StreetAddress:   a.Street,
		AddressLocality: a.Locality,
		AddressRegion:   a.Region,
		PostalCode:      a.PostalCode,
		AddressCountry:  a.Country,
	}
}

// GeoNode is a GeoCoordinates.
type GeoNode struct {
	AtType    string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func geo(g *richmark.GeoCoordinates) *GeoNode {
	if g == nil {
		return nil
	}
	return &GeoNode{AtType: "GeoCoordinates", Latitude: g.Latitude, Longitude: g.Longitude}
}

// OpeningHoursNode is an OpeningHoursSpecification.
type OpeningHoursNode struct {
	AtType    string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

func openingHours(specs []richmark.OpeningHours) []OpeningHoursNode {
	if len(specs) == 0 {
		return nil
	}
	nodes := make([]OpeningHoursNode, 0, len(specs))
	for _, s := range specs {
		days := make([]string, 0, len(s.Days))
		for _, d := range s.Days {
			days = append(days, string(d))
		}
		nodes = append(nodes, OpeningHoursNode{
			AtType:    "OpeningHoursSpecification",
			DayOfWeek: days,
			Opens:     s.Opens,
			Closes:    s.Closes,
		})
	}
	return nodes
}

// ContactNode is a ContactPoint.
type ContactNode struct {
	AtType      string `json:"@type"`
	Telephone   string `json:"telephone,omitempty"`
	Email       string `json:"email,omitempty"`
	ContactType string `json:"contactType,omitempty"`
}

func contact(c *richmark.ContactPoint) *ContactNode {
	if c == nil {
		return nil
	}
	return &ContactNode{
		AtType:      "ContactPoint",
		Telephone:   c.Telephone,
		Email:       c.Email,
		ContactType: c.ContactType,
	}
}

// MonetaryAmountNode is a MonetaryAmount.
type MonetaryAmountNode struct {
	AtType   string  `json:"@type"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// QuantNode is a QuantitativeValue expressed in days.
type QuantNode struct {
	AtType   string `json:"@type"`
	MinValue int    `json:"minValue"`
	MaxValue int    `json:"maxValue"`
	UnitCode string `json:"unitCode"`
}

func days(n int) *QuantNode {
	if n == 0 {
		return nil
	}
	return &QuantNode{AtType: "QuantitativeValue", MinValue: 0, MaxValue: n, UnitCode: "DAY"}
}

// DeliveryTimeNode is a ShippingDeliveryTime.
type DeliveryTimeNode struct {
	AtType       string     `json:"@type"`
	HandlingTime *QuantNode `json:"handlingTime,omitempty"`
	TransitTime  *QuantNode `json:"transitTime,omitempty"`
}

// RegionNode is a DefinedRegion.
type RegionNode struct {
	AtType         string `json:"@type"`
	AddressCountry string `json:"addressCountry"`
}

// ShippingNode is an OfferShippingDetails object, optionally carrying an
// @id so variant offers can reference it.
type ShippingNode struct {
	AtID                string              `json:"@id,omitempty"`
	AtType              string              `json:"@type"`
	ShippingRate        *MonetaryAmountNode `json:"shippingRate,omitempty"`
	ShippingDestination *RegionNode         `json:"shippingDestination,omitempty"`
	DeliveryTime        *DeliveryTimeNode   `json:"deliveryTime,omitempty"`
}

func shipping(s *richmark.ShippingDetails) *ShippingNode {
	if s == nil {
		return nil
	}
	node := &ShippingNode{AtType: "OfferShippingDetails"}
	if s.Rate != nil {
		node.ShippingRate = &MonetaryAmountNode{AtType: "MonetaryAmount", Value: s.Rate.Value, Currency: s.Rate.Currency}
	}
	if s.Country != "" {
		node.ShippingDestination = &RegionNode{AtType: "DefinedRegion", AddressCountry: s.Country}
	}
	if s.HandlingDays > 0 || s.TransitDays > 0 {
		node.DeliveryTime = &DeliveryTimeNode{
			AtType:       "ShippingDeliveryTime",
			HandlingTime: days(s.HandlingDays),
			TransitTime:  days(s.TransitDays),
		}
	}
	return node
}

// ReturnPolicyNode is a MerchantReturnPolicy, optionally carrying an @id.
type ReturnPolicyNode struct {
	AtID               string `json:"@id,omitempty"`
	AtType             string `json:"@type"`
	ApplicableCountry  string `json:"applicableCountry,omitempty"`
	MerchantReturnDays int    `json:"merchantReturnDays,omitempty"`
	ReturnFees         string `json:"returnFees,omitempty"`
}

func returnPolicy(p *richmark.ReturnPolicy) *ReturnPolicyNode {
	if p == nil {
		return nil
	}
	return &ReturnPolicyNode{
		AtType:             "MerchantReturnPolicy",
		ApplicableCountry:  p.Country,
		MerchantReturnDays: p.Days,
		ReturnFees:         p.Fees,
	}
}

// OfferNode is an Offer. ShippingDetails and ReturnPolicy are `any` so an
// offer can carry either an inline object or an @id reference into the
// enclosing graph.
type OfferNode struct {
	AtType          string  `json:"@type"`
	Price           float64 `json:"price"`
	PriceCurrency   string  `json:"priceCurrency,omitempty"`
	Availability    string  `json:"availability,omitempty"`
	ItemCondition   string  `json:"itemCondition,omitempty"`
	ValidFrom       string  `json:"validFrom,omitempty"`
	PriceValidUntil string  `json:"priceValidUntil,omitempty"`
	URL             string  `json:"url,omitempty"`
	ShippingDetails any     `json:"shippingDetails,omitempty"`
	ReturnPolicy    any     `json:"hasMerchantReturnPolicy,omitempty"`
}

func offer(o *richmark.Offer) *OfferNode {
	if o == nil {
		return nil
	}
	node := &OfferNode{
		AtType:          "Offer",
		Price:           o.Price,
		PriceCurrency:   o.Currency,
		Availability:    o.Availability,
		ItemCondition:   o.Condition,
		ValidFrom:       o.ValidFrom,
		PriceValidUntil: o.ValidUntil,
	}
	if s := shipping(o.Shipping); s != nil {
		node.ShippingDetails = s
	}
	if p := returnPolicy(o.Returns); p != nil {
		node.ReturnPolicy = p
	}
	return node
}
