package richmark

// MonetaryAmount is a currency-qualified value.
type MonetaryAmount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// ShippingDetails describes shipping cost and delivery time for an offer.
// Within a product group it is extracted once from the representative
// variant and referenced by identifier from every variant.
type ShippingDetails struct {
	Rate         *MonetaryAmount `json:"rate,omitempty"`
	Country      string          `json:"country,omitempty"`
	HandlingDays int             `json:"handlingDays,omitempty"`
	TransitDays  int             `json:"transitDays,omitempty"`
}

// ReturnPolicy describes the merchant return policy for an offer.
type ReturnPolicy struct {
	Days    int    `json:"days,omitempty"`
	Fees    string `json:"fees,omitempty"`
	Country string `json:"country,omitempty"`
}

// Offer is the price/availability sub-record of a product, software
// application or event.
type Offer struct {
	Price        float64          `json:"price"`
	Currency     string           `json:"currency,omitempty"`
	Availability string           `json:"availability,omitempty"`
	Condition    string           `json:"condition,omitempty"`
	// ValidFrom/ValidUntil derive from document modification time, not
	// from marked-up fields (default-provenance rule).
	ValidFrom  string           `json:"validFrom,omitempty"`
	ValidUntil string           `json:"validUntil,omitempty"`
	Shipping   *ShippingDetails `json:"shipping,omitempty"`
	Returns    *ReturnPolicy    `json:"returns,omitempty"`
}

// Product represents one product occurrence, or one variant within a
// product group.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Images      []string         `json:"images"`
	Description string           `json:"description,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Brand       string           `json:"brand,omitempty"`

	// Variation axes. A non-empty axis value becomes a deep-link query
	// parameter and, within a group, a variesBy dimension.
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Size     string `json:"size,omitempty"`

	Offer   *Offer           `json:"offer,omitempty"`
	Rating  *AggregateRating `json:"rating,omitempty"`
	Reviews []Review         `json:"reviews,omitempty"`
	URL     string           `json:"url"`
}

// ProductGroup aggregates product variants sharing one name and
// description. GroupID is an opaque grouping token, unique per emitted
// graph.
type ProductGroup struct {
	GroupID     string           `json:"groupId"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Brand       string           `json:"brand,omitempty"`
	VariesBy    []string         `json:"variesBy,omitempty"`
	Variants    []*Product       `json:"variants"`

	// Shipping and Returns are lifted from the representative variant;
	// variant offers reference them by identifier.
	Shipping *ShippingDetails `json:"shipping,omitempty"`
	Returns  *ReturnPolicy    `json:"returns,omitempty"`

	// Rating combines all variants' ratings (count-weighted mean).
	Rating  *AggregateRating `json:"rating,omitempty"`
	Reviews []Review         `json:"reviews,omitempty"`
	URL     string           `json:"url"`
}
