package richmark

// BusinessMeta holds the metadata fields shared by place-like kinds
// (restaurant, local business): contact, location, hours and price band.
type BusinessMeta struct {
	Telephone    string          `json:"telephone,omitempty"`
	PriceRange   string          `json:"priceRange,omitempty"`
	Address      *PostalAddress  `json:"address,omitempty"`
	Geo          *GeoCoordinates `json:"geo,omitempty"`
	OpeningHours []OpeningHours  `json:"openingHours,omitempty"`
}

// Restaurant represents one restaurant occurrence on a page.
type Restaurant struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Images      []string         `json:"images"`
	Description string           `json:"description,omitempty"`
	Cuisines    []string         `json:"cuisines,omitempty"`
	MenuURL     string           `json:"menuUrl,omitempty"`
	Business    BusinessMeta     `json:"business"`
	Rating      *AggregateRating `json:"rating,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"`
	URL         string           `json:"url"`
}

// LocalBusiness represents one local-business occurrence on a page.
type LocalBusiness struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Images      []string         `json:"images"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Business    BusinessMeta     `json:"business"`
	Rating      *AggregateRating `json:"rating,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"`
	URL         string           `json:"url"`
}

// Organization represents one organization occurrence on a page.
type Organization struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Logo        string         `json:"logo,omitempty"`
	Description string         `json:"description,omitempty"`
	Address     *PostalAddress `json:"address,omitempty"`
	Contact     *ContactPoint  `json:"contact,omitempty"`
	SameAs      []string       `json:"sameAs,omitempty"`
	URL         string         `json:"url"`
}
