package richmark

// AggregateRating is the shared rating sub-record used by six entity kinds.
type AggregateRating struct {
	// Value is the mean rating, rounded to 2 decimals when combined.
	Value float64 `json:"value"`

	// Best is the maximum of the rating range.
	Best float64 `json:"best"`

	// Count is the number of ratings contributing to Value.
	Count int `json:"count"`
}

// Review is a single review attached to an entity.
type Review struct {
	Author     string  `json:"author"`
	AuthorType string  `json:"authorType"` // "Person" or "Organization"
	Publisher  string  `json:"publisher,omitempty"`
	Rating     float64 `json:"rating"`
	Best       float64 `json:"best"`
	Body       string  `json:"body,omitempty"`
}

// PostalAddress is the shared address sub-record.
type PostalAddress struct {
	Street     string `json:"street,omitempty"`
	Locality   string `json:"locality,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// GeoCoordinates holds a latitude/longitude pair extracted from a map
// embed URL.
type GeoCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Weekday is a schema.org day-of-week name.
type Weekday string

// Days of the week in chronological order starting Monday.
const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Week returns the seven weekdays in chronological order starting Monday.
func Week() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// OpeningHours is one (day-set, opens, closes) opening-hours specification.
// Opens and Closes are 24-hour "HH:MM" strings.
type OpeningHours struct {
	Days   []Weekday `json:"days"`
	Opens  string    `json:"opens"`
	Closes string    `json:"closes"`
}

// ContactPoint is an organization contact.
type ContactPoint struct {
	Telephone   string `json:"telephone,omitempty"`
	Email       string `json:"email,omitempty"`
	ContactType string `json:"contactType,omitempty"`
}
