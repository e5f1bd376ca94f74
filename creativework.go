package richmark

// Article represents a news/blog article. Articles are singleton-per-page:
// their class grammar carries no instance ID.
type Article struct {
	Headline      string   `json:"headline"`
	Images        []string `json:"images"`
	Description   string   `json:"description,omitempty"`
	Author        string   `json:"author,omitempty"`
	AuthorType    string   `json:"authorType,omitempty"`
	AuthorURL     string   `json:"authorUrl,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublisherLogo string   `json:"publisherLogo,omitempty"`
	DatePublished string   `json:"datePublished,omitempty"`
	DateModified  string   `json:"dateModified,omitempty"`
	URL           string   `json:"url"`
}

// Movie represents one movie occurrence on a page.
type Movie struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Images      []string         `json:"images"`
	Description string           `json:"description,omitempty"`
	Director    string           `json:"director,omitempty"`
	DateCreated string           `json:"dateCreated,omitempty"`
	Rating      *AggregateRating `json:"rating,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"`
	URL         string           `json:"url"`
}

// HowToStep is one recipe instruction step.
type HowToStep struct {
	Name  string `json:"name,omitempty"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Recipe represents one recipe occurrence on a page.
type Recipe struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Images        []string         `json:"images"`
	Description   string           `json:"description,omitempty"`
	Author        string           `json:"author,omitempty"`
	DatePublished string           `json:"datePublished,omitempty"`
	PrepTime      string           `json:"prepTime,omitempty"`  // ISO 8601 duration
	CookTime      string           `json:"cookTime,omitempty"`  // ISO 8601 duration
	TotalTime     string           `json:"totalTime,omitempty"` // derived: prep + cook
	Keywords      string           `json:"keywords,omitempty"`
	Yield         string           `json:"yield,omitempty"`
	Category      string           `json:"category,omitempty"`
	Cuisine       string           `json:"cuisine,omitempty"`
	Calories      string           `json:"calories,omitempty"`
	Ingredients   []string         `json:"ingredients,omitempty"`
	Instructions  []HowToStep      `json:"instructions,omitempty"`
	Rating        *AggregateRating `json:"rating,omitempty"`
	Reviews       []Review         `json:"reviews,omitempty"`
	URL           string           `json:"url"`
}

// Course represents one course occurrence on a page.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider,omitempty"`
	ProviderURL string `json:"providerUrl,omitempty"`
	URL         string `json:"url"`
}

// Video represents one embedded video occurrence. Fields absent from the
// markup may be filled in from remote embed metadata.
type Video struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Thumbnails   []string `json:"thumbnails,omitempty"`
	UploadDate   string   `json:"uploadDate,omitempty"`
	Duration     string   `json:"duration,omitempty"` // ISO 8601 duration
	ContentURL   string   `json:"contentUrl,omitempty"`
	EmbedURL     string   `json:"embedUrl,omitempty"`
	URL          string   `json:"url"`
}

// SoftwareApp represents one software-application occurrence.
type SoftwareApp struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Images          []string         `json:"images,omitempty"`
	OperatingSystem string           `json:"operatingSystem,omitempty"`
	Category        string           `json:"category,omitempty"`
	Offer           *Offer           `json:"offer,omitempty"`
	Rating          *AggregateRating `json:"rating,omitempty"`
	Reviews         []Review         `json:"reviews,omitempty"`
	URL             string           `json:"url"`
}
