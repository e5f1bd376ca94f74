package richmark

// Question is one FAQ question/answer pair.
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQ represents a page's frequently-asked-questions block. One FAQPage is
// emitted per document regardless of how many questions it carries.
type FAQ struct {
	Questions []Question `json:"questions"`
	URL       string     `json:"url"`
}

// ProfilePage represents a person or organization profile page.
type ProfilePage struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	AlternateName string   `json:"alternateName,omitempty"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description,omitempty"`
	SameAs        []string `json:"sameAs,omitempty"`
	Followers     int      `json:"followers,omitempty"`
	Posts         int      `json:"posts,omitempty"`
	URL           string   `json:"url"`
}

// BreadcrumbItem is one level of a breadcrumb trail. Positions renumber
// contiguously from 1 at the site root; levels whose directory carries no
// index document are skipped.
type BreadcrumbItem struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Breadcrumb represents a document's path-derived breadcrumb trail.
type Breadcrumb struct {
	Items []BreadcrumbItem `json:"items"`
}

// SiteSearch represents the WebSite record carrying a SearchAction.
type SiteSearch struct {
	URL         string `json:"url"`
	Target      string `json:"target"`
	QueryInput  string `json:"queryInput"`
}
