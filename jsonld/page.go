package jsonld

import "github.com/pwalkowski/richmark"

// AnswerNode is an Answer.
type AnswerNode struct {
	AtType string `json:"@type"`
	Text   string `json:"text"`
}

// QuestionNode is a Question.
type QuestionNode struct {
	AtType         string     `json:"@type"`
	Name           string     `json:"name"`
	AcceptedAnswer AnswerNode `json:"acceptedAnswer"`
}

// FAQPageNode is a FAQPage.
type FAQPageNode struct {
	AtContext  string         `json:"@context"`
	AtType     string         `json:"@type"`
	MainEntity []QuestionNode `json:"mainEntity"`
	URL        string         `json:"url,omitempty"`
}

// FAQ serializes a page's question/answer pairs. One FAQPage per
// document.
func FAQ(f *richmark.FAQ) *FAQPageNode {
	node := &FAQPageNode{AtContext: Context, AtType: "FAQPage", URL: f.URL}
	for _, q := range f.Questions {
		node.MainEntity = append(node.MainEntity, QuestionNode{
			AtType:         "Question",
			Name:           q.Question,
			AcceptedAnswer: AnswerNode{AtType: "Answer", Text: q.Answer},
		})
	}
	return node
}

// InteractionNode is an InteractionCounter.
type InteractionNode struct {
	AtType               string `json:"@type"`
	InteractionType      string `json:"interactionType"`
	UserInteractionCount int    `json:"userInteractionCount"`
}

// ProfileEntityNode is the Person at the center of a profile page.
type ProfileEntityNode struct {
	AtType               string            `json:"@type"`
	Name                 string            `json:"name"`
	AlternateName        string            `json:"alternateName,omitempty"`
	Image                []string          `json:"image,omitempty"`
	Description          string            `json:"description,omitempty"`
	SameAs               []string          `json:"sameAs,omitempty"`
	InteractionStatistic []InteractionNode `json:"interactionStatistic,omitempty"`
}

// ProfilePageNode is a ProfilePage.
type ProfilePageNode struct {
	AtContext  string             `json:"@context"`
	AtType     string             `json:"@type"`
	MainEntity *ProfileEntityNode `json:"mainEntity"`
	URL        string             `json:"url,omitempty"`
}

// Profile serializes a profile-page record.
func Profile(p *richmark.ProfilePage) *ProfilePageNode {
	entity := &ProfileEntityNode{
		AtType:        "Person",
		Name:          p.Name,
		AlternateName: p.AlternateName,
		Image:         p.Images,
		Description:   p.Description,
		SameAs:        p.SameAs,
	}
	if p.Followers > 0 {
		entity.InteractionStatistic = append(entity.InteractionStatistic, InteractionNode{
			AtType:               "InteractionCounter",
			InteractionType:      "https://schema.org/FollowAction",
			UserInteractionCount: p.Followers,
		})
	}
	if p.Posts > 0 {
		entity.InteractionStatistic = append(entity.InteractionStatistic, InteractionNode{
			AtType:               "InteractionCounter",
			InteractionType:      "https://schema.org/WriteAction",
			UserInteractionCount: p.Posts,
		})
	}
	return &ProfilePageNode{AtContext: Context, AtType: "ProfilePage", MainEntity: entity, URL: p.URL}
}

// BreadcrumbItemNode is one ListItem of a BreadcrumbList.
type BreadcrumbItemNode struct {
	AtType   string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbNode is a BreadcrumbList.
type BreadcrumbNode struct {
	AtContext       string               `json:"@context"`
	AtType          string               `json:"@type"`
	ItemListElement []BreadcrumbItemNode `json:"itemListElement"`
}

// Breadcrumb serializes a breadcrumb trail.
func Breadcrumb(b *richmark.Breadcrumb) *BreadcrumbNode {
	node := &BreadcrumbNode{AtContext: Context, AtType: "BreadcrumbList"}
	for _, item := range b.Items {
		node.ItemListElement = append(node.ItemListElement, BreadcrumbItemNode{
			AtType:   "ListItem",
			Position: item.Position,
			Name:     item.Name,
			Item:     item.URL,
		})
	}
	return node
}

// SearchActionNode is a SearchAction.
type SearchActionNode struct {
	AtType     string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// WebSiteNode is a WebSite carrying a SearchAction.
type WebSiteNode struct {
	AtContext       string            `json:"@context"`
	AtType          string            `json:"@type"`
	URL             string            `json:"url"`
	PotentialAction *SearchActionNode `json:"potentialAction"`
}

// SiteSearch serializes the site-search record.
func SiteSearch(s *richmark.SiteSearch) *WebSiteNode {
	return &WebSiteNode{
		AtContext: Context,
		AtType:    "WebSite",
		URL:       s.URL,
		PotentialAction: &SearchActionNode{
			AtType:     "SearchAction",
			Target:     s.Target,
			QueryInput: s.QueryInput,
		},
	}
}
