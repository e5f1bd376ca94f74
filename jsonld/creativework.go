package jsonld

import "github.com/pwalkowski/richmark"

// ArticleNode is an Article.
type ArticleNode struct {
	AtContext     string      `json:"@context,omitempty"`
	AtType        string      `json:"@type"`
	Headline      string      `json:"headline"`
	Image         []string    `json:"image"`
	Description   string      `json:"description,omitempty"`
	Author        *PersonNode `json:"author,omitempty"`
	Publisher     *pubNode    `json:"publisher,omitempty"`
	DatePublished string      `json:"datePublished,omitempty"`
	DateModified  string      `json:"dateModified,omitempty"`
	URL           string      `json:"url"`
}

type pubNode struct {
	AtType string     `json:"@type"`
	Name   string     `json:"name"`
	Logo   *ImageNode `json:"logo,omitempty"`
}

// Article serializes an article record. Articles are singleton-per-page.
func Article(a *richmark.Article) *ArticleNode {
	node := &ArticleNode{
		AtContext:     Context,
		AtType:        "Article",
		Headline:      a.Headline,
		Image:         a.Images,
		Description:   a.Description,
		Author:        person(a.Author, a.AuthorType, a.AuthorURL),
		DatePublished: a.DatePublished,
		DateModified:  a.DateModified,
		URL:           a.URL,
	}
	if a.Publisher != "" {
		node.Publisher = &pubNode{AtType: "Organization", Name: a.Publisher, Logo: image(a.PublisherLogo)}
	}
	return node
}

// MovieNode is a Movie.
type MovieNode struct {
	AtContext       string       `json:"@context,omitempty"`
	AtType          string       `json:"@type"`
	Name            string       `json:"name"`
	Image           []string     `json:"image"`
	Description     string       `json:"description,omitempty"`
	Director        *PersonNode  `json:"director,omitempty"`
	DateCreated     string       `json:"dateCreated,omitempty"`
	AggregateRating *RatingNode  `json:"aggregateRating,omitempty"`
	Review          []ReviewNode `json:"review,omitempty"`
	URL             string       `json:"url"`
}

// Movies serializes movie records, optionally as a carousel.
func Movies(ms []*richmark.Movie, carousel bool) any {
	nodes := make([]*MovieNode, 0, len(ms))
	for _, m := range ms {
		nodes = append(nodes, &MovieNode{
			AtType:          "Movie",
			Name:            m.Name,
			Image:           m.Images,
			Description:     m.Description,
			Director:        person(m.Director, "Person", ""),
			DateCreated:     m.DateCreated,
			AggregateRating: aggregateRating(m.Rating),
			Review:          reviews(m.Reviews),
			URL:             m.URL,
		})
	}
	return finish(nodes, carousel, func(n *MovieNode) { n.AtContext = Context })
}

// NutritionNode is a NutritionInformation.
type NutritionNode struct {
	AtType   string `json:"@type"`
	Calories string `json:"calories"`
}

// HowToStepNode is a HowToStep.
type HowToStepNode struct {
	AtType string `json:"@type"`
	Name   string `json:"name,omitempty"`
	Text   string `json:"text"`
	Image  string `json:"image,omitempty"`
	URL    string `json:"url,omitempty"`
}

// RecipeNode is a Recipe.
type RecipeNode struct {
	AtContext          string          `json:"@context,omitempty"`
	AtType             string          `json:"@type"`
	Name               string          `json:"name"`
	Image              []string        `json:"image"`
	Description        string          `json:"description,omitempty"`
	Author             *PersonNode     `json:"author,omitempty"`
	DatePublished      string          `json:"datePublished,omitempty"`
	PrepTime           string          `json:"prepTime,omitempty"`
	CookTime           string          `json:"cookTime,omitempty"`
	TotalTime          string          `json:"totalTime,omitempty"`
	Keywords           string          `json:"keywords,omitempty"`
	RecipeYield        string          `json:"recipeYield,omitempty"`
	RecipeCategory     string          `json:"recipeCategory,omitempty"`
	RecipeCuisine      string          `json:"recipeCuisine,omitempty"`
	Nutrition          *NutritionNode  `json:"nutrition,omitempty"`
	RecipeIngredient   []string        `json:"recipeIngredient,omitempty"`
	RecipeInstructions []HowToStepNode `json:"recipeInstructions,omitempty"`
	AggregateRating    *RatingNode     `json:"aggregateRating,omitempty"`
	Review             []ReviewNode    `json:"review,omitempty"`
	URL                string          `json:"url"`
}

// Recipes serializes recipe records, optionally as a carousel.
func Recipes(rs []*richmark.Recipe, carousel bool) any {
	nodes := make([]*RecipeNode, 0, len(rs))
	for _, r := range rs {
		node := &RecipeNode{
			AtType:           "Recipe",
			Name:             r.Name,
			Image:            r.Images,
			Description:      r.Description,
			Author:           person(r.Author, "Person", ""),
			DatePublished:    r.DatePublished,
			PrepTime:         r.PrepTime,
			CookTime:         r.CookTime,
			TotalTime:        r.TotalTime,
			Keywords:         r.Keywords,
			RecipeYield:      r.Yield,
			RecipeCategory:   r.Category,
			RecipeCuisine:    r.Cuisine,
			RecipeIngredient: r.Ingredients,
			AggregateRating:  aggregateRating(r.Rating),
			Review:           reviews(r.Reviews),
			URL:              r.URL,
		}
		if r.Calories != "" {
			node.Nutrition = &NutritionNode{AtType: "NutritionInformation", Calories: r.Calories}
		}
		for _, step := range r.Instructions {
			node.RecipeInstructions = append(node.RecipeInstructions, HowToStepNode{
				AtType: "HowToStep",
				Name:   step.Name,
				Text:   step.Text,
				Image:  step.Image,
				URL:    step.URL,
			})
		}
		nodes = append(nodes, node)
	}
	return finish(nodes, carousel, func(n *RecipeNode) { n.AtContext = Context })
}

// CourseNode is a Course.
type CourseNode struct {
	AtContext   string      `json:"@context,omitempty"`
	AtType      string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Provider    *PersonNode `json:"provider,omitempty"`
	URL         string      `json:"url"`
}

// Courses serializes course records, optionally as a carousel.
func Courses(cs []*richmark.Course, carousel bool) any {
	nodes := make([]*CourseNode, 0, len(cs))
	for _, c := range cs {
		nodes = append(nodes, &CourseNode{
			AtType:      "Course",
			Name:        c.Name,
			Description: c.Description,
			Provider:    person(c.Provider, "Organization", c.ProviderURL),
			URL:         c.URL,
		})
	}
	return finish(nodes, carousel, func(n *CourseNode) { n.AtContext = Context })
}

// VideoNode is a VideoObject.
type VideoNode struct {
	AtContext    string   `json:"@context,omitempty"`
	AtType       string   `json:"@type"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	ThumbnailURL []string `json:"thumbnailUrl,omitempty"`
	UploadDate   string   `json:"uploadDate,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	ContentURL   string   `json:"contentUrl,omitempty"`
	EmbedURL     string   `json:"embedUrl,omitempty"`
	URL          string   `json:"url"`
}

// Videos serializes video records, optionally as a carousel.
func Videos(vs []*richmark.Video, carousel bool) any {
	nodes := make([]*VideoNode, 0, len(vs))
	for _, v := range vs {
		nodes = append(nodes, &VideoNode{
			AtType:       "VideoObject",
			Name:         v.Name,
			Description:  v.Description,
			ThumbnailURL: v.Thumbnails,
			UploadDate:   v.UploadDate,
			Duration:     v.Duration,
			ContentURL:   v.ContentURL,
			EmbedURL:     v.EmbedURL,
			URL:          v.URL,
		})
	}
	return finish(nodes, carousel, func(n *VideoNode) { n.AtContext = Context })
}

// SoftwareAppNode is a SoftwareApplication.
type SoftwareAppNode struct {
	AtContext           string       `json:"@context,omitempty"`
	AtType              string       `json:"@type"`
	Name                string       `json:"name"`
	Image               []string     `json:"image,omitempty"`
	OperatingSystem     string       `json:"operatingSystem,omitempty"`
	ApplicationCategory string       `json:"applicationCategory,omitempty"`
	Offers              *OfferNode   `json:"offers,omitempty"`
	AggregateRating     *RatingNode  `json:"aggregateRating,omitempty"`
	Review              []ReviewNode `json:"review,omitempty"`
	URL                 string       `json:"url"`
}

// SoftwareApps serializes software-application records, optionally as a
// carousel.
func SoftwareApps(apps []*richmark.SoftwareApp, carousel bool) any {
	nodes := make([]*SoftwareAppNode, 0, len(apps))
	for _, app := range apps {
		node := &SoftwareAppNode{
			AtType:              "SoftwareApplication",
			Name:                app.Name,
			Image:               app.Images,
			OperatingSystem:     app.OperatingSystem,
			ApplicationCategory: app.Category,
			AggregateRating:     aggregateRating(app.Rating),
			Review:              reviews(app.Reviews),
			URL:                 app.URL,
		}
		node.Offers = offer(app.Offer)
		nodes = append(nodes, node)
	}
	return finish(nodes, carousel, func(n *SoftwareAppNode) { n.AtContext = Context })
}

// finish wraps serialized nodes for output: an ItemList when the kind is
// carousel-configured, a bare node for a single instance, an array (each
// node carrying @context) otherwise.
func finish[T any](nodes []*T, carousel bool, setContext func(*T)) any {
	if carousel {
		items := make([]any, 0, len(nodes))
		for _, n := range nodes {
			items = append(items, n)
		}
		return itemList(items)
	}
	for _, n := range nodes {
		setContext(n)
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	return nodes
}
