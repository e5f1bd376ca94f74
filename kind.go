package richmark

// Kind identifies one supported schema.org structured-data type.
type Kind string

// Supported entity kinds.
const (
	KindArticle       Kind = "article"
	KindMovie         Kind = "movie"
	KindRecipe        Kind = "recipe"
	KindCourse        Kind = "course"
	KindRestaurant    Kind = "restaurant"
	KindLocalBusiness Kind = "local-business"
	KindOrganization  Kind = "organization"
	KindProduct       Kind = "product"
	KindProductGroup  Kind = "product-group"
	KindEvent         Kind = "event"
	KindFAQ           Kind = "faq"
	KindVideo         Kind = "video"
	KindProfilePage   Kind = "profile-page"
	KindSoftwareApp   Kind = "software-application"
	KindBreadcrumb    Kind = "breadcrumb"
	KindSiteSearch    Kind = "site-search"
)

// Kinds returns all supported entity kinds in stable order.
func Kinds() []Kind {
	return []Kind{
		KindArticle,
		KindMovie,
		KindRecipe,
		KindCourse,
		KindRestaurant,
		KindLocalBusiness,
		KindOrganization,
		KindProduct,
		KindProductGroup,
		KindEvent,
		KindFAQ,
		KindVideo,
		KindProfilePage,
		KindSoftwareApp,
		KindBreadcrumb,
		KindSiteSearch,
	}
}

// Valid reports whether k is a supported entity kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// ArgSpec declares which invocation arguments an aggregator requires.
type ArgSpec int

// Argument specifications for the dispatch table.
const (
	// ArgsSource requires the document source text only.
	ArgsSource ArgSpec = iota
	// ArgsSourceAndPath requires the source text and the document path.
	ArgsSourceAndPath
	// ArgsPath requires the document path only.
	ArgsPath
)

// Args returns the invocation arguments the kind's aggregator requires.
// Breadcrumb and site-search derive their records from the document path
// and configuration rather than from marked-up elements.
func (k Kind) Args() ArgSpec {
	switch k {
	case KindArticle, KindFAQ, KindVideo, KindProfilePage:
		return ArgsSource
	case KindBreadcrumb, KindSiteSearch:
		return ArgsPath
	default:
		return ArgsSourceAndPath
	}
}

// Instanced reports whether the kind's class grammar carries an instance ID
// segment. Singleton-per-page kinds (article) use {baseID}-{fieldType}.
func (k Kind) Instanced() bool {
	return k != KindArticle
}
