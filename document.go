package richmark

// Element is one queryable node of a parsed HTML document.
type Element interface {
	// Class returns the element's class attribute value (may contain
	// multiple space-separated classes).
	Class() string

	// Attr returns the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Data returns the data-* attribute with the given suffix, e.g.
	// Data("currency") reads data-currency.
	Data(name string) (string, bool)

	// Text returns the element's combined text content, whitespace
	// collapsed.
	Text() string

	// HTML returns the element's inner HTML.
	HTML() (string, error)

	// Children returns the element's first-level child elements.
	Children() []Element
}

// Document is the injected HTML query capability. All aggregators depend
// only on this interface, never on a concrete parser.
type Document interface {
	// Title returns the content of the document's title element.
	// Returns ENOTFOUND if the document has no title.
	Title() (string, error)

	// SelectClassPrefix returns all elements carrying a class that starts
	// with the given prefix, in document order.
	SelectClassPrefix(prefix string) []Element

	// Find returns all elements matching a CSS selector, in document
	// order.
	Find(selector string) []Element
}

// DocumentParser turns document source text into a queryable Document.
type DocumentParser interface {
	Parse(source string) (Document, error)
}
