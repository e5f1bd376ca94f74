// Package goquery implements the HTML query capability on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pwalkowski/richmark"
)

// Parser parses HTML source into a queryable document.
type Parser struct{}

var _ richmark.DocumentParser = (*Parser)(nil)

// NewParser returns a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses HTML source text into a Document.
func (p *Parser) Parse(source string) (richmark.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, richmark.Errorf(richmark.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

var _ richmark.Document = (*Document)(nil)

// Title returns the content of the document's title element.
func (d *Document) Title() (string, error) {
	sel := d.doc.Find("title").First()
	if sel.Length() == 0 {
		return "", richmark.Errorf(richmark.ENOTFOUND, "document has no title")
	}
	title := strings.Join(strings.Fields(sel.Text()), " ")
	if title == "" {
		return "", richmark.Errorf(richmark.ENOTFOUND, "document has no title")
	}
	return title, nil
}

// SelectClassPrefix returns all elements carrying a class that starts with
// the given prefix, in document order. Matching is case-insensitive, in line
// with how class tokens are compared elsewhere.
func (d *Document) SelectClassPrefix(prefix string) []richmark.Element {
	lower := strings.ToLower(prefix)
	var elements []richmark.Element
	d.doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		for _, token := range strings.Fields(class) {
			if strings.HasPrefix(strings.ToLower(token), lower) {
				elements = append(elements, &Element{sel: sel})
				return
			}
		}
	})
	return elements
}

// Find returns all elements matching a CSS selector, in document order.
func (d *Document) Find(selector string) []richmark.Element {
	var elements []richmark.Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, &Element{sel: sel})
	})
	return elements
}

// Element wraps a single selected node.
type Element struct {
	sel *goquery.Selection
}

var _ richmark.Element = (*Element)(nil)

// Class returns the element's class attribute value.
func (e *Element) Class() string {
	class, _ := e.sel.Attr("class")
	return class
}

// Attr returns the named attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Data returns the data-* attribute with the given suffix.
func (e *Element) Data(name string) (string, bool) {
	return e.sel.Attr("data-" + name)
}

// Text returns the element's visible text content with whitespace collapsed.
// Script and style subtrees are excluded.
func (e *Element) Text() string {
	var b strings.Builder
	for _, node := range e.sel.Nodes {
		appendText(&b, node)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// HTML returns the element's inner HTML.
func (e *Element) HTML() (string, error) {
	h, err := e.sel.Html()
	if err != nil {
		return "", richmark.Errorf(richmark.EINTERNAL, "failed to render HTML: %v", err)
	}
	return h, nil
}

// Children returns the element's first-level child elements.
func (e *Element) Children() []richmark.Element {
	var children []richmark.Element
	e.sel.Children().Each(func(_ int, sel *goquery.Selection) {
		children = append(children, &Element{sel: sel})
	})
	return children
}

func appendText(b *strings.Builder, node *html.Node) {
	if node.Type == html.ElementNode {
		switch node.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		b.WriteByte(' ')
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}
