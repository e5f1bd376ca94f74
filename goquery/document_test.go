package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/goquery"
)

func parse(t *testing.T, source string) richmark.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(source)
	require.NoError(t, err)
	return doc
}

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>  My
			Page  </title></head><body></body></html>`)
		title, err := doc.Title()
		require.NoError(t, err)
		assert.Equal(t, "My Page", title)
	})

	t.Run("Missing", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head></head><body></body></html>`)
		_, err := doc.Title()
		assert.Equal(t, richmark.ENOTFOUND, richmark.ErrorCode(err))
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>   </title></head><body></body></html>`)
		_, err := doc.Title()
		assert.Equal(t, richmark.ENOTFOUND, richmark.ErrorCode(err))
	})
}

func TestDocument_SelectClassPrefix(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body>
		<h1 class="movie-1-name hero">First</h1>
		<p class="other Movie-2-Name">Second</p>
		<p class="remixed">Skipped</p>
		<span class="movie-1-dateCreated">2001</span>
	</body></html>`)

	elements := doc.SelectClassPrefix("movie-")
	require.Len(t, elements, 3)
	assert.Equal(t, "First", elements[0].Text())
	assert.Equal(t, "Second", elements[1].Text(), "class token matching is case-insensitive")
	assert.Equal(t, "2001", elements[2].Text(), "elements come back in document order")
}

func TestDocument_Find(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><ul><li>a</li><li>b</li></ul></body></html>`)
	items := doc.Find("ul > li")
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Text())
	assert.Equal(t, "b", items[1].Text())
}

func TestElement_Text(t *testing.T) {
	t.Parallel()

	t.Run("CollapsesWhitespace", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="x">  one
			two <b>three</b>  </div></body></html>`)
		elements := doc.SelectClassPrefix("x")
		require.Len(t, elements, 1)
		assert.Equal(t, "one two three", elements[0].Text())
	})

	t.Run("SkipsScriptAndStyle", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="x">visible
			<script>var hidden = 1;</script>
			<style>.x { color: red }</style>
			<noscript>fallback</noscript>
			text</div></body></html>`)
		elements := doc.SelectClassPrefix("x")
		require.Len(t, elements, 1)
		assert.Equal(t, "visible text", elements[0].Text())
	})
}

func TestElement_Attrs(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><a class="faq-1-question" href="/a" data-value="InStock">Q</a></body></html>`)
	elements := doc.SelectClassPrefix("faq-")
	require.Len(t, elements, 1)
	el := elements[0]

	assert.Equal(t, "faq-1-question", el.Class())

	href, ok := el.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/a", href)

	_, ok = el.Attr("title")
	assert.False(t, ok)

	value, ok := el.Data("value")
	assert.True(t, ok)
	assert.Equal(t, "InStock", value)

	_, ok = el.Data("type")
	assert.False(t, ok)
}

func TestElement_Children(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><ul class="crumbs"><li>Home</li><li>Docs</li></ul></body></html>`)
	elements := doc.SelectClassPrefix("crumbs")
	require.Len(t, elements, 1)

	children := elements[0].Children()
	require.Len(t, children, 2)
	assert.Equal(t, "Home", children[0].Text())
	assert.Equal(t, "Docs", children[1].Text())
}

func TestElement_HTML(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><body><div class="x"><em>hi</em></div></body></html>`)
	elements := doc.SelectClassPrefix("x")
	require.Len(t, elements, 1)

	h, err := elements[0].HTML()
	require.NoError(t, err)
	assert.Equal(t, "<em>hi</em>", h)
}
