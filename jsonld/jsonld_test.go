package jsonld_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/jsonld"
)

func marshalToMap(t *testing.T, node any) map[string]any {
	t.Helper()

	raw, err := jsonld.Marshal(node)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestArticle_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	raw, err := jsonld.Marshal(jsonld.Article(&richmark.Article{
		Headline: "Sparse",
		Images:   []string{"/a.jpg"},
		URL:      "https://example.com/a.html",
	}))
	require.NoError(t, err)

	s := string(raw)
	assert.NotContains(t, s, "null")
	assert.NotContains(t, s, "description")
	assert.NotContains(t, s, "author")
	assert.NotContains(t, s, "datePublished")
}

func TestMovies_SingleCarriesContext(t *testing.T) {
	t.Parallel()

	doc := marshalToMap(t, jsonld.Movies([]*richmark.Movie{
		{Name: "Only One", Images: []string{"/m.jpg"}, URL: "https://example.com/m.html#1"},
	}, false))

	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "Movie", doc["@type"])
}

func TestMovies_MultipleWithoutCarousel(t *testing.T) {
	t.Parallel()

	raw, err := jsonld.Marshal(jsonld.Movies([]*richmark.Movie{
		{Name: "A", Images: []string{"/a.jpg"}, URL: "u1"},
		{Name: "B", Images: []string{"/b.jpg"}, URL: "u2"},
	}, false))
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(raw, &docs))
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Equal(t, "https://schema.org", doc["@context"], "each array member carries its own context")
	}
}

func TestMovies_Carousel(t *testing.T) {
	t.Parallel()

	doc := marshalToMap(t, jsonld.Movies([]*richmark.Movie{
		{Name: "A", Images: []string{"/a.jpg"}, URL: "u1"},
		{Name: "B", Images: []string{"/b.jpg"}, URL: "u2"},
	}, true))

	assert.Equal(t, "ItemList", doc["@type"])
	items, ok := doc["itemListElement"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	second, ok := items[1].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2, second["position"], 1e-9)
	movie, ok := second["item"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, movie["@context"], "carousel members share the list context")
}

func TestOffer_ShippingAndReturnsInline(t *testing.T) {
	t.Parallel()

	doc := marshalToMap(t, jsonld.Products([]*richmark.Product{{
		Name:   "Shoe",
		Images: []string{"/s.jpg"},
		URL:    "https://example.com/s.html#p1",
		Offer: &richmark.Offer{
			Price:    99,
			Currency: "USD",
			Shipping: &richmark.ShippingDetails{
				Rate:         &richmark.MonetaryAmount{Value: 5, Currency: "USD"},
				Country:      "US",
				HandlingDays: 1,
				TransitDays:  3,
			},
			Returns: &richmark.ReturnPolicy{Days: 30, Fees: "https://schema.org/FreeReturn", Country: "US"},
		},
	}}, false))

	offers, ok := doc["offers"].(map[string]any)
	require.True(t, ok)

	shipping, ok := offers["shippingDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "OfferShippingDetails", shipping["@type"])

	rate, ok := shipping["shippingRate"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 5, rate["value"], 1e-9)

	delivery, ok := shipping["deliveryTime"].(map[string]any)
	require.True(t, ok)
	handling, ok := delivery["handlingTime"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DAY", handling["unitCode"])
	assert.InDelta(t, 1, handling["maxValue"], 1e-9)

	returns, ok := offers["hasMerchantReturnPolicy"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MerchantReturnPolicy", returns["@type"])
	assert.InDelta(t, 30, returns["merchantReturnDays"], 1e-9)
}

func TestProductGroup_GraphShape(t *testing.T) {
	t.Parallel()

	group := &richmark.ProductGroup{
		GroupID: "abc123",
		Name:    "Shoe",
		Shipping: &richmark.ShippingDetails{
			Rate: &richmark.MonetaryAmount{Value: 5, Currency: "USD"},
		},
		Returns: &richmark.ReturnPolicy{Days: 30},
		Variants: []*richmark.Product{
			{Name: "Shoe", Images: []string{"/s.jpg"}, Size: "M", URL: "u1", Offer: &richmark.Offer{Price: 10}},
			{Name: "Shoe", Images: []string{"/s.jpg"}, Size: "L", URL: "u2", Offer: &richmark.Offer{Price: 12}},
		},
		VariesBy: []string{"size"},
		URL:      "https://example.com/shoe.html",
	}

	doc := marshalToMap(t, jsonld.ProductGroup(group))

	graph, ok := doc["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, graph, 5)

	head, ok := graph[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ProductGroup", head["@type"])
	assert.Equal(t, "#abc123", head["@id"])
	assert.Equal(t, "abc123", head["productGroupID"])

	variants, ok := head["hasVariant"].([]any)
	require.True(t, ok)
	require.Len(t, variants, 2)
	first, ok := variants[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#abc123-variant-1", first["@id"])
}

func TestBreadcrumb(t *testing.T) {
	t.Parallel()

	doc := marshalToMap(t, jsonld.Breadcrumb(&richmark.Breadcrumb{
		Items: []richmark.BreadcrumbItem{
			{Name: "Home", URL: "https://example.com/", Position: 1},
			{Name: "Docs", URL: "https://example.com/docs/", Position: 2},
		},
	}))

	assert.Equal(t, "BreadcrumbList", doc["@type"])
	items, ok := doc["itemListElement"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
}
