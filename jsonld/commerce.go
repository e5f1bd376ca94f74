package jsonld

import (
	"fmt"

	"github.com/pwalkowski/richmark"
)

// ProductNode is a Product, standalone or as a ProductGroup variant.
type ProductNode struct {
	AtContext       string       `json:"@context,omitempty"`
	AtID            string       `json:"@id,omitempty"`
	AtType          string       `json:"@type"`
	Name            string       `json:"name"`
	Image           []string     `json:"image"`
	Description     string       `json:"description,omitempty"`
	SKU             string       `json:"sku,omitempty"`
	Brand           *BrandNode   `json:"brand,omitempty"`
	Color           string       `json:"color,omitempty"`
	Material        string       `json:"material,omitempty"`
	Pattern         string       `json:"pattern,omitempty"`
	Size            string       `json:"size,omitempty"`
	Offers          *OfferNode   `json:"offers,omitempty"`
	AggregateRating *RatingNode  `json:"aggregateRating,omitempty"`
	Review          []ReviewNode `json:"review,omitempty"`
	URL             string       `json:"url"`
}

func productNode(p *richmark.Product) *ProductNode {
	node := &ProductNode{
		AtType:          "Product",
		Name:            p.Name,
		Image:           p.Images,
		Description:     p.Description,
		SKU:             p.SKU,
		Brand:           brand(p.Brand),
		Color:           p.Color,
		Material:        p.Material,
		Pattern:         p.Pattern,
		Size:            p.Size,
		Offers:          offer(p.Offer),
		AggregateRating: aggregateRating(p.Rating),
		Review:          reviews(p.Reviews),
		URL:             p.URL,
	}
	if node.Offers != nil {
		node.Offers.URL = p.URL
	}
	return node
}

// Products serializes standalone product records, optionally as a
// carousel.
func Products(ps []*richmark.Product, carousel bool) any {
	nodes := make([]*ProductNode, 0, len(ps))
	for _, p := range ps {
		nodes = append(nodes, productNode(p))
	}
	return finish(nodes, carousel, func(n *ProductNode) { n.AtContext = Context })
}

// ProductGroupNode is a ProductGroup.
type ProductGroupNode struct {
	AtID            string       `json:"@id,omitempty"`
	AtType          string       `json:"@type"`
	ProductGroupID  string       `json:"productGroupID"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Brand           *BrandNode   `json:"brand,omitempty"`
	VariesBy        []string     `json:"variesBy,omitempty"`
	HasVariant      []Ref        `json:"hasVariant,omitempty"`
	AggregateRating *RatingNode  `json:"aggregateRating,omitempty"`
	Review          []ReviewNode `json:"review,omitempty"`
	URL             string       `json:"url,omitempty"`
}

// ProductGroup serializes a variant group as a JSON-LD graph. The shared
// shipping-details and return-policy objects appear exactly once and every
// variant offer references them by @id; variants are graph members
// referenced from the group's hasVariant list.
func ProductGroup(g *richmark.ProductGroup) *GraphNode {
	groupRef := "#" + g.GroupID
	group := &ProductGroupNode{
		AtID:            groupRef,
		AtType:          "ProductGroup",
		ProductGroupID:  g.GroupID,
		Name:            g.Name,
		Description:     g.Description,
		Brand:           brand(g.Brand),
		VariesBy:        g.VariesBy,
		AggregateRating: aggregateRating(g.Rating),
		Review:          reviews(g.Reviews),
		URL:             g.URL,
	}

	graph := &GraphNode{AtContext: Context, Graph: []any{group}}

	var shippingRef, returnsRef string
	if s := shipping(g.Shipping); s != nil {
		shippingRef = groupRef + "-shipping"
		s.AtID = shippingRef
		graph.Graph = append(graph.Graph, s)
	}
	if p := returnPolicy(g.Returns); p != nil {
		returnsRef = groupRef + "-returns"
		p.AtID = returnsRef
		graph.Graph = append(graph.Graph, p)
	}

	for i, variant := range g.Variants {
		node := productNode(variant)
		node.AtID = fmt.Sprintf("%s-variant-%d", groupRef, i+1)
		if node.Offers != nil {
			if shippingRef != "" {
				node.Offers.ShippingDetails = Ref{AtID: shippingRef}
			}
			if returnsRef != "" {
				node.Offers.ReturnPolicy = Ref{AtID: returnsRef}
			}
		}
		group.HasVariant = append(group.HasVariant, Ref{AtID: node.AtID})
		graph.Graph = append(graph.Graph, node)
	}
	return graph
}
