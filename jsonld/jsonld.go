// Package jsonld projects aggregated entity records into schema.org
// JSON-LD. Serializers are pure functions: record in, node tree out. An
// absent optional value never emits a key (omitempty throughout), and
// multi-instance kinds can wrap as an ItemList carousel.
package jsonld

import (
	"encoding/json"

	"github.com/pwalkowski/richmark"
)

// Context is the schema.org JSON-LD context IRI.
const Context = "https://schema.org"

// Marshal encodes a node tree built by this package. The output is
// suitable for embedding as a single application/ld+json script element.
func Marshal(node any) (json.RawMessage, error) {
	b, err := json.Marshal(node)
	if err != nil {
		return nil, richmark.Errorf(richmark.EINTERNAL, "marshal JSON-LD: %v", err)
	}
	return b, nil
}

// ItemListNode is the carousel wrapper for multi-instance kinds.
type ItemListNode struct {
	AtContext string         `json:"@context"`
	AtType    string         `json:"@type"`
	Items     []ListItemNode `json:"itemListElement"`
}

// ListItemNode is one carousel entry.
type ListItemNode struct {
	AtType   string `json:"@type"`
	Position int    `json:"position"`
	Item     any    `json:"item"`
}

func itemList(items []any) *ItemListNode {
	list := &ItemListNode{AtContext: Context, AtType: "ItemList"}
	for i, item := range items {
		list.Items = append(list.Items, ListItemNode{AtType: "ListItem", Position: i + 1, Item: item})
	}
	return list
}

// GraphNode is a multi-object JSON-LD document sharing one context. Used
// for the product-group variant graph with its shared policy objects.
type GraphNode struct {
	AtContext string `json:"@context"`
	Graph     []any  `json:"@graph"`
}

// Ref is an @id reference to an object defined elsewhere in the same
// graph.
type Ref struct {
	AtID string `json:"@id"`
}
