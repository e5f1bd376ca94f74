package richmark

import (
	"context"
	"encoding/json"
)

// ExtractRequest describes one engine invocation over one document.
type ExtractRequest struct {
	// Source is the document's HTML text. Required for kinds whose
	// argument spec includes the source.
	Source string

	// Path is the document's site-relative path. Required for kinds whose
	// argument spec includes the path.
	Path string

	// SourceURL is set when the document was fetched remotely; it then
	// replaces the path-derived deep-link base.
	SourceURL string

	// Kinds are the entity kinds to extract. Order is preserved in the
	// results.
	Kinds []Kind
}

// Result is the JSON-LD output for one requested kind. Kinds that matched
// nothing on the page are omitted from the result set.
type Result struct {
	Kind   Kind            `json:"kind"`
	JSONLD json.RawMessage `json:"jsonld"`
}

// Extractor runs the extraction-and-normalization engine over a document.
type Extractor interface {
	// Extract aggregates and serializes the requested kinds. A structural
	// error in any kind's markup fails the whole invocation; no partial
	// records are emitted for the offending kind.
	Extract(ctx context.Context, req ExtractRequest) ([]Result, error)
}

// ScriptWriter persists generated JSON-LD back into page documents.
type ScriptWriter interface {
	// WriteScripts injects one JSON-LD script tag per result into the
	// page at the given path, replacing any previously injected tags.
	WriteScripts(ctx context.Context, path string, results []Result) error
}
