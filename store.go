package richmark

import (
	"context"
	"time"
)

// PageStore provides read access to the document tree being built.
// Paths are relative to the site root and use forward slashes.
type PageStore interface {
	// ReadPage returns the source text of the page at the given path.
	// Returns ENOTFOUND if no such page exists.
	ReadPage(ctx context.Context, path string) (string, error)

	// ModTime returns the page's last modification time. Used for the
	// default-provenance rule on offer and event validity windows.
	ModTime(ctx context.Context, path string) (time.Time, error)

	// IndexExists reports whether the directory holds an index document.
	// Breadcrumb aggregation skips levels without one.
	IndexExists(ctx context.Context, dir string) (bool, error)

	// Pages returns the relative paths of all pages under the root.
	Pages(ctx context.Context) ([]string, error)
}

// CatalogEntry records one processed page for incremental rebuilds.
type CatalogEntry struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	Path        string    `json:"path"`
	ContentHash string    `json:"contentHash"`
	Kinds       []Kind    `json:"kinds"`
	BuiltAt     time.Time `json:"builtAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "catalog entry path required")
	}
	if e.ContentHash == "" {
		return Errorf(EINVALID, "catalog entry content hash required")
	}
	return nil
}

// CatalogService records processed pages so unchanged pages can be skipped
// on rebuild.
type CatalogService interface {
	// FindEntryByPath retrieves the entry for a page path.
	// Returns ENOTFOUND if the page has not been processed.
	FindEntryByPath(ctx context.Context, path string) (*CatalogEntry, error)

	// UpsertEntry creates or replaces the entry for its path.
	UpsertEntry(ctx context.Context, entry *CatalogEntry) error

	// DeleteEntriesByRun removes all entries except those written by the
	// given run, pruning pages deleted from the tree.
	DeleteEntriesExceptRun(ctx context.Context, runID string) error
}
