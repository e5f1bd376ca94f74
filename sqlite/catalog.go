package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/pwalkowski/richmark"
)

// Compile-time interface verification.
var _ richmark.CatalogService = (*CatalogService)(nil)

// CatalogService implements richmark.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// HashContent computes xxHash of content and returns a hex string. Build
// runs compare this against the stored hash to skip unchanged pages.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// FindEntryByPath retrieves the catalog entry for a page path.
func (s *CatalogService) FindEntryByPath(ctx context.Context, path string) (*richmark.CatalogEntry, error) {
	var entry richmark.CatalogEntry
	var kinds, builtAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, path, content_hash, kinds, built_at
		FROM pages
		WHERE path = ?
	`, path).Scan(&entry.ID, &entry.RunID, &entry.Path, &entry.ContentHash, &kinds, &builtAt)

	if err == sql.ErrNoRows {
		return nil, richmark.Errorf(richmark.ENOTFOUND, "catalog entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.Kinds = decodeKinds(kinds)

	var parseErr error
	entry.BuiltAt, parseErr = time.Parse(time.RFC3339, builtAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse built_at: %w", parseErr)
	}

	return &entry, nil
}

// UpsertEntry creates or replaces the catalog entry for its path.
func (s *CatalogService) UpsertEntry(ctx context.Context, entry *richmark.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.BuiltAt.IsZero() {
		entry.BuiltAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, run_id, path, content_hash, kinds, built_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			run_id = excluded.run_id,
			content_hash = excluded.content_hash,
			kinds = excluded.kinds,
			built_at = excluded.built_at
	`, entry.ID, entry.RunID, entry.Path, entry.ContentHash,
		encodeKinds(entry.Kinds), entry.BuiltAt.Format(time.RFC3339))

	return err
}

// DeleteEntriesExceptRun removes entries not written by the given run,
// pruning pages that were deleted from the tree.
func (s *CatalogService) DeleteEntriesExceptRun(ctx context.Context, runID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE run_id != ?", runID)
	return err
}

func encodeKinds(kinds []richmark.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}

func decodeKinds(s string) []richmark.Kind {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	kinds := make([]richmark.Kind, len(parts))
	for i, p := range parts {
		kinds[i] = richmark.Kind(p)
	}
	return kinds
}
