// Package mock provides function-field mocks of the richmark service
// interfaces for use in tests.
package mock

import (
	"context"
	"time"

	"github.com/pwalkowski/richmark"
)

var _ richmark.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of richmark.PageStore.
type PageStore struct {
	ReadPageFn    func(ctx context.Context, path string) (string, error)
	ModTimeFn     func(ctx context.Context, path string) (time.Time, error)
	IndexExistsFn func(ctx context.Context, dir string) (bool, error)
	PagesFn       func(ctx context.Context) ([]string, error)
}

func (s *PageStore) ReadPage(ctx context.Context, path string) (string, error) {
	return s.ReadPageFn(ctx, path)
}

func (s *PageStore) ModTime(ctx context.Context, path string) (time.Time, error) {
	return s.ModTimeFn(ctx, path)
}

func (s *PageStore) IndexExists(ctx context.Context, dir string) (bool, error) {
	return s.IndexExistsFn(ctx, dir)
}

func (s *PageStore) Pages(ctx context.Context) ([]string, error) {
	return s.PagesFn(ctx)
}

var _ richmark.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of richmark.CatalogService.
type CatalogService struct {
	FindEntryByPathFn        func(ctx context.Context, path string) (*richmark.CatalogEntry, error)
	UpsertEntryFn            func(ctx context.Context, entry *richmark.CatalogEntry) error
	DeleteEntriesExceptRunFn func(ctx context.Context, runID string) error
}

func (s *CatalogService) FindEntryByPath(ctx context.Context, path string) (*richmark.CatalogEntry, error) {
	return s.FindEntryByPathFn(ctx, path)
}

func (s *CatalogService) UpsertEntry(ctx context.Context, entry *richmark.CatalogEntry) error {
	return s.UpsertEntryFn(ctx, entry)
}

func (s *CatalogService) DeleteEntriesExceptRun(ctx context.Context, runID string) error {
	return s.DeleteEntriesExceptRunFn(ctx, runID)
}

var _ richmark.VideoMetadataService = (*VideoMetadataService)(nil)

// VideoMetadataService is a mock implementation of richmark.VideoMetadataService.
type VideoMetadataService struct {
	LookupFn func(ctx context.Context, embedURL string) (*richmark.VideoMeta, error)
}

func (s *VideoMetadataService) Lookup(ctx context.Context, embedURL string) (*richmark.VideoMeta, error) {
	return s.LookupFn(ctx, embedURL)
}

var _ richmark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of richmark.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, req richmark.ExtractRequest) ([]richmark.Result, error)
}

func (e *Extractor) Extract(ctx context.Context, req richmark.ExtractRequest) ([]richmark.Result, error) {
	return e.ExtractFn(ctx, req)
}

var _ richmark.ScriptWriter = (*ScriptWriter)(nil)

// ScriptWriter is a mock implementation of richmark.ScriptWriter.
type ScriptWriter struct {
	WriteScriptsFn func(ctx context.Context, path string, results []richmark.Result) error
}

func (w *ScriptWriter) WriteScripts(ctx context.Context, path string, results []richmark.Result) error {
	return w.WriteScriptsFn(ctx, path, results)
}
