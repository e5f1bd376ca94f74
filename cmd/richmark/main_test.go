package main

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/mock"
)

func TestParseKinds(t *testing.T) {
	t.Parallel()

	t.Run("EmptyMeansAll", func(t *testing.T) {
		t.Parallel()

		kinds, err := parseKinds(nil)
		require.NoError(t, err)
		assert.Equal(t, richmark.Kinds(), kinds)
	})

	t.Run("Named", func(t *testing.T) {
		t.Parallel()

		kinds, err := parseKinds([]string{"article", "faq"})
		require.NoError(t, err)
		assert.Equal(t, []richmark.Kind{richmark.KindArticle, richmark.KindFAQ}, kinds)
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()

		_, err := parseKinds([]string{"podcast"})
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
	})
}

func TestKindsCmd_Run(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	cmd := &KindsCmd{}
	require.NoError(t, cmd.Run(&Dependencies{Stdout: &stdout}))

	out := stdout.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "article")
	assert.Contains(t, out, "breadcrumb")
	assert.Contains(t, out, "site-search")
}

// buildHarness wires a BuildCmd against in-memory mocks over a fixed page
// set. The catalog is a map guarded by a mutex since builds run concurrently.
type buildHarness struct {
	mu      sync.Mutex
	pages   map[string]string
	entries map[string]*richmark.CatalogEntry

	store     mock.PageStore
	catalog   mock.CatalogService
	extractor mock.Extractor
	writer    mock.ScriptWriter

	extracted []string
	written   []string
}

func newBuildHarness(pages map[string]string) *buildHarness {
	h := &buildHarness{
		pages:   pages,
		entries: map[string]*richmark.CatalogEntry{},
	}

	h.store.PagesFn = func(ctx context.Context) ([]string, error) {
		paths := make([]string, 0, len(pages))
		for path := range pages {
			paths = append(paths, path)
		}
		return paths, nil
	}
	h.store.ReadPageFn = func(ctx context.Context, path string) (string, error) {
		source, ok := pages[path]
		if !ok {
			return "", richmark.Errorf(richmark.ENOTFOUND, "page not found: %s", path)
		}
		return source, nil
	}

	h.catalog.FindEntryByPathFn = func(ctx context.Context, path string) (*richmark.CatalogEntry, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		entry, ok := h.entries[path]
		if !ok {
			return nil, richmark.Errorf(richmark.ENOTFOUND, "no catalog entry for %s", path)
		}
		clone := *entry
		return &clone, nil
	}
	h.catalog.UpsertEntryFn = func(ctx context.Context, entry *richmark.CatalogEntry) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		clone := *entry
		h.entries[entry.Path] = &clone
		return nil
	}
	h.catalog.DeleteEntriesExceptRunFn = func(ctx context.Context, runID string) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		for path, entry := range h.entries {
			if entry.RunID != runID {
				delete(h.entries, path)
			}
		}
		return nil
	}

	h.extractor.ExtractFn = func(ctx context.Context, req richmark.ExtractRequest) ([]richmark.Result, error) {
		h.mu.Lock()
		h.extracted = append(h.extracted, req.Path)
		h.mu.Unlock()
		return []richmark.Result{{Kind: richmark.KindArticle, JSONLD: json.RawMessage(`{}`)}}, nil
	}
	h.writer.WriteScriptsFn = func(ctx context.Context, path string, results []richmark.Result) error {
		h.mu.Lock()
		h.written = append(h.written, path)
		h.mu.Unlock()
		return nil
	}

	return h
}

func (h *buildHarness) deps(stdout, stderr *bytes.Buffer) *Dependencies {
	return &Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Store:     &h.store,
		Catalog:   &h.catalog,
		Writer:    &h.writer,
		Extractor: &h.extractor,
	}
}

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("BuildsAllPages", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{
			"index.html":      "<html><head></head></html>",
			"docs/setup.html": "<html><head></head></html>",
		})
		var stdout, stderr bytes.Buffer

		cmd := &BuildCmd{Root: ".", Concurrency: 2}
		require.NoError(t, cmd.Run(h.deps(&stdout, &stderr)))

		assert.ElementsMatch(t, []string{"index.html", "docs/setup.html"}, h.extracted)
		assert.ElementsMatch(t, []string{"index.html", "docs/setup.html"}, h.written)
		assert.Contains(t, stdout.String(), "Built 2 pages (0 unchanged)")

		entry := h.entries["index.html"]
		require.NotNil(t, entry)
		assert.Equal(t, []richmark.Kind{richmark.KindArticle}, entry.Kinds)
		assert.NotEmpty(t, entry.ContentHash)
	})

	t.Run("SkipsUnchangedPages", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{"index.html": "<html><head></head></html>"})
		var stdout, stderr bytes.Buffer

		cmd := &BuildCmd{Root: ".", Concurrency: 1}
		require.NoError(t, cmd.Run(h.deps(&stdout, &stderr)))
		firstRun := h.entries["index.html"].RunID

		h.extracted = nil
		stdout.Reset()
		require.NoError(t, cmd.Run(h.deps(&stdout, &stderr)))

		assert.Empty(t, h.extracted, "unchanged page is not re-extracted")
		assert.Contains(t, stdout.String(), "Built 0 pages (1 unchanged)")
		assert.NotEqual(t, firstRun, h.entries["index.html"].RunID, "skipped pages still join the current run")
	})

	t.Run("InjectedOutputDoesNotInvalidate", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{"index.html": "<html><head></head></html>"})
		var stdout, stderr bytes.Buffer

		cmd := &BuildCmd{Root: ".", Concurrency: 1}
		require.NoError(t, cmd.Run(h.deps(&stdout, &stderr)))

		h.pages["index.html"] = "<html><head><script type=\"application/ld+json\">{}</script>\n</head></html>"
		h.extracted = nil
		stdout.Reset()
		require.NoError(t, cmd.Run(h.deps(&stdout, &stderr)))

		assert.Empty(t, h.extracted, "previously injected tags don't count as a content change")
	})

	t.Run("ForceRebuilds", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{"index.html": "<html><head></head></html>"})
		var stdout, stderr bytes.Buffer

		require.NoError(t, (&BuildCmd{Root: ".", Concurrency: 1}).Run(h.deps(&stdout, &stderr)))
		h.extracted = nil
		require.NoError(t, (&BuildCmd{Root: ".", Concurrency: 1, Force: true}).Run(h.deps(&stdout, &stderr)))

		assert.Equal(t, []string{"index.html"}, h.extracted)
	})

	t.Run("PrunesDeletedPages", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{"index.html": "<html><head></head></html>"})
		h.entries["gone.html"] = &richmark.CatalogEntry{
			ID:          "stale",
			RunID:       "old-run",
			Path:        "gone.html",
			ContentHash: "h",
			BuiltAt:     time.Now(),
		}
		var stdout, stderr bytes.Buffer

		require.NoError(t, (&BuildCmd{Root: ".", Concurrency: 1}).Run(h.deps(&stdout, &stderr)))

		assert.NotContains(t, h.entries, "gone.html")
		assert.Contains(t, h.entries, "index.html")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{})
		var stdout, stderr bytes.Buffer

		err := (&BuildCmd{Root: ".", Concurrency: 1, Kinds: []string{"podcast"}}).Run(h.deps(&stdout, &stderr))
		assert.Equal(t, richmark.EINVALID, richmark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown entity kind")
	})

	t.Run("ExtractFailureStopsBuild", func(t *testing.T) {
		t.Parallel()

		h := newBuildHarness(map[string]string{"index.html": "<html></html>"})
		h.extractor.ExtractFn = func(ctx context.Context, req richmark.ExtractRequest) ([]richmark.Result, error) {
			return nil, richmark.Errorf(richmark.EINVALID, "article image is required")
		}
		var stdout, stderr bytes.Buffer

		err := (&BuildCmd{Root: ".", Concurrency: 1}).Run(h.deps(&stdout, &stderr))
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
