package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/fs"
	"github.com/pwalkowski/richmark/sqlite"
)

// Run executes the build command: walk the site tree, extract JSON-LD from
// every changed page, inject it, and record the result in the catalog.
func (c *BuildCmd) Run(deps *Dependencies) error {
	kinds, err := parseKinds(c.Kinds)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richmark.ErrorMessage(err))
		return err
	}

	pages, err := deps.Store.Pages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richmark.ErrorMessage(err))
		return err
	}

	runID := uuid.New().String()

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	var built, skipped atomic.Int64
	for _, page := range pages {
		page := page
		g.Go(func() error {
			source, err := deps.Store.ReadPage(ctx, page)
			if err != nil {
				return err
			}

			// Hash the page with previously injected output stripped so a
			// page only rebuilds when its authored content changed.
			hash := sqlite.HashContent(fs.StripScripts(source))

			entry, err := deps.Catalog.FindEntryByPath(ctx, page)
			if err != nil && richmark.ErrorCode(err) != richmark.ENOTFOUND {
				return err
			}
			if entry != nil && entry.ContentHash == hash && !c.Force {
				skipped.Add(1)
				entry.RunID = runID
				return deps.Catalog.UpsertEntry(ctx, entry)
			}

			results, err := deps.Extractor.Extract(ctx, richmark.ExtractRequest{
				Source: source,
				Path:   page,
				Kinds:  kinds,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", page, err)
			}

			if err := deps.Writer.WriteScripts(ctx, page, results); err != nil {
				return err
			}

			resultKinds := make([]richmark.Kind, len(results))
			for i, r := range results {
				resultKinds[i] = r.Kind
			}

			built.Add(1)
			return deps.Catalog.UpsertEntry(ctx, &richmark.CatalogEntry{
				RunID:       runID,
				Path:        page,
				ContentHash: hash,
				Kinds:       resultKinds,
				BuiltAt:     time.Now().UTC(),
			})
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richmark.ErrorMessage(err))
		return err
	}

	// Pages removed from the tree leave stale catalog rows behind.
	if err := deps.Catalog.DeleteEntriesExceptRun(deps.Ctx, runID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Built %d pages (%d unchanged)\n", built.Load(), skipped.Load())
	return nil
}
