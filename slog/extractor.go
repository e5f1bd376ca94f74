// Package slog provides logging decorators for richmark services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwalkowski/richmark"
)

// Ensure LoggingExtractor implements richmark.Extractor.
var _ richmark.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-invocation logging.
type LoggingExtractor struct {
	next   richmark.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next richmark.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, req richmark.ExtractRequest) ([]richmark.Result, error) {
	begin := time.Now()
	results, err := e.next.Extract(ctx, req)
	if err != nil {
		e.logger.Error("extraction failed",
			"path", req.Path,
			"kinds", len(req.Kinds),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"path", req.Path,
		"kinds", len(req.Kinds),
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
