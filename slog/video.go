package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwalkowski/richmark"
)

// Ensure LoggingVideoService implements richmark.VideoMetadataService.
var _ richmark.VideoMetadataService = (*LoggingVideoService)(nil)

// LoggingVideoService wraps a VideoMetadataService with per-lookup logging.
type LoggingVideoService struct {
	next   richmark.VideoMetadataService
	logger *slog.Logger
}

// NewLoggingVideoService creates a new LoggingVideoService.
func NewLoggingVideoService(next richmark.VideoMetadataService, logger *slog.Logger) *LoggingVideoService {
	return &LoggingVideoService{next: next, logger: logger}
}

// Lookup delegates to the wrapped service and logs the outcome.
func (s *LoggingVideoService) Lookup(ctx context.Context, embedURL string) (*richmark.VideoMeta, error) {
	begin := time.Now()
	meta, err := s.next.Lookup(ctx, embedURL)
	if err != nil {
		s.logger.Warn("video metadata lookup failed",
			"url", embedURL,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Debug("video metadata lookup",
		"url", embedURL,
		"duration", time.Since(begin),
	)
	return meta, nil
}
