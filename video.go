package richmark

import "context"

// VideoMeta is remote metadata for an embedded video reference.
type VideoMeta struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	UploadDate   string `json:"uploadDate,omitempty"`
	Duration     string `json:"duration,omitempty"` // ISO 8601 duration
}

// VideoMetadataService fetches metadata for embedded video references.
// Implementations must honor context cancellation; a hung fetch must not
// stall aggregation past the caller's deadline.
type VideoMetadataService interface {
	Lookup(ctx context.Context, embedURL string) (*VideoMeta, error)
}
