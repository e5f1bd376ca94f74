// Package http provides an HTTP-based implementation of
// richmark.VideoMetadataService backed by provider oEmbed endpoints.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pwalkowski/richmark"
)

// DefaultLookupTimeout is the default timeout for oEmbed requests.
const DefaultLookupTimeout = 10 * time.Second

// DefaultRateLimit is the default request rate against provider endpoints.
const DefaultRateLimit = rate.Limit(5)

// Ensure VideoClient implements richmark.VideoMetadataService at compile time.
var _ richmark.VideoMetadataService = (*VideoClient)(nil)

// VideoClient resolves embedded video URLs to metadata via provider oEmbed
// endpoints. Requests are rate limited so pages with many embeds don't
// hammer the provider.
type VideoClient struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a VideoClient.
type Option func(*VideoClient)

// WithTimeout sets the timeout for oEmbed requests.
// Defaults to DefaultLookupTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *VideoClient) {
		c.timeout = d
	}
}

// WithRateLimit sets the request rate against provider endpoints.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *VideoClient) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewVideoClient creates a new oEmbed-backed VideoClient.
func NewVideoClient(opts ...Option) *VideoClient {
	c := &VideoClient{
		timeout: DefaultLookupTimeout,
		limiter: rate.NewLimiter(DefaultRateLimit, 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// oembedResponse is the subset of the oEmbed payload the engine uses.
type oembedResponse struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ThumbnailURL string  `json:"thumbnail_url"`
	UploadDate   string  `json:"upload_date"`
	Duration     float64 `json:"duration"`
}

// Lookup fetches metadata for an embedded video URL.
func (c *VideoClient) Lookup(ctx context.Context, embedURL string) (*richmark.VideoMeta, error) {
	endpoint, err := oembedEndpoint(embedURL)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, endpoint)
	}

	var payload oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, richmark.Errorf(richmark.EINTERNAL, "failed to decode oEmbed response: %v", err)
	}

	meta := &richmark.VideoMeta{
		Title:        payload.Title,
		Description:  payload.Description,
		ThumbnailURL: payload.ThumbnailURL,
		UploadDate:   payload.UploadDate,
	}
	if payload.Duration > 0 {
		meta.Duration = isoDuration(int(payload.Duration))
	}
	return meta, nil
}

// oembedEndpoint derives the provider oEmbed endpoint for an embed URL.
func oembedEndpoint(embedURL string) (string, error) {
	u, err := url.Parse(embedURL)
	if err != nil {
		return "", richmark.Errorf(richmark.EINVALID, "invalid embed URL: %v", err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch {
	case host == "youtube.com" || host == "youtu.be" || strings.HasSuffix(host, ".youtube.com"):
		return "https://www.youtube.com/oembed?format=json&url=" + url.QueryEscape(embedURL), nil
	case host == "vimeo.com" || strings.HasSuffix(host, ".vimeo.com"):
		return "https://vimeo.com/api/oembed.json?url=" + url.QueryEscape(embedURL), nil
	}
	return "", richmark.Errorf(richmark.EINVALID, "no oEmbed provider for host %q", u.Host)
}

// isoDuration renders a duration in whole seconds as an ISO 8601 duration.
func isoDuration(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	var b strings.Builder
	b.WriteString("PT")
	if h > 0 {
		fmt.Fprintf(&b, "%dH", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if s > 0 || (h == 0 && m == 0) {
		fmt.Fprintf(&b, "%dS", s)
	}
	return b.String()
}
