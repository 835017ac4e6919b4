// Package bucket lists and downloads images from the public object-storage bucket.
package bucket

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dipyourtrip/brochure-agent/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for bucket requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; BrochureAgent/1.0)"

// Client fetches the unauthenticated bucket listing and downloads images
// by direct URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a bucket client for the given listing URL. The URL is
// validated eagerly so a misconfigured deployment fails at startup.
func NewClient(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: baseURL, Message: "invalid bucket URL", Cause: err}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// BaseURL returns the bucket listing URL, with trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the bucket's XML listing and parses it into image
// descriptors, in listing order.
func (c *Client) List(ctx context.Context) ([]types.BucketImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, &Error{URL: c.baseURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: c.baseURL, Message: "listing request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: c.baseURL, Message: fmt.Sprintf("listing returned HTTP status %d", resp.StatusCode)}
	}

	return ParseListing(resp.Body, c.baseURL)
}

// Download streams one image to destPath. On a non-success status or a
// write failure the partial file is removed.
func (c *Client) Download(ctx context.Context, imageURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return &Error{URL: imageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: imageURL, Message: "download request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Error{URL: imageURL, Message: fmt.Sprintf("download returned HTTP status %d", resp.StatusCode)}
	}

	file, err := os.Create(destPath)
	if err != nil {
		return &Error{URL: imageURL, Message: "failed to create temp file", Cause: err}
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		_ = os.Remove(destPath)
		return &Error{URL: imageURL, Message: "failed to write image data", Cause: err}
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(destPath)
		return &Error{URL: imageURL, Message: "failed to close temp file", Cause: err}
	}

	return nil
}
