// Package fetch implements the Fetcher interface.
// It performs a single HTTP GET per page; there are no retries.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/nkpipe/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "nkpipe/1.0 (https://github.com/gaurav-prasanna/nkpipe)"

	// Material pages are a few hundred kilobytes; anything past this is not
	// a data page.
	maxBodySize = 16 << 20
)

// ErrTooLarge means the response body exceeded the size limit. The page is
// not parsed.
var ErrTooLarge = errors.New("response body too large")

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client  *http.Client
	maxBody int64
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return NewWithClient(&http.Client{Timeout: defaultTimeout})
}

// NewWithClient creates an HTTPFetcher using the given client.
func NewWithClient(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client, maxBody: maxBodySize}
}

func (f *HTTPFetcher) limit() int64 {
	if f.maxBody <= 0 {
		return maxBodySize
	}
	return f.maxBody
}

// Fetch retrieves the HTML content of the given URL. Any non-2xx status is
// an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.limit()+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > f.limit() {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, url, f.limit())
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
