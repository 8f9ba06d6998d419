// Package httpfetch downloads chat attachments over HTTP.
package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrAttachmentTooLarge is returned when a download exceeds the allowed size.
var ErrAttachmentTooLarge = errors.New("attachment too large")

// Fetcher implements secondary.AttachmentFetcher using an http.Client.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher. A nil client uses http.DefaultClient.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Fetch downloads url, refusing bodies larger than maxBytes.
func (f *Fetcher) Fetch(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download attachment: unexpected status %s", resp.Status)
	}
	if maxBytes > 0 && resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrAttachmentTooLarge, resp.ContentLength, maxBytes)
	}

	body := io.Reader(resp.Body)
	if maxBytes > 0 {
		// One extra byte tells an exact-limit body from an oversized one.
		body = io.LimitReader(resp.Body, maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrAttachmentTooLarge, maxBytes)
	}

	return data, nil
}
