package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HTTPDownloader implements ports.Downloader for result files of the processing service.
type HTTPDownloader struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPDownloader creates a new HTTPDownloader. Relative locators are resolved against baseURL.
func NewHTTPDownloader(baseURL, apiKey string, client *http.Client) *HTTPDownloader {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPDownloader{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Download fetches the file at fileURL.
func (d *HTTPDownloader) Download(ctx context.Context, fileURL string) (io.ReadCloser, error) {
	target, err := d.Resolve(fileURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// The key only goes to the service itself, not to third-party storage links.
	if d.sameHost(target) {
		req.Header.Set("x-api-key", d.apiKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// Resolve returns the absolute URL of a result locator.
func (d *HTTPDownloader) Resolve(fileURL string) (string, error) {
	if fileURL == "" {
		return "", fmt.Errorf("empty file url")
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid file url %q: %w", fileURL, err)
	}
	if u.IsAbs() {
		return fileURL, nil
	}
	return d.baseURL + "/" + strings.TrimLeft(fileURL, "/"), nil
}

func (d *HTTPDownloader) sameHost(target string) bool {
	base, err := url.Parse(d.baseURL)
	if err != nil {
		return false
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.EqualFold(base.Host, u.Host)
}
