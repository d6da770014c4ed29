package scanpro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"scanpro/internal/adapters/downloader"
	"scanpro/internal/core/domain"
	"scanpro/internal/core/ports"
	"scanpro/internal/log"
)

const (
	// DefaultBaseURL is the processing service used when none is configured.
	DefaultBaseURL = "https://scanpro.cc/api"
	// APIKeyHeader carries the API key on every request.
	APIKeyHeader = "x-api-key"

	unknownErrorMessage = "Unknown error occurred"
	statusErrorMessage  = "Failed to check job status"
)

// Config holds the process-wide client settings. It is not modified after NewClient.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client implements ports.Processor against the processing service REST API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	downloader ports.Downloader
	logger     log.Logger
}

var _ ports.Processor = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the client logger.
func WithLogger(l log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithDownloader replaces the downloader used by DownloadFile.
func WithDownloader(d ports.Downloader) Option {
	return func(c *Client) { c.downloader = d }
}

// NewClient creates a new Client.
func NewClient(cfg Config, opts ...Option) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	c := &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		// No timeout: a slow transfer only fails when the transport does.
		httpClient: &http.Client{},
		logger:     log.Noop,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.downloader == nil {
		c.downloader = downloader.NewHTTPDownloader(c.baseURL, c.apiKey, c.httpClient)
	}
	c.logger = c.logger.WithValues(log.Kv{"svc": "scanpro.Client"})

	return c
}

// BaseURL returns the service address requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) endpointURL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

func (c *Client) setAuth(req *http.Request) {
	req.Header.Set(APIKeyHeader, c.apiKey)
}

// Upload posts form to endpoint as multipart/form-data and decodes the JSON answer into T.
// onProgress, when set, receives round(sent/total*100) each time it grows.
// Upload never fails with an error or panic: every failure becomes a failed result.
func Upload[T any](ctx context.Context, c *Client, endpoint string, form *Form, onProgress domain.ProgressFunc) domain.Result[T] {
	body, contentType, err := form.encode()
	if err != nil {
		c.logger.Errorf("Could not build request for %s: %v", endpoint, err)
		return domain.Fail[T](domain.GenericErrorMessage)
	}

	total := int64(body.Len())
	pr := newProgressReader(body, total, onProgress)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), pr)
	if err != nil {
		c.logger.Errorf("Could not create request for %s: %v", endpoint, err)
		return domain.Fail[T](domain.GenericErrorMessage)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", contentType)
	c.setAuth(req)

	c.logger.Debugf("Uploading %d bytes to %s", total, endpoint)
	resp, err := c.httpClient.Do(req)
	if panicked := pr.stop(); panicked {
		if resp != nil {
			resp.Body.Close()
		}
		c.logger.Errorf("Progress callback for %s panicked", endpoint)
		return domain.Fail[T](domain.GenericErrorMessage)
	}
	if err != nil {
		c.logger.Warningf("Upload to %s failed: %v", endpoint, err)
		return domain.Fail[T](unknownErrorMessage)
	}

	return decodeResponse[T](c, endpoint, resp, unknownErrorMessage)
}

// decodeResponse turns an HTTP answer into a result. A non-empty "error" field in the
// body wins over the status code; fallback is used when no message is available.
func decodeResponse[T any](c *Client, endpoint string, resp *http.Response, fallback string) domain.Result[T] {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warningf("Could not read response from %s: %v", endpoint, err)
		return domain.Fail[T](fallback)
	}

	var serviceErr struct {
		Error string `json:"error"`
	}
	// The field may be missing or not a string, both mean "no message".
	_ = json.Unmarshal(raw, &serviceErr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warningf("%s returned status %d", endpoint, resp.StatusCode)
		if serviceErr.Error != "" {
			return domain.Fail[T](serviceErr.Error)
		}
		return domain.Fail[T](fallback)
	}
	if serviceErr.Error != "" {
		return domain.Fail[T](serviceErr.Error)
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		c.logger.Warningf("Malformed response from %s: %v", endpoint, err)
		return domain.Fail[T](fallback)
	}
	return domain.Ok(data)
}

// CheckSplitStatus queries the status of an asynchronous split job once.
func (c *Client) CheckSplitStatus(ctx context.Context, jobID string) domain.Result[domain.SplitStatus] {
	statusURL := fmt.Sprintf("%s?id=%s", c.endpointURL(domain.SplitStatusEndpoint), url.QueryEscape(jobID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		c.logger.Errorf("Could not create status request: %v", err)
		return domain.Fail[domain.SplitStatus](statusErrorMessage)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warningf("Status request for job %s failed: %v", jobID, err)
		return domain.Fail[domain.SplitStatus](statusErrorMessage)
	}

	return decodeResponse[domain.SplitStatus](c, domain.SplitStatusEndpoint, resp, statusErrorMessage)
}

// DownloadFile fetches the result at fileURL and saves it once under filename.
// It reports false on any failure; the failure is logged, not returned.
func (c *Client) DownloadFile(ctx context.Context, fileURL, filename string, saver ports.Saver) bool {
	logger := c.logger.WithValues(log.Kv{"file": filename})
	if fileURL == "" || saver == nil {
		logger.Warningf("Download error: nothing to download")
		return false
	}

	rc, err := c.downloader.Download(ctx, fileURL)
	if err != nil {
		logger.Warningf("Download error: %v", err)
		return false
	}
	defer rc.Close()

	// Fetch the whole blob first: the saver only ever sees complete files.
	blob, err := io.ReadAll(rc)
	if err != nil {
		logger.Warningf("Download error: %v", err)
		return false
	}

	path, err := saver.Save(ctx, filename, bytes.NewReader(blob))
	if err != nil {
		logger.Warningf("Download error: %v", err)
		return false
	}
	logger.Debugf("Saved %d bytes to %s", len(blob), path)

	return true
}
