// Package odp is a client for the USPTO Open Data Portal (ODP) API: bulk
// data products, patent application file wrappers, status codes, petition
// decisions and PTAB trials, appeals and interferences.
package odp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/patent-dev/uspto-odp")

// Client is the main USPTO ODP API client
type Client struct {
	config    *Config
	transport Transport
	logger    *slog.Logger
}

// Config holds client configuration
type Config struct {
	APIKey         string `json:"apiKey" yaml:"apiKey"`                 // USPTO ODP API key, sent as X-API-KEY
	BaseURL        string `json:"baseURL" yaml:"baseURL"`               // Base URL for API (default: https://api.uspto.gov)
	UserAgent      string `json:"userAgent" yaml:"userAgent"`           // Optional custom user agent
	MaxRetries     int    `json:"maxRetries" yaml:"maxRetries"`         // Retries on RetryStatuses (default: 3, negative disables)
	RetryDelay     int    `json:"retryDelay" yaml:"retryDelay"`         // Seconds before the first retry (default: 1)
	Timeout        int    `json:"timeout" yaml:"timeout"`               // Read timeout in seconds (default: 30)
	ConnectTimeout int    `json:"connectTimeout" yaml:"connectTimeout"` // Connect timeout in seconds (default: 10)
	IncludeRawData bool   `json:"includeRawData" yaml:"includeRawData"` // Keep undecoded payloads on Page.Raw
	PTABBaseURL    string `json:"ptabBaseURL" yaml:"ptabBaseURL"`       // Base URL for PTAB endpoints (default: BaseURL)

	// Headers are sent with every request. They do not replace X-API-KEY.
	Headers map[string]string `json:"headers" yaml:"headers"`
	// RetryStatuses are the response codes retried by the default transport
	// (default: 429, 500, 502, 503, 504).
	RetryStatuses []int `json:"retryStatuses" yaml:"retryStatuses"`

	// Transport replaces the default resty transport.
	Transport Transport `json:"-" yaml:"-"`
	// Logger receives request and data-mismatch logs (default: slog.Default()).
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://api.uspto.gov",
		UserAgent:      "PatentDev/USPTO-ODP/1.0",
		MaxRetries:     3,
		RetryDelay:     1,
		Timeout:        30,
		ConnectTimeout: 10,
		RetryStatuses:  slices.Clone(defaultRetryStatuses),
	}
}

// NewClient creates a new USPTO ODP API client.
// Most endpoints require an API key from https://data.uspto.gov/myodp.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// Apply defaults
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = defaults.MaxRetries
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = defaults.RetryDelay
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = defaults.ConnectTimeout
	}
	if len(config.RetryStatuses) == 0 {
		config.RetryStatuses = defaults.RetryStatuses
	}

	base, err := url.Parse(config.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", config.BaseURL)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.PTABBaseURL != "" {
		ptab, err := url.Parse(config.PTABBaseURL)
		if err != nil || ptab.Scheme == "" || ptab.Host == "" {
			return nil, fmt.Errorf("invalid PTAB base URL %q", config.PTABBaseURL)
		}
		config.PTABBaseURL = strings.TrimRight(config.PTABBaseURL, "/")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	transport := config.Transport
	if transport == nil {
		transport = NewRestyTransport(config)
	}

	return &Client{
		config:    config,
		transport: transport,
		logger:    logger,
	}, nil
}

// endpoint joins path to the base URL, escaping each id into the matching %s verb.
func (c *Client) endpoint(path string, ids ...string) (string, error) {
	return c.endpointAt(c.config.BaseURL, path, ids...)
}

// ptabEndpoint is endpoint against PTABBaseURL, falling back to BaseURL.
func (c *Client) ptabEndpoint(path string) (string, error) {
	base := c.config.PTABBaseURL
	if base == "" {
		base = c.config.BaseURL
	}
	return c.endpointAt(base, path)
}

func (c *Client) endpointAt(base, path string, ids ...string) (string, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return "", fmt.Errorf("empty path parameter for %s", path)
		}
		escaped, err := pathEscape(id)
		if err != nil {
			return "", err
		}
		args[i] = escaped
	}
	return base + "/" + fmt.Sprintf(path, args...), nil
}

// call performs one request and returns the 2xx response. Any other status
// is mapped to a typed error; all errors carry the method and endpoint.
func (c *Client) call(ctx context.Context, op string, req *Request) (_ *RawResponse, err error) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	c.logger.DebugContext(ctx, "calling endpoint", "op", op, "method", req.Method, "url", req.URL, "query", req.Query.Encode())

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.Stream != nil {
			resp.Body, _ = io.ReadAll(io.LimitReader(resp.Stream, 1<<20))
			resp.Stream.Close()
		}
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, responseError(resp))
	}
	return resp, nil
}

// get issues a GET and returns the buffered body.
func (c *Client) get(ctx context.Context, op, endpoint string, params Params) ([]byte, error) {
	resp, err := c.call(ctx, op, &Request{Method: http.MethodGet, URL: endpoint, Query: params.Values()})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// post issues a POST with a JSON body and returns the buffered body.
func (c *Client) post(ctx context.Context, op, endpoint string, body any) ([]byte, error) {
	resp, err := c.call(ctx, op, &Request{Method: http.MethodPost, URL: endpoint, Body: body})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// keepRaw stores the payload on page when the client is configured to.
func keepRaw[T any](c *Client, page *Page[T], body []byte) *Page[T] {
	if c.config.IncludeRawData {
		page.Raw = append([]byte(nil), body...)
	}
	return page
}

// checkIdentifier logs a data-mismatch warning when got differs from want.
func (c *Client) checkIdentifier(resource, want, got string) {
	if got != want {
		warnTo(c.logger, WarningDataMismatch, "API returned a different record than requested",
			"resource", resource, "requested", want, "returned", got)
	}
}
