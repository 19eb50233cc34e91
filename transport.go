package odp

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Transport performs one HTTP exchange. Implementations own connection
// pooling, retries, timeouts and authentication headers.
type Transport interface {
	Do(ctx context.Context, req *Request) (*RawResponse, error)
}

// Request is one call against the API.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	// Body is sent as JSON when non-nil.
	Body any
	// Stream leaves the response body unread in RawResponse.Stream.
	Stream bool
}

// RawResponse is the undecoded result of a Request. Exactly one of Body and
// Stream is set; callers must Close a streamed response.
type RawResponse struct {
	StatusCode    int
	Header        http.Header
	Body          []byte
	Stream        io.ReadCloser
	ContentLength int64
}

// JSON decodes the buffered body into v.
func (r *RawResponse) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Text returns the buffered body as a string.
func (r *RawResponse) Text() string {
	return string(r.Body)
}

// Close releases a streamed body.
func (r *RawResponse) Close() error {
	if r.Stream == nil {
		return nil
	}
	return r.Stream.Close()
}

// defaultRetryStatuses are retried when Config.RetryStatuses is empty.
var defaultRetryStatuses = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// retryOn returns a resty retry condition matching the given status codes.
func retryOn(statuses []int) resty.RetryConditionFunc {
	if len(statuses) == 0 {
		statuses = defaultRetryStatuses
	}
	return func(resp *resty.Response, _ error) bool {
		return resp != nil && resp.RawResponse != nil && slices.Contains(statuses, resp.StatusCode())
	}
}

type restyTransport struct {
	client *resty.Client
}

// NewRestyTransport returns the default Transport built on resty. It sets the
// X-API-KEY, User-Agent and Config.Headers, follows redirects and retries
// Config.RetryStatuses with backoff.
func NewRestyTransport(config *Config) Transport {
	dialer := &net.Dialer{
		Timeout:   time.Duration(config.ConnectTimeout) * time.Second,
		KeepAlive: 30 * time.Second,
	}
	httpTransport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: time.Duration(config.Timeout) * time.Second,
	}

	client := resty.New().
		SetTransport(httpTransport).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json")
	client.SetHeaders(config.Headers)
	if config.APIKey != "" {
		client.SetHeader("X-API-KEY", config.APIKey)
	}
	if config.MaxRetries > 0 {
		client.
			SetRetryCount(config.MaxRetries).
			SetRetryWaitTime(time.Duration(config.RetryDelay) * time.Second).
			SetRetryMaxWaitTime(time.Duration(config.RetryDelay*8) * time.Second).
			AddRetryCondition(retryOn(config.RetryStatuses))
	}

	log := config.Logger
	if log == nil {
		log = slog.Default()
	}
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.DebugContext(resp.Request.Context(), "response received",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return &restyTransport{client: client}
}

func (t *restyTransport) Do(ctx context.Context, req *Request) (*RawResponse, error) {
	r := t.client.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	if req.Stream {
		r.SetDoNotParseResponse(true)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	raw := &RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
	}
	if req.Stream {
		raw.Stream = resp.RawBody()
		raw.ContentLength = resp.RawResponse.ContentLength
	} else {
		raw.Body = resp.Body()
		raw.ContentLength = int64(len(raw.Body))
	}
	return raw, nil
}

// errorBody is the error envelope returned by the API.
type errorBody struct {
	Code              any    `json:"code"`
	Message           string `json:"message"`
	Error             string `json:"error"`
	ErrorDetails      string `json:"errorDetails"`
	DetailedError     string `json:"detailedError"`
	RequestIdentifier string `json:"requestIdentifier"`
}

// responseError maps a non-2xx response to a typed error.
func responseError(resp *RawResponse) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	details := body.ErrorDetails
	if details == "" {
		details = body.DetailedError
	}
	if details == "" && body.Message == "" && body.Error == "" && len(resp.Body) > 0 && len(resp.Body) < 512 {
		details = string(resp.Body)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		msg := message
		if details != "" {
			msg += ": " + details
		}
		return &AuthError{StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &RateLimitError{RetryAfter: retryAfter, Message: message}
	}
	return &APIError{
		StatusCode:        resp.StatusCode,
		Message:           message,
		Details:           details,
		RequestIdentifier: body.RequestIdentifier,
	}
}
