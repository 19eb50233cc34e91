package odp

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// captureHandler records every log record it receives.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

// warnings returns the records tagged with kind.
func (h *captureHandler) warnings(kind WarningKind) []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range h.records {
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == WarningKey && a.Value.String() == string(kind) {
				out = append(out, r)
				return false
			}
			return true
		})
	}
	return out
}

// capturePackageWarnings routes decode warnings to a fresh handler for the duration of t.
func capturePackageWarnings(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })
	return h
}

// newTestClient starts srv and returns a client pointed at it with retries disabled.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *captureHandler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logs := &captureHandler{}
	client, err := NewClient(&Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		MaxRetries: -1,
		Logger:     slog.New(logs),
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client, logs
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
