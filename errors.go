package odp

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
)

// ErrInvalidPagination is returned when a page cannot be advanced.
var ErrInvalidPagination = errors.New("invalid pagination state")

// ErrMissingDownloadURL is returned when a record has no download location.
var ErrMissingDownloadURL = errors.New("record has no download URL")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode        int
	Message           string
	Details           string
	RequestIdentifier string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error (status %d)", e.StatusCode)
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Details != "" {
		b.WriteString(" - " + e.Details)
	}
	if e.RequestIdentifier != "" {
		b.WriteString(" (request " + e.RequestIdentifier + ")")
	}
	return b.String()
}

// AuthError represents an authentication error
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Message)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// RateLimitError represents a rate limit error
type RateLimitError struct {
	RetryAfter int // seconds
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter == 0 {
		return "rate limited: " + e.Message
	}
	return fmt.Sprintf("rate limited, retry after %d seconds", e.RetryAfter)
}

// PaginationError explains why NextPage could not proceed.
type PaginationError struct {
	Reason string
}

func (e *PaginationError) Error() string {
	return ErrInvalidPagination.Error() + ": " + e.Reason
}

func (e *PaginationError) Unwrap() error { return ErrInvalidPagination }

// AlreadyExistsError is returned when a download would overwrite an existing file.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

func (e *AlreadyExistsError) Unwrap() error { return fs.ErrExist }

// DecodeError is returned when a payload does not have the expected top-level shape.
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError or a 404 APIError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
