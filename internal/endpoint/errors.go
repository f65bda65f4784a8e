package endpoint

import (
	"errors"
	"fmt"
	"net/http"
)

// Common API errors. A TransportError for one of these statuses unwraps to
// the matching sentinel.
var (
	// ErrUnauthorized is returned when credentials are rejected.
	ErrUnauthorized = errors.New("unauthorized: check your API credentials")
	// ErrForbidden is returned when the credentials lack access.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned when the service throttles the client.
	ErrRateLimited = errors.New("rate limited: try again later")
)

// TransportError means the request did not produce a usable 2xx response:
// either the connection failed or the server answered with another status.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the request succeeded but the body could not be read
// into the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is (or wraps) a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// statusSentinel maps well-known statuses to their sentinel error.
func statusSentinel(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}
