package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the AutoBudget server is unreachable.
	ErrUnavailable = errors.New("autobudget server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("api request timed out")
)

// HTTPError is a non-2xx response from the server.
type HTTPError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// IsNetworkError reports whether err is a failed request or a non-2xx
// response. These are the errors that trigger an optimistic rollback.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout) || errors.As(err, &he)
}

func errorCode(err error) string {
	var he *HTTPError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.As(err, &he):
		return fmt.Sprintf("HTTP_%d", he.Status)
	default:
		return "UNKNOWN"
	}
}
