package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures the way the admin console reports them:
// a request that never made it, a payload the server rejected, or
// a mutation target that does not exist.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindValidation
	KindNotFound
)

// HTTPError carries an HTTP status code alongside a user-facing message.
type HTTPError struct {
	Code    int
	Kind    Kind
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError builds an HTTPError with an explicit status code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewNetworkError marks a failure to reach or get a sane answer from upstream.
func NewNetworkError(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadGateway, Kind: KindNetwork, Message: message}
}

// NewValidationError marks a payload the server (or we) rejected.
func NewValidationError(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

// NewNotFoundError marks a mutation or lookup target that does not exist.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Kind: KindNotFound, Message: message}
}

// IsKind reports whether err (or anything it wraps) is an HTTPError of kind k.
func IsKind(err error, k Kind) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Kind == k
	}
	return false
}

// IsNetwork reports whether err is a network-class failure.
func IsNetwork(err error) bool { return IsKind(err, KindNetwork) }

// IsValidation reports whether err is a validation-class failure.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsNotFound reports whether err is a not-found-class failure.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// StatusCode extracts the HTTP status from err, defaulting to 500.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
