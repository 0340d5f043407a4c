package errors

import (
	"errors"
	"net/http"
)

// Kind identifies one member of the closed domain error taxonomy.
type Kind string

const (
	// KindNotFound means no rows satisfied a read predicate.
	KindNotFound Kind = "NOT_FOUND"
	// KindBadRequest means a write affected zero rows or the mutation
	// payload was structurally empty.
	KindBadRequest Kind = "BAD_REQUEST"
	// KindForbidden means the actor's role does not permit the action.
	KindForbidden Kind = "FORBIDDEN"
)

// Error is a domain error carrying a stable kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a KindNotFound error.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// BadRequest builds a KindBadRequest error.
func BadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Forbidden builds a KindForbidden error.
func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

// KindOf extracts the taxonomy kind from err. The second return is false for
// errors outside the taxonomy; infrastructure failures pass through unkinded.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsNotFound reports whether err is a KindNotFound domain error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsBadRequest reports whether err is a KindBadRequest domain error.
func IsBadRequest(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindBadRequest
}

// IsForbidden reports whether err is a KindForbidden domain error.
func IsForbidden(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindForbidden
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors for the transport layer.
func MapErrorToHTTP(err error) *HTTPError {
	kind, ok := KindOf(err)
	if !ok {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
	switch kind {
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), string(KindNotFound))
	case KindForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), string(KindForbidden))
	default:
		return NewHTTPError(http.StatusBadRequest, err.Error(), string(KindBadRequest))
	}
}
