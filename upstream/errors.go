package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the commerce API. Message carries the
// server-reported text verbatim when the error body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("commerce api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("commerce api: %d", e.Status)
}

// IsNotFound reports whether err is a 404 from the commerce API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsConflict reports whether err is a 409 from the commerce API.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict
}

// ServerMessage returns the verbatim upstream message, or "" when err is a
// transport failure with no server-reported text.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
