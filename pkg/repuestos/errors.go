package repuestos

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure kinds. Transport and decoding failures wrap these so callers can
// branch with errors.Is.
var (
	ErrTransport  = errors.New("transport failure")
	ErrDecoding   = errors.New("decoding failure")
	ErrValidation = errors.New("invalid request")
)

// Common static errors that can be wrapped with context.
var (
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidID               = errors.New("id must be a positive integer")
	ErrConfigRequired          = errors.New("config is required")
	ErrAPIEndpointRequired     = errors.New("API endpoint is required")
	ErrNATSConfigRequired      = errors.New("NATS config is required")
	ErrUnsupportedNotifierType = errors.New("unsupported notifier type")
)

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int    `json:"status_code"       yaml:"status_code"`
	Method     string `json:"method"            yaml:"method"`
	Path       string `json:"path"              yaml:"path"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
	Body       []byte `json:"-"                 yaml:"-"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, strings.TrimSpace(status))
	}

	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, strings.TrimSpace(status), e.Message)
}

// NewHTTPError builds an HTTPError, extracting a message from the body when
// the API sent one.
func NewHTTPError(statusCode int, method, path string, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Message:    ParseErrorMessage(body),
		Body:       body,
	}
}

// ParseErrorMessage extracts a human readable message from an error body.
// JSON bodies carrying "message", "error" or "detail" are understood; short
// plain text bodies are returned as is.
func ParseErrorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}

	err := json.Unmarshal(body, &payload)
	if err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		case payload.Detail != "":
			return payload.Detail
		}

		return ""
	}

	const maxPlainMessage = 200
	if len(trimmed) > maxPlainMessage || strings.HasPrefix(trimmed, "<") {
		return ""
	}

	return trimmed
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

// IsStatus checks if the error is an HTTPError with the given status.
func IsStatus(err error, status int) bool {
	return StatusCode(err) == status
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsTransport checks if the error is a network failure where no response was received.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
