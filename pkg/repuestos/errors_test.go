package repuestos

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *HTTPError
		expected string
	}{
		{
			name:     "without message",
			err:      &HTTPError{StatusCode: http.StatusInternalServerError, Method: http.MethodGet, Path: "/clientes"},
			expected: "GET /clientes: 500 Internal Server Error",
		},
		{
			name:     "with message",
			err:      NewHTTPError(http.StatusNotFound, http.MethodDelete, "/clientes/9", []byte(`{"message":"cliente no encontrado"}`)),
			expected: "DELETE /clientes/9: 404 Not Found: cliente no encontrado",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: ""},
		{name: "message field", body: `{"message":"duplicated email"}`, want: "duplicated email"},
		{name: "error field", body: `{"error":"bad request"}`, want: "bad request"},
		{name: "detail field", body: `{"detail":"missing nombre"}`, want: "missing nombre"},
		{name: "unknown json", body: `{"code":7}`, want: ""},
		{name: "plain text", body: "upstream unavailable\n", want: "upstream unavailable"},
		{name: "html", body: "<html><body>Bad Gateway</body></html>", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseErrorMessage([]byte(tt.body)))
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting cliente: %w", &HTTPError{StatusCode: http.StatusNotFound})

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsStatus(notFound, http.StatusNotFound))
	assert.Equal(t, http.StatusNotFound, StatusCode(notFound))
	assert.False(t, IsTransport(notFound))

	transport := fmt.Errorf("%w: GET /clientes: %w", ErrTransport, errors.New("connection refused"))

	assert.False(t, IsNotFound(transport))
	assert.Equal(t, 0, StatusCode(transport))
	assert.True(t, IsTransport(transport))
}
