// Package repuestosclient provides the main entry point for creating API clients.
package repuestosclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/client"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
)

// New creates a new API client. The endpoint is normalized: a trailing slash
// is removed and "https://" is added when no scheme is given. The config is
// not modified.
func New(config *repuestos.Config) (repuestos.Client, error) {
	if config == nil {
		return nil, repuestos.ErrConfigRequired
	}

	if strings.TrimSpace(config.APIEndpoint) == "" {
		return nil, repuestos.ErrAPIEndpointRequired
	}

	normalized := *config
	normalized.APIEndpoint = NormalizeEndpoint(config.APIEndpoint)

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NormalizeEndpoint trims whitespace and trailing slashes and defaults the scheme to https.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithEndpoint creates a client with default settings for endpoint.
func NewWithEndpoint(endpoint string) (repuestos.Client, error) {
	return New(&repuestos.Config{APIEndpoint: endpoint})
}
