package repuestosclient_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/repuestos/internal/fakeapi"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/fivetwenty-io/repuestos/pkg/repuestosclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &repuestos.Config{
			APIEndpoint: "https://api.example.com/api/",
		}

		client, err := repuestosclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api.example.com/api/", config.APIEndpoint, "config is not modified")
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := repuestosclient.New(nil)
		require.ErrorIs(t, err, repuestos.ErrConfigRequired)

		_, err = repuestosclient.New(&repuestos.Config{APIEndpoint: "  "})
		require.ErrorIs(t, err, repuestos.ErrAPIEndpointRequired)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := repuestosclient.NewWithEndpoint("api.example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"api.example.com/api":         "https://api.example.com/api",
		"https://api.example.com/api/": "https://api.example.com/api",
		"http://localhost:8080//":     "http://localhost:8080",
		" https://api.example.com ":   "https://api.example.com",
	}

	for input, want := range tests {
		assert.Equal(t, want, repuestosclient.NormalizeEndpoint(input), input)
	}
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	api := fakeapi.New()
	require.NoError(t, api.Seed(repuestos.ResourceClientes, repuestos.Cliente{Nombre: "Juan", Apellido: "Pérez"}))

	server := httptest.NewServer(api)
	defer server.Close()

	client, err := repuestosclient.New(&repuestos.Config{APIEndpoint: server.URL + "/"})
	require.NoError(t, err)

	clientes, err := client.Clientes().List(context.Background())
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, "Juan Pérez", clientes[0].FullName())
}
