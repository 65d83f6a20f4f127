package client

import (
	"github.com/fivetwenty-io/repuestos/internal/http"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
)

// Client implements the repuestos.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	clientes      repuestos.ClientesClient
	equivalencias repuestos.EquivalenciasClient
	proveedores   repuestos.ProveedoresClient
	repuestos     repuestos.RepuestosClient
	ventas        repuestos.VentasClient
	usuarios      repuestos.UsuariosClient
}

// New creates a new API client. The config is expected to be normalized
// (see repuestosclient.New).
func New(config *repuestos.Config) (*Client, error) {
	if config == nil {
		return nil, repuestos.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, repuestos.ErrAPIEndpointRequired
	}

	opts := []http.Option{
		http.WithUserAgent(config.UserAgent),
		http.WithDebug(config.Debug),
		http.WithTimeout(config.HTTPTimeout),
		http.WithInterceptors(config.Interceptors),
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return NewWithHTTPClient(http.NewClient(config.APIEndpoint, opts...)), nil
}

// NewWithHTTPClient creates a client over an existing transport.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.clientes = NewResourceClient[repuestos.Cliente, repuestos.ClienteCreateRequest, repuestos.ClienteUpdateRequest](
		c.httpClient, repuestos.ResourceClientes)
	c.proveedores = NewResourceClient[repuestos.Proveedor, repuestos.ProveedorCreateRequest, repuestos.ProveedorUpdateRequest](
		c.httpClient, repuestos.ResourceProveedores)
	c.usuarios = NewResourceClient[repuestos.Usuario, repuestos.UsuarioCreateRequest, repuestos.UsuarioUpdateRequest](
		c.httpClient, repuestos.ResourceUsuarios)
	c.equivalencias = NewEquivalenciasClient(c.httpClient)
	c.repuestos = NewRepuestosClient(c.httpClient)
	c.ventas = NewVentasClient(c.httpClient)
}

// Clientes implements repuestos.Client.Clientes.
func (c *Client) Clientes() repuestos.ClientesClient {
	return c.clientes
}

// Equivalencias implements repuestos.Client.Equivalencias.
func (c *Client) Equivalencias() repuestos.EquivalenciasClient {
	return c.equivalencias
}

// Proveedores implements repuestos.Client.Proveedores.
func (c *Client) Proveedores() repuestos.ProveedoresClient {
	return c.proveedores
}

// Repuestos implements repuestos.Client.Repuestos.
func (c *Client) Repuestos() repuestos.RepuestosClient {
	return c.repuestos
}

// Ventas implements repuestos.Client.Ventas.
func (c *Client) Ventas() repuestos.VentasClient {
	return c.ventas
}

// Usuarios implements repuestos.Client.Usuarios.
func (c *Client) Usuarios() repuestos.UsuariosClient {
	return c.usuarios
}
