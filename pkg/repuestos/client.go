package repuestos

import (
	"context"
	"time"
)

// Resource path segments exposed by the API.
const (
	ResourceClientes      = "clientes"
	ResourceEquivalencias = "equivalencias"
	ResourceProveedores   = "proveedores"
	ResourceRepuestos     = "repuestos"
	ResourceVentas        = "ventas"
	ResourceUsuarios      = "usuarios"
)

// Resources returns every resource path segment in display order.
func Resources() []string {
	return []string{
		ResourceClientes,
		ResourceRepuestos,
		ResourceVentas,
		ResourceEquivalencias,
		ResourceProveedores,
		ResourceUsuarios,
	}
}

// ResourceClient provides list, get, create, update, and delete against one
// REST resource. T is the record type, C the create request and U the update
// request.
type ResourceClient[T Entity, C any, U any] interface {
	// Resource returns the path segment this client talks to, e.g. "clientes".
	Resource() string
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, request *C) (*T, error)
	Update(ctx context.Context, id int, request *U) (*T, error)
	Delete(ctx context.Context, id int) error
}

// ClientesClient manages customers.
type ClientesClient = ResourceClient[Cliente, ClienteCreateRequest, ClienteUpdateRequest]

// ProveedoresClient manages suppliers.
type ProveedoresClient = ResourceClient[Proveedor, ProveedorCreateRequest, ProveedorUpdateRequest]

// UsuariosClient manages console users.
type UsuariosClient = ResourceClient[Usuario, UsuarioCreateRequest, UsuarioUpdateRequest]

// EquivalenciasClient manages OEM code equivalences.
type EquivalenciasClient interface {
	ResourceClient[Equivalencia, EquivalenciaCreateRequest, EquivalenciaUpdateRequest]

	// Search returns the OEM codes equivalent to codigo.
	Search(ctx context.Context, codigo string) ([]string, error)
}

// RepuestosClient manages parts.
type RepuestosClient interface {
	ResourceClient[Repuesto, RepuestoCreateRequest, RepuestoUpdateRequest]

	// Search runs the server-side free text part search.
	Search(ctx context.Context, query string) ([]Repuesto, error)
}

// VentasClient manages sales.
type VentasClient interface {
	ResourceClient[Venta, VentaCreateRequest, VentaUpdateRequest]

	// ListWithDetails lists sales with the referenced customer and part populated.
	ListWithDetails(ctx context.Context) ([]Venta, error)
}

// Client provides access to every resource client.
type Client interface {
	Clientes() ClientesClient
	Equivalencias() EquivalenciasClient
	Proveedores() ProveedoresClient
	Repuestos() RepuestosClient
	Ventas() VentasClient
	Usuarios() UsuariosClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Timeouts and retries
//
// By default a request is attempted once and is bounded only by the context
// passed to each call. HTTPTimeout sets a per-attempt timeout on the
// underlying transport. RetryMax > 0 enables retries with exponential backoff
// on connection errors, 429 and 5xx responses.
type Config struct {
	// APIEndpoint: base URL of the API (e.g., "https://api.example.com/api").
	// repuestosclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// HTTPTimeout: optional per-attempt HTTP timeout. Zero means none.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Interceptors: optional chain run around every request.
	Interceptors *InterceptorChain
}
