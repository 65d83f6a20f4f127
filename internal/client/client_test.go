package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/repuestos/internal/fakeapi"
	internalhttp "github.com/fivetwenty-io/repuestos/internal/http"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	return NewWithHTTPClient(internalhttp.NewClient(baseURL))
}

func newFakeAPI(t *testing.T) (*fakeapi.Server, *Client) {
	t.Helper()

	api := fakeapi.New()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	return api, NewTestClient(server.URL)
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, repuestos.ErrConfigRequired)

	_, err = New(&repuestos.Config{})
	require.ErrorIs(t, err, repuestos.ErrAPIEndpointRequired)

	client, err := New(&repuestos.Config{APIEndpoint: "https://api.example.com/api", RetryMax: 2})
	require.NoError(t, err)

	var _ repuestos.Client = client

	assert.Equal(t, repuestos.ResourceClientes, client.Clientes().Resource())
	assert.Equal(t, repuestos.ResourceEquivalencias, client.Equivalencias().Resource())
	assert.Equal(t, repuestos.ResourceProveedores, client.Proveedores().Resource())
	assert.Equal(t, repuestos.ResourceRepuestos, client.Repuestos().Resource())
	assert.Equal(t, repuestos.ResourceVentas, client.Ventas().Resource())
	assert.Equal(t, repuestos.ResourceUsuarios, client.Usuarios().Resource())
}

func TestResourceClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id_cliente": 2, "nombre": "Ana"},
			{"id_cliente": 1, "nombre": "Juan"}
		]`))
	}))
	defer server.Close()

	clientes, err := NewTestClient(server.URL).Clientes().List(context.Background())
	require.NoError(t, err)
	require.Len(t, clientes, 2)
	assert.Equal(t, 2, clientes[0].Key())
	assert.Equal(t, "Juan", clientes[1].Nombre)
}

func TestResourceClient_ListNullBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	usuarios, err := NewTestClient(server.URL).Usuarios().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, usuarios)
	assert.Empty(t, usuarios)
}

func TestResourceClient_DecodingFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).Proveedores().List(context.Background())
	require.ErrorIs(t, err, repuestos.ErrDecoding)

	_, err = NewTestClient(server.URL).Proveedores().Get(context.Background(), 1)
	require.ErrorIs(t, err, repuestos.ErrDecoding)
}

func TestResourceClient_RecordWithoutKey(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"null body":   `null`,
		"empty body":  ``,
		"missing key": `{"nombre": "Ana"}`,
	} {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			cliente, err := NewTestClient(server.URL).Clientes().Create(context.Background(), &repuestos.ClienteCreateRequest{
				Nombre:       "Ana",
				Apellido:     "Diaz",
				Telefono:     "555",
				Email:        "a@x.com",
				Direccion:    "Calle 1",
				NroDocumento: "123",
			})
			require.ErrorIs(t, err, repuestos.ErrDecoding)
			assert.Nil(t, cliente)
		})
	}
}

func TestResourceClient_HTTPFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).Ventas().List(context.Background())
	require.Error(t, err)
	assert.True(t, repuestos.IsStatus(err, http.StatusInternalServerError))
	assert.Contains(t, err.Error(), "listing ventas")
}

func TestResourceClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repuestos/7", r.URL.Path)

		_, _ = w.Write([]byte(`{"id_repuesto": 7, "texto": "Bujía", "año": "2012", "precio": 1200.75}`))
	}))
	defer server.Close()

	repuesto, err := NewTestClient(server.URL).Repuestos().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, repuesto.Key())
	assert.Equal(t, "2012", repuesto.Anio)
	assert.True(t, decimal.RequireFromString("1200.75").Equal(repuesto.Precio))
}

func TestResourceClient_InvalidID(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)

	_, err := client.Clientes().Get(context.Background(), 0)
	require.ErrorIs(t, err, repuestos.ErrInvalidID)

	nombre := "Juan"
	_, err = client.Clientes().Update(context.Background(), -1, &repuestos.ClienteUpdateRequest{Nombre: &nombre})
	require.ErrorIs(t, err, repuestos.ErrInvalidID)

	err = client.Clientes().Delete(context.Background(), 0)
	require.ErrorIs(t, err, repuestos.ErrInvalidID)

	assert.Equal(t, 0, api.Requests())
}

func TestResourceClient_CreateSendsNoKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/proveedores", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NotContains(t, string(body), "id_proveedor")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id_proveedor": 31, "nombre": "Repuestera Norte"}`))
	}))
	defer server.Close()

	proveedor, err := NewTestClient(server.URL).Proveedores().Create(context.Background(), &repuestos.ProveedorCreateRequest{
		Nombre:    "Repuestera Norte",
		Direccion: "Calle 1",
		Telefono:  "555",
		Email:     "norte@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 31, proveedor.Key())
}

func TestResourceClient_ValidationNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)

	_, err := client.Usuarios().Create(context.Background(), &repuestos.UsuarioCreateRequest{
		Nombre:   "Ana",
		Apellido: "López",
		Rol:      "root",
		Email:    "ana@example.com",
	})
	require.ErrorIs(t, err, repuestos.ErrValidation)

	var validationErr *repuestos.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.HasField("rol"))

	_, err = client.Clientes().Create(context.Background(), nil)
	require.ErrorIs(t, err, repuestos.ErrValidation)

	assert.Equal(t, 0, api.Requests())
}

func TestVentasClient_CreateComputesTotal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, 37.5, body["precio_total"], 0.0001)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id_registro_venta": 4, "cantidad": 3, "precio_unitario": 12.5, "precio_total": 37.5}`))
	}))
	defer server.Close()

	venta, err := NewTestClient(server.URL).Ventas().Create(context.Background(), &repuestos.VentaCreateRequest{
		IDRepuesto:     1,
		IDCliente:      1,
		Cantidad:       3,
		PrecioUnitario: decimal.RequireFromString("12.5"),
		FechaVenta:     "2026-10-18",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, venta.Key())
}

func TestVentasClient_PartialUpdateSendsTotal(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	require.NoError(t, api.Seed(repuestos.ResourceVentas, repuestos.Venta{
		IDRepuesto:     1,
		IDCliente:      1,
		Cantidad:       3,
		PrecioUnitario: decimal.NewFromInt(150),
		PrecioTotal:    decimal.NewFromInt(450),
		FechaVenta:     "2026-10-18",
	}))

	cantidad := 4
	venta, err := client.Ventas().Update(context.Background(), 1, &repuestos.VentaUpdateRequest{Cantidad: &cantidad})
	require.NoError(t, err)
	assert.Equal(t, 4, venta.Cantidad)
	assert.True(t, decimal.NewFromInt(600).Equal(venta.PrecioTotal), venta.PrecioTotal.String())

	_, err = client.Ventas().Update(context.Background(), 9, &repuestos.VentaUpdateRequest{Cantidad: &cantidad})
	assert.True(t, repuestos.IsNotFound(err))

	requests := api.Requests()
	zero := 0
	_, err = client.Ventas().Update(context.Background(), 1, &repuestos.VentaUpdateRequest{Cantidad: &zero})
	require.ErrorIs(t, err, repuestos.ErrValidation)
	assert.Equal(t, requests, api.Requests())
}

func TestResourceClient_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	require.NoError(t, api.Seed(repuestos.ResourceUsuarios, repuestos.Usuario{Nombre: "Ana", Rol: repuestos.RolViewer}))

	rol := repuestos.RolAdmin
	usuario, err := client.Usuarios().Update(context.Background(), 1, &repuestos.UsuarioUpdateRequest{Rol: &rol})
	require.NoError(t, err)
	assert.Equal(t, repuestos.RolAdmin, usuario.Rol)
	assert.Equal(t, "Ana", usuario.Nombre)

	require.NoError(t, client.Usuarios().Delete(context.Background(), 1))

	err = client.Usuarios().Delete(context.Background(), 1)
	assert.True(t, repuestos.IsNotFound(err))
}

func TestEquivalenciasClient_Search(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	require.NoError(t, api.Seed(repuestos.ResourceEquivalencias,
		repuestos.Equivalencia{CodigoOEMOriginal: "AB 1/2", CodigoOEMEquivalente: "CD-2"},
	))

	codes, err := client.Equivalencias().Search(context.Background(), "AB 1/2")
	require.NoError(t, err)
	assert.Equal(t, []string{"CD-2"}, codes)

	requests := api.Requests()

	codes, err = client.Equivalencias().Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, codes)
	assert.Equal(t, requests, api.Requests(), "blank codes are not sent")
}

func TestEquivalenciasClient_SearchSendsCodeAsGiven(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/equivalencias/search", r.URL.Path)
		assert.Equal(t, " 04465-02140 ", r.URL.Query().Get("codigo"))

		_, _ = w.Write([]byte(`["BP4K-33-23Z"]`))
	}))
	defer server.Close()

	codes, err := NewTestClient(server.URL).Equivalencias().Search(context.Background(), " 04465-02140 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"BP4K-33-23Z"}, codes)
}

func TestRepuestosClient_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repuestos/search", r.URL.Path)
		assert.Equal(t, "filtro aceite", r.URL.Query().Get("q"))

		_, _ = w.Write([]byte(`[{"id_repuesto": 1, "texto": "Filtro de aceite"}]`))
	}))
	defer server.Close()

	found, err := NewTestClient(server.URL).Repuestos().Search(context.Background(), "filtro aceite")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Filtro de aceite", found[0].Texto)
}

func TestVentasClient_ListWithDetails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ventas", r.URL.Path)
		assert.Equal(t, "cliente,repuesto", r.URL.Query().Get("include"))

		_, _ = w.Write([]byte(`[{
			"id_registro_venta": 1,
			"cliente": {"id_cliente": 3, "nombre": "Juan"},
			"repuesto": {"id_repuesto": 9, "texto": "Bujía"}
		}]`))
	}))
	defer server.Close()

	ventas, err := NewTestClient(server.URL).Ventas().ListWithDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 1)
	require.NotNil(t, ventas[0].Cliente)
	assert.Equal(t, "Juan", ventas[0].Cliente.Nombre)
	require.NotNil(t, ventas[0].Repuesto)
	assert.Equal(t, 9, ventas[0].Repuesto.Key())
}
