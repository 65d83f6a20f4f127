package repuestos_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, repuestos.Cliente{IDCliente: 1}.Key())
	assert.Equal(t, 2, repuestos.Equivalencia{IDEquivalencia: 2}.Key())
	assert.Equal(t, 3, repuestos.Proveedor{IDProveedor: 3}.Key())
	assert.Equal(t, 4, repuestos.Repuesto{IDRepuesto: 4}.Key())
	assert.Equal(t, 5, repuestos.Venta{IDRegistroVenta: 5}.Key())
	assert.Equal(t, 6, repuestos.Usuario{IDUsuario: 6}.Key())
}

func TestCliente_Matches(t *testing.T) {
	t.Parallel()

	cliente := repuestos.Cliente{
		Nombre:       "Juan",
		Apellido:     "Pérez",
		Email:        "juan.perez@example.com",
		NroDocumento: "30111222",
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query", query: "", want: true},
		{name: "name case insensitive", query: "JUAN", want: true},
		{name: "surname", query: "pér", want: true},
		{name: "email", query: "example.com", want: true},
		{name: "document", query: "3011", want: true},
		{name: "no match", query: "gomez", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cliente.Matches(tt.query))
		})
	}
}

func TestCliente_FullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Juan Pérez", repuestos.Cliente{Nombre: "Juan", Apellido: "Pérez"}.FullName())
	assert.Equal(t, "Juan", repuestos.Cliente{Nombre: "Juan"}.FullName())
}

func TestRepuesto_Matches(t *testing.T) {
	t.Parallel()

	repuesto := repuestos.Repuesto{
		Texto:             "Filtro de aceite",
		MarcaAuto:         "Ford",
		ModeloAuto:        "Focus",
		CodigoOEMOriginal: "AB-123",
		MarcaOEM:          "Motorcraft",
	}

	assert.True(t, repuesto.Matches("filtro"))
	assert.True(t, repuesto.Matches("ford"))
	assert.True(t, repuesto.Matches("ab-1"))
	assert.True(t, repuesto.Matches("motorcraft"))
	assert.False(t, repuesto.Matches("bosch"))
}

func TestRepuesto_HasEquivalencia(t *testing.T) {
	t.Parallel()

	assert.False(t, repuestos.Repuesto{}.HasEquivalencia())
	assert.True(t, repuestos.Repuesto{IDEquivalencia: 7}.HasEquivalencia())
}

func TestRepuesto_JSON(t *testing.T) {
	t.Parallel()

	body := `{
		"id_repuesto": 12,
		"texto": "Pastillas de freno",
		"marca_auto": "Fiat",
		"modelo_auto": "Palio",
		"codigo_OEM_original": "FR-77",
		"marca_OEM": "Bosch",
		"año": "2015",
		"motor": "1.4",
		"imagen_url": "",
		"id_equivalencia": 3,
		"precio": 15400.50
	}`

	var repuesto repuestos.Repuesto
	require.NoError(t, json.Unmarshal([]byte(body), &repuesto))

	assert.Equal(t, 12, repuesto.Key())
	assert.Equal(t, "2015", repuesto.Anio)
	assert.Equal(t, 3, repuesto.IDEquivalencia)
	assert.True(t, decimal.RequireFromString("15400.5").Equal(repuesto.Precio))
	assert.Nil(t, repuesto.Equivalencia)

	encoded, err := json.Marshal(repuesto)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"año":"2015"`)
	assert.Contains(t, string(encoded), `"precio":15400.5`)
	assert.NotContains(t, string(encoded), `"equivalencia"`)
}

func TestVenta_Matches(t *testing.T) {
	t.Parallel()

	venta := repuestos.Venta{FechaVenta: "2026-10-18"}
	assert.True(t, venta.Matches("2026-10"))
	assert.False(t, venta.Matches("juan"))

	venta.Cliente = &repuestos.Cliente{Nombre: "Juan"}
	venta.Repuesto = &repuestos.Repuesto{Texto: "Bujía"}

	assert.True(t, venta.Matches("juan"))
	assert.True(t, venta.Matches("bujía"))
	assert.False(t, venta.Matches("correa"))
}

func TestTotalVenta(t *testing.T) {
	t.Parallel()

	total := repuestos.TotalVenta(3, decimal.RequireFromString("10.10"))
	assert.True(t, decimal.RequireFromString("30.30").Equal(total), total.String())

	assert.True(t, repuestos.TotalVenta(0, decimal.RequireFromString("5")).IsZero())
}

func TestParseRol(t *testing.T) {
	t.Parallel()

	for _, rol := range repuestos.Roles() {
		parsed, err := repuestos.ParseRol(string(rol))
		require.NoError(t, err)
		assert.Equal(t, rol, parsed)
	}

	parsed, err := repuestos.ParseRol("  Admin ")
	require.NoError(t, err)
	assert.Equal(t, repuestos.RolAdmin, parsed)

	_, err = repuestos.ParseRol("root")
	require.ErrorIs(t, err, repuestos.ErrInvalidRole)
}

func TestUsuario_Matches(t *testing.T) {
	t.Parallel()

	usuario := repuestos.Usuario{Nombre: "Ana", Apellido: "López", Email: "ana@example.com", Rol: repuestos.RolManager}

	assert.True(t, usuario.Matches("MANAGER"))
	assert.True(t, usuario.Matches("lópez"))
	assert.False(t, usuario.Matches("viewer"))
}

func TestVentaCreateRequest_Prepare(t *testing.T) {
	t.Parallel()

	req := &repuestos.VentaCreateRequest{
		IDRepuesto:     1,
		IDCliente:      2,
		Cantidad:       2,
		PrecioUnitario: decimal.RequireFromString("12.5"),
		PrecioTotal:    decimal.RequireFromString("999"),
		FechaVenta:     "2026-10-18",
	}

	req.Prepare()

	assert.True(t, decimal.NewFromInt(25).Equal(req.PrecioTotal))

	encoded, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"precio_total":25`)
}

func TestVentaUpdateRequest_Prepare(t *testing.T) {
	t.Parallel()

	t.Run("both fields present", func(t *testing.T) {
		t.Parallel()

		cantidad := 4
		precio := decimal.RequireFromString("2.5")
		req := &repuestos.VentaUpdateRequest{Cantidad: &cantidad, PrecioUnitario: &precio}

		req.Prepare()

		require.NotNil(t, req.PrecioTotal)
		assert.True(t, decimal.NewFromInt(10).Equal(*req.PrecioTotal))
	})
}
