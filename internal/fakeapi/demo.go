package fakeapi

import (
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/shopspring/decimal"
)

// SeedDemo loads a small, consistent data set for manual testing.
func (s *Server) SeedDemo() error {
	seeds := []struct {
		resource string
		records  []interface{}
	}{
		{repuestos.ResourceClientes, []interface{}{
			repuestos.Cliente{
				Nombre: "Ana", Apellido: "Diaz", Telefono: "555", Email: "a@x.com",
				Direccion: "Calle 1", NroDocumento: "123",
			},
			repuestos.Cliente{
				Nombre: "Juan", Apellido: "Pérez", Telefono: "555-0101", Email: "juan@example.com",
				Direccion: "Av. Siempre Viva 742", NroDocumento: "30111222",
			},
		}},
		{repuestos.ResourceEquivalencias, []interface{}{
			repuestos.Equivalencia{CodigoOEMOriginal: "04465-02140", CodigoOEMEquivalente: "BP4K-33-23Z"},
			repuestos.Equivalencia{CodigoOEMOriginal: "90915-YZZD4", CodigoOEMEquivalente: "W712/75"},
		}},
		{repuestos.ResourceRepuestos, []interface{}{
			repuestos.Repuesto{
				Texto: "Pastillas de freno delanteras", MarcaAuto: "Toyota", ModeloAuto: "Corolla",
				CodigoOEMOriginal: "04465-02140", MarcaOEM: "Toyota", Anio: "2015", Motor: "1.8",
				IDEquivalencia: 1, Precio: decimal.RequireFromString("150"),
			},
			repuestos.Repuesto{
				Texto: "Filtro de aceite", MarcaAuto: "Toyota", ModeloAuto: "Hilux",
				CodigoOEMOriginal: "90915-YZZD4", MarcaOEM: "Toyota", Anio: "2018", Motor: "2.8",
				IDEquivalencia: 2, Precio: decimal.RequireFromString("12.5"),
			},
			repuestos.Repuesto{
				Texto: "Bujía", MarcaAuto: "Fiat", ModeloAuto: "Palio",
				CodigoOEMOriginal: "55229294", MarcaOEM: "NGK", Anio: "2010", Motor: "1.4",
				Precio: decimal.RequireFromString("8.75"),
			},
		}},
		{repuestos.ResourceVentas, []interface{}{
			repuestos.Venta{
				IDCliente: 1, IDRepuesto: 1, Cantidad: 3, FechaVenta: "2024-05-10",
				PrecioUnitario: decimal.RequireFromString("150"), PrecioTotal: decimal.RequireFromString("450"),
			},
			repuestos.Venta{
				IDCliente: 2, IDRepuesto: 2, Cantidad: 2, FechaVenta: "2024-05-11",
				PrecioUnitario: decimal.RequireFromString("12.5"), PrecioTotal: decimal.RequireFromString("25"),
			},
		}},
		{repuestos.ResourceProveedores, []interface{}{
			repuestos.Proveedor{Nombre: "Repuestera Norte", Direccion: "Ruta 9 km 12", Telefono: "555-0200", Email: "ventas@norte.example.com"},
		}},
		{repuestos.ResourceUsuarios, []interface{}{
			repuestos.Usuario{Nombre: "Admin", Apellido: "Local", Rol: repuestos.RolAdmin, Email: "admin@example.com"},
		}},
	}

	for _, seed := range seeds {
		if err := s.Seed(seed.resource, seed.records...); err != nil {
			return err
		}
	}

	return nil
}
