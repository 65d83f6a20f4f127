package repuestos

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Process-wide; see the package documentation.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is implemented by every record type served by the API.
type Entity interface {
	// Key returns the server-assigned primary key.
	Key() int
	// Matches reports whether the record matches a free text query. An empty
	// query matches every record.
	Matches(query string) bool
}

// Cliente represents a customer.
type Cliente struct {
	IDCliente    int    `json:"id_cliente"    yaml:"id_cliente"`
	Nombre       string `json:"nombre"        yaml:"nombre"`
	Apellido     string `json:"apellido"      yaml:"apellido"`
	Telefono     string `json:"telefono"      yaml:"telefono"`
	Email        string `json:"email"         yaml:"email"`
	Direccion    string `json:"direccion"     yaml:"direccion"`
	NroDocumento string `json:"nro_documento" yaml:"nro_documento"`
}

// Key implements Entity.
func (c Cliente) Key() int { return c.IDCliente }

// Matches implements Entity.
func (c Cliente) Matches(query string) bool {
	return containsFold(c.Nombre, query) ||
		containsFold(c.Apellido, query) ||
		containsFold(c.Email, query) ||
		strings.Contains(c.NroDocumento, query)
}

// FullName returns "Nombre Apellido".
func (c Cliente) FullName() string {
	return strings.TrimSpace(c.Nombre + " " + c.Apellido)
}

// Equivalencia maps an original OEM code to an equivalent one. Order matters.
type Equivalencia struct {
	IDEquivalencia       int    `json:"id_equivalencia"        yaml:"id_equivalencia"`
	CodigoOEMOriginal    string `json:"codigo_OEM_original"    yaml:"codigo_OEM_original"`
	CodigoOEMEquivalente string `json:"codigo_OEM_equivalente" yaml:"codigo_OEM_equivalente"`
}

// Key implements Entity.
func (e Equivalencia) Key() int { return e.IDEquivalencia }

// Matches implements Entity.
func (e Equivalencia) Matches(query string) bool {
	return containsFold(e.CodigoOEMOriginal, query) || containsFold(e.CodigoOEMEquivalente, query)
}

// Proveedor represents a supplier.
type Proveedor struct {
	IDProveedor int    `json:"id_proveedor" yaml:"id_proveedor"`
	Nombre      string `json:"nombre"       yaml:"nombre"`
	Direccion   string `json:"direccion"    yaml:"direccion"`
	Telefono    string `json:"telefono"     yaml:"telefono"`
	Email       string `json:"email"        yaml:"email"`
}

// Key implements Entity.
func (p Proveedor) Key() int { return p.IDProveedor }

// Matches implements Entity.
func (p Proveedor) Matches(query string) bool {
	return containsFold(p.Nombre, query) ||
		containsFold(p.Email, query) ||
		strings.Contains(p.Telefono, query)
}

// NoEquivalencia is the IDEquivalencia of a part without an equivalence.
const NoEquivalencia = 0

// Repuesto represents a spare part.
type Repuesto struct {
	IDRepuesto        int             `json:"id_repuesto"            yaml:"id_repuesto"`
	Texto             string          `json:"texto"                  yaml:"texto"`
	MarcaAuto         string          `json:"marca_auto"             yaml:"marca_auto"`
	ModeloAuto        string          `json:"modelo_auto"            yaml:"modelo_auto"`
	CodigoOEMOriginal string          `json:"codigo_OEM_original"    yaml:"codigo_OEM_original"`
	MarcaOEM          string          `json:"marca_OEM"              yaml:"marca_OEM"`
	Anio              string          `json:"año"                    yaml:"año"`
	Motor             string          `json:"motor"                  yaml:"motor"`
	ImagenURL         string          `json:"imagen_url"             yaml:"imagen_url"`
	IDEquivalencia    int             `json:"id_equivalencia"        yaml:"id_equivalencia"`
	Precio            decimal.Decimal `json:"precio"                 yaml:"precio"`
	Equivalencia      *Equivalencia   `json:"equivalencia,omitempty" yaml:"equivalencia,omitempty"`
}

// Key implements Entity.
func (r Repuesto) Key() int { return r.IDRepuesto }

// Matches implements Entity.
func (r Repuesto) Matches(query string) bool {
	return containsFold(r.Texto, query) ||
		containsFold(r.MarcaAuto, query) ||
		containsFold(r.ModeloAuto, query) ||
		containsFold(r.CodigoOEMOriginal, query) ||
		containsFold(r.MarcaOEM, query)
}

// HasEquivalencia reports whether the part references an equivalence record.
func (r Repuesto) HasEquivalencia() bool {
	return r.IDEquivalencia != NoEquivalencia
}

// Venta represents a sale of a part to a customer.
type Venta struct {
	IDRegistroVenta int             `json:"id_registro_venta"  yaml:"id_registro_venta"`
	IDRepuesto      int             `json:"id_repuesto"        yaml:"id_repuesto"`
	IDCliente       int             `json:"id_cliente"         yaml:"id_cliente"`
	Cantidad        int             `json:"cantidad"           yaml:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"    yaml:"precio_unitario"`
	PrecioTotal     decimal.Decimal `json:"precio_total"       yaml:"precio_total"`
	FechaVenta      string          `json:"fecha_venta"        yaml:"fecha_venta"`
	Cliente         *Cliente        `json:"cliente,omitempty"  yaml:"cliente,omitempty"`
	Repuesto        *Repuesto       `json:"repuesto,omitempty" yaml:"repuesto,omitempty"`
}

// Key implements Entity.
func (v Venta) Key() int { return v.IDRegistroVenta }

// Matches implements Entity. Populated customer and part fields are searched
// when present.
func (v Venta) Matches(query string) bool {
	if strings.Contains(v.FechaVenta, query) {
		return true
	}

	if v.Cliente != nil && v.Cliente.Matches(query) {
		return true
	}

	return v.Repuesto != nil && v.Repuesto.Matches(query)
}

// TotalVenta returns cantidad × precioUnitario.
func TotalVenta(cantidad int, precioUnitario decimal.Decimal) decimal.Decimal {
	return precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
}

// Rol is a console user role.
type Rol string

// Known roles.
const (
	RolAdmin    Rol = "admin"
	RolManager  Rol = "manager"
	RolEmployee Rol = "employee"
	RolViewer   Rol = "viewer"
)

// Roles returns every known role.
func Roles() []Rol {
	return []Rol{RolAdmin, RolManager, RolEmployee, RolViewer}
}

// ParseRol converts s into a known role.
func ParseRol(s string) (Rol, error) {
	candidate := Rol(strings.ToLower(strings.TrimSpace(s)))
	for _, rol := range Roles() {
		if candidate == rol {
			return rol, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Usuario represents a console user.
type Usuario struct {
	IDUsuario int    `json:"id_usuario" yaml:"id_usuario"`
	Nombre    string `json:"nombre"     yaml:"nombre"`
	Apellido  string `json:"apellido"   yaml:"apellido"`
	Rol       Rol    `json:"rol"        yaml:"rol"`
	Email     string `json:"email"      yaml:"email"`
}

// Key implements Entity.
func (u Usuario) Key() int { return u.IDUsuario }

// Matches implements Entity.
func (u Usuario) Matches(query string) bool {
	return containsFold(u.Nombre, query) ||
		containsFold(u.Apellido, query) ||
		containsFold(u.Email, query) ||
		containsFold(string(u.Rol), query)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
