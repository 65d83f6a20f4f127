package repuestos

import "github.com/shopspring/decimal"

// Preparer is implemented by requests that derive fields before submission.
type Preparer interface {
	Prepare()
}

// ClienteCreateRequest represents a request to create a customer.
type ClienteCreateRequest struct {
	Nombre       string `json:"nombre"        yaml:"nombre"        validate:"notblank"`
	Apellido     string `json:"apellido"      yaml:"apellido"      validate:"notblank"`
	Telefono     string `json:"telefono"      yaml:"telefono"      validate:"notblank"`
	Email        string `json:"email"         yaml:"email"         validate:"required,email"`
	Direccion    string `json:"direccion"     yaml:"direccion"     validate:"notblank"`
	NroDocumento string `json:"nro_documento" yaml:"nro_documento" validate:"notblank"`
}

// ClienteUpdateRequest represents a request to update a customer. Nil fields are not sent.
type ClienteUpdateRequest struct {
	Nombre       *string `json:"nombre,omitempty"        yaml:"nombre,omitempty"        validate:"omitempty,notblank"`
	Apellido     *string `json:"apellido,omitempty"      yaml:"apellido,omitempty"      validate:"omitempty,notblank"`
	Telefono     *string `json:"telefono,omitempty"      yaml:"telefono,omitempty"      validate:"omitempty,notblank"`
	Email        *string `json:"email,omitempty"         yaml:"email,omitempty"         validate:"omitempty,email"`
	Direccion    *string `json:"direccion,omitempty"     yaml:"direccion,omitempty"     validate:"omitempty,notblank"`
	NroDocumento *string `json:"nro_documento,omitempty" yaml:"nro_documento,omitempty" validate:"omitempty,notblank"`
}

// EquivalenciaCreateRequest represents a request to create an equivalence.
// The two codes must differ, ignoring case and surrounding spaces.
type EquivalenciaCreateRequest struct {
	CodigoOEMOriginal    string `json:"codigo_OEM_original"    yaml:"codigo_OEM_original"    validate:"notblank"`
	CodigoOEMEquivalente string `json:"codigo_OEM_equivalente" yaml:"codigo_OEM_equivalente" validate:"notblank"`
}

// EquivalenciaUpdateRequest represents a request to update an equivalence.
type EquivalenciaUpdateRequest struct {
	CodigoOEMOriginal    *string `json:"codigo_OEM_original,omitempty"    yaml:"codigo_OEM_original,omitempty"    validate:"omitempty,notblank"`
	CodigoOEMEquivalente *string `json:"codigo_OEM_equivalente,omitempty" yaml:"codigo_OEM_equivalente,omitempty" validate:"omitempty,notblank"`
}

// ProveedorCreateRequest represents a request to create a supplier.
type ProveedorCreateRequest struct {
	Nombre    string `json:"nombre"    yaml:"nombre"    validate:"notblank"`
	Direccion string `json:"direccion" yaml:"direccion" validate:"notblank"`
	Telefono  string `json:"telefono"  yaml:"telefono"  validate:"notblank"`
	Email     string `json:"email"     yaml:"email"     validate:"required,email"`
}

// ProveedorUpdateRequest represents a request to update a supplier.
type ProveedorUpdateRequest struct {
	Nombre    *string `json:"nombre,omitempty"    yaml:"nombre,omitempty"    validate:"omitempty,notblank"`
	Direccion *string `json:"direccion,omitempty" yaml:"direccion,omitempty" validate:"omitempty,notblank"`
	Telefono  *string `json:"telefono,omitempty"  yaml:"telefono,omitempty"  validate:"omitempty,notblank"`
	Email     *string `json:"email,omitempty"     yaml:"email,omitempty"     validate:"omitempty,email"`
}

// RepuestoCreateRequest represents a request to create a part.
type RepuestoCreateRequest struct {
	Texto             string          `json:"texto"               yaml:"texto"               validate:"notblank"`
	MarcaAuto         string          `json:"marca_auto"          yaml:"marca_auto"          validate:"notblank"`
	ModeloAuto        string          `json:"modelo_auto"         yaml:"modelo_auto"         validate:"notblank"`
	CodigoOEMOriginal string          `json:"codigo_OEM_original" yaml:"codigo_OEM_original" validate:"notblank"`
	MarcaOEM          string          `json:"marca_OEM"           yaml:"marca_OEM"           validate:"notblank"`
	Anio              string          `json:"año"                 yaml:"año"                 validate:"notblank"`
	Motor             string          `json:"motor"               yaml:"motor"               validate:"notblank"`
	ImagenURL         string          `json:"imagen_url"          yaml:"imagen_url"          validate:"omitempty,url"`
	IDEquivalencia    int             `json:"id_equivalencia"     yaml:"id_equivalencia"     validate:"gte=0"`
	Precio            decimal.Decimal `json:"precio"              yaml:"precio"              validate:"gt=0"`
}

// RepuestoUpdateRequest represents a request to update a part.
type RepuestoUpdateRequest struct {
	Texto             *string          `json:"texto,omitempty"               yaml:"texto,omitempty"               validate:"omitempty,notblank"`
	MarcaAuto         *string          `json:"marca_auto,omitempty"          yaml:"marca_auto,omitempty"          validate:"omitempty,notblank"`
	ModeloAuto        *string          `json:"modelo_auto,omitempty"         yaml:"modelo_auto,omitempty"         validate:"omitempty,notblank"`
	CodigoOEMOriginal *string          `json:"codigo_OEM_original,omitempty" yaml:"codigo_OEM_original,omitempty" validate:"omitempty,notblank"`
	MarcaOEM          *string          `json:"marca_OEM,omitempty"           yaml:"marca_OEM,omitempty"           validate:"omitempty,notblank"`
	Anio              *string          `json:"año,omitempty"                 yaml:"año,omitempty"                 validate:"omitempty,notblank"`
	Motor             *string          `json:"motor,omitempty"               yaml:"motor,omitempty"               validate:"omitempty,notblank"`
	ImagenURL         *string          `json:"imagen_url,omitempty"          yaml:"imagen_url,omitempty"          validate:"omitempty,url"`
	IDEquivalencia    *int             `json:"id_equivalencia,omitempty"     yaml:"id_equivalencia,omitempty"     validate:"omitempty,gte=0"`
	Precio            *decimal.Decimal `json:"precio,omitempty"              yaml:"precio,omitempty"              validate:"omitempty,gt=0"`
}

// VentaCreateRequest represents a request to register a sale. PrecioTotal is
// derived by Prepare and any caller-provided value is overwritten.
type VentaCreateRequest struct {
	IDRepuesto     int             `json:"id_repuesto"     yaml:"id_repuesto"     validate:"gte=1"`
	IDCliente      int             `json:"id_cliente"      yaml:"id_cliente"      validate:"gte=1"`
	Cantidad       int             `json:"cantidad"        yaml:"cantidad"        validate:"gte=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" yaml:"precio_unitario" validate:"gt=0"`
	PrecioTotal    decimal.Decimal `json:"precio_total"    yaml:"precio_total"`
	FechaVenta     string          `json:"fecha_venta"     yaml:"fecha_venta"     validate:"required,datetime=2006-01-02"`
}

// Prepare implements Preparer.
func (r *VentaCreateRequest) Prepare() {
	r.PrecioTotal = TotalVenta(r.Cantidad, r.PrecioUnitario)
}

// VentaUpdateRequest represents a request to update a sale. PrecioTotal is
// recomputed by Prepare when both Cantidad and PrecioUnitario are set. The
// ventas client fills in whichever of the two is missing from the current sale.
type VentaUpdateRequest struct {
	IDRepuesto     *int             `json:"id_repuesto,omitempty"     yaml:"id_repuesto,omitempty"     validate:"omitempty,gte=1"`
	IDCliente      *int             `json:"id_cliente,omitempty"      yaml:"id_cliente,omitempty"      validate:"omitempty,gte=1"`
	Cantidad       *int             `json:"cantidad,omitempty"        yaml:"cantidad,omitempty"        validate:"omitempty,gte=1"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty" yaml:"precio_unitario,omitempty" validate:"omitempty,gt=0"`
	PrecioTotal    *decimal.Decimal `json:"precio_total,omitempty"    yaml:"precio_total,omitempty"`
	FechaVenta     *string          `json:"fecha_venta,omitempty"     yaml:"fecha_venta,omitempty"     validate:"omitempty,datetime=2006-01-02"`
}

// Prepare implements Preparer.
func (r *VentaUpdateRequest) Prepare() {
	if r.Cantidad == nil || r.PrecioUnitario == nil {
		return
	}

	total := TotalVenta(*r.Cantidad, *r.PrecioUnitario)
	r.PrecioTotal = &total
}

// UsuarioCreateRequest represents a request to create a console user.
type UsuarioCreateRequest struct {
	Nombre   string `json:"nombre"   yaml:"nombre"   validate:"notblank"`
	Apellido string `json:"apellido" yaml:"apellido" validate:"notblank"`
	Rol      Rol    `json:"rol"      yaml:"rol"      validate:"required,oneof=admin manager employee viewer"`
	Email    string `json:"email"    yaml:"email"    validate:"required,email"`
}

// UsuarioUpdateRequest represents a request to update a console user.
type UsuarioUpdateRequest struct {
	Nombre   *string `json:"nombre,omitempty"   yaml:"nombre,omitempty"   validate:"omitempty,notblank"`
	Apellido *string `json:"apellido,omitempty" yaml:"apellido,omitempty" validate:"omitempty,notblank"`
	Rol      *Rol    `json:"rol,omitempty"      yaml:"rol,omitempty"      validate:"omitempty,oneof=admin manager employee viewer"`
	Email    *string `json:"email,omitempty"    yaml:"email,omitempty"    validate:"omitempty,email"`
}
