package commands

import (
	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewProveedoresCommand creates the suppliers command group.
func NewProveedoresCommand() *cobra.Command {
	return createResourceCommand(ResourceConfig[repuestos.Proveedor, repuestos.ProveedorCreateRequest, repuestos.ProveedorUpdateRequest]{
		Use:      "proveedores",
		Aliases:  []string{"proveedor", "pv"},
		Singular: "proveedor",
		Short:    "Manage suppliers",
		Long:     "List, view, create, update and delete suppliers",
		Columns:  []string{"id", "nombre", "teléfono", "email", "dirección"},
		Row: func(p repuestos.Proveedor) []string {
			return []string{
				itoa(p.IDProveedor),
				p.Nombre,
				orNotAvailable(p.Telefono),
				orNotAvailable(p.Email),
				truncate(orNotAvailable(p.Direccion), constants.DescriptionDisplayLength),
			}
		},
		Client: func(client repuestos.Client) repuestos.ResourceClient[repuestos.Proveedor, repuestos.ProveedorCreateRequest, repuestos.ProveedorUpdateRequest] {
			return client.Proveedores()
		},
		CreateFlags: func(flags *pflag.FlagSet) func() (*repuestos.ProveedorCreateRequest, error) {
			request := &repuestos.ProveedorCreateRequest{}
			flags.StringVar(&request.Nombre, "nombre", "", "supplier name (required)")
			flags.StringVar(&request.Direccion, "direccion", "", "address (required)")
			flags.StringVar(&request.Telefono, "telefono", "", "phone number (required)")
			flags.StringVar(&request.Email, "email", "", "email address (required)")

			return func() (*repuestos.ProveedorCreateRequest, error) {
				return request, nil
			}
		},
		UpdateFlags: func(flags *pflag.FlagSet) func() (*repuestos.ProveedorUpdateRequest, error) {
			flags.String("nombre", "", "supplier name")
			flags.String("direccion", "", "address")
			flags.String("telefono", "", "phone number")
			flags.String("email", "", "email address")

			return func() (*repuestos.ProveedorUpdateRequest, error) {
				return &repuestos.ProveedorUpdateRequest{
					Nombre:    optionalString(flags, "nombre"),
					Direccion: optionalString(flags, "direccion"),
					Telefono:  optionalString(flags, "telefono"),
					Email:     optionalString(flags, "email"),
				}, nil
			}
		},
	})
}
