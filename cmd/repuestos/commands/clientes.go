package commands

import (
	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewClientesCommand creates the customers command group.
func NewClientesCommand() *cobra.Command {
	return createResourceCommand(ResourceConfig[repuestos.Cliente, repuestos.ClienteCreateRequest, repuestos.ClienteUpdateRequest]{
		Use:      "clientes",
		Aliases:  []string{"cliente", "cl"},
		Singular: "cliente",
		Short:    "Manage customers",
		Long:     "List, view, create, update and delete customers",
		Columns:  []string{"id", "nombre", "documento", "teléfono", "email", "dirección"},
		Row: func(c repuestos.Cliente) []string {
			return []string{
				itoa(c.IDCliente),
				c.FullName(),
				orNotAvailable(c.NroDocumento),
				orNotAvailable(c.Telefono),
				orNotAvailable(c.Email),
				truncate(orNotAvailable(c.Direccion), constants.DescriptionDisplayLength),
			}
		},
		Client: func(client repuestos.Client) repuestos.ResourceClient[repuestos.Cliente, repuestos.ClienteCreateRequest, repuestos.ClienteUpdateRequest] {
			return client.Clientes()
		},
		CreateFlags: func(flags *pflag.FlagSet) func() (*repuestos.ClienteCreateRequest, error) {
			request := &repuestos.ClienteCreateRequest{}
			flags.StringVar(&request.Nombre, "nombre", "", "first name (required)")
			flags.StringVar(&request.Apellido, "apellido", "", "last name (required)")
			flags.StringVar(&request.Telefono, "telefono", "", "phone number (required)")
			flags.StringVar(&request.Email, "email", "", "email address (required)")
			flags.StringVar(&request.Direccion, "direccion", "", "address (required)")
			flags.StringVar(&request.NroDocumento, "documento", "", "identity document number (required)")

			return func() (*repuestos.ClienteCreateRequest, error) {
				return request, nil
			}
		},
		UpdateFlags: func(flags *pflag.FlagSet) func() (*repuestos.ClienteUpdateRequest, error) {
			flags.String("nombre", "", "first name")
			flags.String("apellido", "", "last name")
			flags.String("telefono", "", "phone number")
			flags.String("email", "", "email address")
			flags.String("direccion", "", "address")
			flags.String("documento", "", "identity document number")

			return func() (*repuestos.ClienteUpdateRequest, error) {
				return &repuestos.ClienteUpdateRequest{
					Nombre:       optionalString(flags, "nombre"),
					Apellido:     optionalString(flags, "apellido"),
					Telefono:     optionalString(flags, "telefono"),
					Email:        optionalString(flags, "email"),
					Direccion:    optionalString(flags, "direccion"),
					NroDocumento: optionalString(flags, "documento"),
				}, nil
			}
		},
	})
}
