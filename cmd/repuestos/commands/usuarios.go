package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewUsuariosCommand creates the console users command group.
func NewUsuariosCommand() *cobra.Command {
	roles := make([]string, 0, len(repuestos.Roles()))
	for _, rol := range repuestos.Roles() {
		roles = append(roles, string(rol))
	}

	rolUsage := fmt.Sprintf("role (%s)", strings.Join(roles, ", "))

	return createResourceCommand(ResourceConfig[repuestos.Usuario, repuestos.UsuarioCreateRequest, repuestos.UsuarioUpdateRequest]{
		Use:      "usuarios",
		Aliases:  []string{"usuario", "us"},
		Singular: "usuario",
		Short:    "Manage console users",
		Long:     "List, view, create, update and delete console users and their roles",
		Columns:  []string{"id", "nombre", "rol", "email"},
		Row: func(u repuestos.Usuario) []string {
			return []string{
				itoa(u.IDUsuario),
				strings.TrimSpace(u.Nombre + " " + u.Apellido),
				string(u.Rol),
				orNotAvailable(u.Email),
			}
		},
		Client: func(client repuestos.Client) repuestos.ResourceClient[repuestos.Usuario, repuestos.UsuarioCreateRequest, repuestos.UsuarioUpdateRequest] {
			return client.Usuarios()
		},
		CreateFlags: func(flags *pflag.FlagSet) func() (*repuestos.UsuarioCreateRequest, error) {
			request := &repuestos.UsuarioCreateRequest{}
			flags.StringVar(&request.Nombre, "nombre", "", "first name (required)")
			flags.StringVar(&request.Apellido, "apellido", "", "last name (required)")
			flags.StringVar(&request.Email, "email", "", "email address (required)")
			flags.String("rol", string(repuestos.RolViewer), rolUsage)

			return func() (*repuestos.UsuarioCreateRequest, error) {
				value, _ := flags.GetString("rol")

				rol, err := repuestos.ParseRol(value)
				if err != nil {
					return nil, err
				}

				request.Rol = rol

				return request, nil
			}
		},
		UpdateFlags: func(flags *pflag.FlagSet) func() (*repuestos.UsuarioUpdateRequest, error) {
			flags.String("nombre", "", "first name")
			flags.String("apellido", "", "last name")
			flags.String("email", "", "email address")
			flags.String("rol", "", rolUsage)

			return func() (*repuestos.UsuarioUpdateRequest, error) {
				request := &repuestos.UsuarioUpdateRequest{
					Nombre:   optionalString(flags, "nombre"),
					Apellido: optionalString(flags, "apellido"),
					Email:    optionalString(flags, "email"),
				}

				if value := optionalString(flags, "rol"); value != nil {
					rol, err := repuestos.ParseRol(*value)
					if err != nil {
						return nil, err
					}

					request.Rol = &rol
				}

				return request, nil
			}
		},
	})
}
