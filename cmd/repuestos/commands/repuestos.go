package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var repuestoColumns = []string{"id", "texto", "marca", "modelo", "año", "código oem", "marca oem", "precio", "equivalencia"}

func repuestoRow(r repuestos.Repuesto) []string {
	equivalencia := constants.None
	if r.HasEquivalencia() {
		equivalencia = itoa(r.IDEquivalencia)
	}

	return []string{
		itoa(r.IDRepuesto),
		truncate(r.Texto, constants.DescriptionDisplayLength),
		r.MarcaAuto,
		r.ModeloAuto,
		orNotAvailable(r.Anio),
		r.CodigoOEMOriginal,
		r.MarcaOEM,
		formatAmount(r.Precio),
		equivalencia,
	}
}

// NewRepuestosCommand creates the parts command group.
func NewRepuestosCommand() *cobra.Command {
	return createResourceCommand(ResourceConfig[repuestos.Repuesto, repuestos.RepuestoCreateRequest, repuestos.RepuestoUpdateRequest]{
		Use:      "repuestos",
		Aliases:  []string{"repuesto", "rp"},
		Singular: "repuesto",
		Short:    "Manage spare parts",
		Long:     "List, view, create, update, delete and search spare parts",
		Columns:  repuestoColumns,
		Row:      repuestoRow,
		Client: func(client repuestos.Client) repuestos.ResourceClient[repuestos.Repuesto, repuestos.RepuestoCreateRequest, repuestos.RepuestoUpdateRequest] {
			return client.Repuestos()
		},
		CreateFlags: func(flags *pflag.FlagSet) func() (*repuestos.RepuestoCreateRequest, error) {
			request := &repuestos.RepuestoCreateRequest{}
			flags.StringVar(&request.Texto, "texto", "", "part description (required)")
			flags.StringVar(&request.MarcaAuto, "marca", "", "car make (required)")
			flags.StringVar(&request.ModeloAuto, "modelo", "", "car model (required)")
			flags.StringVar(&request.CodigoOEMOriginal, "codigo-oem", "", "original OEM code (required)")
			flags.StringVar(&request.MarcaOEM, "marca-oem", "", "OEM brand (required)")
			flags.StringVar(&request.Anio, "anio", "", "model year (required)")
			flags.StringVar(&request.Motor, "motor", "", "engine (required)")
			flags.StringVar(&request.ImagenURL, "imagen-url", "", "image URL")
			flags.IntVar(&request.IDEquivalencia, "equivalencia", repuestos.NoEquivalencia, "equivalence id (0 for none)")
			flags.String("precio", "", "price (required)")

			return func() (*repuestos.RepuestoCreateRequest, error) {
				precio, err := decimalFlag(flags, "precio")
				if err != nil {
					return nil, err
				}

				request.Precio = precio

				return request, nil
			}
		},
		UpdateFlags: func(flags *pflag.FlagSet) func() (*repuestos.RepuestoUpdateRequest, error) {
			flags.String("texto", "", "part description")
			flags.String("marca", "", "car make")
			flags.String("modelo", "", "car model")
			flags.String("codigo-oem", "", "original OEM code")
			flags.String("marca-oem", "", "OEM brand")
			flags.String("anio", "", "model year")
			flags.String("motor", "", "engine")
			flags.String("imagen-url", "", "image URL")
			flags.Int("equivalencia", repuestos.NoEquivalencia, "equivalence id (0 for none)")
			flags.String("precio", "", "price")

			return func() (*repuestos.RepuestoUpdateRequest, error) {
				precio, err := optionalDecimal(flags, "precio")
				if err != nil {
					return nil, err
				}

				return &repuestos.RepuestoUpdateRequest{
					Texto:             optionalString(flags, "texto"),
					MarcaAuto:         optionalString(flags, "marca"),
					ModeloAuto:        optionalString(flags, "modelo"),
					CodigoOEMOriginal: optionalString(flags, "codigo-oem"),
					MarcaOEM:          optionalString(flags, "marca-oem"),
					Anio:              optionalString(flags, "anio"),
					Motor:             optionalString(flags, "motor"),
					ImagenURL:         optionalString(flags, "imagen-url"),
					IDEquivalencia:    optionalInt(flags, "equivalencia"),
					Precio:            precio,
				}, nil
			}
		},
		Extra: []*cobra.Command{newRepuestosSearchCommand()},
	})
}

func newRepuestosSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search spare parts",
		Long:  "Search parts by description, car make and model, OEM code or OEM brand on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				found, err := s.client.Repuestos().Search(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to search repuestos: %w", err)
				}

				return renderRows(cmd.OutOrStdout(), found, repuestoColumns, rowsOf(found, repuestoRow))
			})
		},
	}
}
