package commands

import (
	"context"
	"time"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func ventaRow(v repuestos.Venta) []string {
	return []string{
		itoa(v.IDRegistroVenta),
		orNotAvailable(v.FechaVenta),
		itoa(v.IDCliente),
		itoa(v.IDRepuesto),
		itoa(v.Cantidad),
		formatAmount(v.PrecioUnitario),
		formatAmount(v.PrecioTotal),
	}
}

func ventaDetailRow(v repuestos.Venta) []string {
	cliente := constants.NotAvailable
	if v.Cliente != nil {
		cliente = v.Cliente.FullName()
	}

	repuesto := constants.NotAvailable
	if v.Repuesto != nil {
		repuesto = truncate(v.Repuesto.Texto, constants.DescriptionDisplayLength)
	}

	return []string{
		itoa(v.IDRegistroVenta),
		orNotAvailable(v.FechaVenta),
		cliente,
		repuesto,
		itoa(v.Cantidad),
		formatAmount(v.PrecioUnitario),
		formatAmount(v.PrecioTotal),
	}
}

// NewVentasCommand creates the sales command group.
func NewVentasCommand() *cobra.Command {
	return createResourceCommand(ResourceConfig[repuestos.Venta, repuestos.VentaCreateRequest, repuestos.VentaUpdateRequest]{
		Use:      "ventas",
		Aliases:  []string{"venta", "vt"},
		Singular: "venta",
		Short:    "Manage sales",
		Long:     "List, view, register, update and delete part sales. Totals are computed from quantity and unit price.",
		Columns:  []string{"id", "fecha", "cliente", "repuesto", "cantidad", "precio unitario", "total"},
		Row:      ventaRow,
		Client: func(client repuestos.Client) repuestos.ResourceClient[repuestos.Venta, repuestos.VentaCreateRequest, repuestos.VentaUpdateRequest] {
			return client.Ventas()
		},
		CreateFlags: func(flags *pflag.FlagSet) func() (*repuestos.VentaCreateRequest, error) {
			request := &repuestos.VentaCreateRequest{}
			flags.IntVar(&request.IDCliente, "cliente", 0, "customer id (required)")
			flags.IntVar(&request.IDRepuesto, "repuesto", 0, "part id (required)")
			flags.IntVar(&request.Cantidad, "cantidad", 1, "quantity")
			flags.String("precio-unitario", "", "unit price (required)")
			flags.StringVar(&request.FechaVenta, "fecha", "", "sale date, YYYY-MM-DD (default today)")

			return func() (*repuestos.VentaCreateRequest, error) {
				precio, err := decimalFlag(flags, "precio-unitario")
				if err != nil {
					return nil, err
				}

				request.PrecioUnitario = precio

				if request.FechaVenta == "" {
					request.FechaVenta = time.Now().Format(constants.DateLayout)
				}

				return request, nil
			}
		},
		UpdateFlags: func(flags *pflag.FlagSet) func() (*repuestos.VentaUpdateRequest, error) {
			flags.Int("cliente", 0, "customer id")
			flags.Int("repuesto", 0, "part id")
			flags.Int("cantidad", 0, "quantity")
			flags.String("precio-unitario", "", "unit price")
			flags.String("fecha", "", "sale date, YYYY-MM-DD")

			return func() (*repuestos.VentaUpdateRequest, error) {
				precio, err := optionalDecimal(flags, "precio-unitario")
				if err != nil {
					return nil, err
				}

				return &repuestos.VentaUpdateRequest{
					IDCliente:      optionalInt(flags, "cliente"),
					IDRepuesto:     optionalInt(flags, "repuesto"),
					Cantidad:       optionalInt(flags, "cantidad"),
					PrecioUnitario: precio,
					FechaVenta:     optionalString(flags, "fecha"),
				}, nil
			}
		},
		Details: func(ctx context.Context, client repuestos.Client) ([]repuestos.Venta, error) {
			return client.Ventas().ListWithDetails(ctx)
		},
		DetailColumns: []string{"id", "fecha", "cliente", "repuesto", "cantidad", "precio unitario", "total"},
		DetailRow:     ventaDetailRow,
	})
}
