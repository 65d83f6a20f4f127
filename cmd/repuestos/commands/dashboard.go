package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/store"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show a summary of customers, parts and sales",
		Long:  "Load customers, parts and sales and display their counts and the total sales amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				clientes := store.NewClientes(ctx, s.client.Clientes(), store.WithLogger(s.logger))
				parts := store.NewRepuestos(ctx, s.client.Repuestos(), store.WithLogger(s.logger))
				ventas := store.NewVentas(ctx, s.client.Ventas(), store.WithLogger(s.logger))

				for _, msg := range []string{clientes.Err(), parts.Err(), ventas.Err()} {
					if msg != "" {
						return fmt.Errorf("%w: %s", constants.ErrDashboardLoad, msg)
					}
				}

				summary := store.Summarize(clientes.Items(), parts.Items(), ventas.Items())

				format, err := outputFormat()
				if err != nil {
					return err
				}

				if format != constants.FormatTable {
					return encode(cmd.OutOrStdout(), format, summary)
				}

				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.Header("Metric", "Value")

				_ = table.Append("Clientes", strconv.Itoa(summary.Clientes))
				_ = table.Append("Repuestos", strconv.Itoa(summary.Repuestos))
				_ = table.Append("Repuestos sin equivalencia", strconv.Itoa(summary.SinEquivalencia))
				_ = table.Append("Ventas", strconv.Itoa(summary.Ventas))
				_ = table.Append("Total ventas", formatAmount(summary.TotalVentas))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
