package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/fivetwenty-io/repuestos/pkg/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewEquivalenciasCommand creates the OEM code equivalences command group.
func NewEquivalenciasCommand() *cobra.Command {
	return createResourceCommand(ResourceConfig[repuestos.Equivalencia, repuestos.EquivalenciaCreateRequest, repuestos.EquivalenciaUpdateRequest]{
		Use:      "equivalencias",
		Aliases:  []string{"equivalencia", "eq"},
		Singular: "equivalencia",
		Short:    "Manage OEM code equivalences",
		Long:     "List, view, create, update, delete and search equivalences between OEM part codes",
		Columns:  []string{"id", "código oem original", "código oem equivalente"},
		Row: func(e repuestos.Equivalencia) []string {
			return []string{itoa(e.IDEquivalencia), e.CodigoOEMOriginal, e.CodigoOEMEquivalente}
		},
		Client: func(client repuestos.Client) repuestos.ResourceClient[repuestos.Equivalencia, repuestos.EquivalenciaCreateRequest, repuestos.EquivalenciaUpdateRequest] {
			return client.Equivalencias()
		},
		CreateFlags: func(flags *pflag.FlagSet) func() (*repuestos.EquivalenciaCreateRequest, error) {
			request := &repuestos.EquivalenciaCreateRequest{}
			flags.StringVar(&request.CodigoOEMOriginal, "original", "", "original OEM code (required)")
			flags.StringVar(&request.CodigoOEMEquivalente, "equivalente", "", "equivalent OEM code (required)")

			return func() (*repuestos.EquivalenciaCreateRequest, error) {
				return request, nil
			}
		},
		UpdateFlags: func(flags *pflag.FlagSet) func() (*repuestos.EquivalenciaUpdateRequest, error) {
			flags.String("original", "", "original OEM code")
			flags.String("equivalente", "", "equivalent OEM code")

			return func() (*repuestos.EquivalenciaUpdateRequest, error) {
				return &repuestos.EquivalenciaUpdateRequest{
					CodigoOEMOriginal:    optionalString(flags, "original"),
					CodigoOEMEquivalente: optionalString(flags, "equivalente"),
				}, nil
			}
		},
		Extra: []*cobra.Command{newEquivalenciasSearchCommand()},
	})
}

func newEquivalenciasSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search CODE",
		Short: "Find equivalent OEM codes",
		Long:  "List the OEM codes recorded as equivalent to CODE, in either direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				search := store.NewEquivalenceSearch(s.client.Equivalencias())

				codes, err := search.Search(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to search equivalences of %s: %w", args[0], err)
				}

				rows := make([][]string, 0, len(codes))
				for _, code := range codes {
					rows = append(rows, []string{code})
				}

				return renderRows(cmd.OutOrStdout(), codes, []string{"código equivalente"}, rows)
			})
		},
	}
}
