package commands

import (
	"fmt"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the repuestos CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			if format != constants.FormatTable {
				return encode(cmd.OutOrStdout(), format, info)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")
			_ = table.Append("Version", info.Version)
			_ = table.Append("Commit", info.Commit)
			_ = table.Append("Built", info.Built)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
