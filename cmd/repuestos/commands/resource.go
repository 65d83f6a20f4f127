package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/fivetwenty-io/repuestos/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ResourceConfig describes the command group of one API resource.
type ResourceConfig[T repuestos.Entity, C any, U any] struct {
	Use      string
	Aliases  []string
	Singular string
	Short    string
	Long     string
	Columns  []string
	Row      func(T) []string
	Client   func(repuestos.Client) repuestos.ResourceClient[T, C, U]

	// CreateFlags registers the create flags and returns the request builder.
	CreateFlags func(*pflag.FlagSet) func() (*C, error)
	// UpdateFlags registers the update flags and returns the request builder.
	// The builder only sets the fields whose flags were given.
	UpdateFlags func(*pflag.FlagSet) func() (*U, error)

	// Details, when set, adds --details to list. Details lists the records
	// with their references populated, shown with DetailColumns and DetailRow.
	Details       func(ctx context.Context, client repuestos.Client) ([]T, error)
	DetailColumns []string
	DetailRow     func(T) []string

	// Extra subcommands added to the group.
	Extra []*cobra.Command
}

// createResourceCommand creates the list, get, create, update and delete
// subcommands of a resource.
func createResourceCommand[T repuestos.Entity, C any, U any](config ResourceConfig[T, C, U]) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.Use,
		Aliases: config.Aliases,
		Short:   config.Short,
		Long:    config.Long,
	}

	cmd.AddCommand(newResourceListCommand(config))
	cmd.AddCommand(newResourceGetCommand(config))
	cmd.AddCommand(newResourceCreateCommand(config))
	cmd.AddCommand(newResourceUpdateCommand(config))
	cmd.AddCommand(newResourceDeleteCommand(config))

	for _, extra := range config.Extra {
		cmd.AddCommand(extra)
	}

	return cmd
}

func (c ResourceConfig[T, C, U]) newStore(s *session) *store.Store[T, C, U] {
	return store.New[T, C, U](context.Background(), c.Client(s.client), s.storeOptions()...)
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}

	return rows
}

func newResourceListCommand[T repuestos.Entity, C any, U any](config ResourceConfig[T, C, U]) *cobra.Command {
	var (
		search  string
		details bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + config.Use,
		Long:  fmt.Sprintf("List all %s, optionally filtered by a search term", config.Use),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				if details {
					return listDetails(ctx, cmd, s, config, search)
				}

				records := config.newStore(s)

				err := records.Load(ctx)
				if err != nil {
					return fmt.Errorf("failed to list %s: %w", config.Use, err)
				}

				items := records.Filter(search)

				return renderRows(cmd.OutOrStdout(), items, config.Columns, rowsOf(items, config.Row))
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only show records matching this text")

	if config.Details != nil {
		cmd.Flags().BoolVar(&details, "details", false, "include referenced records")
	}

	return cmd
}

func newResourceGetCommand[T repuestos.Entity, C any, U any](config ResourceConfig[T, C, U]) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get " + config.Singular + " details",
		Long:  fmt.Sprintf("Display detailed information about a specific %s", config.Singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				record, err := config.Client(s.client).Get(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to get %s %d: %w", config.Singular, id, err)
				}

				return renderRecord(cmd.OutOrStdout(), record, config.Columns, config.Row(*record))
			})
		},
	}
}

func newResourceCreateCommand[T repuestos.Entity, C any, U any](config ResourceConfig[T, C, U]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create " + config.Singular,
		Long:  fmt.Sprintf("Create a new %s", config.Singular),
		Args:  cobra.NoArgs,
	}

	build := config.CreateFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		request, err := build()
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session) error {
			created, err := config.newStore(s).Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", config.Singular, err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Created %s %d\n", config.Singular, (*created).Key())

			return renderRecord(cmd.OutOrStdout(), created, config.Columns, config.Row(*created))
		})
	}

	return cmd
}

func newResourceUpdateCommand[T repuestos.Entity, C any, U any](config ResourceConfig[T, C, U]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update " + config.Singular,
		Long:  fmt.Sprintf("Update the given fields of an existing %s", config.Singular),
		Args:  cobra.ExactArgs(1),
	}

	build := config.UpdateFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if !anyLocalFlagChanged(cmd) {
			return constants.ErrNoFieldsToUpdate
		}

		request, err := build()
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session) error {
			updated, err := config.newStore(s).Update(ctx, id, request)
			if err != nil {
				return fmt.Errorf("failed to update %s %d: %w", config.Singular, id, err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Updated %s %d\n", config.Singular, id)

			return renderRecord(cmd.OutOrStdout(), updated, config.Columns, config.Row(*updated))
		})
	}

	return cmd
}

func newResourceDeleteCommand[T repuestos.Entity, C any, U any](config ResourceConfig[T, C, U]) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete " + config.Singular,
		Long:  fmt.Sprintf("Delete a %s. Asks for confirmation unless --force is given", config.Singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				err = confirmDelete(cmd, config.Singular+" "+strconv.Itoa(id))
				if errors.Is(err, constants.ErrDeleteCancelled) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

					return nil
				}

				if err != nil {
					return err
				}
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				err := config.newStore(s).Delete(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to delete %s %d: %w", config.Singular, id, err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted %s %d\n", config.Singular, id)

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func listDetails[T repuestos.Entity, C any, U any](
	ctx context.Context, cmd *cobra.Command, s *session, config ResourceConfig[T, C, U], search string,
) error {
	all, err := config.Details(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", config.Use, err)
	}

	items := make([]T, 0, len(all))
	for _, item := range all {
		if item.Matches(search) {
			items = append(items, item)
		}
	}

	return renderRows(cmd.OutOrStdout(), items, config.DetailColumns, rowsOf(items, config.DetailRow))
}

func anyLocalFlagChanged(cmd *cobra.Command) bool {
	changed := false

	cmd.LocalNonPersistentFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			changed = true
		}
	})

	return changed
}

// Flag helpers shared by the resource definitions.

func optionalString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}

	value, _ := flags.GetString(name)

	return &value
}

func optionalInt(flags *pflag.FlagSet, name string) *int {
	if !flags.Changed(name) {
		return nil
	}

	value, _ := flags.GetInt(name)

	return &value
}

func optionalDecimal(flags *pflag.FlagSet, name string) (*decimal.Decimal, error) {
	if !flags.Changed(name) {
		return nil, nil
	}

	value, err := decimalFlag(flags, name)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// decimalFlag parses a string flag holding an amount. An empty value is zero.
func decimalFlag(flags *pflag.FlagSet, name string) (decimal.Decimal, error) {
	raw, _ := flags.GetString(name)
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}

	return value, nil
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}
