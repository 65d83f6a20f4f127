package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Spanish)

// parseFormat validates an output format name.
func parseFormat(format string) (string, error) {
	switch format = strings.ToLower(strings.TrimSpace(format)); format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

func outputFormat() (string, error) {
	format := viper.GetString(keyOutput)
	if format == "" {
		return constants.FormatTable, nil
	}

	return parseFormat(format)
}

// headings title-cases column names.
func headings(columns []string) []interface{} {
	cells := make([]interface{}, len(columns))
	for i, column := range columns {
		cells[i] = titleCaser.String(column)
	}

	return cells
}

// renderRows prints rows as a table, or value as json or yaml.
func renderRows(out io.Writer, value interface{}, columns []string, rows [][]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format != constants.FormatTable {
		return encode(out, format, value)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(out, "No records found")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(headings(columns)...)

	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}

		_ = table.Append(cells...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderRecord prints one record as a property/value table, or as json or yaml.
func renderRecord(out io.Writer, value interface{}, columns []string, row []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format != constants.FormatTable {
		return encode(out, format, value)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for i, column := range columns {
		_ = table.Append(titleCaser.String(column), row[i])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func truncate(value string, length int) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	return string(runes[:length-3]) + "..."
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return constants.NotAvailable
	}

	return value
}
