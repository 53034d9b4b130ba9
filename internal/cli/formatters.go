package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/vitrin/vitrin-cli/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 80))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteProductsTable renders products as an aligned text table.
func WriteProductsTable(w io.Writer, products []models.Product) {
	table := NewTableFormatter(w)
	table.Header("ID", "NAME", "PRICE", "STOCK", "ORDERS", "CATEGORY")
	for _, p := range products {
		category := p.CategoryName
		if category == "" {
			category = "-"
		}
		table.Row(
			p.ID,
			TruncateString(p.Name, 32),
			fmt.Sprintf("$%.2f", p.Price),
			strconv.Itoa(p.TotalQuantity),
			strconv.Itoa(p.TotalOrders),
			category,
		)
	}
	table.Flush()
}

// WriteCategoriesTable renders categories as an aligned text table.
func WriteCategoriesTable(w io.Writer, categories []models.Category) {
	table := NewTableFormatter(w)
	table.Header("ID", "NAME", "CREATED")
	for _, c := range categories {
		table.Row(c.ID, TruncateString(c.Name, 32), c.CreatedAt.Format("2006-01-02"))
	}
	table.Flush()
}

// TruncateString truncates a string to the specified length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
