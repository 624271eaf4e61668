package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as a bordered grid table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes rows as a grid table. An empty row set still renders the
// header, so the schema stays visible when a filter matches nothing.
func (t *TableFormatter) Format(columns []string, rows []map[string]interface{}) error {
	columns = columnOrder(columns, rows)

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
