package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes rows as CSV
func (c *CSVFormatter) Format(columns []string, rows []map[string]interface{}) error {
	csvWriter := csv.NewWriter(c.writer)

	columns = columnOrder(columns, rows)
	if len(columns) == 0 {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return fmt.Errorf("failed to flush CSV writer: %w", err)
		}
		return nil
	}

	// Write header
	if err := csvWriter.Write(columns); err != nil {
		return err
	}

	// Write rows
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = sanitizeCSVValue(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
