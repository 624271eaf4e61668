// Package output provides formatters for rendering query results.
//
// Supported formats:
//   - Table: a bordered grid for human inspection (the default)
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per line
//
// All formatters take the column order explicitly, since rows are maps and
// the on-disk column order would otherwise be lost.
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes rows in the formatter's specific format, laying columns
	// out in the given order
	Format(columns []string, rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// columnOrder returns the columns to render: the given order when provided,
// otherwise the sorted union of the rows' columns (heterogeneous schemas,
// e.g. sparse data).
func columnOrder(columns []string, rows []map[string]interface{}) []string {
	if len(columns) > 0 {
		return columns
	}

	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	derived := make([]string, 0, len(columnSet))
	for col := range columnSet {
		derived = append(derived, col)
	}
	sort.Strings(derived)

	return derived
}

// formatValue converts a value to its display string
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// sanitizeCSVValue guards string cells against CSV injection by prefixing
// characters that could trigger formula execution in spreadsheet
// applications.
func sanitizeCSVValue(v interface{}) string {
	val, ok := v.(string)
	if !ok {
		return formatValue(v)
	}
	if len(val) > 0 {
		firstChar := val[0]
		if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' || firstChar == '\t' || firstChar == '\r' || firstChar == '\n' || firstChar == '|' {
			return "'" + strings.ReplaceAll(val, "'", "''")
		}
	}
	return val
}
