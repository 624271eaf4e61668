package query

import (
	"fmt"
	"sort"
	"strconv"
)

// Coerce converts a raw text cell to a float64 when it parses as a decimal
// number, and returns the original string otherwise. Failure to parse is
// the expected "is text" branch, never an error.
func Coerce(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toString converts a value to string if possible
func toString(v interface{}) (string, bool) {
	if str, ok := v.(string); ok {
		return str, true
	}
	return "", false
}

// valueString renders a value for lexicographic comparison: strings as-is,
// numbers in their shortest decimal form.
func valueString(v interface{}) string {
	if str, ok := toString(v); ok {
		return str
	}
	if num, ok := toFloat64(v); ok {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// ColumnNames returns the sorted set of column names present in rows.
func ColumnNames(rows []map[string]interface{}) []string {
	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	return columns
}
