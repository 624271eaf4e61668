package query

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// AggregateFunc is a named reduction over one numeric column.
type AggregateFunc int

const (
	AggAvg AggregateFunc = iota
	AggMin
	AggMax
)

// String returns the function's wire spelling, also used as the header of
// the rendered result row.
func (f AggregateFunc) String() string {
	switch f {
	case AggAvg:
		return "avg"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return "?"
	}
}

// AggregateSpec is a parsed aggregation request: column and function.
type AggregateSpec struct {
	Column string
	Func   AggregateFunc
}

// ParseAggregate parses an aggregation expression of the form
// "column=function", e.g. "price=avg". The function name is
// case-insensitive.
//
// Returns ErrMalformedAggregation when the expression does not split into a
// non-empty column and function, and ErrUnknownFunction for functions other
// than avg, min and max.
func ParseAggregate(expr string) (AggregateSpec, error) {
	column, name, found := strings.Cut(expr, "=")
	column = strings.TrimSpace(column)
	name = strings.TrimSpace(name)
	if !found || column == "" || name == "" {
		return AggregateSpec{}, fmt.Errorf("%w: %q (want column=function)", ErrMalformedAggregation, expr)
	}

	switch strings.ToLower(name) {
	case "avg":
		return AggregateSpec{Column: column, Func: AggAvg}, nil
	case "min":
		return AggregateSpec{Column: column, Func: AggMin}, nil
	case "max":
		return AggregateSpec{Column: column, Func: AggMax}, nil
	default:
		return AggregateSpec{}, fmt.Errorf("%w: %q (supported: avg, min, max)", ErrUnknownFunction, name)
	}
}

// Aggregate reduces the coerced numeric values of spec.Column across rows
// to a single scalar. Cells that are missing or do not parse as numbers are
// skipped.
//
// Returns ErrMissingColumn when the column exists in no row, and
// ErrEmptyAggregation when the row set is empty or the column holds no
// numeric values at all.
func Aggregate(rows []map[string]interface{}, spec AggregateSpec) (float64, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no rows for column %q", ErrEmptyAggregation, spec.Column)
	}

	values := make([]float64, 0, len(rows))
	columnSeen := false
	for _, row := range rows {
		value, exists := row[spec.Column]
		if !exists || value == nil {
			continue
		}
		columnSeen = true
		if num, ok := toFloat64(value); ok {
			values = append(values, num)
		}
	}

	if !columnSeen {
		return 0, fmt.Errorf("%w: %q (available: %s)", ErrMissingColumn, spec.Column, strings.Join(ColumnNames(rows), ", "))
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: column %q", ErrEmptyAggregation, spec.Column)
	}

	switch spec.Func {
	case AggAvg:
		return stats.Mean(values)
	case AggMin:
		return stats.Min(values)
	case AggMax:
		return stats.Max(values)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFunction, spec.Func)
	}
}
