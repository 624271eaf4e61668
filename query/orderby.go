package query

import (
	"fmt"
	"sort"
	"strings"
)

// OrderBy is a parsed sort request: column and direction.
type OrderBy struct {
	Column string
	Desc   bool
}

// ParseOrderBy parses a sort expression of the form "column=direction",
// e.g. "price=asc". The direction token is case-insensitive.
//
// Returns ErrMalformedOrderBy when the expression does not split into a
// non-empty column and direction, and ErrInvalidDirection for directions
// other than asc and desc.
func ParseOrderBy(expr string) (OrderBy, error) {
	column, direction, found := strings.Cut(expr, "=")
	column = strings.TrimSpace(column)
	direction = strings.TrimSpace(direction)
	if !found || column == "" || direction == "" {
		return OrderBy{}, fmt.Errorf("%w: %q (want column=asc or column=desc)", ErrMalformedOrderBy, expr)
	}

	switch strings.ToLower(direction) {
	case "asc":
		return OrderBy{Column: column, Desc: false}, nil
	case "desc":
		return OrderBy{Column: column, Desc: true}, nil
	default:
		return OrderBy{}, fmt.Errorf("%w: %q (want asc or desc)", ErrInvalidDirection, direction)
	}
}

// ApplyOrderBy returns the rows ordered by the named column. The sort is
// stable and the input slice is never modified.
//
// The column's comparison mode is decided once, up front: when every
// present value coerces to a number the column sorts numerically, otherwise
// lexicographically. Rows where the column is missing always sort last,
// regardless of direction, so gaps in the data stay visibly grouped.
//
// Returns ErrMissingColumn when the column exists in no row.
func ApplyOrderBy(rows []map[string]interface{}, ob OrderBy) ([]map[string]interface{}, error) {
	if len(rows) == 0 {
		return rows, nil
	}

	columnSeen := false
	numeric := true
	for _, row := range rows {
		value, exists := row[ob.Column]
		if !exists || value == nil {
			continue
		}
		columnSeen = true
		if _, ok := toFloat64(value); !ok {
			numeric = false
		}
	}
	if !columnSeen {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrMissingColumn, ob.Column, strings.Join(ColumnNames(rows), ", "))
	}

	sorted := make([]map[string]interface{}, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, iExists := sorted[i][ob.Column]
		vj, jExists := sorted[j][ob.Column]
		iMissing := !iExists || vi == nil
		jMissing := !jExists || vj == nil

		// Missing values group last independent of direction.
		if iMissing || jMissing {
			return !iMissing && jMissing
		}

		var cmp int
		if numeric {
			ni, _ := toFloat64(vi)
			nj, _ := toFloat64(vj)
			switch {
			case ni < nj:
				cmp = -1
			case ni > nj:
				cmp = 1
			}
		} else {
			cmp = strings.Compare(valueString(vi), valueString(vj))
		}

		if ob.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted, nil
}
