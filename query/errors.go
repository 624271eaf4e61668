package query

import "errors"

// Sentinel errors for everything the user can get wrong in an expression or
// a column reference. Callers classify with IsUserError; details are added
// at the raise site with fmt.Errorf("%w: ...").
var (
	// ErrInvalidExpression means a filter expression contains no recognized
	// comparison operator, or is missing a column or a value.
	ErrInvalidExpression = errors.New("invalid filter expression")

	// ErrMalformedAggregation means an aggregation expression is not of the
	// form column=function.
	ErrMalformedAggregation = errors.New("malformed aggregation expression")

	// ErrUnknownFunction means an aggregation function other than
	// avg, min or max was requested.
	ErrUnknownFunction = errors.New("unknown aggregation function")

	// ErrMalformedOrderBy means a sort expression is not of the form
	// column=direction.
	ErrMalformedOrderBy = errors.New("malformed order-by expression")

	// ErrInvalidDirection means a sort direction other than asc or desc.
	ErrInvalidDirection = errors.New("invalid sort direction")

	// ErrMissingColumn means an aggregation or sort referenced a column
	// that exists in no row.
	ErrMissingColumn = errors.New("column not found")

	// ErrEmptyAggregation means an aggregation had no numeric values to
	// reduce, either because the row set was empty or because no cell in
	// the column parsed as a number.
	ErrEmptyAggregation = errors.New("no numeric values to aggregate")
)

var userErrors = []error{
	ErrInvalidExpression,
	ErrMalformedAggregation,
	ErrUnknownFunction,
	ErrMalformedOrderBy,
	ErrInvalidDirection,
	ErrMissingColumn,
	ErrEmptyAggregation,
}

// IsUserError reports whether err stems from user input (a bad expression
// or a bad column reference) rather than an internal failure. The CLI maps
// user errors and internal errors to different exit codes.
func IsUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
