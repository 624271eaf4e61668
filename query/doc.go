// Package query implements the data transformations behind csvcat: value
// coercion, filter conditions, single-column aggregation and single-column
// ordering over rows loaded from a file.
//
// Rows are represented as maps from column name to value, where each value
// is either a float64 (the cell parsed as a number) or a string (everything
// else). All operations are pure functions: they return new slices or
// scalars and never mutate their input rows.
//
// Example usage:
//
//	cond, err := query.ParseCondition("price>500")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matched := query.ApplyFilter(rows, cond)
package query
