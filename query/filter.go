package query

// ApplyFilter returns the rows satisfying the condition, preserving their
// relative order. The result is always a subsequence of rows; the input is
// never modified.
func ApplyFilter(rows []map[string]interface{}, cond Condition) []map[string]interface{} {
	filtered := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if cond.Matches(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
