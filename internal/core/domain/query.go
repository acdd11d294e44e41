package domain

// QueryResult is the engine's response to one statement. This layer only
// passes it through.
type QueryResult struct {
	Columns      []string `json:"columns"`
	Rows         [][]any  `json:"rows"`
	CommandTag   string   `json:"command_tag"`
	RowsAffected int64    `json:"rows_affected"`
}

// Len returns the number of rows returned by the statement.
func (r *QueryResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Value returns the value at row/column, or nil when out of range.
func (r *QueryResult) Value(row, col int) any {
	if r == nil || row < 0 || row >= len(r.Rows) {
		return nil
	}
	if col < 0 || col >= len(r.Rows[row]) {
		return nil
	}
	return r.Rows[row][col]
}
