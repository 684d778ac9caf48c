package dataset

import (
	"fmt"
)

// Row is a schema-agnostic record keyed by column name.
type Row map[string]interface{}

// Dataset is an in-memory table. Columns preserves the original column
// order from the uploaded file; downstream role detection depends on it.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Head returns up to n leading rows.
func (d *Dataset) Head(n int) []Row {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// ColumnValues returns every cell of a column in row order. Missing
// cells come back as nil.
func (d *Dataset) ColumnValues(name string) []interface{} {
	values := make([]interface{}, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values
}

// IsNumeric reports whether a column's type is numeric: it has at least
// one non-missing cell and every non-missing cell parsed as a number.
// Empty strings and nils count as missing, not as type violations.
func (d *Dataset) IsNumeric(name string) bool {
	seen := false
	for _, row := range d.Rows {
		v, ok := row[name]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case int, int64, float32, float64:
			seen = true
		case string:
			if val == "" {
				continue
			}
			return false
		default:
			return false
		}
	}
	return seen
}

// NumericColumns returns the numeric-typed columns in original order.
func (d *Dataset) NumericColumns() []string {
	var cols []string
	for _, c := range d.Columns {
		if d.IsNumeric(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// CellString renders a cell for table display.
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// drop the trailing .0 pandas-style floats would carry
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
