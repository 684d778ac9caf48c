// Package classify guesses which dataset columns carry which semantic
// role (sales, date, product, ...) from column names and, as a last
// resort, column types.
package classify

import (
	"strings"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
)

// RoleSpec is the detection rule for one role: an ordered keyword list
// matched case-insensitively as substrings of the column name.
type RoleSpec struct {
	Role            model.Role `json:"role"`
	Keywords        []string   `json:"keywords"`
	NumericFallback bool       `json:"numeric_fallback"` // use first numeric column when no name matches
}

// Config is the full keyword table. Spec order is role precedence: a
// column matching several roles goes to the earliest role listed here
// and is not reconsidered for later ones.
type Config struct {
	Roles []RoleSpec `json:"roles"`
}

// Classify assigns at most one column to each configured role. It never
// fails: roles with no matching column are simply absent from the
// result. Ties break on role precedence, then column order, then
// keyword order, so repeated runs over the same dataset are identical.
func (c Config) Classify(ds *dataset.Dataset) model.RoleAssignment {
	assignment := make(model.RoleAssignment)
	taken := make(map[string]bool)

	for _, spec := range c.Roles {
		col, ok := matchByName(ds.Columns, taken, spec.Keywords)
		if !ok && spec.NumericFallback {
			col, ok = firstNumeric(ds, taken)
		}
		if ok {
			assignment[spec.Role] = col
			taken[col] = true
		}
	}
	return assignment
}

// matchByName returns the first unassigned column, in original column
// order, whose lowercased name contains any keyword.
func matchByName(columns []string, taken map[string]bool, keywords []string) (string, bool) {
	for _, col := range columns {
		if taken[col] {
			continue
		}
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return col, true
			}
		}
	}
	return "", false
}

func firstNumeric(ds *dataset.Dataset, taken map[string]bool) (string, bool) {
	for _, col := range ds.NumericColumns() {
		if !taken[col] {
			return col, true
		}
	}
	return "", false
}
