package model

import (
	"fmt"
	"strings"
	"time"
)

// Role is a semantic label assigned to a dataset column.
type Role string

const (
	RoleSales    Role = "sales"
	RoleDate     Role = "date"
	RoleProduct  Role = "product"
	RoleRegion   Role = "region"
	RoleCustomer Role = "customer"
	RoleQuantity Role = "quantity"
	RoleCategory Role = "category"
	RoleDiscount Role = "discount"
	RoleShipping Role = "shipping"
	RoleProfit   Role = "profit"
)

// RoleAssignment maps each detected role to exactly one column name.
// Roles that matched nothing are simply absent from the map.
type RoleAssignment map[Role]string

// Column returns the column assigned to role and whether it was detected.
func (ra RoleAssignment) Column(role Role) (string, bool) {
	col, ok := ra[role]
	return col, ok
}

// Metric is one dashboard summary card. Available is false when the
// underlying aggregate could not be computed (missing role or dirty
// values); Value then holds the "N/A" placeholder and Reason says why.
type Metric struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Sub       string `json:"sub"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ChartKind identifies a dashboard visualization. The values double as
// URL path segments, so they keep the original route vocabulary.
type ChartKind string

const (
	ChartSalesOverTime   ChartKind = "ventas_tiempo"
	ChartTopProducts     ChartKind = "top_productos"
	ChartSalesByCategory ChartKind = "ventas_categoria"
	ChartSalesByRegion   ChartKind = "ventas_region"
	ChartTopCustomers    ChartKind = "clientes"
)

// Chart holds the rendered data series for one visualization.
type Chart struct {
	Kind        ChartKind `json:"kind"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`        // "bar" or "line"
	Orientation string    `json:"orientation"` // "h" or "v"
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Trend       []float64 `json:"trend,omitempty"` // fitted line over the same buckets
	XTitle      string    `json:"x_title"`
	YTitle      string    `json:"y_title"`
}

// UnavailableError reports that a chart cannot be built because one or
// more of its required roles were not detected in the dataset. It is an
// expected outcome, not a failure: handlers render a placeholder.
type UnavailableError struct {
	Kind    ChartKind
	Missing []Role
}

func (e *UnavailableError) Error() string {
	names := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		names[i] = string(r)
	}
	return fmt.Sprintf("chart %s unavailable: missing roles [%s]", e.Kind, strings.Join(names, ", "))
}

// UploadRecord is one row of the upload history kept in sqlite. Only
// metadata is stored; the dataset itself never leaves process memory.
type UploadRecord struct {
	SessionID string         `json:"session_id"`
	Filename  string         `json:"filename"`
	Rows      int            `json:"rows"`
	Columns   int            `json:"columns"`
	Roles     RoleAssignment `json:"roles"`
	CreatedAt time.Time      `json:"created_at"`
}
