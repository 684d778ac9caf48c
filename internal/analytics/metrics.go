// Package analytics turns a classified dataset into dashboard metrics
// and chart series. Everything here is best-effort: dirty data degrades
// a single metric or chart, never the whole page.
package analytics

import (
	"fmt"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
	"sales-analytics/pkg/utils"
)

// MaxMetrics caps the dashboard metric cards.
const MaxMetrics = 4

// Placeholder is shown for metrics that could not be computed.
const Placeholder = "N/A"

// Metrics builds the dashboard summary cards. The first card is always
// the literal row count. The sales card is always present (a sales
// dashboard without a sales figure would be confusing), degraded to the
// placeholder when the role is missing. Remaining assigned roles fill
// the rest up to MaxMetrics.
func Metrics(ds *dataset.Dataset, roles model.RoleAssignment) []model.Metric {
	metrics := []model.Metric{
		{
			Label:     "Registros",
			Value:     utils.FormatCount(ds.Len()),
			Sub:       fmt.Sprintf("%d columnas", len(ds.Columns)),
			Available: true,
		},
		salesMetric(ds, roles),
	}

	type candidate struct {
		role  model.Role
		build func(col string) model.Metric
	}
	candidates := []candidate{
		{model.RoleProduct, func(col string) model.Metric {
			return distinctMetric("Productos", "Únicos", ds, col)
		}},
		{model.RoleCustomer, func(col string) model.Metric {
			return distinctMetric("Clientes", "Únicos", ds, col)
		}},
		{model.RoleRegion, func(col string) model.Metric {
			return distinctMetric("Regiones", "Ubicaciones", ds, col)
		}},
		{model.RoleQuantity, func(col string) model.Metric {
			return sumMetric("Unidades", ds, col)
		}},
	}

	for _, c := range candidates {
		if len(metrics) >= MaxMetrics {
			break
		}
		if col, ok := roles.Column(c.role); ok {
			metrics = append(metrics, c.build(col))
		}
	}

	return metrics
}

func salesMetric(ds *dataset.Dataset, roles model.RoleAssignment) model.Metric {
	col, ok := roles.Column(model.RoleSales)
	if !ok {
		return model.Metric{
			Label:  "Ventas Totales",
			Value:  Placeholder,
			Sub:    "No detectada",
			Reason: "no sales column detected",
		}
	}

	sum, mean, n := sumAndMean(ds.ColumnValues(col))
	if n == 0 {
		return model.Metric{
			Label:  "Ventas Totales",
			Value:  Placeholder,
			Sub:    "Sin valores numéricos",
			Reason: fmt.Sprintf("column %q holds no numeric values", col),
		}
	}

	return model.Metric{
		Label:     "Ventas Totales",
		Value:     utils.FormatMoney(sum),
		Sub:       "Promedio: " + utils.FormatMoney(mean),
		Available: true,
	}
}

func distinctMetric(label, sub string, ds *dataset.Dataset, col string) model.Metric {
	seen := make(map[string]bool)
	for _, v := range ds.ColumnValues(col) {
		s := dataset.CellString(v)
		if s == "" {
			continue
		}
		seen[s] = true
	}
	return model.Metric{
		Label:     label,
		Value:     utils.FormatCount(len(seen)),
		Sub:       sub,
		Available: true,
	}
}

func sumMetric(label string, ds *dataset.Dataset, col string) model.Metric {
	sum, _, n := sumAndMean(ds.ColumnValues(col))
	if n == 0 {
		return model.Metric{
			Label:  label,
			Value:  Placeholder,
			Sub:    "Sin valores numéricos",
			Reason: fmt.Sprintf("column %q holds no numeric values", col),
		}
	}
	return model.Metric{
		Label:     label,
		Value:     utils.FormatCount(int(sum)),
		Sub:       "Total",
		Available: true,
	}
}

// sumAndMean coerces values to float64, skipping entries that are not
// numeric instead of treating them as zero. n is the count of values
// that actually contributed.
func sumAndMean(values []interface{}) (sum, mean float64, n int) {
	for _, v := range values {
		if f, ok := utils.Numeric(v); ok {
			sum += f
			n++
		}
	}
	if n > 0 {
		mean = sum / float64(n)
	}
	return sum, mean, n
}
