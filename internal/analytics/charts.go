package analytics

import (
	"fmt"
	"sort"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
	"sales-analytics/pkg/utils"
)

// TopN caps ranking charts.
const TopN = 10

// chartRoles lists the roles each chart kind needs before it will even
// attempt a computation.
var chartRoles = map[model.ChartKind][]model.Role{
	model.ChartSalesOverTime:   {model.RoleDate, model.RoleSales},
	model.ChartTopProducts:     {model.RoleProduct, model.RoleSales},
	model.ChartSalesByCategory: {model.RoleCategory, model.RoleSales},
	model.ChartSalesByRegion:   {model.RoleRegion, model.RoleSales},
	model.ChartTopCustomers:    {model.RoleCustomer, model.RoleSales},
}

// RequiredRoles returns the roles a chart kind depends on.
func RequiredRoles(kind model.ChartKind) ([]model.Role, bool) {
	roles, ok := chartRoles[kind]
	return roles, ok
}

// BuildChart builds the data series for one chart. When required roles
// are unassigned it returns a *model.UnavailableError without touching
// the data; the caller decides how to render the gap.
func BuildChart(ds *dataset.Dataset, roles model.RoleAssignment, kind model.ChartKind) (*model.Chart, error) {
	required, ok := chartRoles[kind]
	if !ok {
		return nil, fmt.Errorf("unknown chart kind: %s", kind)
	}

	var missing []model.Role
	for _, role := range required {
		if _, assigned := roles.Column(role); !assigned {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return nil, &model.UnavailableError{Kind: kind, Missing: missing}
	}

	salesCol := roles[model.RoleSales]

	switch kind {
	case model.ChartSalesOverTime:
		return salesOverTime(ds, roles[model.RoleDate], salesCol)
	case model.ChartTopProducts:
		return ranking(ds, roles[model.RoleProduct], salesCol, kind, "Top 10 Productos")
	case model.ChartSalesByCategory:
		return ranking(ds, roles[model.RoleCategory], salesCol, kind, "Ventas por Categoría")
	case model.ChartTopCustomers:
		return ranking(ds, roles[model.RoleCustomer], salesCol, kind, "Top 10 Clientes")
	case model.ChartSalesByRegion:
		return salesByRegion(ds, roles[model.RoleRegion], salesCol)
	}
	return nil, fmt.Errorf("unknown chart kind: %s", kind)
}

// bucket is one grouped aggregation result.
type bucket struct {
	Label string
	Value float64
}

// groupSum groups rows by the key column and sums the coerced numeric
// value column. Rows with a missing key or a non-numeric value are
// skipped. Buckets come back in first-seen row order.
func groupSum(ds *dataset.Dataset, keyCol, valueCol string) []bucket {
	totals := make(map[string]float64)
	var order []string

	for _, row := range ds.Rows {
		key := dataset.CellString(row[keyCol])
		if key == "" {
			continue
		}
		value, ok := utils.Numeric(row[valueCol])
		if !ok {
			continue
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += value
	}

	buckets := make([]bucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, bucket{Label: key, Value: totals[key]})
	}
	return buckets
}

func toSeries(buckets []bucket) ([]string, []float64) {
	labels := make([]string, len(buckets))
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		values[i] = b.Value
	}
	return labels, values
}

// salesOverTime sums sales per date bucket, sorts buckets by date label
// ascending and fits a least-squares trend line across them.
func salesOverTime(ds *dataset.Dataset, dateCol, salesCol string) (*model.Chart, error) {
	buckets := groupSum(ds, dateCol, salesCol)
	if len(buckets) == 0 {
		return nil, &model.UnavailableError{Kind: model.ChartSalesOverTime, Missing: []model.Role{model.RoleSales}}
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Label < buckets[j].Label })

	labels, values := toSeries(buckets)
	return &model.Chart{
		Kind:   model.ChartSalesOverTime,
		Title:  "Ventas en el Tiempo",
		Type:   "line",
		Labels: labels,
		Values: values,
		Trend:  trendLine(values),
		XTitle: "Fecha",
		YTitle: "Ventas ($)",
	}, nil
}

// ranking is the shared top-N descending bar chart used by products,
// categories and customers.
func ranking(ds *dataset.Dataset, keyCol, salesCol string, kind model.ChartKind, title string) (*model.Chart, error) {
	buckets := groupSum(ds, keyCol, salesCol)
	if len(buckets) == 0 {
		return nil, &model.UnavailableError{Kind: kind, Missing: []model.Role{model.RoleSales}}
	}

	// stable sort keeps first-seen order between equal totals
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Value > buckets[j].Value })
	if len(buckets) > TopN {
		buckets = buckets[:TopN]
	}

	labels, values := toSeries(buckets)
	return &model.Chart{
		Kind:        kind,
		Title:       title,
		Type:        "bar",
		Orientation: "h",
		Labels:      labels,
		Values:      values,
		XTitle:      "Ventas ($)",
	}, nil
}

// salesByRegion sums sales per region, ascending by value so the
// largest region lands at the top of the horizontal bar chart.
func salesByRegion(ds *dataset.Dataset, regionCol, salesCol string) (*model.Chart, error) {
	buckets := groupSum(ds, regionCol, salesCol)
	if len(buckets) == 0 {
		return nil, &model.UnavailableError{Kind: model.ChartSalesByRegion, Missing: []model.Role{model.RoleSales}}
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Value < buckets[j].Value })

	labels, values := toSeries(buckets)
	return &model.Chart{
		Kind:        model.ChartSalesByRegion,
		Title:       "Ventas por Región",
		Type:        "bar",
		Orientation: "h",
		Labels:      labels,
		Values:      values,
		XTitle:      "Ventas ($)",
	}, nil
}

// trendLine fits y = a + b*x by least squares over bucket indices and
// returns the fitted value per bucket. A single bucket yields a flat
// line at its own value.
func trendLine(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{values[0]}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	b := (fn*sumXY - sumX*sumY) / denom
	a := (sumY - b*sumX) / fn

	trend := make([]float64, n)
	for i := range trend {
		trend[i] = a + b*float64(i)
	}
	return trend
}
