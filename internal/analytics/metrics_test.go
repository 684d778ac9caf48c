package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/classify"
	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
)

func salesTable() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"Fecha", "Producto", "Ventas", "Región"},
		Rows: []dataset.Row{
			{"Fecha": "2024-01-01", "Producto": "Laptop", "Ventas": 1200, "Región": "Norte"},
			{"Fecha": "2024-01-02", "Producto": "Mouse", "Ventas": 25, "Región": "Sur"},
			{"Fecha": "2024-01-03", "Producto": "Laptop", "Ventas": 1200, "Región": "Norte"},
		},
	}
}

func TestMetricsFirstCardIsRowCount(t *testing.T) {
	ds := salesTable()
	roles := classify.DefaultConfig().Classify(ds)

	metrics := Metrics(ds, roles)

	require.NotEmpty(t, metrics)
	assert.Equal(t, "Registros", metrics[0].Label)
	assert.Equal(t, "3", metrics[0].Value)
	assert.Equal(t, "4 columnas", metrics[0].Sub)
	assert.True(t, metrics[0].Available)
}

func TestMetricsLengthBounds(t *testing.T) {
	tables := []*dataset.Dataset{
		salesTable(),
		{Columns: []string{"Alpha"}, Rows: []dataset.Row{{"Alpha": "x"}}},
		{
			Columns: []string{"Ventas", "Producto", "Cliente", "Región", "Cantidad"},
			Rows:    []dataset.Row{{"Ventas": 10, "Producto": "A", "Cliente": "B", "Región": "C", "Cantidad": 1}},
		},
	}
	for _, ds := range tables {
		metrics := Metrics(ds, classify.DefaultConfig().Classify(ds))
		assert.GreaterOrEqual(t, len(metrics), 1)
		assert.LessOrEqual(t, len(metrics), MaxMetrics)
	}
}

func TestMetricsSalesSumAndMean(t *testing.T) {
	ds := salesTable()
	roles := classify.DefaultConfig().Classify(ds)

	metrics := Metrics(ds, roles)

	require.GreaterOrEqual(t, len(metrics), 2)
	sales := metrics[1]
	assert.Equal(t, "Ventas Totales", sales.Label)
	assert.Equal(t, "$2,425", sales.Value)
	assert.Equal(t, "Promedio: $808", sales.Sub)
	assert.True(t, sales.Available)
}

func TestMetricsSalesPlaceholderWhenUndetected(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Nombre"},
		Rows:    []dataset.Row{{"Nombre": "x"}},
	}

	metrics := Metrics(ds, model.RoleAssignment{})

	require.Len(t, metrics, 2)
	assert.Equal(t, Placeholder, metrics[1].Value)
	assert.False(t, metrics[1].Available)
	assert.NotEmpty(t, metrics[1].Reason)
}

func TestMetricsDirtySalesColumnDegrades(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Ventas"},
		Rows:    []dataset.Row{{"Ventas": "sin datos"}, {"Ventas": "n/a"}},
	}

	metrics := Metrics(ds, model.RoleAssignment{model.RoleSales: "Ventas"})

	require.Len(t, metrics, 2)
	assert.Equal(t, Placeholder, metrics[1].Value)
	assert.False(t, metrics[1].Available)
}

func TestMetricsMixedSalesSkipsInvalidValues(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Ventas"},
		Rows:    []dataset.Row{{"Ventas": 100}, {"Ventas": "garbage"}, {"Ventas": 200}},
	}

	metrics := Metrics(ds, model.RoleAssignment{model.RoleSales: "Ventas"})

	// invalid values are missing, not zero: mean over 2 values, not 3
	assert.Equal(t, "$300", metrics[1].Value)
	assert.Equal(t, "Promedio: $150", metrics[1].Sub)
}

func TestMetricsDistinctCounts(t *testing.T) {
	ds := salesTable()
	roles := classify.DefaultConfig().Classify(ds)

	metrics := Metrics(ds, roles)

	require.Len(t, metrics, MaxMetrics)
	assert.Equal(t, "Productos", metrics[2].Label)
	assert.Equal(t, "2", metrics[2].Value)
	assert.Equal(t, "Regiones", metrics[3].Label)
	assert.Equal(t, "2", metrics[3].Value)
}

func TestMetricsQuantitySum(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Ventas", "Cantidad"},
		Rows:    []dataset.Row{{"Ventas": 10, "Cantidad": 2}, {"Ventas": 20, "Cantidad": 3}},
	}
	roles := classify.DefaultConfig().Classify(ds)

	metrics := Metrics(ds, roles)

	require.Len(t, metrics, 3)
	assert.Equal(t, "Unidades", metrics[2].Label)
	assert.Equal(t, "5", metrics[2].Value)
}
