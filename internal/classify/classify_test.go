package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
)

func table(columns []string, rows ...dataset.Row) *dataset.Dataset {
	return &dataset.Dataset{Columns: columns, Rows: rows}
}

func TestClassifyVentasColumnIsSales(t *testing.T) {
	ds := table(
		[]string{"Fecha", "Producto", "Ventas"},
		dataset.Row{"Fecha": "2024-01-01", "Producto": "Laptop", "Ventas": 1200},
		dataset.Row{"Fecha": "2024-01-02", "Producto": "Mouse", "Ventas": 25},
	)

	roles := DefaultConfig().Classify(ds)

	col, ok := roles.Column(model.RoleSales)
	require.True(t, ok)
	assert.Equal(t, "Ventas", col)
	assert.Equal(t, "Fecha", roles[model.RoleDate])
	assert.Equal(t, "Producto", roles[model.RoleProduct])
}

func TestClassifySalesFallsBackToFirstNumericColumn(t *testing.T) {
	ds := table(
		[]string{"Nombre", "Unidades Vendidas", "Puntuacion"},
		dataset.Row{"Nombre": "Laptop", "Unidades Vendidas": 3, "Puntuacion": 4.5},
	)

	roles := DefaultConfig().Classify(ds)

	// no sales keyword anywhere, so the first numeric column wins
	col, ok := roles.Column(model.RoleSales)
	require.True(t, ok)
	assert.Equal(t, "Unidades Vendidas", col)
}

func TestClassifyFirstColumnInOrderWins(t *testing.T) {
	ds := table(
		[]string{"Total Factura", "Precio Unitario"},
		dataset.Row{"Total Factura": 100, "Precio Unitario": 10},
	)

	roles := DefaultConfig().Classify(ds)
	assert.Equal(t, "Total Factura", roles[model.RoleSales])
}

func TestClassifyColumnAssignedToEarliestRoleOnly(t *testing.T) {
	// "Margen Total" matches both sales ("total") and profit ("margen").
	// Sales has higher precedence, and the column must not be reused.
	ds := table(
		[]string{"Margen Total", "Producto"},
		dataset.Row{"Margen Total": 40, "Producto": "Mouse"},
	)

	roles := DefaultConfig().Classify(ds)
	assert.Equal(t, "Margen Total", roles[model.RoleSales])
	_, hasProfit := roles.Column(model.RoleProfit)
	assert.False(t, hasProfit)
}

func TestClassifyAccentedSpanishHeaders(t *testing.T) {
	ds := table(
		[]string{"Región", "Categoría", "Ventas"},
		dataset.Row{"Región": "Norte", "Categoría": "Hogar", "Ventas": 10},
	)

	roles := DefaultConfig().Classify(ds)
	assert.Equal(t, "Región", roles[model.RoleRegion])
	assert.Equal(t, "Categoría", roles[model.RoleCategory])
}

func TestClassifyNoMatchesLeavesRolesUnassigned(t *testing.T) {
	ds := table(
		[]string{"Alpha", "Beta"},
		dataset.Row{"Alpha": "x", "Beta": "y"},
	)

	roles := DefaultConfig().Classify(ds)
	assert.Empty(t, roles, "text-only table with no keywords assigns nothing")
}

func TestClassifyIsDeterministic(t *testing.T) {
	ds := table(
		[]string{"Fecha", "Producto", "Ventas", "Región", "Cliente", "Cantidad"},
		dataset.Row{"Fecha": "2024-01-01", "Producto": "Laptop", "Ventas": 1200, "Región": "Norte", "Cliente": "ACME", "Cantidad": 2},
	)

	cfg := DefaultConfig()
	first := cfg.Classify(ds)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, cfg.Classify(ds))
	}
}

func TestClassifyKeywordMatchIsCaseInsensitive(t *testing.T) {
	ds := table(
		[]string{"SALES_AMOUNT"},
		dataset.Row{"SALES_AMOUNT": 5},
	)

	roles := DefaultConfig().Classify(ds)
	assert.Equal(t, "SALES_AMOUNT", roles[model.RoleSales])
}

func TestClassifyCustomConfig(t *testing.T) {
	cfg := Config{
		Roles: []RoleSpec{
			{Role: model.RoleProfit, Keywords: []string{"margen"}},
			{Role: model.RoleSales, Keywords: []string{"total"}, NumericFallback: true},
		},
	}
	ds := table(
		[]string{"Margen Total", "Otros"},
		dataset.Row{"Margen Total": 40, "Otros": 1},
	)

	roles := cfg.Classify(ds)

	// precedence is configuration, not code: profit is evaluated first here
	assert.Equal(t, "Margen Total", roles[model.RoleProfit])
	assert.Equal(t, "Otros", roles[model.RoleSales], "sales falls back to the remaining numeric column")
}
