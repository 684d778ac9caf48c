package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gomponents "maragu.dev/gomponents"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
	"sales-analytics/internal/session"
)

func render(t *testing.T, node gomponents.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestIndexPageShowsErrorBanner(t *testing.T) {
	out := render(t, IndexPage("Formato no soportado"))
	assert.Contains(t, out, "Formato no soportado")
	assert.Contains(t, out, `action="/upload"`)
	assert.Contains(t, out, "/sample")
}

func TestIndexPageWithoutError(t *testing.T) {
	out := render(t, IndexPage(""))
	assert.NotContains(t, out, `class="error"`)
}

func TestDashboardPageMarksActiveMenuItem(t *testing.T) {
	s := &session.Session{
		ID:       "abc",
		Filename: "ventas.csv",
		Dataset:  dataset.Sample(),
		Metrics:  []model.Metric{{Label: "Registros", Value: "5", Sub: "4 columnas", Available: true}},
	}

	out := render(t, DashboardPage(s, "top_productos", "Top Productos", Unavailable("nada")))

	assert.Contains(t, out, "/dashboard/abc/top_productos")
	assert.Contains(t, out, "menu-item active")
	assert.Contains(t, out, "ventas.csv")
	assert.Contains(t, out, "Registros")
}

func TestChartNodeEmbedsPlotlyCall(t *testing.T) {
	chart := &model.Chart{
		Kind:   model.ChartTopProducts,
		Title:  "Top 10 Productos",
		Type:   "bar",
		Labels: []string{"Laptop"},
		Values: []float64{2400},
	}

	out := render(t, ChartNode(chart))

	assert.Contains(t, out, `id="chart-top_productos"`)
	assert.Contains(t, out, "Plotly.newPlot")
	assert.Contains(t, out, "2400")
}

func TestDataTableLimitsRows(t *testing.T) {
	ds := dataset.Sample()
	out := render(t, DataTable(ds, 2))

	assert.Contains(t, out, "Laptop")
	assert.NotContains(t, out, "Monitor", "row 4 should be cut by the limit")

	full := render(t, DataTable(ds, 0))
	assert.Contains(t, full, "Monitor")
}
