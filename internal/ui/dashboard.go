package ui

import (
	"encoding/json"
	"fmt"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
	"sales-analytics/internal/session"
	"sales-analytics/pkg/utils"
)

// navItem is one dashboard menu entry.
type navItem struct {
	Label string
	Viz   string
}

var navItems = []navItem{
	{Label: "📊 Dashboard", Viz: "resumen"},
	{Label: "📈 Ventas por Tiempo", Viz: string(model.ChartSalesOverTime)},
	{Label: "🏆 Top Productos", Viz: string(model.ChartTopProducts)},
	{Label: "🗂️ Ventas por Categoría", Viz: string(model.ChartSalesByCategory)},
	{Label: "🌍 Ventas por Región", Viz: string(model.ChartSalesByRegion)},
	{Label: "👥 Clientes", Viz: string(model.ChartTopCustomers)},
	{Label: "📋 Ver Datos", Viz: "datos"},
}

// DashboardPage renders the full dashboard shell around one view.
func DashboardPage(s *session.Session, viz, vizTitle string, content gomponents.Node) gomponents.Node {
	nav := make([]gomponents.Node, 0, len(navItems))
	for _, item := range navItems {
		class := "menu-item"
		if item.Viz == viz {
			class += " active"
		}
		nav = append(nav, html.A(
			html.Href(fmt.Sprintf("/dashboard/%s/%s", s.ID, item.Viz)),
			html.Class(class),
			gomponents.Text(item.Label),
		))
	}

	cards := make([]gomponents.Node, 0, len(s.Metrics))
	for _, m := range s.Metrics {
		cards = append(cards, html.Div(
			html.Class("metric-card"),
			html.Div(html.Class("metric-label"), gomponents.Text(m.Label)),
			html.Div(html.Class("metric-value"), gomponents.Text(m.Value)),
			html.Div(html.Class("metric-sub"), gomponents.Text(m.Sub)),
		))
	}

	return html.HTML(
		html.Lang("es"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text("Dashboard - "+s.Filename)),
			html.Script(html.Src(plotlyCDN)),
			html.StyleEl(gomponents.Raw(appCSS)),
		),
		html.Body(
			html.Div(
				html.Class("container"),
				html.Div(
					html.Class("header"),
					html.Strong(gomponents.Text("📊 SALES ANALYTICS")),
					html.Div(
						html.Span(
							html.Style("margin-right: 15px; color: #666;"),
							gomponents.Text(fmt.Sprintf("%s · %s registros", s.Filename, utils.FormatCount(s.Dataset.Len()))),
						),
						html.A(html.Href("/main"), html.Class("btn"), gomponents.Text("+ Nuevo análisis")),
					),
				),
				html.Div(html.Class("metrics"), gomponents.Group(cards)),
				html.Div(html.Class("menu"), gomponents.Group(nav)),
				html.Div(
					html.Class("viz-container"),
					html.Div(html.Class("viz-title"), gomponents.Text(vizTitle)),
					content,
				),
				footer(),
			),
		),
	)
}

// ChartNode embeds one chart as a Plotly call over JSON-marshaled data.
func ChartNode(chart *model.Chart) gomponents.Node {
	divID := "chart-" + string(chart.Kind)

	traces, layout := plotlyPayload(chart)
	tracesJSON, err := json.Marshal(traces)
	if err != nil {
		return Unavailable("No se pudo serializar la gráfica")
	}
	layoutJSON, err := json.Marshal(layout)
	if err != nil {
		return Unavailable("No se pudo serializar la gráfica")
	}

	script := fmt.Sprintf("Plotly.newPlot(%q, %s, %s, {responsive: true});", divID, tracesJSON, layoutJSON)
	return gomponents.Group([]gomponents.Node{
		html.Div(html.ID(divID), html.Style("width: 100%; min-height: 500px;")),
		html.Script(gomponents.Raw(script)),
	})
}

// Unavailable renders the placeholder shown where a chart cannot be built.
func Unavailable(msg string) gomponents.Node {
	return html.P(html.Class("placeholder"), gomponents.Text(msg))
}

// DataTable renders up to limit rows; limit <= 0 renders everything.
func DataTable(ds *dataset.Dataset, limit int) gomponents.Node {
	rows := ds.Rows
	if limit > 0 && limit < len(rows) {
		rows = ds.Head(limit)
	}

	headerCells := make([]gomponents.Node, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		headerCells = append(headerCells, html.Th(gomponents.Text(col)))
	}

	bodyRows := make([]gomponents.Node, 0, len(rows))
	for _, row := range rows {
		cells := make([]gomponents.Node, 0, len(ds.Columns))
		for _, col := range ds.Columns {
			cells = append(cells, html.Td(gomponents.Text(dataset.CellString(row[col]))))
		}
		bodyRows = append(bodyRows, html.Tr(cells...))
	}

	return html.Div(
		html.Class("table-wrapper"),
		html.Table(
			html.THead(html.Tr(headerCells...)),
			html.TBody(bodyRows...),
		),
	)
}

// plotlyPayload shapes a chart into Plotly traces and layout.
func plotlyPayload(chart *model.Chart) ([]map[string]interface{}, map[string]interface{}) {
	var traces []map[string]interface{}

	switch chart.Type {
	case "line":
		traces = append(traces, map[string]interface{}{
			"x":      chart.Labels,
			"y":      chart.Values,
			"mode":   "lines+markers",
			"line":   map[string]interface{}{"color": "#667eea", "width": 3},
			"marker": map[string]interface{}{"size": 8},
			"name":   "Ventas",
		})
		if len(chart.Trend) > 0 {
			traces = append(traces, map[string]interface{}{
				"x":    chart.Labels,
				"y":    chart.Trend,
				"mode": "lines",
				"line": map[string]interface{}{"color": "#f39c12", "dash": "dash"},
				"name": "Tendencia",
			})
		}
	default: // bar
		trace := map[string]interface{}{
			"type":   "bar",
			"marker": map[string]interface{}{"color": "#764ba2"},
		}
		if chart.Orientation == "h" {
			trace["orientation"] = "h"
			trace["x"] = chart.Values
			trace["y"] = chart.Labels
		} else {
			trace["x"] = chart.Labels
			trace["y"] = chart.Values
		}
		traces = append(traces, trace)
	}

	layout := map[string]interface{}{
		"title":  chart.Title,
		"height": 500,
		"xaxis":  map[string]interface{}{"title": chart.XTitle},
		"yaxis":  map[string]interface{}{"title": chart.YTitle},
	}
	if chart.Orientation == "h" {
		layout["margin"] = map[string]interface{}{"l": 150}
	}
	return traces, layout
}
