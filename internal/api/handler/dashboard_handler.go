package handler

import (
	"errors"
	"net/http"

	gomponents "maragu.dev/gomponents"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/model"
	"sales-analytics/internal/session"
	"sales-analytics/internal/ui"
)

// Dashboard serves /dashboard/{session}/{viz}. An unknown or expired
// session bounces to the upload form; an unknown viz falls through to
// the raw data view.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id := pathSegment(r, 1)
	viz := pathSegment(r, 2)

	s, ok := h.Sessions.Get(id)
	if !ok {
		redirectWithError(w, r, "Sesión no encontrada o expirada")
		return
	}

	var title string
	var content gomponents.Node

	switch {
	case viz == "resumen":
		title = "Dashboard Resumen"
		content = h.summaryView(s)
	case isChartViz(viz):
		kind := model.ChartKind(viz)
		chart, err := analytics.BuildChart(s.Dataset, s.Roles, kind)
		title = chartTitle(kind)
		if err != nil {
			var unavailable *model.UnavailableError
			if errors.As(err, &unavailable) {
				content = ui.Unavailable(unavailableMessage(unavailable))
			} else {
				content = ui.Unavailable("No se pudo generar la gráfica")
			}
		} else {
			content = ui.ChartNode(chart)
		}
	default: // "datos" and anything unrecognized
		viz = "datos"
		title = "Todos los Datos"
		content = ui.DataTable(s.Dataset, 0)
	}

	ui.RenderHTML(w, http.StatusOK, ui.DashboardPage(s, viz, title, content))
}

// summaryView is the resumen tab: a data preview plus whichever of the
// two headline charts the dataset supports. Missing roles just shrink
// the page.
func (h *Handler) summaryView(s *session.Session) gomponents.Node {
	nodes := []gomponents.Node{ui.DataTable(s.Dataset, 10)}

	for _, kind := range []model.ChartKind{model.ChartTopProducts, model.ChartSalesByRegion} {
		if chart, err := analytics.BuildChart(s.Dataset, s.Roles, kind); err == nil {
			nodes = append(nodes, ui.ChartNode(chart))
		}
	}
	return gomponents.Group(nodes)
}

func isChartViz(viz string) bool {
	_, ok := analytics.RequiredRoles(model.ChartKind(viz))
	return ok
}

func chartTitle(kind model.ChartKind) string {
	switch kind {
	case model.ChartSalesOverTime:
		return "Ventas por Tiempo"
	case model.ChartTopProducts:
		return "Top Productos"
	case model.ChartSalesByCategory:
		return "Ventas por Categoría"
	case model.ChartSalesByRegion:
		return "Ventas por Región"
	case model.ChartTopCustomers:
		return "Top Clientes"
	default:
		return "Visualización"
	}
}
