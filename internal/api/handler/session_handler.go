package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/model"
)

// GetSession returns a session summary
// @Summary Get session
// @Description Retrieve filename, shape and detected roles for an analysis session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session summary"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := pathSegment(r, 3)
	s, ok := h.Sessions.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "session not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": s.ID,
		"filename":   s.Filename,
		"rows":       s.Dataset.Len(),
		"columns":    s.Dataset.Columns,
		"roles":      s.Roles,
		"created_at": s.CreatedAt,
	})
}

// GetSessionMetrics returns the dashboard metrics
// @Summary Get session metrics
// @Description Retrieve the 1-4 summary metrics computed for a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Metrics"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id}/metrics [get]
func (h *Handler) GetSessionMetrics(w http.ResponseWriter, r *http.Request) {
	id := pathSegment(r, 3)
	s, ok := h.Sessions.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "session not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": s.ID,
		"metrics":    s.Metrics,
		"count":      len(s.Metrics),
	})
}

// GetSessionRoles returns the detected column roles
// @Summary Get session roles
// @Description Retrieve the column role assignment detected for a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Role assignment"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id}/roles [get]
func (h *Handler) GetSessionRoles(w http.ResponseWriter, r *http.Request) {
	id := pathSegment(r, 3)
	s, ok := h.Sessions.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "session not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": s.ID,
		"roles":      s.Roles,
	})
}

// GetSessionChart returns one chart's data series
// @Summary Get chart data
// @Description Build the data series for one chart kind. Returns 422 when the dataset lacks the required roles.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param kind path string true "Chart kind" Enums(ventas_tiempo, top_productos, ventas_categoria, ventas_region, clientes)
// @Success 200 {object} model.Chart "Chart data"
// @Failure 400 {object} map[string]interface{} "Unknown chart kind"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 422 {object} map[string]interface{} "Required roles missing"
// @Router /sessions/{id}/charts/{kind} [get]
func (h *Handler) GetSessionChart(w http.ResponseWriter, r *http.Request) {
	id := pathSegment(r, 3)
	kind := model.ChartKind(pathSegment(r, 5))

	s, ok := h.Sessions.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "session not found"})
		return
	}

	if _, known := analytics.RequiredRoles(kind); !known {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "unknown chart kind: " + string(kind)})
		return
	}

	chart, err := analytics.BuildChart(s.Dataset, s.Roles, kind)
	if err != nil {
		var unavailable *model.UnavailableError
		if errors.As(err, &unavailable) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":   "chart unavailable",
				"kind":    unavailable.Kind,
				"missing": unavailable.Missing,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chart)
}

// DeleteSession discards a session
// @Summary Delete session
// @Description Drop an analysis session and its in-memory dataset
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session deleted"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := pathSegment(r, 3)
	h.Sessions.Delete(id)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Session deleted",
		"session_id": id,
	})
}

// ListUploads returns the recent upload history
// @Summary List uploads
// @Description Retrieve recent upload metadata from the history database
// @Tags uploads
// @Produce json
// @Param limit query int false "Maximum rows to return" default(50)
// @Success 200 {object} map[string]interface{} "Upload history"
// @Failure 500 {object} map[string]interface{} "History unavailable"
// @Router /uploads [get]
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if h.History == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"uploads": []model.UploadRecord{}, "count": 0})
		return
	}

	uploads, err := h.History.ListUploads(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to retrieve uploads"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"uploads": uploads,
		"count":   len(uploads),
	})
}
