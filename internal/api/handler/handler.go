// Package handler wires HTTP requests to the analysis core. Expected
// bad input (wrong format, unknown session) becomes a message on the
// upload form; only genuinely unexpected failures are logged as errors.
package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"

	"sales-analytics/internal/classify"
	"sales-analytics/internal/model"
	"sales-analytics/internal/session"
)

// DefaultMaxUploadBytes caps the multipart body at 50 MiB.
const DefaultMaxUploadBytes = 50 << 20

// UploadHistory records upload metadata; *store.DB implements it.
type UploadHistory interface {
	SaveUpload(rec model.UploadRecord) error
	ListUploads(limit int) ([]model.UploadRecord, error)
}

// Handler carries the injected collaborators for every route.
type Handler struct {
	Sessions       session.Store
	History        UploadHistory
	Classifier     classify.Config
	MaxUploadBytes int64
}

// New builds a Handler with the default classifier keyword table.
func New(sessions session.Store, history UploadHistory) *Handler {
	return &Handler{
		Sessions:       sessions,
		History:        history,
		Classifier:     classify.DefaultConfig(),
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// SafeHTML wraps an HTML handler so a panic becomes a logged stack
// trace plus a redirect to the upload form, never a dead connection.
func SafeHTML(fn http.HandlerFunc) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ Panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())
				redirectWithError(w, r, "Error interno, intenta de nuevo")
			}
		}()
		fn(w, r)
	}
}

// redirectWithError sends the browser back to the upload form carrying
// the user-facing message as a query flash.
func redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/main?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}

// pathSegment extracts the idx-th segment of the request path. Routes
// are registered with wildcards, so handlers pull their own params.
func pathSegment(r *http.Request, idx int) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if idx < 0 || idx >= len(parts) {
		return ""
	}
	return parts[idx]
}

// roleLabels translates roles for user-facing placeholder messages.
var roleLabels = map[model.Role]string{
	model.RoleSales:    "ventas",
	model.RoleDate:     "fecha",
	model.RoleProduct:  "productos",
	model.RoleRegion:   "región",
	model.RoleCustomer: "clientes",
	model.RoleCategory: "categoría",
	model.RoleQuantity: "cantidad",
	model.RoleDiscount: "descuentos",
	model.RoleShipping: "envíos",
	model.RoleProfit:   "rentabilidad",
}

// unavailableMessage renders an UnavailableError for the dashboard.
func unavailableMessage(err *model.UnavailableError) string {
	labels := make([]string, 0, len(err.Missing))
	for _, role := range err.Missing {
		if label, ok := roleLabels[role]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, string(role))
		}
	}
	return fmt.Sprintf("No hay datos de %s para esta gráfica", strings.Join(labels, " o "))
}
