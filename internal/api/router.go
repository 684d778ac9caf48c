package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"sales-analytics/internal/api/handler"
	"sales-analytics/pkg/router"

	_ "sales-analytics/docs"
)

// RegisterRoutes wires the HTML pages and the JSON API onto the router.
func RegisterRoutes(r *router.Router, h *handler.Handler) {
	// HTML pages
	r.GET("/", handler.SafeHTML(h.Index))
	r.GET("/main", handler.SafeHTML(h.Main))
	r.GET("/sample", handler.SafeHTML(h.Sample))
	r.POST("/upload", handler.SafeHTML(h.Upload))
	r.GET("/dashboard/*/*", handler.SafeHTML(h.Dashboard))

	// JSON API
	r.GET("/api/v1/uploads", h.ListUploads)
	// More specific routes first
	r.GET("/api/v1/sessions/*/charts/*", h.GetSessionChart)
	r.GET("/api/v1/sessions/*/metrics", h.GetSessionMetrics)
	r.GET("/api/v1/sessions/*/roles", h.GetSessionRoles)
	// Generic session route last
	r.GET("/api/v1/sessions/*", h.GetSession)
	r.DELETE("/api/v1/sessions/*", h.DeleteSession)

	// Swagger UI
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
