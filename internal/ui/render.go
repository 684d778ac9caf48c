package ui

import (
	"log"
	"net/http"

	gomponents "maragu.dev/gomponents"
)

// RenderHTML writes a page, logging render failures instead of leaving
// the response half-broken silently.
func RenderHTML(w http.ResponseWriter, status int, page gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		log.Printf("❌ Failed to render page: %v", err)
	}
}
