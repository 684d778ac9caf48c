package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
	"sales-analytics/internal/session"
	"sales-analytics/internal/ui"
)

// Index redirects the bare root to the upload form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/main", http.StatusFound)
}

// Main serves the upload form. A flash message from a failed request
// arrives as the "error" query parameter.
func (h *Handler) Main(w http.ResponseWriter, r *http.Request) {
	ui.RenderHTML(w, http.StatusOK, ui.IndexPage(r.URL.Query().Get("error")))
}

// Sample analyzes the built-in demo dataset and jumps straight to the
// dashboard.
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	id := h.analyze(dataset.Sample(), dataset.SampleFilename)
	http.Redirect(w, r, fmt.Sprintf("/dashboard/%s/resumen", id), http.StatusFound)
}

// Upload receives the multipart sales file, parses it by extension and
// creates the analysis session. Every expected failure redirects back
// to the form with a user-facing message.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		redirectWithError(w, r, "No hay archivo o el archivo es demasiado grande")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		redirectWithError(w, r, "Archivo vacío")
		return
	}

	ds, err := dataset.Read(header.Filename, file)
	switch {
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		redirectWithError(w, r, "Formato no soportado. Usa CSV, Excel o JSON")
		return
	case errors.Is(err, dataset.ErrEmptyDataset):
		redirectWithError(w, r, "El archivo no contiene datos")
		return
	case err != nil:
		log.Printf("❌ Failed to parse upload %q: %v", header.Filename, err)
		redirectWithError(w, r, "No se pudo leer el archivo: "+err.Error())
		return
	}

	id := h.analyze(ds, header.Filename)
	fmt.Printf("📄 Upload %q: %d rows, %d columns, session %s\n", header.Filename, ds.Len(), len(ds.Columns), id)
	http.Redirect(w, r, fmt.Sprintf("/dashboard/%s/resumen", id), http.StatusSeeOther)
}

// analyze classifies the dataset, derives metrics and registers the
// session. History write failures are logged, never user-facing.
func (h *Handler) analyze(ds *dataset.Dataset, filename string) string {
	roles := h.Classifier.Classify(ds)
	metrics := analytics.Metrics(ds, roles)

	id := h.Sessions.Create(&session.Session{
		Filename: filename,
		Dataset:  ds,
		Roles:    roles,
		Metrics:  metrics,
	})

	if h.History != nil {
		err := h.History.SaveUpload(model.UploadRecord{
			SessionID: id,
			Filename:  filename,
			Rows:      ds.Len(),
			Columns:   len(ds.Columns),
			Roles:     roles,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			log.Printf("❌ Failed to record upload history for %s: %v", id, err)
		}
	}
	return id
}
