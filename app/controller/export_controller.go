package controller

import (
	"fmt"
	"net/http"
	"strings"

	"logo-banner/service"
)

// ExportController handles banner export and download
type ExportController struct {
	sessions service.SessionServiceInterface
	exports  service.ExportServiceInterface
	filename string
}

// NewExportController creates a new ExportController
func NewExportController(sessions service.SessionServiceInterface, exports *service.ExportService) *ExportController {
	return &ExportController{
		sessions: sessions,
		exports:  exports,
		filename: exports.Filename(),
	}
}

// Export handles POST /sessions/{id}/export
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	session, err := c.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, "Export", err)
		return
	}

	result, err := c.exports.Export(r.Context(), session.BannerView(), session)
	if err != nil {
		writeError(w, "Export", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Download handles GET /exports/{exportId}
func (c *ExportController) Download(w http.ResponseWriter, r *http.Request) {
	exportID := r.PathValue("exportId")

	pngData, err := c.exports.Get(r.Context(), exportID)
	if err != nil {
		writeError(w, "Download", err)
		return
	}

	// Content-Disposition: attachment forces a download instead of opening in browser
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", c.filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pngData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(pngData); err != nil {
		// Headers are gone, nothing left to report to the client
		writeFailed(exportID, err)
	}
}

// Preview handles GET /exports/{exportId}/preview?size=thumb|medium
func (c *ExportController) Preview(w http.ResponseWriter, r *http.Request) {
	exportID := r.PathValue("exportId")

	pngData, err := c.exports.Get(r.Context(), exportID)
	if err != nil {
		writeError(w, "Preview", err)
		return
	}

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = "thumb"
	}
	if size != "thumb" && size != "medium" {
		writeError(w, "Preview", fmt.Errorf("%w: size must be thumb or medium", errBadRequest))
		return
	}

	jpegData, err := service.OptimizeImage(pngData, size)
	if err != nil {
		writeError(w, "Preview", err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(jpegData)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(jpegData); err != nil {
		writeFailed(exportID, err)
	}
}
