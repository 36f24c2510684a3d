package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/zones"
)

// ---------------------------------------------------------------------
// Layout Handlers
// ---------------------------------------------------------------------

// ZonesResponse carries the zone catalog at the requested zoom factor.
type ZonesResponse struct {
	Zoom  float64      `json:"zoom"`
	Zones []zones.Zone `json:"zones"`
}

// handleGetLayout returns the full computed snapshot: resolved theme, page
// plan, geometry and zones.
func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, engine.ComputeDocument(doc))
}

// handleGetZones returns the zone catalog, optionally scaled by the zoom
// query parameter so a client rendering at 125% can hit-test in its own
// screen coordinates.
func (s *Server) handleGetZones(w http.ResponseWriter, r *http.Request) {
	zoom := 1.0
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid zoom factor")
			return
		}
		zoom = parsed
	}

	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	result := engine.ComputeDocument(doc)
	s.jsonResponse(w, http.StatusOK, ZonesResponse{
		Zoom:  zoom,
		Zones: zones.Scale(result.Zones, zoom),
	})
}

// handleExportPDF renders the document and serves the bytes for download.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	result := engine.ComputeDocument(doc)
	out, err := render.PDF(doc, &result.Result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
