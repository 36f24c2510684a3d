package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// ---------------------------------------------------------------------
// Edit Handlers
// ---------------------------------------------------------------------
//
// Every successful mutation responds with the freshly computed layout
// snapshot, so one round trip leaves the client holding geometry that
// matches what was just persisted.

type UpdateFieldRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type UpdateSectionsRequest struct {
	Order []types.SectionKind `json:"order"`
}

func (s *Server) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Path == "" {
		s.errorResponse(w, http.StatusBadRequest, "Path is required")
		return
	}

	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	if err := store.ApplyField(doc, req.Path, req.Value); err != nil {
		var fieldErr *store.FieldError
		if errors.As(err, &fieldErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.saveAndRespond(w, r, doc)
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var cfg types.ThemeConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(cfg); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	doc.Theme = cfg
	s.saveAndRespond(w, r, doc)
}

func (s *Server) handleUpdateSections(w http.ResponseWriter, r *http.Request) {
	var req UpdateSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	// Unknown kinds and duplicates are repaired, not rejected; the stored
	// order is always complete and canonicalized.
	store.ReorderSection(doc, req.Order)
	s.saveAndRespond(w, r, doc)
}

func (s *Server) saveAndRespond(w http.ResponseWriter, r *http.Request, doc *types.Document) {
	if err := s.store.Save(r.Context(), doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, engine.ComputeDocument(doc))
}
