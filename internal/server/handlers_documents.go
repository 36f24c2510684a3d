package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// ---------------------------------------------------------------------
// Document Handlers
// ---------------------------------------------------------------------

type CreateDocumentRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if infos == nil {
		infos = []types.DocumentInfo{}
	}

	s.jsonResponse(w, http.StatusOK, infos)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}

	doc := store.NewDocument(req.Name)
	if err := s.store.Create(r.Context(), doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, doc)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.fetchDocument(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	if err := s.store.Delete(r.Context(), idStr); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// fetchDocument loads the document named by the {id} path segment and
// writes the error response itself when that fails.
func (s *Server) fetchDocument(w http.ResponseWriter, r *http.Request) (*types.Document, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Document ID is required")
		return nil, false
	}

	doc, err := s.store.Get(r.Context(), idStr)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return nil, false
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return nil, false
	}

	return doc, true
}
