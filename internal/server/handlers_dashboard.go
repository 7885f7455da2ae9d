package server

import (
	"net/http"
	"strconv"

	"github.com/careercrafters/careercoach/internal/types"
)

func (s *Server) handleGoToDashboard(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.GoToDashboard(r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGoToRoadmap(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.GoToRoadmap(r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFindJobs(w http.ResponseWriter, r *http.Request) {
	listings, err := s.controller.FindJobs(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, listings)
}

func (s *Server) handleApplicationContent(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job index")
		return
	}

	var req struct {
		ContentType types.ApplicationContentType `json:"contentType"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.ContentType.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "unknown content type")
		return
	}

	content, err := s.controller.ApplicationContent(r.Context(), r.PathValue("id"), index, req.ContentType)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handleMarkCopied(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.MarkCopied(r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClipboardState(w http.ResponseWriter, r *http.Request) {
	copied, err := s.controller.CopiedRecently(r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"copied": copied})
}
