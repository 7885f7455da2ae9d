package server

import (
	"io"
	"net/http"

	"github.com/careercrafters/careercoach/internal/types"
)

// handleUploadResume accepts the resume file as multipart form data under the
// "file" field. Unsupported types and oversized uploads are rejected before
// any oracle call.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	mime := header.Header.Get("Content-Type")
	if err := s.controller.SelectResumeFile(r.PathValue("id"), header.Filename, mime, data); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"fileName": header.Filename})
}

func (s *Server) handleAdvanceOnboarding(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.controller.AdvanceOnboarding(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	view, err := s.sessionViewFor(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleRetreatOnboarding(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.controller.RetreatOnboarding(id); err != nil {
		s.fail(w, err)
		return
	}
	view, err := s.sessionViewFor(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleRestartOnboarding(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.controller.RestartOnboarding(id); err != nil {
		s.fail(w, err)
		return
	}
	view, err := s.sessionViewFor(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	var resume types.ResumeData
	if err := decodeJSON(r, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.controller.UpdateResume(r.PathValue("id"), resume); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := decodeJSON(r, &profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.controller.UpdateProfile(r.PathValue("id"), profile); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}
