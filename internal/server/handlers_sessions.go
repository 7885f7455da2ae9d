package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/careercrafters/careercoach/internal/journey"
	"github.com/careercrafters/careercoach/internal/onboarding"
	"github.com/careercrafters/careercoach/internal/types"
)

// sessionView is the session state returned to the client.
type sessionView struct {
	ID         string            `json:"id"`
	Screen     journey.Screen    `json:"screen"`
	Step       onboarding.Step   `json:"step,omitempty"`
	Resume     *types.ResumeData `json:"resume,omitempty"`
	Profile    types.UserProfile `json:"profile"`
	HasRoadmap bool              `json:"hasRoadmap"`
	Interview  bool              `json:"interviewActive"`
}

func viewOf(s *journey.Session) sessionView {
	view := sessionView{
		ID:         s.ID,
		Screen:     s.Screen,
		Profile:    s.Profile,
		HasRoadmap: s.Roadmap != nil,
		Interview:  s.InterviewActive(),
	}
	if s.Screen == journey.ScreenOnboarding {
		view.Step = s.Onboarding.Step()
		view.Resume = s.Onboarding.Resume()
		view.Profile = s.Onboarding.Profile()
	} else {
		view.Resume = s.Resume
	}
	return view
}

// sessionViewFor builds the session view under the session's read lock.
func (s *Server) sessionViewFor(id string) (sessionView, error) {
	var view sessionView
	err := s.controller.View(id, func(sess *journey.Session) {
		view = viewOf(sess)
	})
	return view, err
}

// decodeJSON decodes a request body, rejecting unknown shapes loudly.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.controller.CreateSession()
	view, err := s.sessionViewFor(sess.ID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, view)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.sessionViewFor(r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.controller.Store().Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
