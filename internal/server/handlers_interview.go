package server

import (
	"net/http"

	"github.com/careercrafters/careercoach/internal/interview"
	"github.com/careercrafters/careercoach/internal/journey"
	"github.com/careercrafters/careercoach/internal/types"
)

// interviewView is the active interview state.
type interviewView struct {
	Type           types.InterviewType  `json:"type"`
	MilestoneTitle string               `json:"milestoneTitle"`
	Round          types.InterviewRound `json:"round"`

	// Chat variant
	Transcript []interview.Turn `json:"transcript,omitempty"`
	CanFinish  bool             `json:"canFinish"`

	// Audio variant
	CurrentQuestion string `json:"currentQuestion,omitempty"`
	QuestionsAsked  int    `json:"questionsAsked,omitempty"`
	AnswerText      string `json:"answerText,omitempty"`
	Listening       bool   `json:"listening,omitempty"`
	SpeechSupported bool   `json:"speechSupported,omitempty"`
	Done            bool   `json:"done,omitempty"`
}

func interviewViewOf(sess *journey.Session) (interviewView, bool) {
	switch {
	case sess.ChatInterview != nil:
		c := sess.ChatInterview
		return interviewView{
			Type:           types.InterviewChat,
			MilestoneTitle: c.Milestone().Title,
			Round:          c.Round(),
			Transcript:     c.Transcript(),
			CanFinish:      c.CanFinish(),
		}, true
	case sess.AudioInterview != nil:
		a := sess.AudioInterview
		return interviewView{
			Type:            types.InterviewAudio,
			MilestoneTitle:  a.Milestone().Title,
			Round:           a.Round(),
			CurrentQuestion: a.CurrentQuestion(),
			QuestionsAsked:  a.QuestionsAsked(),
			AnswerText:      a.Speech().Text(),
			Listening:       a.Speech().Listening(),
			SpeechSupported: a.Speech().Supported(),
			Done:            a.Done(),
			CanFinish:       a.Done(),
		}, true
	default:
		return interviewView{}, false
	}
}

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MilestoneTitle  string               `json:"milestoneTitle"`
		Round           types.InterviewRound `json:"round"`
		Type            types.InterviewType  `json:"type"`
		SpeechSupported bool                 `json:"speechSupported"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id := r.PathValue("id")
	err := s.controller.StartInterview(r.Context(), id, req.MilestoneTitle, req.Round, req.Type, req.SpeechSupported)
	if err != nil {
		s.fail(w, err)
		return
	}

	var view interviewView
	err = s.controller.View(id, func(sess *journey.Session) {
		view, _ = interviewViewOf(sess)
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, view)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	var (
		view interviewView
		ok   bool
	)
	err := s.controller.View(r.PathValue("id"), func(sess *journey.Session) {
		view, ok = interviewViewOf(sess)
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	if !ok {
		s.fail(w, journey.ErrNoActiveInterview)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleAbandonInterview(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.AbandonInterview(r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	turn, err := s.controller.SendChatMessage(r.Context(), r.PathValue("id"), req.Message)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, turn)
}

func (s *Server) handleSpeechStart(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.StartSpeech(r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSpeechStop(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.StopSpeech(r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSpeechSegment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.controller.AddSpeechSegment(r.PathValue("id"), req.Text); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	next, done, err := s.controller.SubmitAudioAnswer(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"nextQuestion": next,
		"done":         done,
	})
}

func (s *Server) handleFinishInterview(w http.ResponseWriter, r *http.Request) {
	fb, err := s.controller.FinishInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, fb)
}
