package server

import (
	"net/http"

	"github.com/careercrafters/careercoach/internal/journey"
	"github.com/careercrafters/careercoach/internal/types"
)

// milestoneProgressView is one milestone's progress block on the roadmap.
type milestoneProgressView struct {
	Title           string                    `json:"title"`
	Unlocked        bool                      `json:"unlocked"`
	Progress        float64                   `json:"progress"`
	CompletedSkills []string                  `json:"completedSkills"`
	CompletedRounds []types.InterviewRound    `json:"completedRounds"`
	Frozen          bool                      `json:"checklistFrozen"`
	Feedbacks       []types.InterviewFeedback `json:"feedbacks"`
}

type progressView struct {
	OverallProgress float64                 `json:"overallProgress"`
	Milestones      []milestoneProgressView `json:"milestones"`
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	var rm *types.Roadmap
	err := s.controller.View(r.PathValue("id"), func(sess *journey.Session) {
		rm = sess.Roadmap
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	if rm == nil {
		s.fail(w, journey.ErrNoRoadmap)
		return
	}
	s.jsonResponse(w, http.StatusOK, rm)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	var (
		view      progressView
		noRoadmap bool
	)
	err := s.controller.View(r.PathValue("id"), func(sess *journey.Session) {
		if sess.Roadmap == nil || sess.Tracker == nil {
			noRoadmap = true
			return
		}
		view = progressView{
			OverallProgress: sess.Tracker.OverallProgress(),
			Milestones:      make([]milestoneProgressView, 0, len(sess.Roadmap.Milestones)),
		}
		for _, m := range sess.Roadmap.Milestones {
			completed := make([]string, 0, len(m.SkillsToAcquire))
			for _, skill := range m.SkillsToAcquire {
				if sess.Tracker.IsSkillCompleted(m.Title, skill) {
					completed = append(completed, skill)
				}
			}
			view.Milestones = append(view.Milestones, milestoneProgressView{
				Title:           m.Title,
				Unlocked:        sess.Tracker.IsMilestoneUnlocked(m.Title),
				Progress:        sess.Tracker.MilestoneProgress(m.Title),
				CompletedSkills: completed,
				CompletedRounds: sess.Tracker.CompletedRounds(m.Title),
				Frozen:          sess.Tracker.HasCompletedAnyRound(m.Title),
				Feedbacks:       sess.Tracker.FeedbacksFor(m.Title),
			})
		}
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	if noRoadmap {
		s.fail(w, journey.ErrNoRoadmap)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MilestoneTitle string `json:"milestoneTitle"`
		Skill          string `json:"skill"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.controller.ToggleSkill(r.PathValue("id"), req.MilestoneTitle, req.Skill); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
