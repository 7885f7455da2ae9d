// Package interview runs mock interview sessions against the AI oracle, in a
// chat variant and a speech-driven audio variant.
package interview

import (
	"errors"
	"strings"

	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/prompts"
	"github.com/careercrafters/careercoach/internal/types"
)

// Role identifies who produced a transcript turn.
type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

// Turn is one entry in an interview transcript.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Starter opens conversational sessions with the oracle.
type Starter interface {
	StartChat(systemInstruction string, tier llm.ModelTier) (llm.Conversation, error)
}

// Sentinel errors for session preconditions.
var (
	ErrTooFewTurns      = errors.New("at least one exchange is required before finishing")
	ErrSessionFinished  = errors.New("interview session is already finished")
	ErrEmptyAnswer      = errors.New("answer is empty")
	ErrAnswerNotPending = errors.New("no answer is pending submission")
)

func systemPrompt(key string, milestone types.Milestone, round types.InterviewRound, profile types.UserProfile) (string, error) {
	template, err := prompts.Get("interview.json", key)
	if err != nil {
		return "", err
	}
	return prompts.Format(template, map[string]string{
		"Round":             string(round),
		"TargetDesignation": profile.TargetDesignation,
		"MilestoneTitle":    milestone.Title,
		"MilestoneSkills":   strings.Join(milestone.SkillsToAcquire, ", "),
	}), nil
}
