// Package feedback scores finished interview transcripts via the AI oracle.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/prompts"
	"github.com/careercrafters/careercoach/internal/schemas"
	"github.com/careercrafters/careercoach/internal/types"
)

// Generator is the oracle surface this adapter needs.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// ForTranscript asks the oracle to score a finished interview. Audio
// interviews additionally request the vocal-delivery analysis, and the
// response is validated against the stricter audio schema.
func ForTranscript(
	ctx context.Context,
	gen Generator,
	transcript string,
	milestone types.Milestone,
	resume *types.ResumeData,
	round types.InterviewRound,
	isAudio bool,
) (*types.InterviewFeedback, error) {
	template, err := prompts.Get("coaching.json", "interview_feedback")
	if err != nil {
		return nil, err
	}

	audioInstruction := ""
	if isAudio {
		audioInstruction, err = prompts.Get("coaching.json", "feedback_audio_addendum")
		if err != nil {
			return nil, err
		}
	}

	prompt := prompts.Format(template, map[string]string{
		"CurrentDesignation": resume.PersonalInfo.CurrentDesignation,
		"Skills":             strings.Join(resume.SkillNames(), ", "),
		"Round":              string(round),
		"MilestoneTitle":     milestone.Title,
		"MilestoneSkills":    strings.Join(milestone.SkillsToAcquire, ", "),
		"Transcript":         transcript,
		"AudioInstruction":   audioInstruction,
	})

	raw, err := gen.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("feedback generation failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	schema := schemas.FeedbackSchema
	if isAudio {
		schema = schemas.AudioFeedbackSchema
	}
	if err := schemas.ValidateJSONString(schema, raw); err != nil {
		return nil, fmt.Errorf("feedback generation returned an invalid payload: %w", err)
	}

	var result types.InterviewFeedback
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode feedback payload: %w", err)
	}

	result.MilestoneTitle = milestone.Title
	result.Round = round
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("feedback generation returned an invalid record: %w", err)
	}

	return &result, nil
}

// Fallback builds the canned zero-score record substituted when the oracle
// fails, so the interview flow always completes instead of stalling.
func Fallback(milestoneTitle string, round types.InterviewRound, isAudio bool) *types.InterviewFeedback {
	result := &types.InterviewFeedback{
		MilestoneTitle:      milestoneTitle,
		Round:               round,
		OverallScore:        0,
		ScoreReason:         "Could not be generated due to an error.",
		Strengths:           []string{},
		AreasForImprovement: []string{"Failed to generate feedback due to an error."},
		DetailedFeedback:    "Could not retrieve feedback from the AI.",
	}
	if isAudio {
		na := types.VocalDeliveryMetric{Score: 0, Feedback: "N/A"}
		result.VocalDelivery = &types.VocalDelivery{
			Pace:        na,
			Clarity:     na,
			Confidence:  na,
			FillerWords: na,
			Energy:      na,
		}
	}
	return result
}
