// Package jobs generates job listings and application content for the
// dashboard via the AI oracle.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/prompts"
	"github.com/careercrafters/careercoach/internal/schemas"
	"github.com/careercrafters/careercoach/internal/types"
)

// Generator is the oracle surface this adapter needs.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// FindRelevant generates fictional but realistic job listings for the user's
// target role. Listings are ephemeral and never persisted.
func FindRelevant(ctx context.Context, gen Generator, profile types.UserProfile) ([]types.Job, error) {
	template, err := prompts.Get("coaching.json", "job_finder")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"TargetDesignation": profile.TargetDesignation,
	})

	raw, err := gen.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("job search failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(schemas.JobsSchema, raw); err != nil {
		return nil, fmt.Errorf("job search returned an invalid payload: %w", err)
	}

	var listings []types.Job
	if err := json.Unmarshal([]byte(raw), &listings); err != nil {
		return nil, fmt.Errorf("failed to decode job listings: %w", err)
	}

	return listings, nil
}

// ApplicationContent generates either a bullet-point summary or a cover
// letter tailored to one job. The response is free text, not JSON.
func ApplicationContent(
	ctx context.Context,
	gen Generator,
	resume *types.ResumeData,
	job types.Job,
	contentType types.ApplicationContentType,
) (string, error) {
	if !contentType.Valid() {
		return "", fmt.Errorf("unknown application content type: %s", contentType)
	}

	requestKey := "application_summary"
	if contentType == types.ContentCoverLetter {
		requestKey = "application_cover_letter"
	}
	requestTemplate, err := prompts.Get("coaching.json", requestKey)
	if err != nil {
		return "", err
	}
	contentRequest := prompts.Format(requestTemplate, map[string]string{
		"Designation": job.Designation,
		"Company":     job.CompanyName,
	})

	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume data: %w", err)
	}

	template, err := prompts.Get("coaching.json", "application_request")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON":     string(resumeJSON),
		"Designation":    job.Designation,
		"Company":        job.CompanyName,
		"ContentRequest": contentRequest,
	})

	content, err := gen.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("application content generation failed: %w", err)
	}
	return content, nil
}
