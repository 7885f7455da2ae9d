// Package roadmap generates the personalized career roadmap from the
// finalized resume and profile via the AI oracle.
package roadmap

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
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Generate asks the oracle for a roadmap tailored to the resume and target
// profile. The oracle is instructed to produce exactly 3 milestones; the
// count is part of the prompt contract and not enforced locally.
func Generate(ctx context.Context, gen Generator, resume *types.ResumeData, profile types.UserProfile) (*types.Roadmap, error) {
	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume data: %w", err)
	}

	template, err := prompts.Get("coaching.json", "roadmap_generation")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"ResumeJSON":        string(resumeJSON),
		"TargetDesignation": profile.TargetDesignation,
		"SalaryMin":         profile.ExpectedSalaryMin,
		"SalaryMax":         profile.ExpectedSalaryMax,
	})

	raw, err := gen.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(schemas.RoadmapSchema, raw); err != nil {
		return nil, fmt.Errorf("roadmap generation returned an invalid payload: %w", err)
	}

	var roadmap types.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap payload: %w", err)
	}
	if err := roadmap.Validate(); err != nil {
		return nil, fmt.Errorf("roadmap generation returned an invalid record: %w", err)
	}

	return &roadmap, nil
}
