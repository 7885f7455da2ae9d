// Package extraction turns raw resume text into a structured ResumeData record
// via the AI oracle.
package extraction

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

// ExtractResume sends resume text to the oracle and decodes the structured
// result. The payload is schema-validated before decoding; a malformed
// response is a fatal error for this call.
func ExtractResume(ctx context.Context, gen Generator, resumeText string) (*types.ResumeData, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("the provided text is empty: paste a resume or describe your experience")
	}

	template, err := prompts.Get("coaching.json", "resume_extraction")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"ResumeText": resumeText})

	raw, err := gen.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(schemas.ResumeSchema, raw); err != nil {
		return nil, fmt.Errorf("resume extraction returned an invalid payload: %w", err)
	}

	var resume types.ResumeData
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume payload: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("resume extraction returned an invalid record: %w", err)
	}

	return &resume, nil
}
