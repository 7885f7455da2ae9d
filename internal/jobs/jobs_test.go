package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	textResponse string
	jsonResponse string
	err          error
	lastPrompt   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.textResponse, f.err
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.jsonResponse, f.err
}

func TestFindRelevant_Success(t *testing.T) {
	gen := &fakeGenerator{jsonResponse: `[
		{"designation": "Staff Engineer", "companyName": "Acme"},
		{"designation": "Principal Engineer", "companyName": "Globex"}
	]`}

	listings, err := FindRelevant(context.Background(), gen, types.UserProfile{TargetDesignation: "Staff Engineer"})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Acme", listings[0].CompanyName)
	assert.Contains(t, gen.lastPrompt, "Staff Engineer")
}

func TestFindRelevant_InvalidPayload(t *testing.T) {
	gen := &fakeGenerator{jsonResponse: `[{"designation": "Staff Engineer"}]`}

	_, err := FindRelevant(context.Background(), gen, types.UserProfile{})
	assert.Error(t, err)
}

func TestFindRelevant_OracleError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("offline")}

	_, err := FindRelevant(context.Background(), gen, types.UserProfile{})
	assert.ErrorContains(t, err, "offline")
}

func TestApplicationContent_Summary(t *testing.T) {
	gen := &fakeGenerator{textResponse: "- Built APIs\n- Led migrations"}
	resume := &types.ResumeData{PersonalInfo: types.PersonalInfo{Name: "Ada"}}
	job := types.Job{Designation: "Staff Engineer", CompanyName: "Acme"}

	content, err := ApplicationContent(context.Background(), gen, resume, job, types.ContentSummary)
	require.NoError(t, err)
	assert.Contains(t, content, "Built APIs")
	assert.Contains(t, gen.lastPrompt, "professional summary in 4-5 bullet points")
	assert.Contains(t, gen.lastPrompt, "Acme")
}

func TestApplicationContent_CoverLetter(t *testing.T) {
	gen := &fakeGenerator{textResponse: "Dear Hiring Manager, ..."}
	resume := &types.ResumeData{}
	job := types.Job{Designation: "SRE", CompanyName: "Globex"}

	_, err := ApplicationContent(context.Background(), gen, resume, job, types.ContentCoverLetter)
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "cover letter")
	assert.Contains(t, gen.lastPrompt, "Hiring Manager")
}

func TestApplicationContent_UnknownType(t *testing.T) {
	gen := &fakeGenerator{}

	_, err := ApplicationContent(context.Background(), gen, &types.ResumeData{}, types.Job{}, "haiku")
	assert.Error(t, err)
	assert.Empty(t, gen.lastPrompt)
}
