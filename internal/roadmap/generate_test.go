package roadmap

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
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

const validRoadmapJSON = `{
	"gapAnalysis": "You are close.\n\nThis roadmap will get you there.",
	"milestones": [
		{
			"title": "Master APIs",
			"description": "Learn API design",
			"skillsToAcquire": ["REST", "gRPC"],
			"suggestedCourses": [{"name": "API Design", "link": "https://example.com/api"}],
			"capstoneProject": {"title": "Build a gateway", "description": "An API gateway"}
		},
		{
			"title": "System Design",
			"description": "Scale things",
			"skillsToAcquire": ["Caching"],
			"suggestedCourses": [{"name": "SD Primer", "link": "https://example.com/sd"}],
			"capstoneProject": {"title": "Design a feed", "description": "A social feed"}
		},
		{
			"title": "Leadership Basics",
			"description": "Lead a team",
			"skillsToAcquire": [],
			"suggestedCourses": [],
			"capstoneProject": {"title": "Mentor", "description": "Mentor a junior"}
		}
	],
	"softSkills": [{"skill": "Communication", "description": "Speak clearly"}],
	"networkingSuggestions": {"suggestion": "Reach out weekly", "messageTemplate": "Hi {name}..."}
}`

func testResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{Name: "Ada", CurrentDesignation: "Engineer"},
		Skills:       []types.Skill{{Name: "Go", Level: types.LevelAdvanced}},
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{response: validRoadmapJSON}
	profile := types.UserProfile{
		TargetDesignation: "Staff Engineer",
		ExpectedSalaryMin: "150k",
		ExpectedSalaryMax: "200k",
	}

	roadmap, err := Generate(context.Background(), gen, testResume(), profile)
	require.NoError(t, err)
	assert.Len(t, roadmap.Milestones, 3)
	assert.Equal(t, "Master APIs", roadmap.Milestones[0].Title)
	assert.Contains(t, gen.prompt, "Staff Engineer")
	assert.Contains(t, gen.prompt, "150k - 200k")
}

func TestGenerate_OracleError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}

	_, err := Generate(context.Background(), gen, testResume(), types.UserProfile{})
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestGenerate_InvalidPayloadFailsClosed(t *testing.T) {
	gen := &fakeGenerator{response: `{"gapAnalysis": "only this"}`}

	_, err := Generate(context.Background(), gen, testResume(), types.UserProfile{})
	assert.Error(t, err)
}

func TestGenerate_NonJSONResponse(t *testing.T) {
	gen := &fakeGenerator{response: "Here is your roadmap: work hard."}

	_, err := Generate(context.Background(), gen, testResume(), types.UserProfile{})
	assert.Error(t, err)
}
