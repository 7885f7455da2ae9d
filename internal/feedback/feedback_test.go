package feedback

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

const chatFeedbackJSON = `{
	"overallScore": 8,
	"scoreReason": "Clear and specific answers.",
	"strengths": ["specificity"],
	"areasForImprovement": ["brevity"],
	"detailedFeedback": "A strong performance overall."
}`

const audioFeedbackJSON = `{
	"overallScore": 6,
	"scoreReason": "Decent but hesitant.",
	"strengths": ["domain knowledge"],
	"areasForImprovement": ["confidence"],
	"detailedFeedback": "Good content, hesitant delivery.",
	"vocalDelivery": {
		"pace": {"score": 7, "feedback": "Steady pace."},
		"clarity": {"score": 6, "feedback": "Mostly clear."},
		"confidence": {"score": 4, "feedback": "Frequent hedging."},
		"fillerWords": {"score": 5, "feedback": "Some fillers."},
		"energy": {"score": 6, "feedback": "Moderate energy."}
	}
}`

func testMilestone() types.Milestone {
	return types.Milestone{
		Title:           "Master APIs",
		SkillsToAcquire: []string{"REST", "gRPC"},
	}
}

func testResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{CurrentDesignation: "Engineer"},
		Skills:       []types.Skill{{Name: "Go", Level: types.LevelAdvanced}},
	}
}

func TestForTranscript_Chat(t *testing.T) {
	gen := &fakeGenerator{response: chatFeedbackJSON}

	result, err := ForTranscript(context.Background(), gen, "Interviewer: hi\nCandidate: hello", testMilestone(), testResume(), types.RoundTechnical, false)
	require.NoError(t, err)
	assert.Equal(t, "Master APIs", result.MilestoneTitle)
	assert.Equal(t, types.RoundTechnical, result.Round)
	assert.Equal(t, 8, result.OverallScore)
	assert.Nil(t, result.VocalDelivery)
	assert.Contains(t, gen.prompt, "'Technical' round interview")
	assert.Contains(t, gen.prompt, "REST, gRPC")
	assert.NotContains(t, gen.prompt, "vocalDelivery", "chat prompt must not request vocal analysis")
}

func TestForTranscript_AudioIncludesVocalDelivery(t *testing.T) {
	gen := &fakeGenerator{response: audioFeedbackJSON}

	result, err := ForTranscript(context.Background(), gen, "transcript", testMilestone(), testResume(), types.RoundHR, true)
	require.NoError(t, err)
	require.NotNil(t, result.VocalDelivery)
	assert.Equal(t, 4, result.VocalDelivery.Confidence.Score)
	assert.Contains(t, gen.prompt, "vocalDelivery")
}

func TestForTranscript_AudioMissingVocalDeliveryFailsClosed(t *testing.T) {
	gen := &fakeGenerator{response: chatFeedbackJSON}

	_, err := ForTranscript(context.Background(), gen, "transcript", testMilestone(), testResume(), types.RoundHR, true)
	assert.Error(t, err)
}

func TestForTranscript_OracleError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}

	_, err := ForTranscript(context.Background(), gen, "transcript", testMilestone(), testResume(), types.RoundGeneral, false)
	assert.ErrorContains(t, err, "boom")
}

func TestForTranscript_ScoreOutOfRangeRejected(t *testing.T) {
	gen := &fakeGenerator{response: `{
		"overallScore": 12,
		"scoreReason": "x",
		"strengths": [],
		"areasForImprovement": [],
		"detailedFeedback": "x"
	}`}

	_, err := ForTranscript(context.Background(), gen, "transcript", testMilestone(), testResume(), types.RoundGeneral, false)
	assert.Error(t, err)
}

func TestFallback_Chat(t *testing.T) {
	result := Fallback("Master APIs", types.RoundTechnical, false)
	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, "Could not be generated due to an error.", result.ScoreReason)
	assert.Nil(t, result.VocalDelivery)
	assert.NoError(t, result.Validate())
}

func TestFallback_AudioFillsAllMetrics(t *testing.T) {
	result := Fallback("Master APIs", types.RoundHR, true)
	require.NotNil(t, result.VocalDelivery)
	for _, metric := range []types.VocalDeliveryMetric{
		result.VocalDelivery.Pace,
		result.VocalDelivery.Clarity,
		result.VocalDelivery.Confidence,
		result.VocalDelivery.FillerWords,
		result.VocalDelivery.Energy,
	} {
		assert.Equal(t, 0, metric.Score)
		assert.Equal(t, "N/A", metric.Feedback)
	}
}
