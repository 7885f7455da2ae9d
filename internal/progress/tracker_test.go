package progress

import (
	"testing"

	"github.com/careercrafters/careercoach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoadmap() *types.Roadmap {
	return &types.Roadmap{
		Milestones: []types.Milestone{
			{Title: "Data Foundations", SkillsToAcquire: []string{"SQL", "Python", "Modeling"}},
			{Title: "Master APIs", SkillsToAcquire: []string{"REST", "gRPC"}},
			{Title: "Soft Landing", SkillsToAcquire: nil},
		},
	}
}

func technicalFeedback(title string) *types.InterviewFeedback {
	return &types.InterviewFeedback{
		MilestoneTitle:      title,
		Round:               types.RoundTechnical,
		OverallScore:        7,
		ScoreReason:         "solid",
		Strengths:           []string{"depth"},
		AreasForImprovement: []string{"pace"},
		DetailedFeedback:    "good",
	}
}

func TestUnlock_FlipsExactlyAtBoundary(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)

	require.NoError(t, tr.ToggleSkill("Data Foundations", "SQL"))
	require.NoError(t, tr.ToggleSkill("Data Foundations", "Python"))
	assert.False(t, tr.IsMilestoneUnlocked("Data Foundations"), "2 of 3 skills")

	require.NoError(t, tr.ToggleSkill("Data Foundations", "Modeling"))
	assert.True(t, tr.IsMilestoneUnlocked("Data Foundations"), "3 of 3 skills")

	require.NoError(t, tr.ToggleSkill("Data Foundations", "Modeling"))
	assert.False(t, tr.IsMilestoneUnlocked("Data Foundations"), "untoggling re-locks")
}

func TestUnlock_VacuouslyTrueForZeroSkills(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)
	assert.True(t, tr.IsMilestoneUnlocked("Soft Landing"))
	assert.Equal(t, 1.0, tr.MilestoneProgress("Soft Landing"))
}

func TestToggleSkill_UnknownMilestoneOrSkill(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)
	assert.ErrorIs(t, tr.ToggleSkill("Nope", "SQL"), ErrUnknownMilestone)
	assert.ErrorIs(t, tr.ToggleSkill("Data Foundations", "Knitting"), ErrUnknownSkill)
}

func TestRecordInterviewCompletion_RetroactivelyFillsChecklist(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)

	require.NoError(t, tr.RecordInterviewCompletion("Data Foundations", types.RoundTechnical, technicalFeedback("Data Foundations")))

	assert.True(t, tr.IsSkillCompleted("Data Foundations", "SQL"))
	assert.True(t, tr.IsSkillCompleted("Data Foundations", "Python"))
	assert.True(t, tr.IsSkillCompleted("Data Foundations", "Modeling"))
	assert.True(t, tr.IsMilestoneUnlocked("Data Foundations"))
	assert.Equal(t, 1.0, tr.MilestoneProgress("Data Foundations"))
}

func TestRecordInterviewCompletion_IdempotentRoundInsert(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)

	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundTechnical, technicalFeedback("Master APIs")))
	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundTechnical, technicalFeedback("Master APIs")))

	assert.Equal(t, []types.InterviewRound{types.RoundTechnical}, tr.CompletedRounds("Master APIs"))
	assert.Len(t, tr.FeedbacksFor("Master APIs"), 1)
}

func TestRecordInterviewCompletion_UpsertsFeedbackByKey(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)

	first := technicalFeedback("Master APIs")
	first.OverallScore = 4
	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundTechnical, first))

	second := technicalFeedback("Master APIs")
	second.OverallScore = 9
	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundTechnical, second))

	hr := technicalFeedback("Master APIs")
	hr.Round = types.RoundHR
	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundHR, hr))

	feedbacks := tr.FeedbacksFor("Master APIs")
	require.Len(t, feedbacks, 2)
	assert.Equal(t, types.RoundTechnical, feedbacks[0].Round)
	assert.Equal(t, 9, feedbacks[0].OverallScore, "replacement, not append")
}

func TestToggleSkill_FrozenAfterAnyRound(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)
	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundGeneral, nil))

	assert.ErrorIs(t, tr.ToggleSkill("Master APIs", "REST"), ErrChecklistFrozen)
	assert.True(t, tr.IsSkillCompleted("Master APIs", "REST"), "retroactive fill survives the rejected toggle")
}

func TestOverallProgress_CountsDistinctMilestones(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)
	assert.Equal(t, 0.0, tr.OverallProgress())

	require.NoError(t, tr.RecordInterviewCompletion("Data Foundations", types.RoundTechnical, nil))
	require.NoError(t, tr.RecordInterviewCompletion("Data Foundations", types.RoundHR, nil))
	assert.InDelta(t, 1.0/3.0, tr.OverallProgress(), 1e-9, "extra rounds on one milestone do not count twice")

	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundGeneral, nil))
	assert.InDelta(t, 2.0/3.0, tr.OverallProgress(), 1e-9)
}

func TestMilestoneProgress_Fraction(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)
	require.NoError(t, tr.ToggleSkill("Master APIs", "REST"))
	assert.InDelta(t, 0.5, tr.MilestoneProgress("Master APIs"), 1e-9)
}

func TestRehydration_EnforcesRetroactiveInvariant(t *testing.T) {
	prior := &Snapshot{
		CompletedItems: map[string][]string{"Data Foundations": {"SQL"}},
		CompletedRounds: map[string][]types.InterviewRound{
			"Master APIs": {types.RoundTechnical},
		},
		Feedbacks: []types.InterviewFeedback{*technicalFeedback("Master APIs")},
	}

	tr := NewTracker(testRoadmap(), prior)

	assert.True(t, tr.IsSkillCompleted("Master APIs", "REST"), "rounds done at construction fill the checklist")
	assert.True(t, tr.IsSkillCompleted("Master APIs", "gRPC"))
	assert.True(t, tr.IsSkillCompleted("Data Foundations", "SQL"))
	assert.False(t, tr.IsMilestoneUnlocked("Data Foundations"))
	require.Len(t, tr.FeedbacksFor("Master APIs"), 1)
}

func TestSnapshot_RoundTrips(t *testing.T) {
	tr := NewTracker(testRoadmap(), nil)
	require.NoError(t, tr.ToggleSkill("Data Foundations", "SQL"))
	require.NoError(t, tr.RecordInterviewCompletion("Master APIs", types.RoundTechnical, technicalFeedback("Master APIs")))

	restored := NewTracker(testRoadmap(), tr.Snapshot())
	assert.True(t, restored.IsSkillCompleted("Data Foundations", "SQL"))
	assert.Equal(t, []types.InterviewRound{types.RoundTechnical}, restored.CompletedRounds("Master APIs"))
	assert.Len(t, restored.FeedbacksFor("Master APIs"), 1)
	assert.InDelta(t, tr.OverallProgress(), restored.OverallProgress(), 1e-9)
}
