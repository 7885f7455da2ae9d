package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("coaching.json", "resume_extraction")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("coaching.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "resume_extraction")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("coaching.json", "nope") })
}

func TestFormat(t *testing.T) {
	template := "Target: {{.Target}}, Round: {{.Round}}"
	result := Format(template, map[string]string{
		"Target": "Staff Engineer",
		"Round":  "Technical",
	})
	assert.Equal(t, "Target: Staff Engineer, Round: Technical", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}

func TestInterviewSystemPrompts(t *testing.T) {
	chat, err := Get("interview.json", "chat_system")
	require.NoError(t, err)
	for _, placeholder := range []string{"{{.Round}}", "{{.TargetDesignation}}", "{{.MilestoneTitle}}", "{{.MilestoneSkills}}"} {
		assert.True(t, strings.Contains(chat, placeholder), "chat_system missing %s", placeholder)
	}

	audio, err := Get("interview.json", "audio_system")
	require.NoError(t, err)
	assert.Contains(t, audio, "Ask a total of 3 questions.")
}
