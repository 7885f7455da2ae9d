package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeechAccumulator_Unsupported(t *testing.T) {
	a := NewSpeechAccumulator(false)
	assert.False(t, a.Supported())
	assert.ErrorIs(t, a.Start(), ErrSpeechUnsupported)
	assert.False(t, a.Listening())
}

func TestSpeechAccumulator_CollectsSegmentsWhileListening(t *testing.T) {
	a := NewSpeechAccumulator(true)
	require.NoError(t, a.Start())
	require.NoError(t, a.AddSegment("I led the"))
	require.NoError(t, a.AddSegment("platform migration"))
	assert.Equal(t, "I led the platform migration", a.Text())
	assert.False(t, a.CanSubmit(), "cannot submit while still listening")

	a.Stop()
	assert.True(t, a.CanSubmit())
}

func TestSpeechAccumulator_RejectsSegmentsWhenStopped(t *testing.T) {
	a := NewSpeechAccumulator(true)
	assert.ErrorIs(t, a.AddSegment("hello"), ErrNotListening)
}

func TestSpeechAccumulator_IgnoresBlankSegments(t *testing.T) {
	a := NewSpeechAccumulator(true)
	require.NoError(t, a.Start())
	require.NoError(t, a.AddSegment("   "))
	a.Stop()
	assert.False(t, a.CanSubmit())
}

func TestSpeechAccumulator_ErrorResetsListeningKeepsText(t *testing.T) {
	a := NewSpeechAccumulator(true)
	require.NoError(t, a.Start())
	require.NoError(t, a.AddSegment("partial answer"))

	a.RecordError()
	assert.False(t, a.Listening())
	assert.Equal(t, "partial answer", a.Text())
	assert.True(t, a.CanSubmit())
}

func TestSpeechAccumulator_Reset(t *testing.T) {
	a := NewSpeechAccumulator(true)
	require.NoError(t, a.Start())
	require.NoError(t, a.AddSegment("answer"))
	a.Stop()

	a.Reset()
	assert.Empty(t, a.Text())
	assert.False(t, a.CanSubmit())
}
