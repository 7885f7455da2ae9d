package interview

import (
	"errors"
	"strings"
)

// Speech capability errors.
var (
	ErrSpeechUnsupported = errors.New("speech recognition is not supported in this environment")
	ErrNotListening      = errors.New("speech recognition is not active")
)

// SpeechAccumulator collects finalized speech-to-text segments into a running
// answer. It mirrors the recognizer lifecycle: segments only arrive while
// listening, and a recognition error drops back to the stopped state.
type SpeechAccumulator struct {
	supported bool
	listening bool
	segments  []string
}

// NewSpeechAccumulator creates an accumulator. Callers report whether the
// host environment actually has a recognizer; when it does not, Start fails
// and the feature degrades.
func NewSpeechAccumulator(supported bool) *SpeechAccumulator {
	return &SpeechAccumulator{supported: supported}
}

// Supported reports whether the capability is available at all.
func (a *SpeechAccumulator) Supported() bool { return a.supported }

// Listening reports whether segments are currently being accepted.
func (a *SpeechAccumulator) Listening() bool { return a.listening }

// Start begins accepting segments.
func (a *SpeechAccumulator) Start() error {
	if !a.supported {
		return ErrSpeechUnsupported
	}
	a.listening = true
	return nil
}

// Stop ends the listening phase. Accumulated segments are kept.
func (a *SpeechAccumulator) Stop() {
	a.listening = false
}

// AddSegment appends one finalized transcript segment.
func (a *SpeechAccumulator) AddSegment(text string) error {
	if !a.listening {
		return ErrNotListening
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	a.segments = append(a.segments, text)
	return nil
}

// RecordError resets the listening state after a recognition failure. The
// accumulated text survives so the candidate can resume or submit.
func (a *SpeechAccumulator) RecordError() {
	a.listening = false
}

// Text returns the accumulated answer so far.
func (a *SpeechAccumulator) Text() string {
	return strings.Join(a.segments, " ")
}

// CanSubmit reports whether the answer is ready: listening has stopped and
// something was transcribed.
func (a *SpeechAccumulator) CanSubmit() bool {
	return !a.listening && len(a.segments) > 0
}

// Reset clears the accumulated answer for the next question.
func (a *SpeechAccumulator) Reset() {
	a.segments = nil
	a.listening = false
}
