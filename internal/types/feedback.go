package types

import (
	"github.com/go-playground/validator/v10"
)

// InterviewRound is an interview category applied independently to chat or
// audio interviews. It is a tag, not an entity: a milestone may accumulate
// feedback for several rounds.
type InterviewRound string

// Interview rounds offered by the interview setup flow.
const (
	RoundGeneral    InterviewRound = "General"
	RoundTechnical  InterviewRound = "Technical"
	RoundHR         InterviewRound = "HR"
	RoundLeadership InterviewRound = "Leadership"
)

// Valid reports whether the round is one of the recognized categories.
func (r InterviewRound) Valid() bool {
	switch r {
	case RoundGeneral, RoundTechnical, RoundHR, RoundLeadership:
		return true
	}
	return false
}

// InterviewType selects the interview session mechanics.
type InterviewType string

// Interview session variants.
const (
	InterviewChat  InterviewType = "chat"
	InterviewAudio InterviewType = "audio"
)

// VocalDeliveryMetric is a single scored vocal-delivery dimension.
type VocalDeliveryMetric struct {
	Score    int    `json:"score" validate:"min=0,max=10"`
	Feedback string `json:"feedback"`
}

// VocalDelivery is the audio-only analysis block with five named metrics.
type VocalDelivery struct {
	Pace        VocalDeliveryMetric `json:"pace"`
	Clarity     VocalDeliveryMetric `json:"clarity"`
	Confidence  VocalDeliveryMetric `json:"confidence"`
	FillerWords VocalDeliveryMetric `json:"fillerWords"`
	Energy      VocalDeliveryMetric `json:"energy"`
}

// InterviewFeedback is the scored assessment produced by the feedback adapter.
// The (MilestoneTitle, Round) pair is the record's identity: the feedback
// collection holds at most one record per pair and inserts are upserts.
type InterviewFeedback struct {
	MilestoneTitle      string         `json:"milestoneTitle" validate:"required"`
	Round               InterviewRound `json:"round" validate:"required"`
	OverallScore        int            `json:"overallScore" validate:"min=0,max=10"`
	ScoreReason         string         `json:"scoreReason"`
	Strengths           []string       `json:"strengths"`
	AreasForImprovement []string       `json:"areasForImprovement"`
	DetailedFeedback    string         `json:"detailedFeedback"`
	VocalDelivery       *VocalDelivery `json:"vocalDelivery,omitempty"`
}

// Validate validates the InterviewFeedback using the validator.
func (f *InterviewFeedback) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
