// Package onboarding implements the linear onboarding step progression that
// collects and confirms the candidate's resume and career target.
package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/careercrafters/careercoach/internal/ingestion"
	"github.com/careercrafters/careercoach/internal/types"
)

// Step identifies one onboarding step.
type Step string

// The fixed onboarding sequence. Advancing from the last step finalizes the
// journey instead of moving further.
const (
	StepInitialInfo  Step = "initial_info"
	StepPersonalInfo Step = "personal_info"
	StepSkills       Step = "skills"
	StepExperience   Step = "experience"
	StepGoals        Step = "goals"
)

var stepOrder = []Step{StepInitialInfo, StepPersonalInfo, StepSkills, StepExperience, StepGoals}

// Sentinel errors for onboarding preconditions.
var (
	ErrNoFile           = errors.New("upload your resume to get started")
	ErrResumeNotReady   = errors.New("resume data is not available yet")
	ErrAlreadyFinalized = errors.New("onboarding is already finalized")
)

// Extractor turns extracted resume text into a structured record.
type Extractor interface {
	ExtractResume(ctx context.Context, text string) (*types.ResumeData, error)
}

// File is the resume file selected on the initial step.
type File struct {
	Name string
	Mime string
	Data []byte
}

// Result is emitted exactly once when the journey finalizes.
type Result struct {
	Resume  types.ResumeData
	Profile types.UserProfile
}

// Journey is the onboarding state machine. It owns the mutable draft of the
// resume and profile until finalization.
type Journey struct {
	extractor   Extractor
	extractText func(mime string, data []byte) (string, error)

	index     int
	file      *File
	resume    *types.ResumeData
	profile   types.UserProfile
	finalized bool
}

// Option configures a Journey.
type Option func(*Journey)

// WithTextExtractor overrides the file text extraction step.
func WithTextExtractor(fn func(mime string, data []byte) (string, error)) Option {
	return func(j *Journey) {
		j.extractText = fn
	}
}

// New creates a journey positioned at the initial step.
func New(extractor Extractor, opts ...Option) *Journey {
	j := &Journey{
		extractor:   extractor,
		extractText: ingestion.ExtractText,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Step returns the current step.
func (j *Journey) Step() Step {
	return stepOrder[j.index]
}

// Finalized reports whether the journey has emitted its result.
func (j *Journey) Finalized() bool {
	return j.finalized
}

// SelectFile stores the uploaded resume file. Unsupported file types are
// rejected locally, before any network call.
func (j *Journey) SelectFile(name, mime string, data []byte) error {
	if len(data) == 0 {
		return ErrNoFile
	}
	if !ingestion.SupportedType(mime) {
		return &ingestion.ErrUnsupportedFileType{Mime: mime}
	}
	j.file = &File{Name: name, Mime: mime, Data: data}
	return nil
}

// File returns the currently selected file, or nil.
func (j *Journey) File() *File {
	return j.file
}

// Resume returns the current resume draft, or nil before extraction.
func (j *Journey) Resume() *types.ResumeData {
	return j.resume
}

// Profile returns the current profile draft.
func (j *Journey) Profile() types.UserProfile {
	return j.profile
}

// SetResume replaces the whole resume draft. Edits are full-record
// replacements; there are no partial patches.
func (j *Journey) SetResume(resume types.ResumeData) error {
	if j.resume == nil {
		return ErrResumeNotReady
	}
	j.resume = &resume
	return nil
}

// SetProfile replaces the whole profile draft.
func (j *Journey) SetProfile(profile types.UserProfile) {
	j.profile = profile
}

// Advance moves the journey forward. On the initial step it runs text
// extraction and the resume extraction adapter; failure surfaces the error,
// discards the selected file, and stays put. On the last step it finalizes
// exactly once, returning the result to fold into the session.
func (j *Journey) Advance(ctx context.Context) (*Result, error) {
	if j.finalized {
		return nil, ErrAlreadyFinalized
	}

	switch j.Step() {
	case StepInitialInfo:
		if j.file == nil {
			return nil, ErrNoFile
		}
		text, err := j.extractText(j.file.Mime, j.file.Data)
		if err != nil {
			j.file = nil
			return nil, err
		}
		resume, err := j.extractor.ExtractResume(ctx, text)
		if err != nil {
			j.file = nil
			return nil, fmt.Errorf("failed to analyze resume: %w", err)
		}
		j.resume = resume
		j.index++
		return nil, nil

	case StepGoals:
		if j.resume == nil {
			return nil, ErrResumeNotReady
		}
		j.finalized = true
		return &Result{Resume: *j.resume, Profile: j.profile}, nil

	default:
		j.index++
		return nil, nil
	}
}

// Reopen returns a finalized journey to the goals step so the candidate can
// retry after a downstream failure. Drafts are kept intact.
func (j *Journey) Reopen() {
	j.finalized = false
}

// Retreat moves to the previous step. It is a no-op at the first step and
// never triggers network calls.
func (j *Journey) Retreat() {
	if j.index > 0 {
		j.index--
	}
}
