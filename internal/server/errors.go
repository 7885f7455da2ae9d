// Package server provides the HTTP REST API for the career coach.
package server

import (
	"errors"
	"net/http"

	"github.com/careercrafters/careercoach/internal/ingestion"
	"github.com/careercrafters/careercoach/internal/interview"
	"github.com/careercrafters/careercoach/internal/journey"
	"github.com/careercrafters/careercoach/internal/onboarding"
	"github.com/careercrafters/careercoach/internal/progress"
	"github.com/careercrafters/careercoach/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unsupported *ingestion.ErrUnsupportedFileType
	var validation *schemas.ValidationError
	switch {
	case errors.Is(err, journey.ErrSessionNotFound),
		errors.Is(err, journey.ErrJobNotFound),
		errors.Is(err, progress.ErrUnknownMilestone):
		return http.StatusNotFound

	case errors.Is(err, journey.ErrOperationInFlight),
		errors.Is(err, journey.ErrWrongScreen),
		errors.Is(err, journey.ErrInterviewActive),
		errors.Is(err, journey.ErrNoActiveInterview),
		errors.Is(err, journey.ErrNoRoadmap),
		errors.Is(err, journey.ErrMilestoneLocked),
		errors.Is(err, progress.ErrChecklistFrozen),
		errors.Is(err, onboarding.ErrAlreadyFinalized),
		errors.Is(err, onboarding.ErrResumeNotReady),
		errors.Is(err, interview.ErrSessionFinished):
		return http.StatusConflict

	case errors.As(err, &unsupported),
		errors.Is(err, onboarding.ErrNoFile),
		errors.Is(err, progress.ErrUnknownSkill),
		errors.Is(err, interview.ErrEmptyAnswer),
		errors.Is(err, interview.ErrAnswerNotPending),
		errors.Is(err, interview.ErrTooFewTurns),
		errors.Is(err, interview.ErrNotListening):
		return http.StatusBadRequest

	case errors.Is(err, interview.ErrSpeechUnsupported):
		return http.StatusUnprocessableEntity

	case errors.As(err, &validation):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
