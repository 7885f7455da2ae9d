// Package journey owns canonical per-session state and routes between the
// four screens: onboarding, roadmap, interview, and dashboard.
package journey

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careercrafters/careercoach/internal/interview"
	"github.com/careercrafters/careercoach/internal/onboarding"
	"github.com/careercrafters/careercoach/internal/progress"
	"github.com/careercrafters/careercoach/internal/types"
)

// Screen identifies which view a session is on.
type Screen string

const (
	ScreenOnboarding Screen = "onboarding"
	ScreenRoadmap    Screen = "roadmap"
	ScreenInterview  Screen = "interview"
	ScreenDashboard  Screen = "dashboard"
)

// Session errors.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrOperationInFlight = errors.New("another operation is already in flight for this session")
	ErrWrongScreen       = errors.New("operation is not available on the current screen")
	ErrNoRoadmap         = errors.New("no roadmap has been generated yet")
	ErrMilestoneLocked   = errors.New("complete the milestone's skills before interviewing")
	ErrNoActiveInterview = errors.New("no interview is in progress")
	ErrInterviewActive   = errors.New("an interview is already in progress")
	ErrJobNotFound       = errors.New("job listing not found")
)

// Session is all state for one coaching run. Nothing is durably persisted;
// the session lives until deleted or the process exits.
type Session struct {
	ID        string
	CreatedAt time.Time

	Screen     Screen
	Onboarding *onboarding.Journey
	Resume     *types.ResumeData
	Profile    types.UserProfile
	Roadmap    *types.Roadmap
	Tracker    *progress.Tracker

	ChatInterview  *interview.ChatSession
	AudioInterview *interview.AudioSession

	// Jobs are ephemeral dashboard results, discarded on navigation.
	Jobs []types.Job

	copiedAt time.Time

	// mu serializes operations on this session. Mutating triggers are
	// rejected, not queued, while a previous operation is still running;
	// reads take the shared side and wait.
	mu sync.RWMutex
}

// InterviewActive reports whether either interview variant is running.
func (s *Session) InterviewActive() bool {
	return s.ChatInterview != nil || s.AudioInterview != nil
}

// Store is an in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh session on the onboarding screen.
func (st *Store) Create(extractor onboarding.Extractor, opts ...onboarding.Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Screen:     ScreenOnboarding,
		Onboarding: onboarding.New(extractor, opts...),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
