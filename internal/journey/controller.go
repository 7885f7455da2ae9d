package journey

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/careercrafters/careercoach/internal/extraction"
	"github.com/careercrafters/careercoach/internal/interview"
	"github.com/careercrafters/careercoach/internal/jobs"
	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/onboarding"
	"github.com/careercrafters/careercoach/internal/progress"
	"github.com/careercrafters/careercoach/internal/roadmap"
	"github.com/careercrafters/careercoach/internal/types"
)

// copyAckWindow is how long the "copied!" acknowledgement stays active after
// application content is copied.
const copyAckWindow = 2 * time.Second

// Oracle is the AI surface the controller needs. llm.Client satisfies it.
type Oracle interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	StartChat(systemInstruction string, tier llm.ModelTier) (llm.Conversation, error)
}

// Controller executes session operations. Each operation takes the session's
// lock without waiting; a trigger arriving while another operation is in
// flight is rejected with ErrOperationInFlight.
type Controller struct {
	oracle Oracle
	store  *Store
	logger *zap.Logger
	now    func() time.Time

	// extractorOpts lets callers swap the file text extraction step.
	extractorOpts []onboarding.Option
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnboardingOptions forwards options to every onboarding journey the
// controller creates.
func WithOnboardingOptions(opts ...onboarding.Option) Option {
	return func(c *Controller) {
		c.extractorOpts = opts
	}
}

// NewController wires the controller to its oracle and session store.
func NewController(oracle Oracle, store *Store, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		oracle: oracle,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the session registry.
func (c *Controller) Store() *Store { return c.store }

// CreateSession starts a fresh coaching run on the onboarding screen.
func (c *Controller) CreateSession() *Session {
	s := c.store.Create(&resumeExtractor{oracle: c.oracle}, c.extractorOpts...)
	c.logger.Info("session created", zap.String("session_id", s.ID))
	return s
}

// withSession runs fn while holding the session lock, enforcing the
// one-operation-at-a-time rule.
func (c *Controller) withSession(id string, fn func(*Session) error) error {
	s, err := c.store.Get(id)
	if err != nil {
		return err
	}
	if !s.mu.TryLock() {
		return ErrOperationInFlight
	}
	defer s.mu.Unlock()
	return fn(s)
}

// View runs fn with the session read-locked. Unlike mutating operations,
// reads wait out an in-flight operation instead of being rejected, so a
// poll never races a write to the session's maps.
func (c *Controller) View(id string, fn func(*Session)) error {
	s, err := c.store.Get(id)
	if err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s)
	return nil
}

// SelectResumeFile stores the uploaded resume file on the onboarding journey.
func (c *Controller) SelectResumeFile(id, name, mime string, data []byte) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenOnboarding {
			return ErrWrongScreen
		}
		return s.Onboarding.SelectFile(name, mime, data)
	})
}

// UpdateResume replaces the resume draft during onboarding.
func (c *Controller) UpdateResume(id string, resume types.ResumeData) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenOnboarding {
			return ErrWrongScreen
		}
		return s.Onboarding.SetResume(resume)
	})
}

// UpdateProfile replaces the profile draft during onboarding.
func (c *Controller) UpdateProfile(id string, profile types.UserProfile) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenOnboarding {
			return ErrWrongScreen
		}
		s.Onboarding.SetProfile(profile)
		return nil
	})
}

// AdvanceOnboarding moves the journey forward. Finalizing the last step
// requests the roadmap; on failure the journey reopens so the candidate can
// retry, and no roadmap is created.
func (c *Controller) AdvanceOnboarding(ctx context.Context, id string) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenOnboarding {
			return ErrWrongScreen
		}

		result, err := s.Onboarding.Advance(ctx)
		if err != nil {
			return err
		}
		if result == nil {
			return nil
		}

		rm, err := roadmap.Generate(ctx, c.oracle, &result.Resume, result.Profile)
		if err != nil {
			s.Onboarding.Reopen()
			c.logger.Warn("roadmap generation failed",
				zap.String("session_id", s.ID),
				zap.Error(err))
			return fmt.Errorf("failed to generate your roadmap: %w", err)
		}

		s.Resume = &result.Resume
		s.Profile = result.Profile
		s.Roadmap = rm
		s.Tracker = progress.NewTracker(rm, nil)
		s.Jobs = nil
		s.Screen = ScreenRoadmap
		c.logger.Info("roadmap generated",
			zap.String("session_id", s.ID),
			zap.Int("milestones", len(rm.Milestones)))
		return nil
	})
}

// RetreatOnboarding moves the journey back one step.
func (c *Controller) RetreatOnboarding(id string) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenOnboarding {
			return ErrWrongScreen
		}
		s.Onboarding.Retreat()
		return nil
	})
}

// RestartOnboarding discards the roadmap, progress, feedback, and job
// listings, and begins a fresh onboarding run.
func (c *Controller) RestartOnboarding(id string) error {
	return c.withSession(id, func(s *Session) error {
		s.Onboarding = onboarding.New(&resumeExtractor{oracle: c.oracle}, c.extractorOpts...)
		s.Resume = nil
		s.Profile = types.UserProfile{}
		s.Roadmap = nil
		s.Tracker = nil
		s.ChatInterview = nil
		s.AudioInterview = nil
		s.Jobs = nil
		s.Screen = ScreenOnboarding
		return nil
	})
}

// ToggleSkill flips one checklist entry on the roadmap screen.
func (c *Controller) ToggleSkill(id, milestoneTitle, skill string) error {
	return c.withSession(id, func(s *Session) error {
		if s.Tracker == nil {
			return ErrNoRoadmap
		}
		return s.Tracker.ToggleSkill(milestoneTitle, skill)
	})
}

// StartInterview opens a mock interview for an unlocked milestone.
func (c *Controller) StartInterview(
	ctx context.Context,
	id, milestoneTitle string,
	round types.InterviewRound,
	interviewType types.InterviewType,
	speechSupported bool,
) error {
	return c.withSession(id, func(s *Session) error {
		if s.Roadmap == nil || s.Tracker == nil {
			return ErrNoRoadmap
		}
		if s.InterviewActive() {
			return ErrInterviewActive
		}
		if !round.Valid() {
			return fmt.Errorf("unknown interview round: %s", round)
		}
		milestone, ok := s.Roadmap.MilestoneByTitle(milestoneTitle)
		if !ok {
			return fmt.Errorf("%w: %s", progress.ErrUnknownMilestone, milestoneTitle)
		}
		if !s.Tracker.IsMilestoneUnlocked(milestoneTitle) {
			return ErrMilestoneLocked
		}

		switch interviewType {
		case types.InterviewAudio:
			session, err := interview.StartAudioSession(ctx, c.oracle, milestone, round, s.Profile,
				interview.NewSpeechAccumulator(speechSupported))
			if err != nil {
				return err
			}
			s.AudioInterview = session
		default:
			session, err := interview.StartChatSession(ctx, c.oracle, milestone, round, s.Profile)
			if err != nil {
				return err
			}
			s.ChatInterview = session
		}

		s.Screen = ScreenInterview
		c.logger.Info("interview started",
			zap.String("session_id", s.ID),
			zap.String("milestone", milestoneTitle),
			zap.String("round", string(round)),
			zap.String("type", string(interviewType)))
		return nil
	})
}

// SendChatMessage submits one candidate message and returns the interviewer
// reply turn.
func (c *Controller) SendChatMessage(ctx context.Context, id, message string) (interview.Turn, error) {
	var turn interview.Turn
	err := c.withSession(id, func(s *Session) error {
		if s.ChatInterview == nil {
			return ErrNoActiveInterview
		}
		var err error
		turn, err = s.ChatInterview.Send(ctx, message)
		return err
	})
	return turn, err
}

// StartSpeech begins collecting the spoken answer.
func (c *Controller) StartSpeech(id string) error {
	return c.withSession(id, func(s *Session) error {
		if s.AudioInterview == nil {
			return ErrNoActiveInterview
		}
		return s.AudioInterview.Speech().Start()
	})
}

// StopSpeech ends the listening phase.
func (c *Controller) StopSpeech(id string) error {
	return c.withSession(id, func(s *Session) error {
		if s.AudioInterview == nil {
			return ErrNoActiveInterview
		}
		s.AudioInterview.Speech().Stop()
		return nil
	})
}

// AddSpeechSegment appends one finalized transcript segment.
func (c *Controller) AddSpeechSegment(id, text string) error {
	return c.withSession(id, func(s *Session) error {
		if s.AudioInterview == nil {
			return ErrNoActiveInterview
		}
		return s.AudioInterview.Speech().AddSegment(text)
	})
}

// SubmitAudioAnswer submits the accumulated answer; done reports whether the
// question script is exhausted.
func (c *Controller) SubmitAudioAnswer(ctx context.Context, id string) (next string, done bool, err error) {
	err = c.withSession(id, func(s *Session) error {
		if s.AudioInterview == nil {
			return ErrNoActiveInterview
		}
		var innerErr error
		next, done, innerErr = s.AudioInterview.SubmitAnswer(ctx)
		return innerErr
	})
	return next, done, err
}

// FinishInterview scores the active interview, merges the feedback into the
// tracker, and returns to the roadmap screen. Oracle failures are absorbed
// into the fallback record upstream, so this only fails on preconditions.
func (c *Controller) FinishInterview(ctx context.Context, id string) (*types.InterviewFeedback, error) {
	var result *types.InterviewFeedback
	err := c.withSession(id, func(s *Session) error {
		var (
			fb             *types.InterviewFeedback
			milestoneTitle string
			round          types.InterviewRound
			err            error
		)

		switch {
		case s.ChatInterview != nil:
			milestoneTitle = s.ChatInterview.Milestone().Title
			round = s.ChatInterview.Round()
			fb, err = s.ChatInterview.Finish(ctx, c.oracle, s.Resume)
		case s.AudioInterview != nil:
			milestoneTitle = s.AudioInterview.Milestone().Title
			round = s.AudioInterview.Round()
			fb, err = s.AudioInterview.Finish(ctx, c.oracle, s.Resume)
		default:
			return ErrNoActiveInterview
		}
		if err != nil {
			return err
		}

		if err := s.Tracker.RecordInterviewCompletion(milestoneTitle, round, fb); err != nil {
			return err
		}
		s.ChatInterview = nil
		s.AudioInterview = nil
		s.Screen = ScreenRoadmap
		result = fb
		c.logger.Info("interview finished",
			zap.String("session_id", s.ID),
			zap.String("milestone", milestoneTitle),
			zap.String("round", string(round)),
			zap.Int("score", fb.OverallScore))
		return nil
	})
	return result, err
}

// AbandonInterview discards the active interview without scoring it.
func (c *Controller) AbandonInterview(id string) error {
	return c.withSession(id, func(s *Session) error {
		if !s.InterviewActive() {
			return ErrNoActiveInterview
		}
		s.ChatInterview = nil
		s.AudioInterview = nil
		s.Screen = ScreenRoadmap
		return nil
	})
}

// GoToDashboard navigates from the roadmap to the dashboard.
func (c *Controller) GoToDashboard(id string) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenRoadmap {
			return ErrWrongScreen
		}
		s.Screen = ScreenDashboard
		return nil
	})
}

// GoToRoadmap navigates back to the roadmap, discarding ephemeral job
// listings.
func (c *Controller) GoToRoadmap(id string) error {
	return c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenDashboard {
			return ErrWrongScreen
		}
		s.Jobs = nil
		s.Screen = ScreenRoadmap
		return nil
	})
}

// FindJobs generates job listings for the dashboard. Results replace any
// previous listings and are never persisted.
func (c *Controller) FindJobs(ctx context.Context, id string) ([]types.Job, error) {
	var listings []types.Job
	err := c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenDashboard {
			return ErrWrongScreen
		}
		var err error
		listings, err = jobs.FindRelevant(ctx, c.oracle, s.Profile)
		if err != nil {
			return err
		}
		s.Jobs = listings
		return nil
	})
	return listings, err
}

// ApplicationContent generates a summary or cover letter for one of the
// current job listings.
func (c *Controller) ApplicationContent(ctx context.Context, id string, jobIndex int, contentType types.ApplicationContentType) (string, error) {
	var content string
	err := c.withSession(id, func(s *Session) error {
		if s.Screen != ScreenDashboard {
			return ErrWrongScreen
		}
		if jobIndex < 0 || jobIndex >= len(s.Jobs) {
			return ErrJobNotFound
		}
		var err error
		content, err = jobs.ApplicationContent(ctx, c.oracle, s.Resume, s.Jobs[jobIndex], contentType)
		return err
	})
	return content, err
}

// MarkCopied records that application content was copied to the clipboard.
func (c *Controller) MarkCopied(id string) error {
	return c.withSession(id, func(s *Session) error {
		s.copiedAt = c.now()
		return nil
	})
}

// CopiedRecently reports whether the copy acknowledgement is still active.
func (c *Controller) CopiedRecently(id string) (bool, error) {
	var recent bool
	err := c.withSession(id, func(s *Session) error {
		recent = !s.copiedAt.IsZero() && c.now().Sub(s.copiedAt) < copyAckWindow
		return nil
	})
	return recent, err
}

// resumeExtractor adapts the oracle to the onboarding extractor interface.
type resumeExtractor struct {
	oracle Oracle
}

func (e *resumeExtractor) ExtractResume(ctx context.Context, text string) (*types.ResumeData, error) {
	return extraction.ExtractResume(ctx, e.oracle, text)
}
