package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/careercrafters/careercoach/internal/feedback"
	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/prompts"
	"github.com/careercrafters/careercoach/internal/types"
)

// sendErrorTurn is appended in place of a model reply when a mid-session send
// fails, so the conversation view never loses a candidate message.
const sendErrorTurn = "Sorry, I encountered an error. Please try again."

// ChatSession is a text mock interview. The oracle conversation holds the
// turn history; the session keeps its own transcript for scoring.
type ChatSession struct {
	conv      llm.Conversation
	milestone types.Milestone
	round     types.InterviewRound

	transcript []Turn
	finished   bool
}

// StartChatSession opens a conversation seeded with the interviewer system
// instruction and sends the opening message. The model's greeting and first
// question become the first transcript turn.
func StartChatSession(
	ctx context.Context,
	starter Starter,
	milestone types.Milestone,
	round types.InterviewRound,
	profile types.UserProfile,
) (*ChatSession, error) {
	system, err := systemPrompt("chat_system", milestone, round, profile)
	if err != nil {
		return nil, err
	}
	opening, err := prompts.Get("interview.json", "chat_opening")
	if err != nil {
		return nil, err
	}

	conv, err := starter.StartChat(system, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to start interview session: %w", err)
	}

	greeting, err := conv.Send(ctx, opening)
	if err != nil {
		return nil, fmt.Errorf("failed to start interview session: %w", err)
	}

	return &ChatSession{
		conv:       conv,
		milestone:  milestone,
		round:      round,
		transcript: []Turn{{Role: RoleInterviewer, Text: greeting}},
	}, nil
}

// Milestone returns the milestone this session interviews for.
func (s *ChatSession) Milestone() types.Milestone { return s.milestone }

// Round returns the interview round.
func (s *ChatSession) Round() types.InterviewRound { return s.round }

// Transcript returns the ordered turns so far.
func (s *ChatSession) Transcript() []Turn { return s.transcript }

// Finished reports whether the session has been scored.
func (s *ChatSession) Finished() bool { return s.finished }

// Send appends the candidate's message, requests the next interviewer turn,
// and appends it. A failed oracle call still records the candidate turn; the
// interviewer turn becomes a canned apology so the flow can continue.
func (s *ChatSession) Send(ctx context.Context, message string) (Turn, error) {
	if s.finished {
		return Turn{}, ErrSessionFinished
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return Turn{}, ErrEmptyAnswer
	}

	s.transcript = append(s.transcript, Turn{Role: RoleCandidate, Text: message})

	reply, err := s.conv.Send(ctx, message)
	if err != nil {
		reply = sendErrorTurn
	}
	turn := Turn{Role: RoleInterviewer, Text: reply}
	s.transcript = append(s.transcript, turn)
	return turn, nil
}

// CanFinish reports whether the session may be ended manually: the opening
// turn plus at least one candidate submission must exist.
func (s *ChatSession) CanFinish() bool {
	return len(s.transcript) >= 2
}

// Finish serializes the transcript and requests feedback. An oracle failure
// substitutes the zero-score fallback record so the session always completes.
func (s *ChatSession) Finish(ctx context.Context, gen feedback.Generator, resume *types.ResumeData) (*types.InterviewFeedback, error) {
	if s.finished {
		return nil, ErrSessionFinished
	}
	if !s.CanFinish() {
		return nil, ErrTooFewTurns
	}
	s.finished = true

	result, err := feedback.ForTranscript(ctx, gen, s.TranscriptText(), s.milestone, resume, s.round, false)
	if err != nil {
		return feedback.Fallback(s.milestone.Title, s.round, false), nil
	}
	return result, nil
}

// TranscriptText renders the transcript in the plain-text form the feedback
// prompt expects.
func (s *ChatSession) TranscriptText() string {
	var b strings.Builder
	for i, turn := range s.transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		switch turn.Role {
		case RoleCandidate:
			b.WriteString("Candidate: ")
		default:
			b.WriteString("Interviewer: ")
		}
		b.WriteString(turn.Text)
	}
	return b.String()
}
