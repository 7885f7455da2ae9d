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

// maxAudioQuestions caps the audio interview. The system instruction tells
// the model to close after three questions, but the local counter is
// authoritative: the third answer finalizes the session without asking the
// oracle for a fourth turn.
const maxAudioQuestions = 3

type audioExchange struct {
	question string
	answer   string
}

// AudioSession is a speech-driven mock interview scripted to exactly three
// question/answer cycles. The candidate's answers arrive through the
// speech accumulator owned by this session.
type AudioSession struct {
	conv      llm.Conversation
	milestone types.Milestone
	round     types.InterviewRound

	speech *SpeechAccumulator

	currentQuestion string
	questionsAsked  int
	exchanges       []audioExchange
	done            bool
	finished        bool
}

// StartAudioSession opens the audio interviewer conversation and obtains the
// greeting plus first question.
func StartAudioSession(
	ctx context.Context,
	starter Starter,
	milestone types.Milestone,
	round types.InterviewRound,
	profile types.UserProfile,
	speech *SpeechAccumulator,
) (*AudioSession, error) {
	system, err := systemPrompt("audio_system", milestone, round, profile)
	if err != nil {
		return nil, err
	}
	opening, err := prompts.Get("interview.json", "audio_opening")
	if err != nil {
		return nil, err
	}

	conv, err := starter.StartChat(system, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to start interview session: %w", err)
	}

	question, err := conv.Send(ctx, opening)
	if err != nil {
		return nil, fmt.Errorf("failed to start interview session: %w", err)
	}

	if speech == nil {
		speech = NewSpeechAccumulator(true)
	}

	return &AudioSession{
		conv:            conv,
		milestone:       milestone,
		round:           round,
		speech:          speech,
		currentQuestion: question,
		questionsAsked:  1,
	}, nil
}

// Milestone returns the milestone this session interviews for.
func (s *AudioSession) Milestone() types.Milestone { return s.milestone }

// Round returns the interview round.
func (s *AudioSession) Round() types.InterviewRound { return s.round }

// Speech returns the accumulator collecting the candidate's current answer.
func (s *AudioSession) Speech() *SpeechAccumulator { return s.speech }

// CurrentQuestion returns the question awaiting an answer, or "" once the
// question script is exhausted.
func (s *AudioSession) CurrentQuestion() string { return s.currentQuestion }

// QuestionsAsked returns how many questions have been posed.
func (s *AudioSession) QuestionsAsked() int { return s.questionsAsked }

// Done reports whether the question script is exhausted and the session is
// ready for scoring.
func (s *AudioSession) Done() bool { return s.done }

// Finished reports whether the session has been scored.
func (s *AudioSession) Finished() bool { return s.finished }

// SubmitAnswer submits the accumulated spoken answer for the current
// question. It returns the next question, or done=true after the third
// answer, at which point no further oracle turn is requested. A failed oracle
// call records nothing, so the same answer can be resubmitted.
func (s *AudioSession) SubmitAnswer(ctx context.Context) (next string, done bool, err error) {
	if s.finished || s.done {
		return "", true, ErrSessionFinished
	}
	if !s.speech.CanSubmit() {
		return "", false, ErrAnswerNotPending
	}
	answer := s.speech.Text()

	if s.questionsAsked >= maxAudioQuestions {
		s.exchanges = append(s.exchanges, audioExchange{question: s.currentQuestion, answer: answer})
		s.speech.Reset()
		s.currentQuestion = ""
		s.done = true
		return "", true, nil
	}

	reply, err := s.conv.Send(ctx, answer)
	if err != nil {
		return "", false, fmt.Errorf("failed to submit answer: %w", err)
	}

	s.exchanges = append(s.exchanges, audioExchange{question: s.currentQuestion, answer: answer})
	s.speech.Reset()
	s.currentQuestion = reply
	s.questionsAsked++
	return reply, false, nil
}

// Finish requests feedback for the completed session, including the
// vocal-delivery analysis. An oracle failure substitutes the zero-score
// fallback record with all vocal metrics marked unavailable.
func (s *AudioSession) Finish(ctx context.Context, gen feedback.Generator, resume *types.ResumeData) (*types.InterviewFeedback, error) {
	if s.finished {
		return nil, ErrSessionFinished
	}
	if !s.done {
		return nil, ErrTooFewTurns
	}
	s.finished = true

	result, err := feedback.ForTranscript(ctx, gen, s.TranscriptText(), s.milestone, resume, s.round, true)
	if err != nil {
		return feedback.Fallback(s.milestone.Title, s.round, true), nil
	}
	return result, nil
}

// TranscriptText renders the question/answer exchanges in the plain-text
// form the feedback prompt expects.
func (s *AudioSession) TranscriptText() string {
	var b strings.Builder
	for _, ex := range s.exchanges {
		b.WriteString("\n\nInterviewer: ")
		b.WriteString(ex.question)
		b.WriteString("\nCandidate: ")
		b.WriteString(ex.answer)
	}
	return strings.TrimSpace(b.String())
}
