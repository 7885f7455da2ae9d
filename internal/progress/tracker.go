// Package progress tracks per-milestone skill checklists, interview
// completion, and feedback records for one roadmap.
package progress

import (
	"errors"
	"fmt"
	"sort"

	"github.com/careercrafters/careercoach/internal/types"
)

// Checklist errors.
var (
	ErrUnknownMilestone = errors.New("unknown milestone")
	ErrUnknownSkill     = errors.New("skill is not part of this milestone")
	ErrChecklistFrozen  = errors.New("checklist is frozen once an interview round is completed")
)

// roundRank orders rounds for stable feedback listings.
var roundRank = map[types.InterviewRound]int{
	types.RoundGeneral:    0,
	types.RoundTechnical:  1,
	types.RoundHR:         2,
	types.RoundLeadership: 3,
}

type feedbackKey struct {
	milestoneTitle string
	round          types.InterviewRound
}

// Snapshot is the exportable tracker state, used to rehydrate a tracker when
// navigating between screens without losing mid-flow progress.
type Snapshot struct {
	CompletedItems  map[string][]string               `json:"completedItems"`
	CompletedRounds map[string][]types.InterviewRound `json:"completedRounds"`
	Feedbacks       []types.InterviewFeedback         `json:"feedbacks"`
}

// Tracker derives unlock state and progress percentages for one roadmap.
// Completed rounds and checklist items are true sets, so repeated inserts are
// structurally idempotent.
type Tracker struct {
	roadmap *types.Roadmap

	completedItems  map[string]map[string]struct{}
	completedRounds map[string]map[types.InterviewRound]struct{}
	feedbacks       map[feedbackKey]types.InterviewFeedback
}

// NewTracker builds a tracker for a roadmap, optionally rehydrating prior
// state. Construction enforces the retroactive-completion invariant: any
// milestone with a completed round gets its whole skill checklist filled.
func NewTracker(roadmap *types.Roadmap, prior *Snapshot) *Tracker {
	t := &Tracker{
		roadmap:         roadmap,
		completedItems:  make(map[string]map[string]struct{}),
		completedRounds: make(map[string]map[types.InterviewRound]struct{}),
		feedbacks:       make(map[feedbackKey]types.InterviewFeedback),
	}
	if prior == nil {
		return t
	}

	for title, skills := range prior.CompletedItems {
		if _, ok := roadmap.MilestoneByTitle(title); !ok {
			continue
		}
		for _, skill := range skills {
			t.items(title)[skill] = struct{}{}
		}
	}
	for title, rounds := range prior.CompletedRounds {
		milestone, ok := roadmap.MilestoneByTitle(title)
		if !ok {
			continue
		}
		for _, round := range rounds {
			t.rounds(title)[round] = struct{}{}
		}
		t.fillChecklist(milestone)
	}
	for _, fb := range prior.Feedbacks {
		t.feedbacks[feedbackKey{fb.MilestoneTitle, fb.Round}] = fb
	}
	return t
}

// Snapshot exports the tracker state.
func (t *Tracker) Snapshot() *Snapshot {
	s := &Snapshot{
		CompletedItems:  make(map[string][]string, len(t.completedItems)),
		CompletedRounds: make(map[string][]types.InterviewRound, len(t.completedRounds)),
	}
	for title, set := range t.completedItems {
		skills := make([]string, 0, len(set))
		for skill := range set {
			skills = append(skills, skill)
		}
		sort.Strings(skills)
		s.CompletedItems[title] = skills
	}
	for title := range t.completedRounds {
		s.CompletedRounds[title] = t.CompletedRounds(title)
	}
	s.Feedbacks = t.AllFeedbacks()
	return s
}

// ToggleSkill flips one skill's membership in the milestone checklist. The
// checklist freezes once any interview round for that milestone is done.
func (t *Tracker) ToggleSkill(milestoneTitle, skill string) error {
	milestone, ok := t.roadmap.MilestoneByTitle(milestoneTitle)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMilestone, milestoneTitle)
	}
	if !containsSkill(milestone.SkillsToAcquire, skill) {
		return fmt.Errorf("%w: %s", ErrUnknownSkill, skill)
	}
	if len(t.completedRounds[milestoneTitle]) > 0 {
		return ErrChecklistFrozen
	}

	items := t.items(milestoneTitle)
	if _, done := items[skill]; done {
		delete(items, skill)
	} else {
		items[skill] = struct{}{}
	}
	return nil
}

// IsSkillCompleted reports membership of one skill in the checklist.
func (t *Tracker) IsSkillCompleted(milestoneTitle, skill string) bool {
	_, done := t.completedItems[milestoneTitle][skill]
	return done
}

// IsMilestoneUnlocked reports whether every required skill is checked off.
// Milestones with no required skills are unlocked from the start.
func (t *Tracker) IsMilestoneUnlocked(milestoneTitle string) bool {
	milestone, ok := t.roadmap.MilestoneByTitle(milestoneTitle)
	if !ok {
		return false
	}
	return len(t.completedItems[milestoneTitle]) == len(milestone.SkillsToAcquire)
}

// RecordInterviewCompletion inserts the round into the milestone's completed
// set, upserts the feedback record keyed by (milestone, round), and
// retroactively fills the skill checklist.
func (t *Tracker) RecordInterviewCompletion(milestoneTitle string, round types.InterviewRound, fb *types.InterviewFeedback) error {
	milestone, ok := t.roadmap.MilestoneByTitle(milestoneTitle)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMilestone, milestoneTitle)
	}
	if !round.Valid() {
		return fmt.Errorf("unknown interview round: %s", round)
	}

	t.rounds(milestoneTitle)[round] = struct{}{}
	t.fillChecklist(milestone)
	if fb != nil {
		t.feedbacks[feedbackKey{milestoneTitle, round}] = *fb
	}
	return nil
}

// CompletedRounds returns the completed rounds for one milestone in their
// canonical order.
func (t *Tracker) CompletedRounds(milestoneTitle string) []types.InterviewRound {
	set := t.completedRounds[milestoneTitle]
	rounds := make([]types.InterviewRound, 0, len(set))
	for round := range set {
		rounds = append(rounds, round)
	}
	sort.Slice(rounds, func(i, j int) bool { return roundRank[rounds[i]] < roundRank[rounds[j]] })
	return rounds
}

// HasCompletedAnyRound reports whether any interview is done for a milestone.
func (t *Tracker) HasCompletedAnyRound(milestoneTitle string) bool {
	return len(t.completedRounds[milestoneTitle]) > 0
}

// OverallProgress counts a milestone as complete the moment any single round
// is recorded for it, a deliberate simplification kept from the product.
func (t *Tracker) OverallProgress() float64 {
	if len(t.roadmap.Milestones) == 0 {
		return 0
	}
	completed := 0
	for title, rounds := range t.completedRounds {
		if _, ok := t.roadmap.MilestoneByTitle(title); ok && len(rounds) > 0 {
			completed++
		}
	}
	return float64(completed) / float64(len(t.roadmap.Milestones))
}

// MilestoneProgress is the checked fraction of one milestone's skill list.
func (t *Tracker) MilestoneProgress(milestoneTitle string) float64 {
	milestone, ok := t.roadmap.MilestoneByTitle(milestoneTitle)
	if !ok {
		return 0
	}
	if len(milestone.SkillsToAcquire) == 0 {
		return 1
	}
	return float64(len(t.completedItems[milestoneTitle])) / float64(len(milestone.SkillsToAcquire))
}

// FeedbacksFor returns the feedback records for one milestone, ordered by
// round.
func (t *Tracker) FeedbacksFor(milestoneTitle string) []types.InterviewFeedback {
	var out []types.InterviewFeedback
	for key, fb := range t.feedbacks {
		if key.milestoneTitle == milestoneTitle {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return roundRank[out[i].Round] < roundRank[out[j].Round] })
	return out
}

// AllFeedbacks returns every feedback record, ordered by roadmap milestone
// position and then by round.
func (t *Tracker) AllFeedbacks() []types.InterviewFeedback {
	position := make(map[string]int, len(t.roadmap.Milestones))
	for i, m := range t.roadmap.Milestones {
		position[m.Title] = i
	}

	out := make([]types.InterviewFeedback, 0, len(t.feedbacks))
	for _, fb := range t.feedbacks {
		out = append(out, fb)
	}
	sort.Slice(out, func(i, j int) bool {
		if position[out[i].MilestoneTitle] != position[out[j].MilestoneTitle] {
			return position[out[i].MilestoneTitle] < position[out[j].MilestoneTitle]
		}
		return roundRank[out[i].Round] < roundRank[out[j].Round]
	})
	return out
}

func (t *Tracker) items(title string) map[string]struct{} {
	if t.completedItems[title] == nil {
		t.completedItems[title] = make(map[string]struct{})
	}
	return t.completedItems[title]
}

func (t *Tracker) rounds(title string) map[types.InterviewRound]struct{} {
	if t.completedRounds[title] == nil {
		t.completedRounds[title] = make(map[types.InterviewRound]struct{})
	}
	return t.completedRounds[title]
}

func (t *Tracker) fillChecklist(milestone types.Milestone) {
	items := t.items(milestone.Title)
	for _, skill := range milestone.SkillsToAcquire {
		items[skill] = struct{}{}
	}
}

func containsSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}
