package types

import (
	"github.com/go-playground/validator/v10"
)

// CapstoneProject is the hands-on project suggested for a milestone.
type CapstoneProject struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// SuggestedCourse is a course recommendation with a link.
type SuggestedCourse struct {
	Name string `json:"name" validate:"required"`
	Link string `json:"link" validate:"required"`
}

// Milestone is one stage of the generated roadmap. Title is the unique key
// used across the system: completed rounds and feedback records refer to
// milestones by title.
type Milestone struct {
	Title            string            `json:"title" validate:"required"`
	Description      string            `json:"description"`
	SkillsToAcquire  []string          `json:"skillsToAcquire"`
	SuggestedCourses []SuggestedCourse `json:"suggestedCourses" validate:"dive"`
	CapstoneProject  CapstoneProject   `json:"capstoneProject"`
}

// SoftSkill is a soft skill recommendation for the target role.
type SoftSkill struct {
	Skill       string `json:"skill" validate:"required"`
	Description string `json:"description"`
}

// NetworkingSuggestion carries a networking tip plus a ready-to-use outreach
// message template.
type NetworkingSuggestion struct {
	Suggestion      string `json:"suggestion"`
	MessageTemplate string `json:"messageTemplate"`
}

// Roadmap is the personalized career roadmap produced by the generation
// adapter. Created once per onboarding completion and immutable afterward;
// regenerating requires a fresh onboarding pass.
type Roadmap struct {
	GapAnalysis           string               `json:"gapAnalysis" validate:"required"`
	Milestones            []Milestone          `json:"milestones" validate:"required,min=1,dive"`
	SoftSkills            []SoftSkill          `json:"softSkills" validate:"dive"`
	NetworkingSuggestions NetworkingSuggestion `json:"networkingSuggestions"`
}

// MilestoneByTitle returns the milestone with the given title. The second
// return value reports whether a milestone with that title exists.
func (r *Roadmap) MilestoneByTitle(title string) (Milestone, bool) {
	for i := range r.Milestones {
		if r.Milestones[i].Title == title {
			return r.Milestones[i], true
		}
	}
	return Milestone{}, false
}

// Validate validates the Roadmap using the validator.
func (r *Roadmap) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
