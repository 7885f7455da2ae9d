// Package types provides type definitions for structured data used throughout the career-coach system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillLevel is the self-assessed expertise level for a resume skill.
type SkillLevel string

// Skill levels recognized by the resume extraction schema.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// PersonalInfo holds the candidate's identity details extracted from a resume.
type PersonalInfo struct {
	Name               string `json:"name"`
	Age                int    `json:"age,omitempty"`
	CurrentDesignation string `json:"currentDesignation"`
}

// WorkExperience represents a single position in the candidate's work history.
type WorkExperience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Summary  string `json:"summary"`
}

// Education represents a single entry in the candidate's education history.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year,omitempty"`
}

// Skill is a named skill with an estimated expertise level.
type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
}

// ResumeData is the structured resume record produced by the extraction adapter.
// It is a mutable draft during onboarding and read-mostly afterward; edits are
// always full-record replacements, never partial patches.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         []Skill          `json:"skills" validate:"dive"`
}

// UserProfile holds the candidate's career target. Salary bounds are free-text
// strings and intentionally unvalidated.
type UserProfile struct {
	TargetDesignation string `json:"targetDesignation"`
	ExpectedSalaryMin string `json:"expectedSalaryMin"`
	ExpectedSalaryMax string `json:"expectedSalaryMax"`
}

// SkillNames returns the names of all skills on the resume.
func (r *ResumeData) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Validate validates the ResumeData using the validator.
func (r *ResumeData) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
