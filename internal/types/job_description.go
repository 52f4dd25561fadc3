// Package types provides type definitions for structured data used throughout the resume analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobDescription represents the structured description of an open position.
// It is immutable input to the analysis pipeline; required skills may arrive
// as a delimiter-joined string upstream and are normalized into RequiredSkills
// before the description reaches the engine.
type JobDescription struct {
	Title            string   `json:"title" validate:"required"`
	Department       string   `json:"department,omitempty"`
	MinExperience    int      `json:"min_experience" validate:"min=0"`
	MaxExperience    int      `json:"max_experience" validate:"min=0,gtefield=MinExperience"`
	ExperienceLevel  string   `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior lead"`
	RequiredSkills   SkillList `json:"required_skills"`
	PreferredSkills  SkillList `json:"preferred_skills,omitempty"`
	Education        string   `json:"education,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// ExperienceBand returns the min/max years band for the position.
func (j *JobDescription) ExperienceBand() (min, max int) {
	return j.MinExperience, j.MaxExperience
}
