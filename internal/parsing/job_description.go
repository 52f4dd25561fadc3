package parsing

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

var validate = validator.New()

// LoadJobDescription reads a job description JSON file, validates it, and
// normalizes its skill lists. This is the fatal-precondition gate: a missing
// or structurally invalid job description is the one input error the engine
// refuses to recover from.
func LoadJobDescription(path string) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Message: "failed to read job description file", Cause: err}
	}
	return ParseJobDescription(data)
}

// ParseJobDescription decodes and normalizes a job description document.
func ParseJobDescription(data []byte) (*types.JobDescription, error) {
	var job types.JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, &ParseError{Message: "failed to decode job description JSON", Cause: err}
	}
	if err := NormalizeJobDescription(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// NormalizeJobDescription validates required fields and normalizes the skill
// lists into clean ordered distinct tokens.
func NormalizeJobDescription(job *types.JobDescription) error {
	if strings.TrimSpace(job.Title) == "" {
		return &ValidationError{Field: "title", Message: "job title is required"}
	}
	if job.MaxExperience == 0 && job.MinExperience > 0 {
		// Open-ended band: treat min as the floor of a wide band.
		job.MaxExperience = job.MinExperience + 5
	}
	job.ExperienceLevel = strings.ToLower(strings.TrimSpace(job.ExperienceLevel))
	job.Education = strings.ToLower(strings.TrimSpace(job.Education))
	if err := validate.Struct(job); err != nil {
		return &ValidationError{Message: err.Error()}
	}

	job.RequiredSkills = NormalizeSkillList(job.RequiredSkills)
	job.PreferredSkills = NormalizeSkillList(job.PreferredSkills)
	return nil
}
