package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/skills"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

func loadSchema(t *testing.T, name string) string {
	t.Helper()
	path := ResolveSchemaPath("schemas/" + name)
	require.NotEmpty(t, path, "schema %s not found", name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestJobDescriptionSchema_AcceptsBothSkillShapes(t *testing.T) {
	schema := loadSchema(t, "job_description.schema.json")

	assert.NoError(t, ValidateJSONString(schema,
		`{"title": "Engineer", "required_skills": ["Go", "SQL"]}`))
	assert.NoError(t, ValidateJSONString(schema,
		`{"title": "Engineer", "required_skills": "Go, SQL"}`))
	assert.Error(t, ValidateJSONString(schema,
		`{"required_skills": ["Go"]}`))
	assert.Error(t, ValidateJSONString(schema,
		`{"title": "Engineer", "required_skills": ["Go"], "experience_level": "principal"}`))
}

func TestResumeAnalysisSchema_AcceptsAggregatorOutput(t *testing.T) {
	schema := loadSchema(t, "resume_analysis.schema.json")

	analysis := scoring.Aggregate(scoring.AggregateInput{
		FileName:   "candidate.pdf",
		ResumeText: "5+ years of experience with Go and SQL",
		Job:        &types.JobDescription{Title: "Engineer", MinExperience: 3, MaxExperience: 6},
		Skills:     skills.MatchResult{Score: 80, Matched: []string{"Go"}, Missing: []string{"Rust"}},
		Experience: 80,
		Education:  85,
	})

	payload, err := json.Marshal(analysis)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONString(schema, string(payload)))
}

func TestResumeAnalysisSchema_RejectsOutOfRangeScores(t *testing.T) {
	schema := loadSchema(t, "resume_analysis.schema.json")

	err := ValidateJSONString(schema, `{
		"id": "x", "file_name": "a.pdf",
		"overall_score": 140, "skills_match": 50, "experience_match": 50,
		"education_match": 50, "technical_fit": 50, "cultural_fit": 50,
		"communication_score": 50, "leadership_potential": 50,
		"recommendation": "Recommended"
	}`)
	assert.Error(t, err)
}
