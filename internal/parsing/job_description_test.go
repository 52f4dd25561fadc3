package parsing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobDescription_Valid(t *testing.T) {
	data := []byte(`{
		"title": "Backend Engineer",
		"min_experience": 3,
		"max_experience": 5,
		"experience_level": "Mid",
		"required_skills": ["Go", "PostgreSQL", "Docker"],
		"education": "Bachelor"
	}`)

	job, err := ParseJobDescription(data)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "mid", job.ExperienceLevel)
	assert.Equal(t, "bachelor", job.Education)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, []string(job.RequiredSkills))
}

func TestParseJobDescription_SkillsAsJoinedString(t *testing.T) {
	data := []byte(`{"title": "Data Engineer", "required_skills": "Python, SQL, Airflow"}`)

	job, err := ParseJobDescription(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL", "Airflow"}, []string(job.RequiredSkills))
}

func TestParseJobDescription_MissingTitle(t *testing.T) {
	_, err := ParseJobDescription([]byte(`{"required_skills": ["Go"]}`))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)
}

func TestParseJobDescription_InvalidJSON(t *testing.T) {
	_, err := ParseJobDescription([]byte(`{"title": `))
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestParseJobDescription_InvalidExperienceLevel(t *testing.T) {
	_, err := ParseJobDescription([]byte(`{"title": "X", "experience_level": "principal"}`))
	require.Error(t, err)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestNormalizeJobDescription_OpenEndedBand(t *testing.T) {
	job, err := ParseJobDescription([]byte(`{"title": "SRE", "min_experience": 4}`))
	require.NoError(t, err)
	assert.Equal(t, 4, job.MinExperience)
	assert.Equal(t, 9, job.MaxExperience)
}

func TestLoadJobDescription_FileMissing(t *testing.T) {
	_, err := LoadJobDescription(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestLoadJobDescription_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "QA Engineer", "required_skills": ["Selenium"]}`), 0o644))

	job, err := LoadJobDescription(path)
	require.NoError(t, err)
	assert.Equal(t, "QA Engineer", job.Title)
}
