package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `{
		"job": "job.json",
		"resumes": ["a.pdf", "b.pdf"],
		"verbose": true,
		"weights": {"skills": 0.5, "experience": 0.3, "technical_fit": 0.1, "education": 0.1}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "job.json", cfg.Job)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, cfg.Resumes)
	assert.True(t, cfg.Verbose)
	assert.InDelta(t, 0.5, cfg.ScoringWeights().Skills, 1e-9)
}

func TestLoadConfig_InvalidWeights(t *testing.T) {
	path := writeConfig(t, `{"weights": {"skills": 0.9, "experience": 0.9}}`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{"job":`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestScoringWeights_Defaults(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, scoring.DefaultWeights(), nilCfg.ScoringWeights())

	cfg := &Config{}
	assert.Equal(t, scoring.DefaultWeights(), cfg.ScoringWeights())
}
