// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Job     string   `json:"job,omitempty"`     // Path to job description JSON file
	JobURL  string   `json:"job_url,omitempty"` // URL to fetch job posting text from
	Resume  string   `json:"resume,omitempty"`  // Path to a single resume file
	Resumes []string `json:"resumes,omitempty"` // Paths for batch analysis

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key; empty disables the LLM collaborator
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
	Out     string `json:"out,omitempty"`     // Output JSON path

	// Scoring policy. Zero value means use scoring.DefaultWeights.
	Weights *scoring.Weights `json:"weights,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Weights != nil {
		if err := cfg.Weights.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// ScoringWeights returns the configured weights or the defaults.
func (c *Config) ScoringWeights() scoring.Weights {
	if c == nil || c.Weights == nil {
		return scoring.DefaultWeights()
	}
	return c.Weights.Normalize()
}
