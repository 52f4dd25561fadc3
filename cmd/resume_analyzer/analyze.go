package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/config"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/ingestion"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/llm"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/observability"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/parsing"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/pipeline"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/schemas"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume against a job description",
	Long:  "Analyze a resume file (text or PDF) against a job description JSON file and emit a ResumeAnalysis record.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeOutputFile string
	analyzeConfigFile string
	analyzeAPIKey     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (.txt, .md, or .pdf)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description JSON file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to fill the description field")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout summary only)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to config JSON file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := loadOptionalConfig(analyzeConfigFile)
	resumePath := firstNonEmpty(analyzeResumeFile, cfg.Resume)
	jobPath := firstNonEmpty(analyzeJobFile, cfg.Job)
	if resumePath == "" || jobPath == "" {
		return fmt.Errorf("both --resume and --job are required")
	}

	ctx := context.Background()

	job, err := loadJob(ctx, jobPath, firstNonEmpty(analyzeJobURL, cfg.JobURL), analyzeVerbose || cfg.Verbose)
	if err != nil {
		return err
	}

	resumeText, err := ingestion.ReadResumeText(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	opts := &pipeline.Options{
		Weights: cfg.ScoringWeights(),
		Client:  newLLMClient(ctx, firstNonEmpty(analyzeAPIKey, cfg.APIKey)),
		Verbose: analyzeVerbose || cfg.Verbose,
	}
	if opts.Client != nil {
		defer func() { _ = opts.Client.Close() }()
	}

	analysis, err := pipeline.AnalyzeResume(ctx, job, pipeline.ResumeInput{
		FileName: filepath.Base(resumePath),
		Text:     resumeText,
	}, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(analysis)

	out := firstNonEmpty(analyzeOutputFile, cfg.Out)
	if out != "" {
		if err := writeAnalysisJSON(out, analysis); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", out)
	}
	return nil
}

// loadJob reads the job description file and, when a URL is given, fills its
// free-text description from the fetched posting.
func loadJob(ctx context.Context, jobPath, jobURL string, verbose bool) (*types.JobDescription, error) {
	job, err := parsing.LoadJobDescription(jobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}
	if jobURL != "" && job.Description == "" {
		text, err := ingestion.IngestJobPostingURL(ctx, jobURL, verbose)
		if err != nil {
			// The posting text only enriches the description; analysis
			// proceeds without it.
			fmt.Fprintf(os.Stderr, "Warning: could not fetch job posting: %v\n", err)
		} else {
			job.Description = text
		}
	}
	return job, nil
}

// newLLMClient returns a client when an API key is configured, nil otherwise.
// A nil client selects the deterministic path.
func newLLMClient(ctx context.Context, apiKey string) llm.Client {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil
	}
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable, using rule-based scoring: %v\n", err)
		return nil
	}
	return client
}

// writeAnalysisJSON writes the analysis and validates it against the schema
// when the schema file resolves.
func writeAnalysisJSON(path string, analysis *types.ResumeAnalysis) error {
	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "resume_analysis.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
		}
	}
	return nil
}

func loadOptionalConfig(path string) *config.Config {
	if path == "" {
		return &config.Config{}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
		return &config.Config{}
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
