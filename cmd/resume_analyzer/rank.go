package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/ingestion"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/observability"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/parsing"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/pipeline"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Analyze multiple resumes and rank the candidates",
	Long:  "Analyze every given resume against one job description, then produce a comparative ranking of all candidates.",
	RunE:  runRank,
}

var (
	rankResumeFiles []string
	rankJobFile     string
	rankOutputFile  string
	rankConfigFile  string
	rankAPIKey      string
	rankVerbose     bool
)

func init() {
	rankCmd.Flags().StringSliceVarP(&rankResumeFiles, "resume", "r", nil, "Resume file; repeat for each candidate")
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job description JSON file")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file")
	rankCmd.Flags().StringVarP(&rankConfigFile, "config", "c", "", "Path to config JSON file")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg := loadOptionalConfig(rankConfigFile)
	resumePaths := rankResumeFiles
	if len(resumePaths) == 0 {
		resumePaths = cfg.Resumes
	}
	jobPath := firstNonEmpty(rankJobFile, cfg.Job)
	if len(resumePaths) < 2 || jobPath == "" {
		return fmt.Errorf("--job and at least two --resume files are required")
	}

	ctx := context.Background()

	job, err := parsing.LoadJobDescription(jobPath)
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	resumes := make([]pipeline.ResumeInput, 0, len(resumePaths))
	for _, path := range resumePaths {
		text, err := ingestion.ReadResumeText(path)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resumes = append(resumes, pipeline.ResumeInput{FileName: filepath.Base(path), Text: text})
	}

	opts := &pipeline.Options{
		Weights: cfg.ScoringWeights(),
		Client:  newLLMClient(ctx, firstNonEmpty(rankAPIKey, cfg.APIKey)),
		Verbose: rankVerbose || cfg.Verbose,
	}
	if opts.Client != nil {
		defer func() { _ = opts.Client.Close() }()
	}

	analyses, ranking, err := pipeline.AnalyzeBatch(ctx, job, resumes, opts)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRanking(ranking)

	out := firstNonEmpty(rankOutputFile, cfg.Out)
	if out != "" {
		payload := struct {
			Analyses any `json:"analyses"`
			Ranking  any `json:"ranking"`
		}{Analyses: analyses, Ranking: ranking}

		jsonBytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(out, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", out)
	}
	return nil
}
