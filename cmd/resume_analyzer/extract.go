package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/ingestion"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/observability"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/profile"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from a resume",
	Long:  "Extract a normalized CandidateProfile (contact info, skills by category, experience, education, projects, certifications) from a resume file without scoring it.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume file (.txt, .md, or .pdf)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	resumeText, err := ingestion.ReadResumeText(extractResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	candidateProfile := profile.Extract(resumeText, filepath.Base(extractResumeFile))

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(candidateProfile)

	if extractOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(candidateProfile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	}
	return nil
}
