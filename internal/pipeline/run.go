// Package pipeline orchestrates the analysis of resumes against a job
// description: profile extraction and the component scorers run concurrently
// per resume, the aggregator joins their results, and batch mode fans out
// across resumes before building a comparative ranking.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/llm"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/profile"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/skills"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

// ProgressEvent reports a pipeline step for verbose output and UIs.
type ProgressEvent struct {
	Step     string `json:"step"`
	FileName string `json:"file_name,omitempty"`
	Message  string `json:"message"`
}

// ProgressCallback is called as pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// Options configures an analysis run. Client is optional; when nil or when a
// call fails, the deterministic estimators supply every score.
type Options struct {
	Weights    scoring.Weights
	Client     llm.Client
	Verbose    bool
	OnProgress ProgressCallback
}

// ResumeInput is one resume ready for analysis: plain text plus its file
// identifier.
type ResumeInput struct {
	FileName string
	Text     string
}

// AnalyzeResume runs the full pipeline for one resume against a job
// description. Empty resume text and a missing job description are the only
// fatal inputs; every downstream failure degrades to the rule-based path.
func AnalyzeResume(ctx context.Context, job *types.JobDescription, resume ResumeInput, opts *Options) (*types.ResumeAnalysis, error) {
	if job == nil {
		return nil, fmt.Errorf("job description is required")
	}
	if strings.TrimSpace(resume.Text) == "" {
		return nil, fmt.Errorf("resume text is empty for %s", resume.FileName)
	}
	if opts == nil {
		opts = &Options{Weights: scoring.DefaultWeights()}
	}

	emit(opts, ProgressEvent{Step: "analyze", FileName: resume.FileName, Message: "scoring resume"})

	// The extractor and scorers only read the same immutable text, so they
	// run concurrently; aggregation is the join point.
	var (
		candidateProfile *types.CandidateProfile
		skillResult      skills.MatchResult
		experienceScore  int
		educationScore   int
	)

	var g errgroup.Group
	g.Go(func() error {
		candidateProfile = profile.Extract(resume.Text, resume.FileName)
		return nil
	})
	g.Go(func() error {
		skillResult = skills.Match(resume.Text, job.RequiredSkills)
		return nil
	})
	g.Go(func() error {
		experienceScore = scoring.EstimateExperience(resume.Text, job)
		return nil
	})
	g.Go(func() error {
		educationScore = scoring.EvaluateEducation(resume.Text, job.Education)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var external *scoring.ExternalScores
	if opts.Client != nil {
		judged, err := llm.JudgeResume(ctx, opts.Client, resume.Text, job)
		if err != nil {
			// Rule-based scores stand in for whatever the judge did not supply.
			log.Printf("LLM judge unavailable for %s, using rule-based scores: %v", resume.FileName, err)
		} else {
			external = judged
		}
		emit(opts, ProgressEvent{Step: "judge", FileName: resume.FileName, Message: "LLM judging complete"})
	}

	analysis := scoring.Aggregate(scoring.AggregateInput{
		FileName:   resume.FileName,
		ResumeText: resume.Text,
		Job:        job,
		Profile:    candidateProfile,
		Skills:     skillResult,
		Experience: experienceScore,
		Education:  educationScore,
		External:   external,
		Weights:    opts.Weights,
	})

	emit(opts, ProgressEvent{Step: "aggregate", FileName: resume.FileName,
		Message: fmt.Sprintf("overall score %d (%s)", analysis.OverallScore, analysis.Recommendation)})

	return analysis, nil
}

// AnalyzeBatch analyzes multiple resumes against one job description and
// builds a comparative ranking. Resumes are independent, so they are scored
// in parallel; result order follows input order regardless of completion
// order.
func AnalyzeBatch(ctx context.Context, job *types.JobDescription, resumes []ResumeInput, opts *Options) ([]*types.ResumeAnalysis, *types.ComparativeRanking, error) {
	if job == nil {
		return nil, nil, fmt.Errorf("job description is required")
	}
	if len(resumes) == 0 {
		return nil, nil, fmt.Errorf("no resumes to analyze")
	}
	if opts == nil {
		opts = &Options{Weights: scoring.DefaultWeights()}
	}

	analyses := make([]*types.ResumeAnalysis, len(resumes))
	g, gctx := errgroup.WithContext(ctx)
	for i, resume := range resumes {
		i, resume := i, resume
		g.Go(func() error {
			analysis, err := AnalyzeResume(gctx, job, resume, opts)
			if err != nil {
				return err
			}
			analyses[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	ranking := rankWithFallback(ctx, job, analyses, opts)
	return analyses, ranking, nil
}

// rankWithFallback prefers the LLM ranking and falls back to the
// deterministic score sort on any failure.
func rankWithFallback(ctx context.Context, job *types.JobDescription, analyses []*types.ResumeAnalysis, opts *Options) *types.ComparativeRanking {
	if opts.Client != nil {
		ranking, err := llm.RankCandidates(ctx, opts.Client, job, analyses)
		if err == nil {
			return ranking
		}
		log.Printf("LLM ranking unavailable, using deterministic ranking: %v", err)
	}
	return scoring.RankCandidates(analyses)
}

func emit(opts *Options, event ProgressEvent) {
	if opts.OnProgress != nil {
		opts.OnProgress(event)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] %s: %s %s", event.Step, event.FileName, event.Message)
	}
}
