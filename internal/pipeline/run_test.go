package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/llm"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

// stubClient satisfies llm.Client with canned JSON output.
type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func pipelineJob() *types.JobDescription {
	return &types.JobDescription{
		Title:           "Full Stack Developer",
		MinExperience:   2,
		MaxExperience:   5,
		ExperienceLevel: "mid",
		RequiredSkills:  []string{"JavaScript", "React", "Node.js"},
		Education:       "bachelor",
	}
}

const pipelineResume = `Arun Kumar
arun@example.com

Summary
3+ years of experience as a full stack developer.

Skills
JavaScript, React, HTML, CSS

Education
Bachelor of Engineering in Computer Science
`

func TestAnalyzeResume_RuleBased(t *testing.T) {
	analysis, err := AnalyzeResume(context.Background(), pipelineJob(),
		ResumeInput{FileName: "arun.txt", Text: pipelineResume}, nil)
	require.NoError(t, err)

	assert.Equal(t, "arun.txt", analysis.FileName)
	assert.NotEmpty(t, analysis.ID)
	assert.Contains(t, analysis.KeywordMatches, "JavaScript")
	assert.Contains(t, analysis.KeywordMatches, "React")
	assert.Contains(t, analysis.MissingSkills, "Node.js")
	assert.GreaterOrEqual(t, analysis.OverallScore, 0)
	assert.LessOrEqual(t, analysis.OverallScore, 100)
	assert.NotEmpty(t, analysis.Recommendation)
	require.NotNil(t, analysis.Profile)
	assert.Equal(t, "Arun Kumar", analysis.Profile.PersonalInfo.Name)
}

func TestAnalyzeResume_Deterministic(t *testing.T) {
	job := pipelineJob()
	input := ResumeInput{FileName: "arun.txt", Text: pipelineResume}

	a, err := AnalyzeResume(context.Background(), job, input, nil)
	require.NoError(t, err)
	b, err := AnalyzeResume(context.Background(), job, input, nil)
	require.NoError(t, err)

	assert.Equal(t, a.OverallScore, b.OverallScore)
	assert.Equal(t, a.SkillsMatch, b.SkillsMatch)
	assert.Equal(t, a.ExperienceMatch, b.ExperienceMatch)
	assert.Equal(t, a.EducationMatch, b.EducationMatch)
	assert.Equal(t, a.Strengths, b.Strengths)
	assert.Equal(t, a.Recommendation, b.Recommendation)
}

func TestAnalyzeResume_FatalInputs(t *testing.T) {
	_, err := AnalyzeResume(context.Background(), nil,
		ResumeInput{FileName: "x.txt", Text: "text"}, nil)
	assert.Error(t, err)

	_, err = AnalyzeResume(context.Background(), pipelineJob(),
		ResumeInput{FileName: "x.txt", Text: "   "}, nil)
	assert.Error(t, err)
}

func TestAnalyzeResume_ExternalJudgeApplied(t *testing.T) {
	client := &stubClient{response: `{"technical_fit": 91, "cultural_fit": 82, "insights": "good fit"}`}
	opts := &Options{Weights: scoring.DefaultWeights(), Client: client}

	analysis, err := AnalyzeResume(context.Background(), pipelineJob(),
		ResumeInput{FileName: "arun.txt", Text: pipelineResume}, opts)
	require.NoError(t, err)

	assert.Equal(t, 91, analysis.TechnicalFit)
	assert.Equal(t, 82, analysis.CulturalFit)
	assert.Equal(t, "good fit", analysis.AIInsights)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeResume_JudgeFailureFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	opts := &Options{Weights: scoring.DefaultWeights(), Client: client}

	analysis, err := AnalyzeResume(context.Background(), pipelineJob(),
		ResumeInput{FileName: "arun.txt", Text: pipelineResume}, opts)
	require.NoError(t, err)
	assert.Empty(t, analysis.AIInsights)
	assert.Equal(t, 75, analysis.CulturalFit)
}

func TestAnalyzeResume_ProgressEvents(t *testing.T) {
	var steps []string
	opts := &Options{
		Weights:    scoring.DefaultWeights(),
		OnProgress: func(e ProgressEvent) { steps = append(steps, e.Step) },
	}

	_, err := AnalyzeResume(context.Background(), pipelineJob(),
		ResumeInput{FileName: "arun.txt", Text: pipelineResume}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"analyze", "aggregate"}, steps)
}

func TestAnalyzeBatch_PreservesInputOrder(t *testing.T) {
	resumes := []ResumeInput{
		{FileName: "weak.txt", Text: "Cashier with no technical background"},
		{FileName: "strong.txt", Text: pipelineResume},
	}

	analyses, ranking, err := AnalyzeBatch(context.Background(), pipelineJob(), resumes, nil)
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	// result order follows input order
	assert.Equal(t, "weak.txt", analyses[0].FileName)
	assert.Equal(t, "strong.txt", analyses[1].FileName)

	// ranking orders by score
	require.Len(t, ranking.Rankings, 2)
	assert.Equal(t, "strong.txt", ranking.Rankings[0].FileName)
	assert.Equal(t, 1, ranking.Rankings[0].Rank)
}

func TestAnalyzeBatch_BadRankingResponseFallsBack(t *testing.T) {
	client := &stubClient{response: "not json"}
	opts := &Options{Weights: scoring.DefaultWeights(), Client: client}

	resumes := []ResumeInput{
		{FileName: "a.txt", Text: pipelineResume},
		{FileName: "b.txt", Text: "Warehouse operations for 1 year"},
	}

	analyses, ranking, err := AnalyzeBatch(context.Background(), pipelineJob(), resumes, opts)
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	require.Len(t, ranking.Rankings, 2)
	assert.NotEmpty(t, ranking.Summary)
}

func TestAnalyzeBatch_EmptyInputs(t *testing.T) {
	_, _, err := AnalyzeBatch(context.Background(), pipelineJob(), nil, nil)
	assert.Error(t, err)

	_, _, err = AnalyzeBatch(context.Background(), nil, []ResumeInput{{FileName: "a", Text: "b"}}, nil)
	assert.Error(t, err)
}
