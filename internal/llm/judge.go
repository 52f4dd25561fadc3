package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

const maxResumePromptChars = 6000

const judgeSystemPrompt = `You are an experienced technical recruiter evaluating a resume against a job description.
Score each dimension as an integer from 0 to 100. Be consistent: the same resume and job must always produce the same scores.
Respond in JSON format only.`

// judgeResponse is the JSON shape expected from the judging call. Pointer
// fields let a partially valid response contribute only what it contains.
type judgeResponse struct {
	ExperienceMatch     *int   `json:"experience_match"`
	EducationMatch      *int   `json:"education_match"`
	TechnicalFit        *int   `json:"technical_fit"`
	CulturalFit         *int   `json:"cultural_fit"`
	CommunicationScore  *int   `json:"communication_score"`
	LeadershipPotential *int   `json:"leadership_potential"`
	Insights            string `json:"insights"`
}

// JudgeResume asks the LLM collaborator for experience/education/technical-fit
// scores and narrative insights. Any failure (transport, bad JSON, missing
// fields) is returned to the caller, who falls back to the deterministic
// estimators for whatever is absent; this function never panics on a
// malformed response.
func JudgeResume(ctx context.Context, client Client, resumeText string, job *types.JobDescription) (*scoring.ExternalScores, error) {
	if client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	prompt := buildJudgePrompt(resumeText, job)
	response, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("LLM judge call failed: %w", err)
	}

	return parseJudgeResponse(response)
}

// buildJudgePrompt constructs the judging prompt from the resume and job.
func buildJudgePrompt(resumeText string, job *types.JobDescription) string {
	var sb strings.Builder
	sb.WriteString(judgeSystemPrompt)
	sb.WriteString("\n\nJOB DESCRIPTION\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Experience: %d-%d years (%s)\n", job.MinExperience, job.MaxExperience, job.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Required skills: %s\n", strings.Join(job.RequiredSkills, ", ")))
	if len(job.PreferredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Preferred skills: %s\n", strings.Join(job.PreferredSkills, ", ")))
	}
	if job.Education != "" {
		sb.WriteString(fmt.Sprintf("Required education: %s\n", job.Education))
	}
	if job.Description != "" {
		sb.WriteString(truncateText(job.Description, 1500))
		sb.WriteString("\n")
	}

	sb.WriteString("\nRESUME\n")
	sb.WriteString(truncateText(resumeText, maxResumePromptChars))

	sb.WriteString(`

Respond with a JSON object:
{"experience_match": int, "education_match": int, "technical_fit": int, "cultural_fit": int, "communication_score": int, "leadership_potential": int, "insights": "2-3 sentence assessment"}`)

	return sb.String()
}

// parseJudgeResponse decodes the judge JSON and clamps every present score.
func parseJudgeResponse(response string) (*scoring.ExternalScores, error) {
	var parsed judgeResponse
	if err := json.Unmarshal([]byte(CleanJSONBlock(response)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse judge response: %w", err)
	}

	ext := &scoring.ExternalScores{
		ExperienceMatch:     clampPtr(parsed.ExperienceMatch),
		EducationMatch:      clampPtr(parsed.EducationMatch),
		TechnicalFit:        clampPtr(parsed.TechnicalFit),
		CulturalFit:         clampPtr(parsed.CulturalFit),
		CommunicationScore:  clampPtr(parsed.CommunicationScore),
		LeadershipPotential: clampPtr(parsed.LeadershipPotential),
		Insights:            strings.TrimSpace(parsed.Insights),
	}
	return ext, nil
}

func clampPtr(score *int) *int {
	if score == nil {
		return nil
	}
	v := *score
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return &v
}
