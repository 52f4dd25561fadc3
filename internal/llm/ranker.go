package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

const rankSystemPrompt = `You are an experienced technical recruiter ranking candidates for one open position.
Rank all candidates from best to worst fit using their component scores and gaps.
Respond in JSON format only.`

// RankCandidates asks the LLM collaborator for a comparative ranking of the
// analyzed candidates. The response must cover every candidate exactly once;
// anything else is an error and the caller falls back to the deterministic
// score sort.
func RankCandidates(ctx context.Context, client Client, job *types.JobDescription, analyses []*types.ResumeAnalysis) (*types.ComparativeRanking, error) {
	if client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	if len(analyses) == 0 {
		return nil, fmt.Errorf("no analyses to rank")
	}

	prompt := buildRankPrompt(job, analyses)
	response, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("LLM ranking call failed: %w", err)
	}

	return parseRankResponse(response, analyses)
}

func buildRankPrompt(job *types.JobDescription, analyses []*types.ResumeAnalysis) string {
	var sb strings.Builder
	sb.WriteString(rankSystemPrompt)
	sb.WriteString(fmt.Sprintf("\n\nPOSITION: %s (required: %s)\n\nCANDIDATES\n",
		job.Title, strings.Join(job.RequiredSkills, ", ")))

	for _, a := range analyses {
		sb.WriteString(fmt.Sprintf("- %s: overall %d, skills %d, experience %d, education %d, missing [%s]\n",
			a.FileName, a.OverallScore, a.SkillsMatch, a.ExperienceMatch, a.EducationMatch,
			strings.Join(a.MissingSkills, ", ")))
	}

	sb.WriteString(`
Respond with a JSON object:
{"rankings": [{"file_name": "...", "rank": 1, "reasoning": "...", "key_strengths": ["..."], "key_weaknesses": ["..."], "recommendation": "Highly Recommended|Recommended|Consider|Not Recommended"}], "summary": "..."}`)

	return sb.String()
}

// parseRankResponse validates the LLM ranking against the analyzed set and
// fills in the scores the model was not asked to restate.
func parseRankResponse(response string, analyses []*types.ResumeAnalysis) (*types.ComparativeRanking, error) {
	var ranking types.ComparativeRanking
	if err := json.Unmarshal([]byte(CleanJSONBlock(response)), &ranking); err != nil {
		return nil, fmt.Errorf("failed to parse ranking response: %w", err)
	}
	if len(ranking.Rankings) != len(analyses) {
		return nil, fmt.Errorf("ranking covers %d candidates, expected %d", len(ranking.Rankings), len(analyses))
	}

	byFile := make(map[string]*types.ResumeAnalysis, len(analyses))
	for _, a := range analyses {
		byFile[a.FileName] = a
	}

	for i := range ranking.Rankings {
		entry := &ranking.Rankings[i]
		analysis, ok := byFile[entry.FileName]
		if !ok {
			return nil, fmt.Errorf("ranking references unknown candidate %q", entry.FileName)
		}
		delete(byFile, entry.FileName)
		entry.OverallScore = analysis.OverallScore
		if entry.Rank == 0 {
			entry.Rank = i + 1
		}
	}
	return &ranking, nil
}
