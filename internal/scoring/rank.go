package scoring

import (
	"fmt"
	"sort"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

// RankCandidates builds a deterministic comparative ranking from completed
// analyses: candidates sorted by overall score descending, ties broken by
// file name so repeated runs agree. This is the fallback used when no LLM
// collaborator is available; the LLM path produces the same shape.
func RankCandidates(analyses []*types.ResumeAnalysis) *types.ComparativeRanking {
	if len(analyses) == 0 {
		return &types.ComparativeRanking{Summary: "No candidates analyzed"}
	}

	sorted := make([]*types.ResumeAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OverallScore != sorted[j].OverallScore {
			return sorted[i].OverallScore > sorted[j].OverallScore
		}
		return sorted[i].FileName < sorted[j].FileName
	})

	rankings := make([]types.CandidateRank, 0, len(sorted))
	for i, a := range sorted {
		rankings = append(rankings, types.CandidateRank{
			FileName:       a.FileName,
			Rank:           i + 1,
			OverallScore:   a.OverallScore,
			Reasoning:      rankReasoning(a),
			KeyStrengths:   types.CapList(a.Strengths, 3),
			KeyWeaknesses:  types.CapList(a.Weaknesses, 3),
			Recommendation: a.Recommendation,
		})
	}

	top := sorted[0]
	summary := fmt.Sprintf("%d candidates ranked by overall fit; %s leads with a score of %d (%s)",
		len(sorted), top.FileName, top.OverallScore, top.Recommendation)

	return &types.ComparativeRanking{Rankings: rankings, Summary: summary}
}

// rankReasoning states the dominant factors behind a candidate's position.
func rankReasoning(a *types.ResumeAnalysis) string {
	best, bestScore := "skills match", a.SkillsMatch
	if a.ExperienceMatch > bestScore {
		best, bestScore = "experience fit", a.ExperienceMatch
	}
	if a.EducationMatch > bestScore {
		best, bestScore = "education fit", a.EducationMatch
	}
	return fmt.Sprintf("Overall score %d driven primarily by %s (%d)", a.OverallScore, best, bestScore)
}
