package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

func rankedAnalyses() []*types.ResumeAnalysis {
	return []*types.ResumeAnalysis{
		{FileName: "a.pdf", OverallScore: 88, SkillsMatch: 90},
		{FileName: "b.pdf", OverallScore: 72, SkillsMatch: 60},
	}
}

func TestRankCandidates_ValidResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"rankings": [
			{"file_name": "a.pdf", "rank": 1, "reasoning": "strong skills", "recommendation": "Highly Recommended"},
			{"file_name": "b.pdf", "rank": 2, "reasoning": "skill gaps", "recommendation": "Consider"}
		],
		"summary": "a.pdf is the stronger fit"
	}`}

	ranking, err := RankCandidates(context.Background(), client, testJob(), rankedAnalyses())
	require.NoError(t, err)
	require.Len(t, ranking.Rankings, 2)
	assert.Equal(t, "a.pdf", ranking.Rankings[0].FileName)
	// scores come from the analyses, not the model
	assert.Equal(t, 88, ranking.Rankings[0].OverallScore)
	assert.Equal(t, 72, ranking.Rankings[1].OverallScore)
	assert.Equal(t, TierStandard, client.lastTier)
	assert.Contains(t, client.lastPrompt, "a.pdf")
	assert.Contains(t, client.lastPrompt, "b.pdf")
}

func TestRankCandidates_MissingRanksAreFilled(t *testing.T) {
	client := &fakeClient{response: `{
		"rankings": [
			{"file_name": "b.pdf"},
			{"file_name": "a.pdf"}
		],
		"summary": "s"
	}`}

	ranking, err := RankCandidates(context.Background(), client, testJob(), rankedAnalyses())
	require.NoError(t, err)
	assert.Equal(t, 1, ranking.Rankings[0].Rank)
	assert.Equal(t, 2, ranking.Rankings[1].Rank)
}

func TestRankCandidates_WrongCardinality(t *testing.T) {
	client := &fakeClient{response: `{"rankings": [{"file_name": "a.pdf", "rank": 1}], "summary": "s"}`}

	_, err := RankCandidates(context.Background(), client, testJob(), rankedAnalyses())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2")
}

func TestRankCandidates_UnknownCandidate(t *testing.T) {
	client := &fakeClient{response: `{
		"rankings": [
			{"file_name": "a.pdf", "rank": 1},
			{"file_name": "ghost.pdf", "rank": 2}
		],
		"summary": "s"
	}`}

	_, err := RankCandidates(context.Background(), client, testJob(), rankedAnalyses())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost.pdf")
}

func TestRankCandidates_DuplicateCandidate(t *testing.T) {
	client := &fakeClient{response: `{
		"rankings": [
			{"file_name": "a.pdf", "rank": 1},
			{"file_name": "a.pdf", "rank": 2}
		],
		"summary": "s"
	}`}

	_, err := RankCandidates(context.Background(), client, testJob(), rankedAnalyses())
	assert.Error(t, err)
}

func TestRankCandidates_EmptyInputs(t *testing.T) {
	_, err := RankCandidates(context.Background(), &fakeClient{}, testJob(), nil)
	assert.Error(t, err)

	_, err = RankCandidates(context.Background(), nil, testJob(), rankedAnalyses())
	assert.Error(t, err)
}
