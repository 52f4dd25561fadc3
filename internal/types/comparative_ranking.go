package types

// CandidateRank is one entry in a comparative ranking of candidates for the
// same position. Rank is 1-based; lower is better.
type CandidateRank struct {
	FileName       string   `json:"file_name"`
	Rank           int      `json:"rank"`
	OverallScore   int      `json:"overall_score"`
	Reasoning      string   `json:"reasoning"`
	KeyStrengths   []string `json:"key_strengths"`
	KeyWeaknesses  []string `json:"key_weaknesses"`
	Recommendation string   `json:"recommendation"`
}

// ComparativeRanking orders multiple candidates for one job description.
// It is built from completed ResumeAnalysis records, by the LLM collaborator
// when one is available and by a deterministic score sort otherwise.
type ComparativeRanking struct {
	Rankings []CandidateRank `json:"rankings"`
	Summary  string          `json:"summary"`
}
