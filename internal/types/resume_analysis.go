package types

// Caps applied to narrative lists so downstream payloads stay bounded.
const (
	MaxStrengths       = 5
	MaxWeaknesses      = 5
	MaxRecommendations = 5
	MaxKeywordMatches  = 5
	MaxMissingSkills   = 3
	MaxExperienceGaps  = 3
)

// ResumeAnalysis is the output record of the analysis pipeline for one
// (resume, job) pair. All scores are integers clamped to [0,100]. The record
// is constructed once and immutable thereafter.
type ResumeAnalysis struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`

	OverallScore        int `json:"overall_score"`
	SkillsMatch         int `json:"skills_match"`
	ExperienceMatch     int `json:"experience_match"`
	EducationMatch      int `json:"education_match"`
	TechnicalFit        int `json:"technical_fit"`
	CulturalFit         int `json:"cultural_fit"`
	CommunicationScore  int `json:"communication_score"`
	LeadershipPotential int `json:"leadership_potential"`

	AIInsights      string   `json:"ai_insights,omitempty"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	KeywordMatches  []string `json:"keyword_matches"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceGaps  []string `json:"experience_gaps"`

	Recommendation string `json:"recommendation"`

	Profile *CandidateProfile `json:"profile,omitempty"`
}

// CapList returns list truncated to at most max entries.
func CapList(list []string, max int) []string {
	if len(list) <= max {
		return list
	}
	return list[:max]
}
