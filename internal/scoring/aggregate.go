package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/parsing"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/skills"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

// Recommendation categories by overall score band.
const (
	RecommendationHighly      = "Highly Recommended"
	RecommendationRecommended = "Recommended"
	RecommendationConsider    = "Consider"
	RecommendationNot         = "Not Recommended"
)

// ExternalScores carries scores supplied by an external collaborator such as
// an LLM judge. Nil fields fall back to the deterministic estimators, so a
// partially parsed response still contributes what it has.
type ExternalScores struct {
	ExperienceMatch     *int
	EducationMatch      *int
	TechnicalFit        *int
	CulturalFit         *int
	CommunicationScore  *int
	LeadershipPotential *int
	Insights            string
}

// AggregateInput bundles everything the aggregator needs for one resume.
type AggregateInput struct {
	FileName   string
	ResumeText string
	Job        *types.JobDescription
	Profile    *types.CandidateProfile
	Skills     skills.MatchResult
	Experience int
	Education  int
	External   *ExternalScores
	Weights    Weights
}

// Aggregate combines component scores into a ResumeAnalysis. When an external
// technical-fit signal exists the overall score is the fixed weighted blend;
// otherwise it is the plain average of the four component scores.
func Aggregate(in AggregateInput) *types.ResumeAnalysis {
	weights := in.Weights.Normalize()

	skillsMatch := clampScore(in.Skills.Score)
	experienceMatch := clampScore(in.Experience)
	educationMatch := clampScore(in.Education)

	hasExternalFit := false
	technicalFit := clampScore((skillsMatch + experienceMatch) / 2)
	culturalFit := 75
	communication := communicationScore(in.ResumeText)
	leadership := leadershipScore(in.ResumeText)
	insights := ""

	if ext := in.External; ext != nil {
		if ext.ExperienceMatch != nil {
			experienceMatch = clampScore(*ext.ExperienceMatch)
		}
		if ext.EducationMatch != nil {
			educationMatch = clampScore(*ext.EducationMatch)
		}
		if ext.TechnicalFit != nil {
			technicalFit = clampScore(*ext.TechnicalFit)
			hasExternalFit = true
		}
		if ext.CulturalFit != nil {
			culturalFit = clampScore(*ext.CulturalFit)
		}
		if ext.CommunicationScore != nil {
			communication = clampScore(*ext.CommunicationScore)
		}
		if ext.LeadershipPotential != nil {
			leadership = clampScore(*ext.LeadershipPotential)
		}
		insights = ext.Insights
	}

	var overall int
	if hasExternalFit {
		overall = int(math.Round(float64(skillsMatch)*weights.Skills +
			float64(experienceMatch)*weights.Experience +
			float64(technicalFit)*weights.TechnicalFit +
			float64(educationMatch)*weights.Education))
	} else {
		overall = int(math.Round(float64(skillsMatch+experienceMatch+technicalFit+educationMatch) / 4))
	}
	overall = clampScore(overall)

	analysis := &types.ResumeAnalysis{
		ID:                  uuid.NewString(),
		FileName:            in.FileName,
		OverallScore:        overall,
		SkillsMatch:         skillsMatch,
		ExperienceMatch:     experienceMatch,
		EducationMatch:      educationMatch,
		TechnicalFit:        technicalFit,
		CulturalFit:         clampScore(culturalFit),
		CommunicationScore:  clampScore(communication),
		LeadershipPotential: clampScore(leadership),
		AIInsights:          insights,
		Strengths:           types.CapList(buildStrengths(skillsMatch, experienceMatch, educationMatch), types.MaxStrengths),
		Weaknesses:          types.CapList(buildWeaknesses(skillsMatch, experienceMatch, educationMatch, in.Skills.Missing), types.MaxWeaknesses),
		Recommendations:     types.CapList(buildRecommendations(overall, in.Skills.Missing), types.MaxRecommendations),
		KeywordMatches:      orEmpty(types.CapList(in.Skills.Matched, types.MaxKeywordMatches)),
		MissingSkills:       orEmpty(types.CapList(in.Skills.Missing, types.MaxMissingSkills)),
		ExperienceGaps:      orEmpty(types.CapList(buildExperienceGaps(in.ResumeText, in.Job), types.MaxExperienceGaps)),
		Recommendation:      recommendationCategory(overall),
		Profile:             in.Profile,
	}
	return analysis
}

// recommendationCategory maps an overall score to its categorical band.
func recommendationCategory(overall int) string {
	switch {
	case overall >= 85:
		return RecommendationHighly
	case overall >= 75:
		return RecommendationRecommended
	case overall >= 65:
		return RecommendationConsider
	default:
		return RecommendationNot
	}
}

// buildStrengths selects strength statements from fixed pools keyed by score
// bands. Narrative here is threshold-driven, never generative.
func buildStrengths(skillsMatch, experienceMatch, educationMatch int) []string {
	var strengths []string
	switch {
	case skillsMatch >= 85:
		strengths = append(strengths, "Excellent alignment with the required skill set")
	case skillsMatch >= 75:
		strengths = append(strengths, "Strong coverage of the required skills")
	case skillsMatch >= 65:
		strengths = append(strengths, "Good foundational match on required skills")
	}
	switch {
	case experienceMatch >= 85:
		strengths = append(strengths, "Excellent experience fit for the role's band")
	case experienceMatch >= 75:
		strengths = append(strengths, "Strong relevant experience background")
	case experienceMatch >= 65:
		strengths = append(strengths, "Good practical experience for the role")
	}
	switch {
	case educationMatch >= 85:
		strengths = append(strengths, "Excellent educational background for the position")
	case educationMatch >= 75:
		strengths = append(strengths, "Strong educational qualifications")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Shows potential for growth in this role")
	}
	return strengths
}

// buildWeaknesses selects weakness statements for components under threshold.
func buildWeaknesses(skillsMatch, experienceMatch, educationMatch int, missing []string) []string {
	var weaknesses []string
	if len(missing) > 0 {
		weaknesses = append(weaknesses, "Missing required skills: "+strings.Join(missing, ", "))
	}
	if skillsMatch < 65 {
		weaknesses = append(weaknesses, "Limited coverage of the required skill set")
	}
	if experienceMatch < 65 {
		weaknesses = append(weaknesses, "Experience level below the role's expectations")
	}
	if educationMatch < 65 {
		weaknesses = append(weaknesses, "Educational background does not match the stated requirement")
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "No significant gaps identified by rule-based screening")
	}
	return weaknesses
}

// buildRecommendations selects next-step statements keyed by the overall band.
func buildRecommendations(overall int, missing []string) []string {
	var recs []string
	switch {
	case overall >= 85:
		recs = append(recs, "Proceed to technical interview", "Fast-track through initial screening")
	case overall >= 75:
		recs = append(recs, "Schedule a screening interview", "Verify depth of listed skills during the call")
	case overall >= 65:
		recs = append(recs, "Consider for interview if the candidate pool is limited", "Probe weaker areas during screening")
	default:
		recs = append(recs, "Meets only basic requirements; keep on file for junior openings")
	}
	if len(missing) > 0 {
		recs = append(recs, "Assess willingness to upskill in: "+strings.Join(missing, ", "))
	}
	return recs
}

// buildExperienceGaps describes the shortfall when apparent years are under
// the job's minimum.
func buildExperienceGaps(resumeText string, job *types.JobDescription) []string {
	if job == nil {
		return nil
	}
	years := ExtractYears(strings.ToLower(resumeText))
	if years >= job.MinExperience {
		return nil
	}
	return []string{fmt.Sprintf("Resume indicates %d years of experience; the role expects at least %d", years, job.MinExperience)}
}

// communicationScore is a deterministic proxy for written communication:
// presence of structure and collaboration language in the resume.
func communicationScore(resumeText string) int {
	text := parsing.NormalizeText(resumeText)
	score := 65
	for _, signal := range []string{"summary", "objective"} {
		if strings.Contains(text, signal) {
			score += 5
			break
		}
	}
	for _, signal := range []string{"presented", "communicat", "collaborat", "documented"} {
		if strings.Contains(text, signal) {
			score += 5
		}
	}
	return min(90, score)
}

// leadershipScore is a deterministic proxy built from seniority and
// people-leadership language.
func leadershipScore(resumeText string) int {
	text := parsing.NormalizeText(resumeText)
	score := 55
	for _, title := range seniorityTitles {
		if strings.Contains(text, title) {
			score += 5
		}
	}
	for _, signal := range []string{"mentored", "led ", "managed a team", "coordinated"} {
		if strings.Contains(text, signal) {
			score += 5
		}
	}
	return min(maxComponentScore, score)
}

// orEmpty keeps output lists JSON arrays rather than null.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// clampScore bounds a score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
