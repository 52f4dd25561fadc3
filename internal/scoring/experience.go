// Package scoring provides the deterministic estimators and the score
// aggregator that turn match signals into a resume analysis.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/parsing"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

const maxComponentScore = 95

// yearMention matches "<number> year(s)" with an optional trailing "+".
var yearMention = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// actionVerbs earn +3 each when present; they signal described work history.
var actionVerbs = []string{
	"experience", "worked", "developed", "managed", "led",
	"created", "built", "designed", "implemented",
}

// seniorityTitles earn +5 each; title words implying elevated level.
var seniorityTitles = []string{
	"senior", "lead", "principal", "architect", "manager", "director",
}

// ExtractYears returns the candidate's apparent total years of experience:
// the maximum number across all year mentions, 0 when none are found.
func ExtractYears(resumeText string) int {
	years := 0
	for _, m := range yearMention.FindAllStringSubmatch(strings.ToLower(resumeText), -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years {
			years = n
		}
	}
	return years
}

// EstimateExperience scores a resume's experience against the job's band.
// Returns an integer in [0, 95].
func EstimateExperience(resumeText string, job *types.JobDescription) int {
	text := parsing.NormalizeText(resumeText)
	years := ExtractYears(text)

	// Entry-level resumes often state no year count at all; fall back to
	// counting project mentions instead of scoring them as zero experience.
	if years == 0 {
		if projects := strings.Count(text, "project"); projects >= 2 {
			return min(85, 60+10*projects)
		}
	}

	score := 50
	minYears, maxYears := job.ExperienceBand()
	switch {
	case years >= minYears && years <= maxYears:
		score += 30
	case years >= minYears && years <= maxYears+2:
		score += 25
	case years >= minYears:
		score += 15
	default:
		denom := minYears
		if denom < 1 {
			denom = 1
		}
		score += 20 * years / denom
	}

	for _, verb := range actionVerbs {
		if strings.Contains(text, verb) {
			score += 3
		}
	}
	for _, title := range seniorityTitles {
		if strings.Contains(text, title) {
			score += 5
		}
	}
	if levelConsistent(job.ExperienceLevel, years) {
		score += 10
	}

	return min(maxComponentScore, score)
}

// levelConsistent reports whether the stated experience level band agrees
// with the apparent years.
func levelConsistent(level string, years int) bool {
	switch strings.ToLower(level) {
	case "entry":
		return years <= 2
	case "mid":
		return years >= 2 && years <= 5
	case "senior":
		return years >= 5
	case "lead":
		return years >= 7
	}
	return false
}
