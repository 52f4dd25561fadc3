package scoring

import (
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/parsing"
)

// Education scoring bonuses on top of the base 50.
const (
	educationBase       = 50
	exactLevelBonus     = 35
	higherLevelBonus    = 10
	technicalFieldBonus = 10

	// noRequirementScore is returned when no education level is required;
	// there is no constraint to fail.
	noRequirementScore = 85
)

// degreeLevel is one rung of the credential ladder.
type degreeLevel struct {
	name     string
	keywords []string
}

// degreeLadder is ordered from lowest to highest credential. Rank comparisons
// use slice position.
var degreeLadder = []degreeLevel{
	{"high_school", []string{"high school", "secondary school", "diploma", "12th", "hsc"}},
	{"associate", []string{"associate", "associate's", "a.a", "a.s"}},
	{"bachelor", []string{"bachelor", "ba", "bs", "b.tech", "b.e", "bca", "undergraduate", "college", "university"}},
	{"master", []string{"master", "ms", "m.tech", "m.e", "mba", "mca", "postgraduate", "graduate degree"}},
	{"phd", []string{"phd", "ph.d", "doctorate", "doctoral"}},
}

// bootcampKeywords is a lateral, non-ranked credential set.
var bootcampKeywords = []string{"bootcamp", "boot camp", "certification program", "intensive program"}

// technicalFields are field-of-study keywords that earn the field bonus.
var technicalFields = []string{
	"computer science", "software engineering", "information technology",
	"computer engineering", "web development",
}

// EvaluateEducation scores resume text against a required education level on
// the degree ladder. Returns an integer in [0, 95].
func EvaluateEducation(resumeText, requiredEducation string) int {
	required := strings.ToLower(strings.TrimSpace(requiredEducation))
	if required == "" || required == "none" {
		return noRequirementScore
	}

	text := parsing.NormalizeText(resumeText)
	requiredRank := ladderRank(required)

	score := educationBase

	// The match bonus needs a keyword for the exact required rung; higher
	// credentials earn only the separate higher-level bonus.
	met := false
	if requiredRank >= 0 {
		met = levelMentioned(text, degreeLadder[requiredRank])
	} else {
		// Lateral credential requirement, e.g. "bootcamp".
		met = anyKeyword(text, bootcampKeywords)
	}
	if met {
		score += exactLevelBonus
	}

	// One bonus for the first strictly higher rung found, in ladder order.
	if requiredRank >= 0 {
		for rank := requiredRank + 1; rank < len(degreeLadder); rank++ {
			if levelMentioned(text, degreeLadder[rank]) {
				score += higherLevelBonus
				break
			}
		}
	}

	if anyKeyword(text, technicalFields) {
		score += technicalFieldBonus
	}

	return min(maxComponentScore, score)
}

// ladderRank returns the ladder index for a required level name, -1 when the
// name is not on the ladder.
func ladderRank(level string) int {
	for i, l := range degreeLadder {
		if l.name == level || strings.ReplaceAll(l.name, "_", " ") == level {
			return i
		}
	}
	return -1
}

func levelMentioned(text string, level degreeLevel) bool {
	return anyKeyword(text, level.keywords)
}

func anyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if containsWord(text, kw) {
			return true
		}
	}
	return false
}

// containsWord is a boundary-checked substring test; short degree tokens like
// "ba" and "ms" must not match inside longer words.
func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isAlnum(text[start-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
