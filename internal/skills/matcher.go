package skills

import (
	"math"
	"regexp"
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/parsing"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

// Score policy: a nonzero skill list never scores as a total failure nor a
// perfect pass; rule-based matching carries an uncertainty margin.
const (
	scoreFloor   = 20
	scoreCeiling = 95

	// neutralScore is returned when the skill list is empty or unparseable.
	neutralScore = 75

	maxMatchedListed = types.MaxKeywordMatches
	maxMissingListed = types.MaxMissingSkills
)

// contextWords are section-header and proficiency words; a variation appearing
// after any of them counts as a contextual match even without word boundaries.
var contextWords = []string{
	"skills", "technologies", "experience", "proficient", "familiar",
	"knowledge", "areas", "technical", "interest", "expertise",
}

// MatchResult reports how a required skill list resolved against resume text.
type MatchResult struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Match resolves a list of skill tokens against resume text. Each skill is
// found when any of its variations matches by word boundary or by contextual
// phrase. The skill list is normalized first, so delimiter-joined or
// enumerated input is accepted.
func Match(resumeText string, requiredSkills []string) MatchResult {
	skillList := parsing.NormalizeSkillList(requiredSkills)
	if len(skillList) == 0 {
		return MatchResult{Score: neutralScore}
	}

	text := parsing.NormalizeText(resumeText)

	var matched, missing []string
	for _, skill := range skillList {
		if skillFound(text, skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(skillList)) * 100))
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}

	return MatchResult{
		Score:   score,
		Matched: types.CapList(matched, maxMatchedListed),
		Missing: types.CapList(missing, maxMissingListed),
	}
}

// MatchString is Match for a single delimiter-joined skill string.
func MatchString(resumeText, requiredSkills string) MatchResult {
	return Match(resumeText, parsing.SplitSkillString(requiredSkills))
}

// skillFound reports whether any variation of skill appears in the normalized
// resume text.
func skillFound(text, skill string) bool {
	for _, variation := range Variations(skill) {
		if wordBoundaryMatch(text, variation) || contextualMatch(text, variation) {
			return true
		}
	}
	return false
}

// wordBoundaryMatch matches variation as a standalone token. The variation is
// escaped, not interpreted, so forms like "c++" and "node.js" are literal; the
// boundaries are hand-rolled because \b misbehaves next to non-word runes.
func wordBoundaryMatch(text, variation string) bool {
	pattern := `(^|[^a-z0-9+#.])` + regexp.QuoteMeta(variation) + `($|[^a-z0-9+#])`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return strings.Contains(text, variation)
	}
	return re.MatchString(text)
}

// contextualMatch accepts a weaker, permissive substring match when the
// variation appears after a recognized header/context word, immediately before
// "development"/"programming", or after "using"/"with". Not anchored to
// section boundaries.
func contextualMatch(text, variation string) bool {
	idx := strings.Index(text, variation)
	if idx < 0 {
		return false
	}

	for _, ctx := range contextWords {
		if ctxIdx := strings.Index(text, ctx); ctxIdx >= 0 && ctxIdx < idx {
			return true
		}
	}

	after := text[idx+len(variation):]
	after = strings.TrimLeft(after, " ")
	if strings.HasPrefix(after, "development") || strings.HasPrefix(after, "programming") {
		return true
	}

	before := strings.TrimRight(text[:idx], " ")
	return strings.HasSuffix(before, "using") || strings.HasSuffix(before, "with")
}
