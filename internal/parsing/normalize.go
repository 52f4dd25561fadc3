// Package parsing provides text normalization and job description loading for the analysis engine.
package parsing

import (
	"regexp"
	"strings"
)

// skillDelimiters is the class of characters that separate skills inside a
// single joined string: comma, semicolon, pipe, newline, bullets, hyphen.
var skillDelimiters = regexp.MustCompile(`[,;|\n•·\-]+`)

// tokenDelimiters re-split entries of an already-tokenized list. Hyphen is
// excluded here: in tokenized input it belongs to skill names like
// "scikit-learn" and "Objective-C".
var tokenDelimiters = regexp.MustCompile(`[,;|\n•·]+`)

// enumerationMarker matches leading numbering prefixes like "1:", "2.", "3)".
var enumerationMarker = regexp.MustCompile(`^\d+\s*[:.)]\s*`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// skillStopWords are filler tokens that never name a skill on their own.
var skillStopWords = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "using": {}, "etc": {},
	"experience": {}, "knowledge": {}, "familiar": {}, "proficient": {},
	"expert": {}, "beginner": {}, "intermediate": {}, "advanced": {},
}

// NormalizeText lower-cases text and collapses whitespace runs into single
// spaces. Shared by every matcher so comparisons see identical input.
func NormalizeText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ToLower(text), " "))
}

// CollapseWhitespace collapses whitespace runs without changing case.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// SplitSkillString splits a delimiter-joined skill string into raw tokens.
func SplitSkillString(s string) []string {
	return skillDelimiters.Split(s, -1)
}

// NormalizeSkillList turns required skills in any upstream shape into a clean
// ordered list of distinct skill tokens. A one-element list whose sole element
// contains internal newlines is re-split on token delimiters; this is a
// compatibility shim for malformed upstream input, not a supported format.
// Entries of a tokenized list are never split on hyphen, so hyphenated skill
// names survive intact.
func NormalizeSkillList(skills []string) []string {
	if len(skills) == 1 && strings.Contains(skills[0], "\n") {
		skills = tokenDelimiters.Split(skills[0], -1)
	}

	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{})
	for _, raw := range skills {
		for _, token := range splitIfJoined(raw) {
			token = cleanSkillToken(token)
			if token == "" {
				continue
			}
			key := strings.ToLower(token)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}

// splitIfJoined re-splits a single list entry that still carries delimiters.
func splitIfJoined(raw string) []string {
	if tokenDelimiters.MatchString(raw) {
		return tokenDelimiters.Split(raw, -1)
	}
	return []string{raw}
}

// cleanSkillToken strips enumeration markers and filler words from one token.
// Returns "" when nothing skill-like remains.
func cleanSkillToken(token string) string {
	token = strings.TrimSpace(token)
	token = enumerationMarker.ReplaceAllString(token, "")
	token = strings.TrimSpace(strings.Trim(token, ".:"))
	if len(token) < 2 {
		return ""
	}
	if _, stop := skillStopWords[strings.ToLower(token)]; stop {
		return ""
	}
	return token
}
