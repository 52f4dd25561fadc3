package profile

import (
	"regexp"
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/scoring"
	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Indian mobile numbers (optional +91/91 prefix) or a generic 3-3-4
	// grouped number with optional country code.
	phonePattern = regexp.MustCompile(`(?:\+?91[\s\-]?)?[6-9]\d{9}\b|(?:\+?\d{1,2}[\s\-]?)?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}`)

	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z .]*$`)

	// "at <Capitalized Company Name>" inside an experience section.
	companyPattern = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9&.\- ]{1,40})`)

	capitalizedLine = regexp.MustCompile(`^[A-Z]`)
)

// Extract parses raw resume text into a normalized CandidateProfile. It is a
// pure function and never fails: any signal the heuristics cannot resolve
// yields an empty or zero value in the result.
func Extract(resumeText, fileName string) *types.CandidateProfile {
	lines := strings.Split(resumeText, "\n")
	lower := strings.ToLower(resumeText)

	return &types.CandidateProfile{
		FileName: fileName,
		PersonalInfo: types.PersonalInfo{
			Name:     extractName(lines),
			Email:    emailPattern.FindString(resumeText),
			Phone:    strings.TrimSpace(phonePattern.FindString(resumeText)),
			Location: extractLocation(lower),
		},
		Education:            extractEducation(lower),
		Experience:           extractExperience(lines),
		Skills:               extractSkills(lower),
		Projects:             extractProjects(lines),
		Certifications:       extractCertifications(resumeText),
		TotalExperienceYears: scoring.ExtractYears(lower),
	}
}

// extractName takes the first plausible name line among the first five lines:
// letters/spaces/periods only, 4-49 characters, no contact markers, and not
// an objective header.
func extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@+") {
			continue
		}
		if len(line) < 4 || len(line) >= 50 {
			continue
		}
		if strings.Contains(strings.ToLower(line), "objective") {
			continue
		}
		if namePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractLocation returns the first known city found in the lower-cased text,
// with its first letter restored to upper case.
func extractLocation(lower string) string {
	for _, city := range knownLocations {
		if strings.Contains(lower, city) {
			return strings.ToUpper(city[:1]) + city[1:]
		}
	}
	return ""
}

// extractSkills runs six independent scans of the full text against the fixed
// category keyword lists. Framework hits are normalized to drop ".js"/"js"
// suffixes; "sql" spacing variants collapse to one entry.
func extractSkills(lower string) types.TechnicalSkills {
	return types.TechnicalSkills{
		Languages:  scanCategory(lower, languageKeywords, nil),
		Frameworks: scanCategory(lower, frameworkKeywords, normalizeFramework),
		Databases:  scanCategory(lower, databaseKeywords, normalizeDatabase),
		Tools:      scanCategory(lower, toolKeywords, nil),
		Cloud:      scanCategory(lower, cloudKeywords, nil),
		Other:      scanCategory(lower, otherKeywords, nil),
	}
}

func scanCategory(lower string, keywords []string, normalize func(string) string) []string {
	hits := make([]string, 0, 4)
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		name := kw
		if normalize != nil {
			name = normalize(name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		hits = append(hits, name)
	}
	return hits
}

func normalizeFramework(name string) string {
	name = strings.TrimSuffix(name, ".js")
	return strings.TrimSuffix(name, "js")
}

func normalizeDatabase(name string) string {
	return strings.TrimSpace(strings.TrimSuffix(name, " sql")) // "my sql" style spacing
}

// extractExperience locates the experience section and scans the following
// ~20 lines for "at <Company>" mentions. Title and duration are placeholders;
// this is a coarse extractor by design, not a precision parser.
func extractExperience(lines []string) []types.ExperienceEntry {
	start := findSection(lines, "experience", "work history", "employment")
	if start < 0 {
		return []types.ExperienceEntry{}
	}

	entries := make([]types.ExperienceEntry, 0, 4)
	end := min(start+21, len(lines))
	for _, line := range lines[start+1 : end] {
		m := companyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, types.ExperienceEntry{
			Title:        "Software Developer",
			Company:      strings.TrimSpace(m[1]),
			Duration:     "1 year",
			Description:  strings.TrimSpace(line),
			Technologies: []string{},
		})
	}
	return entries
}

// extractEducation emits one entry per degree keyword found anywhere in the
// text. Field, institution, and year are defaults; the heuristics make no
// attempt to locate the real values.
func extractEducation(lower string) []types.EducationEntry {
	field := "Computer Science"
	for _, fk := range fieldKeywords {
		if strings.Contains(lower, fk.keyword) {
			field = fk.display
			break
		}
	}

	entries := make([]types.EducationEntry, 0, 2)
	for _, degree := range degreeKeywords {
		if !strings.Contains(lower, degree) {
			continue
		}
		entries = append(entries, types.EducationEntry{
			Degree:      degree,
			Field:       field,
			Institution: "University",
			Year:        "2023",
		})
	}
	return entries
}

// extractProjects scans ~15 lines after the projects section for capitalized
// lines of length 10-99 that are not themselves section headers.
func extractProjects(lines []string) []types.Project {
	start := findSection(lines, "project", "portfolio")
	if start < 0 {
		return []types.Project{}
	}

	projects := make([]types.Project, 0, 4)
	end := min(start+16, len(lines))
	for _, line := range lines[start+1 : end] {
		line = strings.TrimSpace(line)
		if len(line) < 10 || len(line) >= 100 {
			continue
		}
		if strings.Contains(strings.ToLower(line), "project") {
			continue
		}
		if !capitalizedLine.MatchString(line) {
			continue
		}
		projects = append(projects, types.Project{
			Name:         line,
			Technologies: []string{},
		})
	}
	return projects
}

func extractCertifications(text string) []string {
	certs := make([]string, 0, 2)
	lower := strings.ToLower(text)
	for _, phrase := range certificationPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			certs = append(certs, phrase)
		}
	}
	return certs
}

// findSection returns the index of the first line containing any marker,
// case-insensitively, or -1.
func findSection(lines []string, markers ...string) int {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, marker := range markers {
			if strings.Contains(lower, marker) {
				return i
			}
		}
	}
	return -1
}
