package types

// CandidateProfile is the normalized record extracted from raw resume text.
// It is rebuilt per resume and never mutated after construction. Fields the
// extractor cannot resolve default to empty values rather than being omitted.
type CandidateProfile struct {
	FileName             string            `json:"file_name"`
	PersonalInfo         PersonalInfo      `json:"personal_info"`
	Education            []EducationEntry  `json:"education"`
	Experience           []ExperienceEntry `json:"experience"`
	Skills               TechnicalSkills   `json:"skills"`
	Projects             []Project         `json:"projects"`
	Certifications       []string          `json:"certifications"`
	TotalExperienceYears int               `json:"total_experience_years"`
}

// PersonalInfo holds contact details found in the resume. Every field is
// optional; an empty string means the signal was not found.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// EducationEntry represents one credential mention in the resume.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExperienceEntry represents one employment mention in the resume.
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

// TechnicalSkills groups matched canonical skill names into six fixed
// categories. Each category lists a skill at most once, in scan order.
type TechnicalSkills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Databases  []string `json:"databases"`
	Tools      []string `json:"tools"`
	Cloud      []string `json:"cloud"`
	Other      []string `json:"other"`
}

// Project represents a project mention in the resume.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}
