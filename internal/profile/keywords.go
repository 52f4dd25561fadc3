// Package profile extracts a normalized CandidateProfile from raw resume text.
package profile

// Category keyword lists for the six fixed technical-skill categories. Each
// list is scanned against the full lower-cased text; hits are recorded once
// per category in scan order.
var languageKeywords = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "golang",
	"php", "ruby", "kotlin", "swift", "rust", "scala", "html", "css",
}

var frameworkKeywords = []string{
	"react", "angular", "vue", "node", "express", "next", "django", "flask",
	"spring", "laravel", "rails", "jquery", "bootstrap", "tailwind",
}

var databaseKeywords = []string{
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
	"elasticsearch", "cassandra", "dynamodb", "sql",
}

var toolKeywords = []string{
	"git", "docker", "kubernetes", "jenkins", "jira", "terraform", "ansible",
	"postman", "webpack", "vite", "maven", "gradle",
}

var cloudKeywords = []string{
	"aws", "azure", "gcp", "google cloud", "heroku", "vercel", "netlify",
	"digitalocean", "firebase",
}

var otherKeywords = []string{
	"machine learning", "data analysis", "rest api", "graphql", "microservices",
	"agile", "scrum", "ci/cd", "tdd", "oop",
}

// degreeKeywords drive coarse education-entry extraction. Order matters:
// longer forms are listed before their abbreviations to avoid double counts.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "b.tech", "b.e", "m.tech", "m.e",
	"mba", "bca", "mca",
}

// fieldKeywords map a field-of-study mention to its display form, in
// priority order so extraction stays deterministic when several appear.
var fieldKeywords = []struct {
	keyword string
	display string
}{
	{"computer science", "Computer Science"},
	{"software engineering", "Software Engineering"},
	{"information technology", "Information Technology"},
	{"computer engineering", "Computer Engineering"},
	{"data science", "Data Science"},
	{"web development", "Web Development"},
	{"electronics", "Electronics"},
}

// knownLocations is the fixed priority list of city names the extractor
// recognizes. First hit wins.
var knownLocations = []string{
	"bangalore", "bengaluru", "hyderabad", "chennai", "mumbai", "pune",
	"delhi", "noida", "gurgaon", "kolkata", "ahmedabad", "kochi",
	"coimbatore", "remote",
}

// certificationPhrases is the fixed list of vendor certification labels.
var certificationPhrases = []string{
	"AWS Certified",
	"Microsoft Certified",
	"Google Cloud Certified",
	"Oracle Certified",
	"Cisco Certified",
	"Certified Kubernetes Administrator",
	"Certified Scrum Master",
	"CompTIA",
}
