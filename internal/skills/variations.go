// Package skills resolves required skill lists against resume text using
// variation lookup, word-boundary matching, and contextual-phrase fallback.
package skills

import "strings"

// skillVariations maps a canonical skill name (lower-cased) to the accepted
// surface forms that count as a mention of it. A skill absent from this table
// matches only its own literal form.
var skillVariations = map[string][]string{
	"javascript": {"javascript", "js", "java script", "ecmascript", "es6", "es2015"},
	"typescript": {"typescript", "ts"},
	"python":     {"python", "python3", "py"},
	"java":       {"java", "core java", "java se", "java ee", "j2ee"},
	"go":         {"go", "golang"},
	"c++":        {"c++", "cpp", "cplusplus"},
	"c#":         {"c#", "csharp", "c sharp", ".net c#"},
	"php":        {"php"},
	"ruby":       {"ruby", "ruby on rails", "ror"},
	"kotlin":     {"kotlin"},
	"swift":      {"swift"},
	"rust":       {"rust"},
	"scala":      {"scala"},
	"r":          {"r programming", "r language"},

	"react":   {"react", "reactjs", "react.js", "react js"},
	"angular": {"angular", "angularjs", "angular.js", "angular js"},
	"vue":     {"vue", "vuejs", "vue.js", "vue js"},
	"node.js": {"node.js", "node", "nodejs", "node js"},
	"express": {"express", "expressjs", "express.js"},
	"next.js": {"next.js", "nextjs", "next js"},
	"django":  {"django"},
	"flask":   {"flask"},
	"spring":  {"spring", "spring boot", "springboot"},
	"laravel": {"laravel"},
	".net":    {".net", "dotnet", "dot net", "asp.net", "aspnet"},
	"jquery":  {"jquery"},

	"html":       {"html", "html5"},
	"css":        {"css", "css3", "scss", "sass"},
	"sql":        {"sql", "structured query language"},
	"mysql":      {"mysql", "my sql"},
	"postgresql": {"postgresql", "postgres", "postgre sql"},
	"mongodb":    {"mongodb", "mongo", "mongo db"},
	"redis":      {"redis"},
	"sqlite":     {"sqlite"},
	"oracle":     {"oracle", "oracle db", "pl/sql"},

	"aws":        {"aws", "amazon web services"},
	"azure":      {"azure", "microsoft azure"},
	"gcp":        {"gcp", "google cloud", "google cloud platform"},
	"docker":     {"docker", "containerization"},
	"kubernetes": {"kubernetes", "k8s"},
	"terraform":  {"terraform"},
	"jenkins":    {"jenkins"},
	"ci/cd":      {"ci/cd", "cicd", "ci cd", "continuous integration", "continuous deployment"},

	"git":              {"git", "github", "gitlab", "version control"},
	"linux":            {"linux", "unix", "ubuntu"},
	"rest":             {"rest", "restful", "rest api", "restful api", "rest apis"},
	"graphql":          {"graphql", "graph ql"},
	"machine learning": {"machine learning", "ml", "scikit-learn", "sklearn"},
	"data analysis":    {"data analysis", "data analytics", "pandas", "numpy"},
	"agile":            {"agile", "scrum", "kanban"},
}

// Variations returns the accepted surface forms for a skill. An unknown skill
// is its own sole variation.
func Variations(skill string) []string {
	key := strings.ToLower(strings.TrimSpace(skill))
	if vars, ok := skillVariations[key]; ok {
		return vars
	}
	return []string{key}
}
