package extract

import (
	"regexp"
	"strings"
)

// skillDictionary is the fixed fallback vocabulary scanned when a resume
// has no dedicated skills section. Order is preserved in the output.
var skillDictionary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "SQL",
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Next.js",
	"Django", "Flask", "Spring", "Rails", ".NET",
	"Docker", "Kubernetes", "Terraform", "Jenkins", "Git", "CI/CD",
	"AWS", "Azure", "GCP", "Linux",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"GraphQL", "REST", "gRPC", "Microservices",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"Pandas", "NumPy", "Spark", "Tableau", "Power BI", "Excel",
	"Agile", "Scrum", "Jira",
}

// skillMatchers holds one case-insensitive whole-token matcher per
// dictionary entry. Plain \b boundaries break on names like "C++" and
// "Node.js", so the boundary is any non-alphanumeric rune or the string
// edge.
var skillMatchers = buildSkillMatchers()

func buildSkillMatchers() []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(skillDictionary))
	for i, skill := range skillDictionary {
		matchers[i] = regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9])` + regexp.QuoteMeta(skill) + `(?:[^A-Za-z0-9]|$)`)
	}
	return matchers
}

// skillsFallback scans the whole text for known technology names and
// returns the de-duplicated matches joined with ", ". Used only when no
// skills section was found.
func skillsFallback(text string) string {
	seen := make(map[string]bool, len(skillDictionary))
	var found []string
	for i, skill := range skillDictionary {
		if seen[skill] || !skillMatchers[i].MatchString(text) {
			continue
		}
		seen[skill] = true
		found = append(found, skill)
	}
	return strings.Join(found, ", ")
}
