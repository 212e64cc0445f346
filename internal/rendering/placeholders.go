package rendering

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-restyle/internal/types"
)

// fieldAliases maps each record field to the placeholder names a template
// may use for it. Each alias is recognized in all four bracket styles
// ({{alias}}, {alias}, [ALIAS], <<ALIAS>>), case-insensitively.
var fieldAliases = map[string][]string{
	"name":           {"name", "full_name", "fullname", "your_name", "candidate_name"},
	"email":          {"email", "email_address", "your_email"},
	"phone":          {"phone", "phone_number", "telephone", "your_phone"},
	"location":       {"location", "address", "city"},
	"website":        {"website", "portfolio", "personal_website"},
	"linkedin":       {"linkedin", "linkedin_url", "linkedin_profile"},
	"summary":        {"summary", "professional_summary", "objective", "profile", "about"},
	"experience":     {"experience", "work_experience", "employment_history", "work_history"},
	"education":      {"education", "academic_background"},
	"skills":         {"skills", "technical_skills", "core_competencies"},
	"projects":       {"projects", "personal_projects"},
	"certifications": {"certifications", "certificates", "licenses"},
	"languages":      {"languages"},
	"achievements":   {"achievements", "awards", "accomplishments"},
	"references":     {"references"},
}

// dateAliases are substituted with the current date in a separate pass.
var dateAliases = []string{"date", "current_date", "today"}

// fieldPlaceholder is one field's compiled matchers: replaceRe matches the
// bare placeholder, stripRe additionally swallows surrounding horizontal
// whitespace so removing an empty field collapses cleanly.
type fieldPlaceholder struct {
	key       string
	replaceRe []*regexp.Regexp
	stripRe   []*regexp.Regexp
}

// placeholderTable is built once at startup, in canonical field order.
var placeholderTable = buildPlaceholderTable()

func buildPlaceholderTable() []fieldPlaceholder {
	table := make([]fieldPlaceholder, 0, len(types.FieldKeys))
	for _, key := range types.FieldKeys {
		fp := fieldPlaceholder{key: key}
		for _, alias := range fieldAliases[key] {
			for _, spelling := range bracketSpellings(alias) {
				fp.replaceRe = append(fp.replaceRe, placeholderRegex(spelling, false))
				fp.stripRe = append(fp.stripRe, placeholderRegex(spelling, true))
			}
		}
		table = append(table, fp)
	}
	return table
}

// bracketSpellings returns the four literal bracket conventions for alias.
func bracketSpellings(alias string) []string {
	upper := strings.ToUpper(alias)
	return []string{
		"{{" + alias + "}}",
		"{" + alias + "}",
		"[" + upper + "]",
		"<<" + upper + ">>",
	}
}

// placeholderRegex compiles a case-insensitive literal matcher for one
// spelling. With strip set, the match extends over adjacent spaces and
// tabs so an emptied slot leaves no gap behind.
func placeholderRegex(spelling string, strip bool) *regexp.Regexp {
	pattern := `(?i)` + regexp.QuoteMeta(spelling)
	if strip {
		pattern = `[ \t]*` + pattern + `[ \t]*`
	}
	return regexp.MustCompile(pattern)
}
