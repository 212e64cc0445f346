package rendering

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-restyle/internal/types"
)

var (
	// Unconsumed placeholder-shaped tokens removed by the final cleanup.
	// Token bodies are word-like on purpose: a CSS rule body in an inline
	// <style> block carries colons and must survive the single-brace pass.
	unmatchedRes = []*regexp.Regexp{
		regexp.MustCompile(`\{\{[A-Za-z][A-Za-z0-9_ -]*\}\}`),
		regexp.MustCompile(`\{[A-Za-z][A-Za-z0-9_ -]*\}`),
		regexp.MustCompile(`\[[A-Za-z][A-Za-z0-9_ -]*\]`),
		regexp.MustCompile(`<<[A-Za-z][A-Za-z0-9_ -]*>>`),
	}

	labelOnlyLineRe = regexp.MustCompile(`(?m)^[ \t]*[A-Za-z][A-Za-z &/]{0,30}:[ \t]*$\n?`)

	// Dangling "|" separators left where an emptied value used to sit.
	sepRunRe       = regexp.MustCompile(`(?:[ \t]*\|){2,}`)
	sepLeadRe      = regexp.MustCompile(`(?m)^[ \t]*\|[ \t]*`)
	sepTrailRe     = regexp.MustCompile(`(?m)[ \t]*\|[ \t]*$`)
	sepAfterTagRe  = regexp.MustCompile(`>[ \t]*\|[ \t]*`)
	sepBeforeTagRe = regexp.MustCompile(`[ \t]*\|[ \t]*<`)
	spaceRunsRe     = regexp.MustCompile(`[ \t]{3,}`)
	blankLineRunsRe = regexp.MustCompile(`(?:\n[ \t]*){3,}`)
	htmlMarkupRe    = regexp.MustCompile(`(?i)<(?:!doctype|html|head|body|div|p|table|td|span)\b`)

	dateRes = buildDateRes()
)

func buildDateRes() []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, alias := range dateAliases {
		for _, spelling := range bracketSpellings(alias) {
			res = append(res, placeholderRegex(spelling, false))
		}
	}
	return res
}

// Apply substitutes record values into templateText. Every placeholder of
// a non-empty field is replaced with its value; placeholders of empty
// fields are removed together with surrounding whitespace; date tokens get
// the current date; whatever placeholder-shaped tokens remain are stripped
// and the result is cleaned up. Apply is a single deterministic pass that
// never mutates its inputs.
func Apply(templateText string, record types.ResumeRecord) (string, error) {
	return applyAt(templateText, record, time.Now())
}

// applyAt is Apply with an injectable clock for the date pass.
func applyAt(templateText string, record types.ResumeRecord, now time.Time) (string, error) {
	if strings.TrimSpace(templateText) == "" {
		return "", &TemplateEmptyError{}
	}

	isHTML := htmlMarkupRe.MatchString(templateText)
	out := templateText

	for _, fp := range placeholderTable {
		value := record.Field(fp.key)
		if value != "" {
			for _, re := range fp.replaceRe {
				out = re.ReplaceAllLiteralString(out, value)
			}
			continue
		}
		for _, re := range fp.stripRe {
			out = re.ReplaceAllString(out, "")
		}
	}

	date := now.Format("Jan 2, 2006")
	for _, re := range dateRes {
		out = re.ReplaceAllLiteralString(out, date)
	}

	for _, re := range unmatchedRes {
		out = re.ReplaceAllString(out, "")
	}

	out = sepRunRe.ReplaceAllString(out, " |")
	out = sepAfterTagRe.ReplaceAllString(out, ">")
	out = sepBeforeTagRe.ReplaceAllString(out, "<")
	out = sepLeadRe.ReplaceAllString(out, "")
	out = sepTrailRe.ReplaceAllString(out, "")

	if isHTML {
		cleaned, err := cleanupHTML(out)
		if err != nil {
			return "", &TemplateProcessingError{Cause: err}
		}
		out = cleaned
	} else {
		out = labelOnlyLineRe.ReplaceAllString(out, "")
	}

	out = spaceRunsRe.ReplaceAllString(out, " ")
	out = blankLineRunsRe.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out), nil
}
