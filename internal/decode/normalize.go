package decode

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes decoded text while preserving line structure, which
// the field extractor depends on: line endings become LF, non-breaking
// spaces become plain spaces, runs of spaces collapse to one, and runs of
// blank lines collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00A0", " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses internal runs of spaces.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return multiSpaceRe.ReplaceAllString(line, " ")
}
